package shared

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Credentials.ClientSecretFile != "client_secrets.json" {
			t.Errorf("expected client secret file client_secrets.json, got %s", config.Credentials.ClientSecretFile)
		}

		if config.Credentials.TokenFile != "~/.ytpl/token.json" {
			t.Errorf("expected token file ~/.ytpl/token.json, got %s", config.Credentials.TokenFile)
		}

		if config.Credentials.CallbackPort != 3000 {
			t.Errorf("expected callback port 3000, got %d", config.Credentials.CallbackPort)
		}

		if config.API.PageSize != 50 {
			t.Errorf("expected page size 50, got %d", config.API.PageSize)
		}

		if config.API.SearchLimit != 10 {
			t.Errorf("expected search limit 10, got %d", config.API.SearchLimit)
		}

		if config.Database.Path != "~/.ytpl/history.db" {
			t.Errorf("expected database path ~/.ytpl/history.db, got %s", config.Database.Path)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[credentials]
client_secret_file = "/custom/secrets.json"
token_file = "/custom/token.json"
callback_port = 9000

[api]
page_size = 25
search_limit = 5

[database]
path = "/custom/history.db"
max_open_conns = 2
max_idle_conns = 2
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Credentials.CallbackPort != 9000 {
			t.Errorf("expected callback port 9000, got %d", config.Credentials.CallbackPort)
		}
		if config.API.PageSize != 25 {
			t.Errorf("expected page size 25, got %d", config.API.PageSize)
		}
		if config.Database.Path != "/custom/history.db" {
			t.Errorf("expected custom database path, got %s", config.Database.Path)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("LoadConfig malformed file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("not [valid toml"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected error for malformed config file")
		}
	})

	t.Run("ExpandPath", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skipf("no home directory: %v", err)
		}

		got := ExpandPath("~/.ytpl/token.json")
		if !strings.HasPrefix(got, home) {
			t.Errorf("expected expansion under %s, got %s", home, got)
		}

		if got := ExpandPath("/absolute/path"); got != "/absolute/path" {
			t.Errorf("expected absolute path unchanged, got %s", got)
		}
		if got := ExpandPath("relative/path"); got != "relative/path" {
			t.Errorf("expected relative path unchanged, got %s", got)
		}
	})
}
