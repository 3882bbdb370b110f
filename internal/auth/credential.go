// Credential persistence for the YouTube OAuth token.
//
// A single JSON file holds the serialized token between runs. A corrupt or
// missing file is treated as "absent", never as a hard failure: the worst
// outcome of losing persistence is that sign-in runs again on next launch.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/ytpl/internal/shared"
	"golang.org/x/oauth2"
)

// Credential is the renewable authorization artifact for the YouTube Data API.
type Credential struct {
	*oauth2.Token
}

// Usable reports whether the access token is present and unexpired.
func (c *Credential) Usable() bool {
	return c != nil && c.Token != nil && c.Token.Valid()
}

// Refreshable reports whether an expired credential can be renewed without user interaction.
func (c *Credential) Refreshable() bool {
	return c != nil && c.Token != nil && c.Token.RefreshToken != ""
}

// Store persists a single [Credential] to a file on disk.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore creates a credential store backed by the file at path.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Store{path: path, logger: logger}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted credential.
//
// A missing or unparseable file yields (nil, nil): first runs and corrupt
// files both just mean sign-in is required.
func (s *Store) Load() (*Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warnf("failed to read token file: %v", err)
		}
		return nil, nil
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		s.logger.Warnf("ignoring corrupt token file %s: %v", s.path, err)
		return nil, nil
	}

	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, nil
	}

	return &Credential{Token: &token}, nil
}

// Save persists the credential with owner-only permissions.
//
// Persistence failures are non-fatal to the in-memory session; callers should
// log and continue, since the only consequence is re-authentication next launch.
func (s *Store) Save(c *Credential) error {
	if c == nil || c.Token == nil {
		return fmt.Errorf("%w: nil credential", shared.ErrInvalidInput)
	}

	data, err := json.Marshal(c.Token)
	if err != nil {
		return fmt.Errorf("failed to serialize token: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// Delete removes the persisted credential. A missing file is not an error.
func (s *Store) Delete() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete token file: %w", err)
	}
	return nil
}

// EnsureValid returns the credential unchanged when it is usable.
//
// An expired credential with a refresh token is renewed through config's
// token endpoint and saved back to disk. An unusable, unrefreshable
// credential yields [shared.ErrCredentialInvalid].
func (s *Store) EnsureValid(ctx context.Context, config *oauth2.Config, c *Credential) (*Credential, error) {
	if c.Usable() {
		return c, nil
	}

	if !c.Refreshable() {
		return nil, fmt.Errorf("%w: token expired and %v", shared.ErrCredentialInvalid, shared.ErrNoRefreshToken)
	}

	refreshed, err := config.TokenSource(ctx, c.Token).Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrRefreshFailed, err)
	}

	cred := &Credential{Token: refreshed}
	if err := s.Save(cred); err != nil {
		s.logger.Warnf("failed to persist refreshed token: %v", err)
	}

	return cred, nil
}
