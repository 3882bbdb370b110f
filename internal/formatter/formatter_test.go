package formatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/ytpl/internal/youtube"
)

func sampleExport() *PlaylistExport {
	return &PlaylistExport{
		Playlist: youtube.Playlist{
			ID:        "PLtest123",
			Title:     "Test Playlist",
			ItemCount: 2,
			Privacy:   "public",
		},
		Items: []youtube.PlaylistItem{
			{ID: "item1", VideoID: "vid1", Title: "Video One", Position: 0},
			{ID: "item2", VideoID: "vid2", Title: "Video Two", Position: 1},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(sampleExport())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Position,VideoID,Title,ItemID,URL") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "0,vid1,Video One,item1,https://www.youtube.com/watch?v=vid1") {
			t.Errorf("CSV missing first record, got: %s", output)
		}
		if !strings.Contains(output, "1,vid2,Video Two,item2") {
			t.Errorf("CSV missing second record, got: %s", output)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(sampleExport())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "# Test Playlist") {
			t.Errorf("Markdown missing title")
		}
		if !strings.Contains(output, "**Videos**: 2") {
			t.Errorf("Markdown missing video count")
		}
		if !strings.Contains(output, "**Visibility**: public") {
			t.Errorf("Markdown missing visibility")
		}
		if !strings.Contains(output, "## Videos") {
			t.Errorf("Markdown missing videos section")
		}
		if !strings.Contains(output, "1. [Video One](https://www.youtube.com/watch?v=vid1)") {
			t.Errorf("Markdown missing first video link, got: %s", output)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(sampleExport())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Playlist: Test Playlist") {
			t.Errorf("text missing playlist name")
		}
		if !strings.Contains(output, "Videos: 2") {
			t.Errorf("text missing video count")
		}
		if !strings.Contains(output, "1. Video One (vid1)") {
			t.Errorf("text missing first video, got: %s", output)
		}
	})
}

func TestWriteExports(t *testing.T) {
	t.Run("WriteCSVExport creates csv and metadata files", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "out")

		result, err := WriteCSVExport(sampleExport(), base)
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}

		if result.ItemsFile != base+"_videos.csv" {
			t.Errorf("unexpected items file: %s", result.ItemsFile)
		}
		if result.MetadataFile != base+"_metadata.json" {
			t.Errorf("unexpected metadata file: %s", result.MetadataFile)
		}

		csvData, err := os.ReadFile(result.ItemsFile)
		if err != nil {
			t.Fatalf("failed to read CSV file: %v", err)
		}
		if !strings.Contains(string(csvData), "vid1") {
			t.Errorf("CSV file missing content")
		}

		metaData, err := os.ReadFile(result.MetadataFile)
		if err != nil {
			t.Fatalf("failed to read metadata file: %v", err)
		}
		if !strings.Contains(string(metaData), "PLtest123") {
			t.Errorf("metadata file missing playlist id")
		}
	})

	t.Run("WriteMarkdownExport creates a README in the output directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "export")

		mdFile, err := WriteMarkdownExport(sampleExport(), dir)
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}

		if mdFile != filepath.Join(dir, "README.md") {
			t.Errorf("unexpected markdown path: %s", mdFile)
		}
		data, err := os.ReadFile(mdFile)
		if err != nil {
			t.Fatalf("failed to read markdown file: %v", err)
		}
		if !strings.Contains(string(data), "# Test Playlist") {
			t.Errorf("markdown file missing title")
		}
	})

	t.Run("WriteTextExport defaults the filename to the playlist id", func(t *testing.T) {
		dir := t.TempDir()
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("failed to change directory: %v", err)
		}
		t.Cleanup(func() { os.Chdir(cwd) })

		path, err := WriteTextExport(sampleExport(), "")
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if path != "PLtest123_videos.txt" {
			t.Errorf("unexpected path: %s", path)
		}
		if _, err := os.Stat(filepath.Join(dir, path)); err != nil {
			t.Errorf("expected exported file to exist: %v", err)
		}
	})
}
