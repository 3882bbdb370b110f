package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/ytpl/internal/formatter"
	"github.com/desertthunder/ytpl/internal/shared"
	"github.com/urfave/cli/v3"
)

// Playlists lists the signed-in user's playlists.
func (r *Runner) Playlists(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	playlists, err := r.client.Playlists(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	if len(playlists) == 0 {
		return r.writePlain("No playlists found.\n")
	}

	for _, pl := range playlists {
		r.writePlain("%s  %s (%d videos, %s)\n", pl.ID, pl.Title, pl.ItemCount, pl.Privacy)
	}
	return nil
}

// Videos lists the items in a playlist.
func (r *Runner) Videos(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	items, err := r.client.PlaylistItems(ctx, cmd.String("playlist"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(items, cmd.Bool("pretty"))
	}

	if len(items) == 0 {
		return r.writePlain("Playlist is empty.\n")
	}

	for _, item := range items {
		r.writePlain("%3d. %s  %s (item %s)\n", item.Position+1, item.VideoID, item.Title, item.ID)
	}
	return nil
}

// Search queries YouTube for videos matching the given terms.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	results, err := r.client.Search(ctx, query, cmd.Int("limit"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(results, cmd.Bool("pretty"))
	}

	if len(results) == 0 {
		return r.writePlain("No results for %q.\n", query)
	}

	for _, result := range results {
		r.writePlain("%s  %s — %s\n", result.VideoID, result.Title, result.ChannelTitle)
	}
	return nil
}

// Export writes a playlist's contents to disk in the requested format.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	playlistID := cmd.String("playlist")

	playlists, err := r.client.Playlists(ctx)
	if err != nil {
		return err
	}

	export := &formatter.PlaylistExport{}
	for _, pl := range playlists {
		if pl.ID == playlistID {
			export.Playlist = pl
			break
		}
	}
	if export.Playlist.ID == "" {
		return fmt.Errorf("%w: playlist %s", shared.ErrNotFound, playlistID)
	}

	export.Items, err = r.client.PlaylistItems(ctx, playlistID)
	if err != nil {
		return err
	}

	output := cmd.String("output")

	switch strings.ToLower(cmd.String("format")) {
	case "csv":
		result, err := formatter.WriteCSVExport(export, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported %d videos\n", len(export.Items))
		r.writePlain("  %s\n  %s\n", result.ItemsFile, result.MetadataFile)
	case "markdown", "md":
		mdFile, err := formatter.WriteMarkdownExport(export, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported %d videos to %s\n", len(export.Items), mdFile)
	case "text", "txt":
		path, err := formatter.WriteTextExport(export, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported %d videos to %s\n", len(export.Items), path)
	default:
		return fmt.Errorf("%w: format must be csv, markdown or text", shared.ErrInvalidFlag)
	}

	return nil
}
