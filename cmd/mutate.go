package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/ytpl/internal/history"
	"github.com/desertthunder/ytpl/internal/shared"
	"github.com/desertthunder/ytpl/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Add inserts a video into a playlist.
func (r *Runner) Add(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	playlistID := cmd.String("playlist")
	videoID := cmd.String("video")

	if err := r.client.InsertItem(ctx, playlistID, videoID); err != nil {
		return err
	}

	r.recordHistory(history.NewEntry(history.ActionInsert, playlistID, videoID, "", "added via cli"))
	return r.writePlain("✓ Added %s to %s\n", videoID, playlistID)
}

// Remove deletes an item from a playlist.
func (r *Runner) Remove(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	itemID := cmd.String("item")

	if err := r.client.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("playlist item %s does not exist: %w", itemID, err)
		}
		return err
	}

	r.recordHistory(history.NewEntry(history.ActionDelete, cmd.String("playlist"), "", itemID, "removed via cli"))
	return r.writePlain("✓ Removed item %s\n", itemID)
}

// Move transfers a single video between playlists.
//
// A move is an insert into the target followed by a delete from the source.
// When the delete fails the video exists in both playlists; the command
// reports this rather than attempting a rollback.
func (r *Runner) Move(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	itemID := cmd.String("item")
	videoID := cmd.String("video")
	from := cmd.String("from")
	to := cmd.String("to")

	result, err := r.client.MoveItem(ctx, itemID, from, to, videoID)
	if err != nil {
		if errors.Is(err, shared.ErrPartialMove) {
			r.recordHistory(history.NewEntry(history.ActionMove, to, videoID, itemID,
				fmt.Sprintf("partial move from %s: video left in both playlists", from)))
			r.writePlain("✗ Partial move: %s was copied to %s but is still in %s\n", videoID, to, from)
			r.writePlain("  Remove it manually with: ytpl remove --item %s\n", itemID)
		}
		return err
	}

	if result.Inserted && result.Deleted {
		r.recordHistory(history.NewEntry(history.ActionMove, to, videoID, itemID,
			fmt.Sprintf("moved from %s", from)))
	}
	return r.writePlain("✓ Moved %s from %s to %s\n", videoID, from, to)
}

// Copy bulk-copies a playlist's videos into another playlist.
func (r *Runner) Copy(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureSession(ctx); err != nil {
		return err
	}

	from := cmd.String("from")
	to := cmd.String("to")
	moveAll := cmd.Bool("all")

	progress := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Info(update.Message, "phase", update.Phase.String())
		}
	}()

	result, err := r.engine.Run(ctx, from, to, moveAll, progress)
	close(progress)
	<-done
	if err != nil {
		return err
	}

	r.recordHistory(history.NewEntry(history.ActionCopy, to, "", "",
		fmt.Sprintf("copied %d/%d videos from %s", result.SuccessCount, result.TotalItems, from)))

	r.writePlain("✓ Copied %d/%d videos from %s to %s\n", result.SuccessCount, result.TotalItems, from, to)
	if moveAll {
		r.writePlain("  Removed %d videos from the source\n", result.RemovedCount)
	}

	if result.FailedCount > 0 {
		r.writePlain("\n%d videos failed:\n", result.FailedCount)
		for _, item := range result.Items {
			if item.Error != nil {
				r.writePlain("  ✗ %s: %v\n", item.Item.Title, item.Error)
			}
		}
	}

	return nil
}

// Quota prints the session's estimated quota usage.
func (r *Runner) Quota(ctx context.Context, cmd *cli.Command) error {
	r.writePlain("Session quota estimate: %d units\n", r.client.Usage())

	byOp := r.client.UsageByOp()
	if len(byOp) == 0 {
		return nil
	}

	r.writePlain("\nBy operation:\n")
	for op, units := range byOp {
		r.writePlain("  %-20s %d units\n", op, units)
	}
	return nil
}

// History lists locally recorded playlist mutations.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	path := shared.ExpandPath(r.config.Database.Path)

	db, err := r.openDB(path)
	if err != nil {
		return fmt.Errorf("history database unavailable: %w", err)
	}
	defer db.Close()

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("history database unavailable: %w", err)
	}

	entries, err := history.NewRepository(db).List(map[string]any{
		"playlist_id": cmd.String("playlist"),
		"action":      cmd.String("action"),
		"limit":       cmd.Int("limit"),
	})
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return r.writePlain("No history recorded.\n")
	}

	for _, entry := range entries {
		r.writePlain("%s  %-6s  playlist=%s", entry.CreatedAt().Format("2006-01-02 15:04"), entry.Action(), entry.PlaylistID())
		if entry.VideoID() != "" {
			r.writePlain("  video=%s", entry.VideoID())
		}
		if entry.Detail() != "" {
			r.writePlain("  (%s)", entry.Detail())
		}
		r.writePlain("\n")
	}
	return nil
}
