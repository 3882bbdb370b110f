// package tasks implements bulk playlist operations on top of the API client.
//
// The core abstraction is CopyEngine, which copies (and optionally moves) the
// full contents of one playlist into another. Operations emit progress updates
// via channels for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"

	"github.com/desertthunder/ytpl/internal/shared"
	"github.com/desertthunder/ytpl/internal/youtube"
)

var _ PlaylistAPI = (*youtube.Client)(nil)

// PlaylistAPI defines the client operations the engine needs.
// This abstraction allows for easier testing and decoupling from concrete implementation.
type PlaylistAPI interface {
	PlaylistItems(ctx context.Context, playlistID string) ([]youtube.PlaylistItem, error)
	InsertItem(ctx context.Context, playlistID, videoID string) error
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemResult records the outcome of copying a single video.
type ItemResult struct {
	Item  youtube.PlaylistItem // Source item
	Error error                // Error if the copy (or removal) failed
}

// CopyRunResult contains all data from a bulk copy operation.
type CopyRunResult struct {
	SourceID     string       // Source playlist ID
	TargetID     string       // Target playlist ID
	Items        []ItemResult // Per-video outcomes
	SuccessCount int          // Number of videos copied
	FailedCount  int          // Number of failed copies
	TotalItems   int          // Total videos processed
	RemovedCount int          // Videos removed from source (move mode only)
}

// CopyEngine copies the contents of one playlist into another.
type CopyEngine struct {
	api PlaylistAPI
}

// NewCopyEngine creates a new CopyEngine backed by the given client.
func NewCopyEngine(api PlaylistAPI) *CopyEngine {
	return &CopyEngine{api: api}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *CopyEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Run copies every video in the source playlist to the target playlist.
//
// Per-item insert failures are collected in the result rather than aborting
// the run. When removeSource is true, videos that copied successfully are
// also removed from the source playlist afterwards; a failed removal leaves
// the video in both playlists and is recorded against that item.
func (e *CopyEngine) Run(ctx context.Context, sourceID, targetID string, removeSource bool, progress chan<- ProgressUpdate) (*CopyRunResult, error) {
	if sourceID == "" || targetID == "" {
		return nil, fmt.Errorf("%w: source and target playlist ids are required", shared.ErrMissingArgument)
	}
	if sourceID == targetID {
		return nil, fmt.Errorf("%w: source and target playlists are the same", shared.ErrInvalidInput)
	}

	e.sendProgress(progress, fetchSourceUpdate(sourceID))

	items, err := e.api.PlaylistItems(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list source playlist: %w", err)
	}

	total := len(items)
	result := &CopyRunResult{
		SourceID:   sourceID,
		TargetID:   targetID,
		Items:      make([]ItemResult, 0, total),
		TotalItems: total,
	}

	e.sendProgress(progress, foundSourceUpdate(sourceID, total))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		e.sendProgress(progress, copyItemUpdate(i+1, total, item))

		err := e.api.InsertItem(ctx, targetID, item.VideoID)
		if err != nil {
			e.sendProgress(progress, copyFailedUpdate(i+1, total, item, err))
			result.Items = append(result.Items, ItemResult{Item: item, Error: err})
			result.FailedCount++
			continue
		}

		result.Items = append(result.Items, ItemResult{Item: item})
		result.SuccessCount++
	}

	if !removeSource {
		return result, nil
	}

	for i := range result.Items {
		entry := &result.Items[i]
		if entry.Error != nil {
			continue
		}

		e.sendProgress(progress, removeItemUpdate(i+1, total, entry.Item))

		if err := e.api.DeleteItem(ctx, entry.Item.ID); err != nil {
			entry.Error = fmt.Errorf("copied but not removed from source: %w", err)
			continue
		}
		result.RemovedCount++
	}

	return result, nil
}
