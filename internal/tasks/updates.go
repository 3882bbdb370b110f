package tasks

import (
	"fmt"

	"github.com/desertthunder/ytpl/internal/youtube"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	FetchSource Phase = iota
	CopyItems
	RemoveItems
)

func (p Phase) String() string {
	switch p {
	case FetchSource:
		return "fetch_source"
	case CopyItems:
		return "copy_items"
	case RemoveItems:
		return "remove_items"
	default:
		return ""
	}
}

func fetchSourceUpdate(playlistID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchSource,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Fetching videos from %s...", playlistID),
	}
}

func foundSourceUpdate(playlistID string, count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchSource,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Found %d videos in %s", count, playlistID),
	}
}

func copyItemUpdate(step, total int, item youtube.PlaylistItem) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CopyItems,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s", step, total, item.Title),
		Data:    item,
	}
}

func copyFailedUpdate(step, total int, item youtube.PlaylistItem, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CopyItems,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, item.Title, err),
		Data:    item,
	}
}

func removeItemUpdate(step, total int, item youtube.PlaylistItem) ProgressUpdate {
	return ProgressUpdate{
		Phase:   RemoveItems,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Removing %s from source...", step, total, item.Title),
		Data:    item,
	}
}
