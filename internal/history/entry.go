package history

import (
	"fmt"
	"time"
)

// Action classifies a recorded playlist mutation.
type Action string

const (
	ActionInsert Action = "insert"
	ActionDelete Action = "delete"
	ActionMove   Action = "move"
	ActionCopy   Action = "copy"
)

// Entry is one row in the local mutation log. Every write the client
// performs against a remote playlist is recorded as an Entry so the
// user can audit what the tool changed.
type Entry struct {
	id         string
	action     Action
	playlistID string
	videoID    string
	itemID     string
	detail     string
	createdAt  time.Time
}

// NewEntry creates an unsaved Entry for the given mutation. The ID is
// assigned by the repository on Create.
func NewEntry(action Action, playlistID, videoID, itemID, detail string) *Entry {
	return &Entry{
		action:     action,
		playlistID: playlistID,
		videoID:    videoID,
		itemID:     itemID,
		detail:     detail,
		createdAt:  time.Now(),
	}
}

// ID returns the unique identifier for this entry
func (e *Entry) ID() string { return e.id }

// SetID assigns the unique identifier for this entry
func (e *Entry) SetID(id string) { e.id = id }

// Action returns the recorded mutation kind
func (e *Entry) Action() Action { return e.action }

// PlaylistID returns the playlist the mutation targeted
func (e *Entry) PlaylistID() string { return e.playlistID }

// VideoID returns the video involved in the mutation, if any
func (e *Entry) VideoID() string { return e.videoID }

// ItemID returns the playlist item involved in the mutation, if any
func (e *Entry) ItemID() string { return e.itemID }

// Detail returns free-form context about the mutation
func (e *Entry) Detail() string { return e.detail }

// CreatedAt returns when this entry was recorded
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

// Validate checks if the entry's data is valid and returns an error if not
func (e *Entry) Validate() error {
	switch e.action {
	case ActionInsert, ActionDelete, ActionMove, ActionCopy:
	default:
		return fmt.Errorf("unknown action: %q", e.action)
	}

	// Deletes target an item; the playlist is not always known.
	if e.action == ActionDelete {
		if e.itemID == "" {
			return fmt.Errorf("item id is required")
		}
		return nil
	}

	if e.playlistID == "" {
		return fmt.Errorf("playlist id is required")
	}

	return nil
}
