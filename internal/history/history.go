// package history persists a local log of playlist mutations in SQLite.
//
// The log is append-only from the client's point of view: the youtube
// client records an Entry after each successful insert, delete, move or
// copy, and the history command reads them back newest-first. Nothing
// in the log is ever required for the remote API to work, so a missing
// or broken database degrades to a warning rather than an error.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/ytpl/internal/models"
	"github.com/desertthunder/ytpl/internal/shared"
)

var (
	_ models.Model              = (*Entry)(nil)
	_ models.Repository[*Entry] = (*Repository)(nil)
)

// Repository implements models.Repository[*Entry] over the history table.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a Repository backed by the given database connection
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new entry into the log with a generated ID
func (r *Repository) Create(entry *Entry) error {
	id := shared.GenerateID()
	entry.SetID(id)

	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO history (id, action, playlist_id, video_id, item_id, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		id,
		string(entry.Action()),
		entry.PlaylistID(),
		entry.VideoID(),
		entry.ItemID(),
		entry.Detail(),
		entry.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	return nil
}

// Get retrieves an entry by its ID
func (r *Repository) Get(id string) (*Entry, error) {
	query := `
		SELECT id, action, playlist_id, video_id, item_id, detail, created_at
		FROM history
		WHERE id = ?
	`

	var (
		entryID    string
		action     string
		playlistID string
		videoID    sql.NullString
		itemID     sql.NullString
		detail     sql.NullString
		createdAt  time.Time
	)

	err := r.db.QueryRow(query, id).Scan(&entryID, &action, &playlistID, &videoID, &itemID, &detail, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("history entry not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan history entry: %w", err)
	}

	entry := &Entry{
		id:         entryID,
		action:     Action(action),
		playlistID: playlistID,
		videoID:    videoID.String,
		itemID:     itemID.String,
		detail:     detail.String,
		createdAt:  createdAt,
	}

	return entry, nil
}

// Delete removes an entry from the log by its ID
func (r *Repository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM history WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("history entry not found: %s", id)
	}

	return nil
}

// List retrieves entries matching the given criteria, newest first.
//
// Supported criteria: "playlist_id" and "action" as strings, "limit" as int.
func (r *Repository) List(criteria map[string]any) ([]*Entry, error) {
	query := `
		SELECT id, action, playlist_id, video_id, item_id, detail, created_at
		FROM history
		WHERE 1 = 1
	`

	args := []any{}

	if playlistID, ok := criteria["playlist_id"].(string); ok && playlistID != "" {
		query += " AND playlist_id = ?"
		args = append(args, playlistID)
	}

	if action, ok := criteria["action"].(string); ok && action != "" {
		query += " AND action = ?"
		args = append(args, action)
	}

	query += " ORDER BY created_at DESC, id DESC"

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var (
			entryID    string
			action     string
			playlistID string
			videoID    sql.NullString
			itemID     sql.NullString
			detail     sql.NullString
			createdAt  time.Time
		)

		if err := rows.Scan(&entryID, &action, &playlistID, &videoID, &itemID, &detail, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		entries = append(entries, &Entry{
			id:         entryID,
			action:     Action(action),
			playlistID: playlistID,
			videoID:    videoID.String,
			itemID:     itemID.String,
			detail:     detail.String,
			createdAt:  createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}
