package history

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/desertthunder/ytpl/internal/shared"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestEntryValidate(t *testing.T) {
	t.Run("accepts known actions", func(t *testing.T) {
		for _, action := range []Action{ActionInsert, ActionDelete, ActionMove, ActionCopy} {
			entry := NewEntry(action, "PL1", "vid1", "item1", "")
			if err := entry.Validate(); err != nil {
				t.Errorf("expected %q to validate, got %v", action, err)
			}
		}
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		entry := NewEntry(Action("rename"), "PL1", "", "", "")
		err := entry.Validate()
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "unknown action") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("requires playlist id", func(t *testing.T) {
		entry := NewEntry(ActionInsert, "", "vid1", "", "")
		if err := entry.Validate(); err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("delete requires only an item id", func(t *testing.T) {
		entry := NewEntry(ActionDelete, "", "", "item1", "")
		if err := entry.Validate(); err != nil {
			t.Errorf("expected delete without playlist to validate, got %v", err)
		}
		entry = NewEntry(ActionDelete, "", "", "", "")
		if err := entry.Validate(); err == nil {
			t.Fatal("expected validation error for delete without item id")
		}
	})
}

func TestRepository(t *testing.T) {
	t.Run("Create assigns an id and persists the entry", func(t *testing.T) {
		repo := NewRepository(setupDB(t))

		entry := NewEntry(ActionInsert, "PL1", "vid1", "item1", "added via cli")
		if err := repo.Create(entry); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if entry.ID() == "" {
			t.Error("expected Create to assign an id")
		}

		got, err := repo.Get(entry.ID())
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Action() != ActionInsert {
			t.Errorf("expected action %q, got %q", ActionInsert, got.Action())
		}
		if got.PlaylistID() != "PL1" || got.VideoID() != "vid1" || got.ItemID() != "item1" {
			t.Errorf("unexpected entry fields: %+v", got)
		}
		if got.Detail() != "added via cli" {
			t.Errorf("expected detail to round-trip, got %q", got.Detail())
		}
		if got.CreatedAt().IsZero() {
			t.Error("expected created_at to be set")
		}
	})

	t.Run("Create rejects invalid entries", func(t *testing.T) {
		repo := NewRepository(setupDB(t))

		entry := NewEntry(ActionDelete, "", "", "", "")
		if err := repo.Create(entry); err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("Get returns an error for a missing id", func(t *testing.T) {
		repo := NewRepository(setupDB(t))

		if _, err := repo.Get("nope"); err == nil {
			t.Fatal("expected error for missing entry")
		}
	})

	t.Run("Delete removes an entry", func(t *testing.T) {
		repo := NewRepository(setupDB(t))

		entry := NewEntry(ActionDelete, "PL1", "vid1", "item1", "")
		if err := repo.Create(entry); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if err := repo.Delete(entry.ID()); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := repo.Get(entry.ID()); err == nil {
			t.Error("expected entry to be gone")
		}
		if err := repo.Delete(entry.ID()); err == nil {
			t.Error("expected error deleting a missing entry")
		}
	})

	t.Run("List returns entries newest first with filters", func(t *testing.T) {
		repo := NewRepository(setupDB(t))

		seed := []*Entry{
			NewEntry(ActionInsert, "PL1", "vid1", "item1", ""),
			NewEntry(ActionDelete, "PL1", "vid2", "item2", ""),
			NewEntry(ActionInsert, "PL2", "vid3", "item3", ""),
		}
		for _, entry := range seed {
			if err := repo.Create(entry); err != nil {
				t.Fatalf("Create failed: %v", err)
			}
		}

		all, err := repo.List(map[string]any{})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(all))
		}

		byPlaylist, err := repo.List(map[string]any{"playlist_id": "PL1"})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(byPlaylist) != 2 {
			t.Errorf("expected 2 entries for PL1, got %d", len(byPlaylist))
		}

		byAction, err := repo.List(map[string]any{"action": string(ActionDelete)})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(byAction) != 1 || byAction[0].VideoID() != "vid2" {
			t.Errorf("unexpected delete entries: %+v", byAction)
		}

		limited, err := repo.List(map[string]any{"limit": 1})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(limited) != 1 {
			t.Errorf("expected 1 entry with limit, got %d", len(limited))
		}
	})
}
