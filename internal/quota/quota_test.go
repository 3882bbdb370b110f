package quota

import "testing"

func TestEstimator(t *testing.T) {
	t.Run("Record", func(t *testing.T) {
		t.Run("accumulates fixed cost per operation", func(t *testing.T) {
			e := NewEstimator()
			for range 3 {
				e.Record(OpSearchList)
			}
			if got, want := e.Total(), 3*Costs[OpSearchList]; got != want {
				t.Errorf("expected total %d, got %d", want, got)
			}
		})

		t.Run("mixes operation kinds additively", func(t *testing.T) {
			e := NewEstimator()
			e.Record(OpPlaylistsList)
			e.Record(OpPlaylistItemsInsert)
			e.Record(OpPlaylistItemsDelete)
			if got, want := e.Total(), 1+50+50; got != want {
				t.Errorf("expected total %d, got %d", want, got)
			}
		})

		t.Run("unknown kinds contribute zero", func(t *testing.T) {
			e := NewEstimator()
			e.Record(Op("videos.rate"))
			if e.Total() != 0 {
				t.Errorf("expected total 0, got %d", e.Total())
			}
		})
	})

	t.Run("Total is monotonically non-decreasing", func(t *testing.T) {
		e := NewEstimator()
		prev := e.Total()
		for _, op := range []Op{OpChannelsList, Op("unknown"), OpPlaylistItemsList, OpSearchList} {
			e.Record(op)
			if e.Total() < prev {
				t.Fatalf("total decreased from %d to %d after %s", prev, e.Total(), op)
			}
			prev = e.Total()
		}
	})

	t.Run("Reset", func(t *testing.T) {
		e := NewEstimator()
		e.Record(OpSearchList)
		e.Record(OpPlaylistItemsInsert)
		e.Reset()
		if e.Total() != 0 {
			t.Errorf("expected total 0 after reset, got %d", e.Total())
		}

		e.Record(OpPlaylistsList)
		if e.Total() != Costs[OpPlaylistsList] {
			t.Errorf("expected recording to work after reset, got %d", e.Total())
		}
	})

	t.Run("ByOp returns a copy", func(t *testing.T) {
		e := NewEstimator()
		e.Record(OpPlaylistsList)
		breakdown := e.ByOp()
		breakdown[OpPlaylistsList] = 999
		if e.Total() != Costs[OpPlaylistsList] {
			t.Errorf("mutating the breakdown leaked into the ledger")
		}
	})
}
