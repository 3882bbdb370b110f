package youtube

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestCollectPages(t *testing.T) {
	ctx := context.Background()

	t.Run("concatenates pages in order", func(t *testing.T) {
		pages := [][]int{{1, 2}, {3}, {4, 5, 6}}
		fetches := 0

		items, err := CollectPages(ctx, func(ctx context.Context, token string) ([]int, string, error) {
			idx := 0
			if token != "" {
				fmt.Sscanf(token, "p%d", &idx)
			}
			fetches++
			next := ""
			if idx < len(pages)-1 {
				next = fmt.Sprintf("p%d", idx+1)
			}
			return pages[idx], next, nil
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		want := []int{1, 2, 3, 4, 5, 6}
		if len(items) != len(want) {
			t.Fatalf("expected %d items, got %d", len(want), len(items))
		}
		for i, v := range want {
			if items[i] != v {
				t.Errorf("expected items[%d] == %d, got %d", i, v, items[i])
			}
		}
		if fetches != len(pages) {
			t.Errorf("expected exactly %d fetches, got %d", len(pages), fetches)
		}
	})

	t.Run("single empty page terminates after one fetch", func(t *testing.T) {
		fetches := 0
		items, err := CollectPages(ctx, func(ctx context.Context, token string) ([]string, string, error) {
			fetches++
			return nil, "", nil
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 0 {
			t.Errorf("expected no items, got %d", len(items))
		}
		if fetches != 1 {
			t.Errorf("expected exactly 1 fetch, got %d", fetches)
		}
	})

	t.Run("propagates fetch failure immediately without retry", func(t *testing.T) {
		boom := errors.New("boom")
		fetches := 0

		_, err := CollectPages(ctx, func(ctx context.Context, token string) ([]int, string, error) {
			fetches++
			if fetches == 2 {
				return nil, "", boom
			}
			return []int{fetches}, "more", nil
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected underlying error, got %v", err)
		}
		if fetches != 2 {
			t.Errorf("expected fetching to stop at the failure, got %d fetches", fetches)
		}
	})
}
