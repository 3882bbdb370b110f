package youtube

import "context"

// PageFunc fetches a single page of results. An empty pageToken requests the
// first page; the returned token is empty when no pages remain.
type PageFunc[T any] func(ctx context.Context, pageToken string) (items []T, nextPageToken string, err error)

// CollectPages drives fetch to completion and returns the concatenation of
// all pages' items in the order received.
//
// Makes no assumption about page count and performs no retries: the first
// fetch error propagates immediately. Retry policy belongs to the caller.
func CollectPages[T any](ctx context.Context, fetch PageFunc[T]) ([]T, error) {
	var all []T
	token := ""

	for {
		items, next, err := fetch(ctx, token)
		if err != nil {
			return nil, err
		}

		all = append(all, items...)

		if next == "" {
			return all, nil
		}
		token = next
	}
}
