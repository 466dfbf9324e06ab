package domain

import "context"

// CatalogSource is the read-only remote API the browser consumes. The
// tvmaze package implements it; tests substitute fakes.
type CatalogSource interface {
	// FetchShowPage returns one page of the show catalog. An empty slice
	// (without error) signals that paging is exhausted.
	FetchShowPage(ctx context.Context, page int) ([]Show, error)

	// FetchEpisodes returns the full episode list for one show, in source
	// order.
	FetchEpisodes(ctx context.Context, showID int64) ([]Episode, error)
}
