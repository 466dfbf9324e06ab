package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations
var (
	// ErrCatalogUnavailable indicates the catalog source is unreachable
	ErrCatalogUnavailable = errors.New("catalog source is unreachable")

	// ErrMalformedResponse indicates the source returned a body that is not
	// the expected record array
	ErrMalformedResponse = errors.New("malformed catalog response")

	// ErrShowNotFound indicates the requested show does not exist
	ErrShowNotFound = errors.New("show not found")
)

// EpisodeFetchError reports a failed episode-list fetch together with the
// show it was issued for. Callers surface it to the user; it never
// invalidates already-loaded state.
type EpisodeFetchError struct {
	ShowID int64
	Err    error
}

func (e *EpisodeFetchError) Error() string {
	return fmt.Sprintf("loading episodes for show %d: %v", e.ShowID, e.Err)
}

func (e *EpisodeFetchError) Unwrap() error { return e.Err }
