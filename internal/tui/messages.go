package tui

import (
	"github.com/arlox/showdeck/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogLoadedMsg signals that the full show catalog has been loaded
type CatalogLoadedMsg struct {
	Shows []domain.Show
}

// EpisodesLoadedMsg signals that episodes for one show have been loaded.
// ShowID tags the fetch the response belongs to; the model discards the
// message when the user has since selected a different show.
type EpisodesLoadedMsg struct {
	ShowID   int64
	Episodes []domain.Episode
}

// EpisodeLoadFailedMsg signals that an episode fetch failed. Carries the
// show id so stale failures can be discarded like stale successes.
type EpisodeLoadFailedMsg struct {
	ShowID int64
	Err    error
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// TickMsg is a general tick message for the loading spinner
type TickMsg struct{}
