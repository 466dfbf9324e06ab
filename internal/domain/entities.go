package domain

import (
	"fmt"
	"strings"
)

// Show represents a single series in the remote catalog. Shows are
// immutable once mapped from the API; downstream stages share the same
// backing slice and never copy or mutate records.
type Show struct {
	ID      int64    // Source-assigned unique identifier
	Name    string   // Display name
	Summary string   // Synopsis, may contain HTML tags
	Genres  []string // Ordered genre list, possibly empty
	Status  string   // "Running", "Ended", ... (empty if unknown)
	Runtime int      // Typical episode runtime in minutes (0 if unknown)
	Rating  float64  // Average rating on a 0-10 scale (0 if unrated)
	Image   string   // Medium poster URL (empty if none)
	URL     string   // Canonical page on the source site
}

// GenreLine returns the genre list as a single display string.
func (s Show) GenreLine() string {
	return strings.Join(s.Genres, ", ")
}

// FormattedRuntime returns the runtime in a human-readable format.
func (s Show) FormattedRuntime() string {
	if s.Runtime <= 0 {
		return ""
	}
	if s.Runtime >= 60 {
		return fmt.Sprintf("%dh %dm", s.Runtime/60, s.Runtime%60)
	}
	return fmt.Sprintf("%dm", s.Runtime)
}

// FormattedRating returns the rating for display, empty when unrated.
func (s Show) FormattedRating() string {
	if s.Rating <= 0 {
		return ""
	}
	return fmt.Sprintf("%.1f", s.Rating)
}

// Episode represents one episode of a show. Episode lists are replaced
// wholesale whenever a different show is selected; they are never merged.
type Episode struct {
	ID      int64  // Unique within the show
	Name    string // Display name
	Summary string // Synopsis, may contain HTML tags
	Season  int    // Season number (0 when Special)
	Number  int    // Episode number within the season (0 when Special)
	Special bool   // True when the source carries no season/number
	Image   string // Medium still URL (empty if none)
	URL     string // Canonical page on the source site
}

// Code returns the formatted episode code (e.g. "S01E05"), or "Special"
// for show-level entries without a season/number.
func (e Episode) Code() string {
	if e.Special {
		return "Special"
	}
	return fmt.Sprintf("S%02dE%02d", e.Season, e.Number)
}
