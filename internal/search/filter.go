// Package search provides pure filter functions over catalog records.
// All functions are order-preserving and side-effect free: same inputs,
// same outputs, no mutation of the source list.
package search

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/arlox/showdeck/internal/domain"
)

// FilterShows narrows shows to those whose name, summary, or genre list
// contains the query, case-insensitive. An empty or whitespace-only query
// returns the input list unchanged.
func FilterShows(shows []domain.Show, query string) []domain.Show {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return shows
	}

	result := make([]domain.Show, 0, len(shows))
	for _, show := range shows {
		if matchShow(show, q) {
			result = append(result, show)
		}
	}
	return result
}

// FilterEpisodes narrows episodes to those whose name or summary contains
// the query, case-insensitive. An empty or whitespace-only query returns
// the input list unchanged.
func FilterEpisodes(episodes []domain.Episode, query string) []domain.Episode {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return episodes
	}

	result := make([]domain.Episode, 0, len(episodes))
	for _, ep := range episodes {
		if matchEpisode(ep, q) {
			result = append(result, ep)
		}
	}
	return result
}

// matchShow checks the lowercase query against name, stripped summary, and
// the genre list joined by a separator.
func matchShow(show domain.Show, q string) bool {
	if strings.Contains(strings.ToLower(show.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(StripTags(show.Summary)), q) {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(show.Genres, " ")), q)
}

func matchEpisode(ep domain.Episode, q string) bool {
	if strings.Contains(strings.ToLower(ep.Name), q) {
		return true
	}
	return strings.Contains(strings.ToLower(StripTags(ep.Summary)), q)
}

// StripTags reduces an HTML-bearing summary to its text content. Matching
// against stripped text keeps tag names and attributes from producing
// false hits. Unparseable input is returned as-is.
func StripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
