package search

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/arlox/showdeck/internal/domain"
)

// SuggestShows returns up to max show names that fuzzily match a query
// which produced zero substring hits. Used for the footer's "did you mean"
// line; never used for the filter itself.
func SuggestShows(shows []domain.Show, query string, max int) []string {
	if query == "" || len(shows) == 0 || max <= 0 {
		return nil
	}

	names := make([]string, len(shows))
	for i, s := range shows {
		names[i] = s.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	suggestions := make([]string, 0, max)
	seen := make(map[string]bool)
	for _, r := range ranks {
		if seen[r.Target] {
			continue
		}
		seen[r.Target] = true
		suggestions = append(suggestions, r.Target)
		if len(suggestions) == max {
			break
		}
	}
	return suggestions
}
