// Package catalog loads the show catalog and per-show episode lists from a
// remote read-only source. Catalog paging degrades to a partial result on
// error; episode fetches fail loudly with a typed error.
package catalog

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/arlox/showdeck/internal/cache"
	"github.com/arlox/showdeck/internal/domain"
)

// Service retrieves catalog data through the response cache.
type Service struct {
	source domain.CatalogSource
	cache  *cache.ResponseCache
	logger *slog.Logger
}

// NewService creates a new catalog service.
func NewService(source domain.CatalogSource, responseCache *cache.ResponseCache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		source: source,
		cache:  responseCache,
		logger: logger,
	}
}

// LoadCatalog fetches catalog pages 0, 1, 2, ... sequentially through the
// response cache and returns every accumulated show sorted by name,
// case-insensitive ascending, ties kept in fetch order.
//
// Paging stops at the first empty or failed page, or after maxPages
// requests. A page failure is logged and degrades the result to whatever
// was accumulated so far; LoadCatalog itself never fails.
func (s *Service) LoadCatalog(ctx context.Context, maxPages int) []domain.Show {
	var shows []domain.Show

	for page := 0; page < maxPages; page++ {
		p := page
		batch, err := cache.GetOrFetch(s.cache, cache.ShowPageKey(p), func() ([]domain.Show, error) {
			return s.source.FetchShowPage(ctx, p)
		})
		if err != nil {
			s.logger.Warn("catalog page fetch failed, stopping pagination",
				"page", page, "loaded", len(shows), "error", err)
			break
		}
		if len(batch) == 0 {
			break
		}
		shows = append(shows, batch...)
	}

	sortShows(shows)
	s.logger.Info("catalog loaded", "shows", len(shows))
	return shows
}

// LoadEpisodes fetches the episode list for one show. Results keep source
// order and are not cached: a fresh selection of the same show re-fetches.
func (s *Service) LoadEpisodes(ctx context.Context, showID int64) ([]domain.Episode, error) {
	episodes, err := s.source.FetchEpisodes(ctx, showID)
	if err != nil {
		s.logger.Error("episode fetch failed", "show", showID, "error", err)
		return nil, &domain.EpisodeFetchError{ShowID: showID, Err: err}
	}
	s.logger.Debug("episodes loaded", "show", showID, "count", len(episodes))
	return episodes, nil
}

// sortShows orders shows by name, case-insensitive ascending. The sort is
// stable so shows with equal names keep their fetch order.
func sortShows(shows []domain.Show) {
	sort.SliceStable(shows, func(i, j int) bool {
		return strings.ToLower(shows[i].Name) < strings.ToLower(shows[j].Name)
	})
}
