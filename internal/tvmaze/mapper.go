package tvmaze

import (
	"github.com/arlox/showdeck/internal/domain"
)

// mapShows converts show DTOs to domain shows. Records missing the
// required id or name fields are dropped; everything optional maps to its
// zero value when absent.
func mapShows(dtos []showDTO) []domain.Show {
	shows := make([]domain.Show, 0, len(dtos))
	for _, d := range dtos {
		if d.ID == nil || d.Name == nil {
			continue
		}
		shows = append(shows, mapShow(d))
	}
	return shows
}

func mapShow(d showDTO) domain.Show {
	show := domain.Show{
		ID:      *d.ID,
		Name:    *d.Name,
		Summary: d.Summary,
		Genres:  d.Genres,
		Status:  d.Status,
		URL:     d.URL,
	}
	if d.Runtime != nil {
		show.Runtime = *d.Runtime
	}
	if d.Rating.Average != nil {
		show.Rating = *d.Rating.Average
	}
	if d.Image != nil {
		show.Image = d.Image.Medium
	}
	return show
}

// mapEpisodes converts episode DTOs to domain episodes, preserving source
// order. Entries without a season or number are marked Special.
func mapEpisodes(dtos []episodeDTO) []domain.Episode {
	episodes := make([]domain.Episode, 0, len(dtos))
	for _, d := range dtos {
		if d.ID == nil || d.Name == nil {
			continue
		}
		episodes = append(episodes, mapEpisode(d))
	}
	return episodes
}

func mapEpisode(d episodeDTO) domain.Episode {
	ep := domain.Episode{
		ID:      *d.ID,
		Name:    *d.Name,
		Summary: d.Summary,
		URL:     d.URL,
		Special: d.Season == nil || d.Number == nil,
	}
	if d.Season != nil {
		ep.Season = *d.Season
	}
	if d.Number != nil {
		ep.Number = *d.Number
	}
	if d.Image != nil {
		ep.Image = d.Image.Medium
	}
	return ep
}
