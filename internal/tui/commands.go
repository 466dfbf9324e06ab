package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arlox/showdeck/internal/catalog"
)

// Command factories for async operations

// LoadCatalogCmd loads the full show catalog. Paging is sequential and
// rate-limited, so the timeout is generous.
func LoadCatalogCmd(svc *catalog.Service, maxPages int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		shows := svc.LoadCatalog(ctx, maxPages)
		return CatalogLoadedMsg{Shows: shows}
	}
}

// LoadEpisodesCmd loads the episode list for one show. The resulting
// message is tagged with showID so stale responses can be discarded.
func LoadEpisodesCmd(svc *catalog.Service, showID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		episodes, err := svc.LoadEpisodes(ctx, showID)
		if err != nil {
			return EpisodeLoadFailedMsg{ShowID: showID, Err: err}
		}
		return EpisodesLoadedMsg{ShowID: showID, Episodes: episodes}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
