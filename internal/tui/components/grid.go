package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arlox/showdeck/internal/domain"
	"github.com/arlox/showdeck/internal/search"
	"github.com/arlox/showdeck/internal/tui/styles"
)

// ContentType represents the type of records being displayed
type ContentType int

const (
	ContentTypeShows ContentType = iota
	ContentTypeEpisodes
)

// Layout constants for the card grid
const (
	minCardWidth = 34
	maxColumns   = 4
	cardGap      = 1
	summaryLines = 3
)

// CardGrid renders one page-slice of records as a grid of cards. It owns
// cursor movement within the page; it never filters, fetches, or paginates.
type CardGrid struct {
	shows    []domain.Show
	episodes []domain.Episode

	contentType ContentType

	cursor int
	width  int
	height int

	loading bool
}

// NewCardGrid creates an empty card grid
func NewCardGrid() CardGrid {
	return CardGrid{}
}

// SetShows sets the current page of shows
func (g *CardGrid) SetShows(shows []domain.Show) {
	g.shows = shows
	g.episodes = nil
	g.contentType = ContentTypeShows
	g.cursor = 0
	g.loading = false
}

// SetEpisodes sets the current page of episodes
func (g *CardGrid) SetEpisodes(episodes []domain.Episode) {
	g.episodes = episodes
	g.shows = nil
	g.contentType = ContentTypeEpisodes
	g.cursor = 0
	g.loading = false
}

// SetSize updates the component dimensions
func (g *CardGrid) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// SetLoading toggles the loading indicator
func (g *CardGrid) SetLoading(loading bool) {
	g.loading = loading
}

// ContentType returns the type of the current page
func (g CardGrid) ContentType() ContentType {
	return g.contentType
}

// Len returns the number of cards on the current page
func (g CardGrid) Len() int {
	if g.contentType == ContentTypeEpisodes {
		return len(g.episodes)
	}
	return len(g.shows)
}

// Cursor returns the cursor position within the page
func (g CardGrid) Cursor() int {
	return g.cursor
}

// SelectedShow returns the show under the cursor
func (g CardGrid) SelectedShow() (domain.Show, bool) {
	if g.contentType != ContentTypeShows || g.cursor >= len(g.shows) {
		return domain.Show{}, false
	}
	return g.shows[g.cursor], true
}

// SelectedEpisode returns the episode under the cursor
func (g CardGrid) SelectedEpisode() (domain.Episode, bool) {
	if g.contentType != ContentTypeEpisodes || g.cursor >= len(g.episodes) {
		return domain.Episode{}, false
	}
	return g.episodes[g.cursor], true
}

// Columns returns how many cards fit per row at the current width
func (g CardGrid) Columns() int {
	cols := g.width / (minCardWidth + cardGap)
	if cols < 1 {
		cols = 1
	}
	if cols > maxColumns {
		cols = maxColumns
	}
	return cols
}

// Cursor movement, clamped to the page bounds

func (g *CardGrid) MoveLeft() {
	if g.cursor > 0 {
		g.cursor--
	}
}

func (g *CardGrid) MoveRight() {
	if g.cursor < g.Len()-1 {
		g.cursor++
	}
}

func (g *CardGrid) MoveUp() {
	if next := g.cursor - g.Columns(); next >= 0 {
		g.cursor = next
	}
}

func (g *CardGrid) MoveDown() {
	if next := g.cursor + g.Columns(); next < g.Len() {
		g.cursor = next
	}
}

// View renders the card grid
func (g CardGrid) View() string {
	if g.loading {
		return styles.DimStyle.Render("Loading…")
	}
	if g.Len() == 0 {
		return styles.DimStyle.Render("No results")
	}

	cols := g.Columns()
	cardWidth := g.width/cols - cardGap - 2 // border takes 2

	var rows []string
	for start := 0; start < g.Len(); start += cols {
		end := start + cols
		if end > g.Len() {
			end = g.Len()
		}
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, g.renderCard(i, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (g CardGrid) renderCard(i, width int) string {
	border := styles.CardBorder
	if i == g.cursor {
		border = styles.SelectedCardBorder
	}

	if g.contentType == ContentTypeEpisodes {
		return border.Width(width).Render(renderEpisodeCard(g.episodes[i], width-2))
	}
	return border.Width(width).Render(renderShowCard(g.shows[i], width-2))
}

func renderShowCard(show domain.Show, width int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(styles.Truncate(show.Name, width)))
	b.WriteString("\n")

	meta := make([]string, 0, 3)
	if r := show.FormattedRating(); r != "" {
		meta = append(meta, "★ "+r)
	}
	if show.Status != "" {
		meta = append(meta, show.Status)
	}
	if rt := show.FormattedRuntime(); rt != "" {
		meta = append(meta, rt)
	}
	b.WriteString(styles.DimStyle.Render(styles.Truncate(strings.Join(meta, " · "), width)))
	b.WriteString("\n")

	if genres := show.GenreLine(); genres != "" {
		b.WriteString(styles.AccentStyle.Render(styles.Truncate(genres, width)))
	}
	b.WriteString("\n")

	b.WriteString(renderSummary(show.Summary, width))

	return b.String()
}

func renderEpisodeCard(ep domain.Episode, width int) string {
	var b strings.Builder

	b.WriteString(styles.BadgeStyle.Render(ep.Code()))
	b.WriteString(" ")
	// The badge pads one cell on each side
	b.WriteString(styles.TitleStyle.Render(styles.Truncate(ep.Name, width-len(ep.Code())-3)))
	b.WriteString("\n\n")

	b.WriteString(renderSummary(ep.Summary, width))

	return b.String()
}

// renderSummary strips HTML from the summary and clamps it to a few lines
func renderSummary(summary string, width int) string {
	text := search.StripTags(summary)
	if text == "" {
		return styles.DimStyle.Render("—")
	}

	wrapped := wordWrap(text, width)
	lines := strings.Split(wrapped, "\n")
	if len(lines) > summaryLines {
		lines = lines[:summaryLines]
		lines[summaryLines-1] = styles.Truncate(lines[summaryLines-1], width-1) + "…"
	}
	return styles.SubtitleStyle.Render(strings.Join(lines, "\n"))
}

// wordWrap wraps text to the specified width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wordLen := len([]rune(word))

		if lineLen+wordLen+1 > width && lineLen > 0 {
			result.WriteString("\n")
			lineLen = 0
		}

		if i > 0 && lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}

// RenderSpinner renders a loading spinner frame
func RenderSpinner(frame int) string {
	return styles.SpinnerStyle.Render(styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
}
