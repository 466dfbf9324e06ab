package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arlox/showdeck/internal/browser"
	"github.com/arlox/showdeck/internal/catalog"
	"github.com/arlox/showdeck/internal/config"
	"github.com/arlox/showdeck/internal/domain"
	"github.com/arlox/showdeck/internal/pagination"
	"github.com/arlox/showdeck/internal/search"
	"github.com/arlox/showdeck/internal/tui/components"
	"github.com/arlox/showdeck/internal/tui/styles"
)

// View identifies which record list the grid is showing
type View int

const (
	ViewShows View = iota
	ViewEpisodes
)

const (
	spinnerInterval  = 100 * time.Millisecond
	statusClearDelay = 3 * time.Second
	maxSuggestions   = 3
)

// Model is the root bubbletea model. It owns the view state machine:
// the shows grid, the per-show episodes grid, and the transitions between
// them. Episode responses are tagged with the show id they were fetched
// for; a response that arrives after the user has moved on is discarded.
type Model struct {
	svc    *catalog.Service
	opener *browser.Opener
	cfg    *config.Config
	logger *slog.Logger

	view View

	shows        []domain.Show
	episodes     []domain.Episode
	selectedShow domain.Show
	selection    domain.Selection

	// pendingShowID is the id of the show whose episodes are being
	// fetched. Zero means no fetch is in flight. Loaded and failed
	// messages for any other id are stale and ignored.
	pendingShowID int64

	showQuery        string
	episodeQuery     string
	episodeSelection domain.Selection
	suggestions      []string

	showPager    *pagination.Pager[domain.Show]
	episodePager *pagination.Pager[domain.Episode]

	grid        components.CardGrid
	picker      components.Picker
	pickerView  View
	filterInput textinput.Model
	filtering   bool

	status        string
	statusIsError bool

	loadingCatalog  bool
	loadingEpisodes bool
	spinnerFrame    int

	width  int
	height int

	keys KeyMap
}

// NewModel creates the root model
func NewModel(svc *catalog.Service, opener *browser.Opener, cfg *config.Config, logger *slog.Logger) Model {
	fi := textinput.New()
	fi.Prompt = "/ "
	fi.Placeholder = "filter…"
	fi.CharLimit = 80
	fi.PromptStyle = styles.FilterPromptStyle
	fi.TextStyle = styles.FilterStyle

	return Model{
		svc:            svc,
		opener:         opener,
		cfg:            cfg,
		logger:         logger,
		view:           ViewShows,
		loadingCatalog: true,
		selection:      domain.AllSelection(),
		showPager:      pagination.New[domain.Show](cfg.UI.PageSize, config.PageSizes),
		episodePager:   pagination.New[domain.Episode](cfg.UI.PageSize, config.PageSizes),
		grid:           components.NewCardGrid(),
		picker:         components.NewPicker(),
		filterInput:    fi,
		keys:           Keys,
	}
}

// Init starts the catalog load
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCatalogCmd(m.svc, m.cfg.API.MaxPages),
		TickCmd(spinnerInterval),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.grid.SetSize(msg.Width, msg.Height-4)
		m.picker.SetSize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.spinnerFrame++
		if m.loadingCatalog || m.loadingEpisodes {
			return m, TickCmd(spinnerInterval)
		}
		return m, nil

	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case EpisodesLoadedMsg:
		return m.handleEpisodesLoaded(msg)

	case EpisodeLoadFailedMsg:
		return m.handleEpisodeLoadFailed(msg)

	case StatusMsg:
		m.status = msg.Message
		m.statusIsError = msg.IsError
		return m, ClearStatusCmd(statusClearDelay)

	case ClearStatusMsg:
		m.status = ""
		m.statusIsError = false
		return m, nil

	case ErrMsg:
		m.logger.Error("ui error", "context", msg.Context, "error", msg.Err)
		return m.setStatus(msg.Error(), true)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	m.loadingCatalog = false
	m.shows = msg.Shows
	m.applyShowFilter()
	m.refreshGrid()

	if len(m.shows) == 0 {
		return m.setStatus("catalog is empty or unreachable", true)
	}
	return m.setStatus(fmt.Sprintf("loaded %d shows", len(m.shows)), false)
}

func (m Model) handleEpisodesLoaded(msg EpisodesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.ShowID != m.pendingShowID {
		m.logger.Debug("discarding stale episode response",
			"show_id", msg.ShowID, "pending", m.pendingShowID)
		return m, nil
	}
	m.pendingShowID = 0
	m.loadingEpisodes = false

	m.episodes = msg.Episodes
	m.episodeQuery = ""
	m.episodeSelection = domain.AllSelection()
	m.episodePager.SetSource(m.episodes)
	m.view = ViewEpisodes
	m.suggestions = nil
	m.refreshGrid()

	return m.setStatus(fmt.Sprintf("%d episodes", len(m.episodes)), false)
}

func (m Model) handleEpisodeLoadFailed(msg EpisodeLoadFailedMsg) (tea.Model, tea.Cmd) {
	if msg.ShowID != m.pendingShowID {
		m.logger.Debug("discarding stale episode failure",
			"show_id", msg.ShowID, "pending", m.pendingShowID)
		return m, nil
	}
	m.pendingShowID = 0
	m.loadingEpisodes = false
	m.grid.SetLoading(false)

	m.logger.Warn("episode load failed", "show_id", msg.ShowID, "error", msg.Err)
	return m.setStatus(fmt.Sprintf("could not load episodes: %v", msg.Err), true)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The picker swallows everything except its own close/confirm keys
	if m.picker.IsVisible() {
		switch msg.String() {
		case "enter":
			entry, ok := m.picker.Selected()
			m.picker.Hide()
			if !ok {
				return m, nil
			}
			return m.handlePicked(entry)
		case "esc":
			m.picker.Hide()
			return m, nil
		default:
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
	}

	// The filter input captures keys while editing; the query applies live
	if m.filtering {
		switch msg.String() {
		case "enter":
			m.filtering = false
			m.filterInput.Blur()
			return m, nil
		case "esc":
			m.filtering = false
			m.filterInput.Blur()
			m.setQuery("")
			m.refreshGrid()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			m.setQuery(m.filterInput.Value())
			m.refreshGrid()
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.grid.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.grid.MoveDown()
	case key.Matches(msg, m.keys.Left):
		m.grid.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.grid.MoveRight()

	case key.Matches(msg, m.keys.Enter):
		if m.view == ViewShows {
			if show, ok := m.grid.SelectedShow(); ok {
				cmd := m.selectShow(show)
				return m, cmd
			}
		}

	case key.Matches(msg, m.keys.Back):
		if m.view == ViewEpisodes {
			m.backToShows()
		}

	case key.Matches(msg, m.keys.PrevPage):
		m.activePrevPage()
		m.refreshGrid()
	case key.Matches(msg, m.keys.NextPage):
		m.activeNextPage()
		m.refreshGrid()
	case key.Matches(msg, m.keys.FirstPage):
		m.activeSetPage(1)
		m.refreshGrid()
	case key.Matches(msg, m.keys.LastPage):
		m.activeSetPage(m.activeTotalPages())
		m.refreshGrid()

	case key.Matches(msg, m.keys.PageSize):
		size := m.cyclePageSize()
		m.refreshGrid()
		return m.setStatus(fmt.Sprintf("%d per page", size), false)

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.SetValue(m.activeQuery())
		m.filterInput.CursorEnd()
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.ShowPicker):
		m.openPicker()

	case key.Matches(msg, m.keys.OpenURL):
		return m.openSelected()

	case key.Matches(msg, m.keys.Escape):
		if m.activeQuery() != "" {
			m.setQuery("")
			m.refreshGrid()
		}
	}

	return m, nil
}

// handlePicked acts on a picker selection. Entry id zero is the "All"
// row: it widens the active view back to every record.
func (m Model) handlePicked(entry components.PickerEntry) (tea.Model, tea.Cmd) {
	if m.pickerView == ViewEpisodes {
		if entry.ID == 0 {
			m.episodeSelection = domain.AllSelection()
		} else {
			m.episodeSelection = domain.SelectOne(entry.ID)
		}
		m.applyEpisodeFilter()
		m.refreshGrid()
		return m, nil
	}

	if entry.ID == 0 {
		m.selection = domain.AllSelection()
		m.backToShows()
		return m, nil
	}
	for _, show := range m.shows {
		if show.ID == entry.ID {
			cmd := m.selectShow(show)
			return m, cmd
		}
	}
	return m.setStatus("show not found", true)
}

// selectShow starts the episode fetch for one show. The pending id is
// recorded so a response for an earlier selection cannot clobber this one.
func (m *Model) selectShow(show domain.Show) tea.Cmd {
	m.selectedShow = show
	m.selection = domain.SelectOne(show.ID)
	m.pendingShowID = show.ID
	m.loadingEpisodes = true
	m.grid.SetLoading(true)
	m.logger.Info("loading episodes", "show_id", show.ID, "show", show.Name)
	return tea.Batch(
		LoadEpisodesCmd(m.svc, show.ID),
		TickCmd(spinnerInterval),
	)
}

// backToShows returns to the catalog view. Stored queries survive the
// switch in both directions; the episode query is only cleared when a new
// episode list loads. The episode dropdown selection does not survive.
func (m *Model) backToShows() {
	m.view = ViewShows
	m.episodes = nil
	m.episodeSelection = domain.AllSelection()
	m.selection = domain.AllSelection()
	m.pendingShowID = 0
	m.loadingEpisodes = false
	m.applyShowFilter()
	m.refreshGrid()
}

// openPicker opens the dropdown for the active view: a show jumper on the
// catalog, an episode narrower on an episode list.
func (m *Model) openPicker() {
	m.pickerView = m.view

	if m.view == ViewEpisodes {
		entries := make([]components.PickerEntry, 0, len(m.episodes)+1)
		entries = append(entries, components.PickerEntry{ID: 0, Label: "All episodes"})
		for _, ep := range m.episodes {
			entries = append(entries, components.PickerEntry{
				ID:    ep.ID,
				Label: ep.Code() + " " + ep.Name,
			})
		}
		m.picker.Show("Jump to episode", entries)
		return
	}

	entries := make([]components.PickerEntry, 0, len(m.shows)+1)
	entries = append(entries, components.PickerEntry{ID: 0, Label: "All shows"})
	for _, show := range m.shows {
		entries = append(entries, components.PickerEntry{ID: show.ID, Label: show.Name})
	}
	m.picker.Show("Jump to show", entries)
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	var url, name string
	if m.view == ViewShows {
		show, ok := m.grid.SelectedShow()
		if !ok {
			return m, nil
		}
		url, name = show.URL, show.Name
	} else {
		ep, ok := m.grid.SelectedEpisode()
		if !ok {
			return m, nil
		}
		url, name = ep.URL, ep.Name
	}
	if url == "" {
		return m.setStatus("no link for "+name, true)
	}
	if err := m.opener.Open(url); err != nil {
		return m.setStatus(fmt.Sprintf("could not open browser: %v", err), true)
	}
	return m.setStatus("opened "+name, false)
}

// setQuery updates the active view's query and re-filters. The other
// view's query is untouched so it is still there on return.
func (m *Model) setQuery(query string) {
	if m.view == ViewEpisodes {
		m.episodeQuery = query
		m.applyEpisodeFilter()
		return
	}
	m.showQuery = query
	m.applyShowFilter()
}

// applyEpisodeFilter narrows the episode list by the dropdown selection
// first, then the text query.
func (m *Model) applyEpisodeFilter() {
	source := m.episodes
	if !m.episodeSelection.IsAll() {
		source = nil
		for _, ep := range m.episodes {
			if ep.ID == m.episodeSelection.ID() {
				source = append(source, ep)
				break
			}
		}
	}
	m.episodePager.SetSource(search.FilterEpisodes(source, m.episodeQuery))
	m.suggestions = nil
}

func (m *Model) applyShowFilter() {
	filtered := search.FilterShows(m.shows, m.showQuery)
	m.showPager.SetSource(filtered)

	m.suggestions = nil
	if len(filtered) == 0 && m.showQuery != "" {
		m.suggestions = search.SuggestShows(m.shows, m.showQuery, maxSuggestions)
	}
}

// refreshGrid pushes the active pager's current slice into the grid
func (m *Model) refreshGrid() {
	if m.view == ViewEpisodes {
		m.grid.SetEpisodes(m.episodePager.CurrentSlice())
		return
	}
	m.grid.SetShows(m.showPager.CurrentSlice())
}

func (m Model) setStatus(text string, isError bool) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusIsError = isError
	return m, ClearStatusCmd(statusClearDelay)
}

// Per-view pager access. The two pagers have different type parameters,
// so dispatch is by view rather than through an interface.

func (m *Model) activeNextPage() {
	if m.view == ViewEpisodes {
		m.episodePager.NextPage()
	} else {
		m.showPager.NextPage()
	}
}

func (m *Model) activePrevPage() {
	if m.view == ViewEpisodes {
		m.episodePager.PrevPage()
	} else {
		m.showPager.PrevPage()
	}
}

func (m *Model) activeSetPage(n int) {
	if m.view == ViewEpisodes {
		m.episodePager.SetPage(n)
	} else {
		m.showPager.SetPage(n)
	}
}

func (m *Model) activeTotalPages() int {
	if m.view == ViewEpisodes {
		return m.episodePager.TotalPages()
	}
	return m.showPager.TotalPages()
}

func (m *Model) cyclePageSize() int {
	if m.view == ViewEpisodes {
		size := m.episodePager.CyclePageSize()
		m.showPager.SetPageSize(size)
		return size
	}
	size := m.showPager.CyclePageSize()
	m.episodePager.SetPageSize(size)
	return size
}

func (m Model) activeQuery() string {
	if m.view == ViewEpisodes {
		return m.episodeQuery
	}
	return m.showQuery
}

// View renders the application
func (m Model) View() string {
	if m.width == 0 {
		return "starting…"
	}

	if m.picker.IsVisible() {
		return m.picker.View()
	}

	header := m.renderHeader()
	body := m.renderBody()
	footer := m.renderFooter()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body = lipgloss.NewStyle().Height(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render("showdeck")

	var crumb string
	if m.view == ViewEpisodes {
		crumb = styles.DimStyle.Render(" › ") + styles.AccentStyle.Render(m.selectedShow.Name)
	}

	var loading string
	if m.loadingCatalog || m.loadingEpisodes {
		loading = " " + components.RenderSpinner(m.spinnerFrame)
	}

	return title + crumb + loading + "\n"
}

func (m Model) renderBody() string {
	if m.loadingCatalog {
		return styles.DimStyle.Render("  loading catalog… (first run takes a while)")
	}

	grid := m.grid.View()

	if sug := components.RenderSuggestions(m.suggestions); sug != "" {
		grid = lipgloss.JoinVertical(lipgloss.Left, grid, "", sug)
	}

	return grid
}

func (m Model) renderFooter() string {
	var pageBar string
	if m.view == ViewEpisodes {
		if m.episodePager.Needed() {
			start, end := m.episodePager.Window(pagination.DefaultWindow)
			pageBar = components.RenderPageBar(
				m.episodePager.Page(), m.episodePager.TotalPages(), start, end,
				m.episodePager.PageSize(), m.episodePager.AllowedSizes())
		}
	} else if m.showPager.Needed() {
		start, end := m.showPager.Window(pagination.DefaultWindow)
		pageBar = components.RenderPageBar(
			m.showPager.Page(), m.showPager.TotalPages(), start, end,
			m.showPager.PageSize(), m.showPager.AllowedSizes())
	}

	counters := m.counters()
	if q := m.activeQuery(); q != "" {
		counters = styles.HighlightStyle.Render("/"+q) + " " + counters
	}

	var bottom string
	if m.filtering {
		bottom = m.filterInput.View()
	} else {
		bottom = components.RenderStatusBar(
			m.width, counters, m.status, m.statusIsError, m.hints())
	}

	if pageBar == "" {
		return bottom
	}
	return lipgloss.JoinVertical(lipgloss.Left, pageBar, bottom)
}

// counters reports filtered vs total and the page position
func (m Model) counters() string {
	if m.view == ViewEpisodes {
		return fmt.Sprintf("%d of %d episodes · page %d/%d",
			m.episodePager.Total(), len(m.episodes),
			m.episodePager.Page(), m.episodePager.TotalPages())
	}
	return fmt.Sprintf("%d of %d shows · page %d/%d",
		m.showPager.Total(), len(m.shows),
		m.showPager.Page(), m.showPager.TotalPages())
}

func (m Model) hints() string {
	if m.view == ViewEpisodes {
		return "/ filter · [ ] pages · s jump · b back · o open · q quit"
	}
	return "/ filter · [ ] pages · enter episodes · s jump · o open · q quit"
}
