package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/arlox/showdeck/internal/tui/styles"
)

const pickerMaxVisible = 12

// PickerEntry is one selectable row in the picker overlay
type PickerEntry struct {
	ID    int64
	Label string
}

// Picker is a modal overlay with a text input and a fuzzy-filtered list.
// The caller decides what the selected entry means.
type Picker struct {
	input textinput.Model

	title       string
	entries     []PickerEntry
	lowerLabels []string

	filtered []int // indexes into entries
	cursor   int
	offset   int

	visible bool
	width   int
	height  int
}

// NewPicker creates a hidden picker
func NewPicker() Picker {
	ti := textinput.New()
	ti.Placeholder = "type to filter…"
	ti.Prompt = "> "
	ti.CharLimit = 80
	return Picker{input: ti}
}

// Show opens the picker over the given entries
func (p *Picker) Show(title string, entries []PickerEntry) {
	p.title = title
	p.entries = entries
	p.lowerLabels = make([]string, len(entries))
	for i, e := range entries {
		p.lowerLabels[i] = strings.ToLower(e.Label)
	}
	p.input.SetValue("")
	p.input.Focus()
	p.visible = true
	p.refilter()
}

// Hide closes the picker
func (p *Picker) Hide() {
	p.visible = false
	p.input.Blur()
}

// IsVisible reports whether the picker is open
func (p Picker) IsVisible() bool {
	return p.visible
}

// SetSize updates the overlay dimensions
func (p *Picker) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Selected returns the entry under the cursor
func (p Picker) Selected() (PickerEntry, bool) {
	if !p.visible || p.cursor >= len(p.filtered) {
		return PickerEntry{}, false
	}
	return p.entries[p.filtered[p.cursor]], true
}

// Update handles key input while the picker is open
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch keyMsg.String() {
	case "up", "ctrl+p":
		if p.cursor > 0 {
			p.cursor--
		}
		p.clampOffset()
		return p, nil
	case "down", "ctrl+n":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
		}
		p.clampOffset()
		return p, nil
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.refilter()
	}
	return p, cmd
}

func (p *Picker) refilter() {
	query := strings.TrimSpace(strings.ToLower(p.input.Value()))
	p.cursor = 0
	p.offset = 0

	if query == "" {
		p.filtered = make([]int, len(p.entries))
		for i := range p.entries {
			p.filtered[i] = i
		}
		return
	}

	matches := fuzzy.Find(query, p.lowerLabels)
	p.filtered = make([]int, 0, len(matches))
	for _, match := range matches {
		p.filtered = append(p.filtered, match.Index)
	}
}

func (p *Picker) clampOffset() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+pickerMaxVisible {
		p.offset = p.cursor - pickerMaxVisible + 1
	}
}

// View renders the picker overlay centered in the window
func (p Picker) View() string {
	if !p.visible {
		return ""
	}

	innerWidth := p.width / 2
	if innerWidth < 40 {
		innerWidth = 40
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(p.title))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	if len(p.filtered) == 0 {
		b.WriteString(styles.DimStyle.Render("no matches"))
	}

	end := p.offset + pickerMaxVisible
	if end > len(p.filtered) {
		end = len(p.filtered)
	}
	for row := p.offset; row < end; row++ {
		entry := p.entries[p.filtered[row]]
		label := styles.Truncate(entry.Label, innerWidth-4)
		if row == p.cursor {
			b.WriteString(styles.SelectedItemStyle.Render("▸ " + label))
		} else {
			b.WriteString(styles.NormalItemStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}

	if len(p.filtered) > pickerMaxVisible {
		b.WriteString(styles.DimStyle.Render(
			fmt.Sprintf("%d of %d", p.cursor+1, len(p.filtered))))
	}

	box := styles.OverlayBorder.Width(innerWidth).Render(b.String())
	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, box)
}
