package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arlox/showdeck/internal/tui/styles"
)

// RenderStatusBar renders the footer line: counters on the left, a transient
// status message in the middle, key hints on the right.
func RenderStatusBar(width int, counters, status string, isError bool, hints string) string {
	left := styles.DimStyle.Render(counters)

	var middle string
	if status != "" {
		if isError {
			middle = styles.ErrorStyle.Render(status)
		} else {
			middle = styles.SuccessStyle.Render(status)
		}
	}

	right := styles.DimStyle.Render(hints)

	gap := width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if gap < 2 {
		// Drop the hints before dropping the status
		right = ""
		gap = width - lipgloss.Width(left) - lipgloss.Width(middle)
	}
	if gap < 2 {
		gap = 2
	}

	half := gap / 2
	line := left + strings.Repeat(" ", half) + middle + strings.Repeat(" ", gap-half) + right
	return styles.StatusBarStyle.Width(width).Render(line)
}

// RenderPageBar renders the numbered page buttons plus first/last markers
// and the page-size selector. winStart and winEnd are the 1-based bounds
// of the visible button window; sizes is the allowed page-size set with
// pageSize active.
func RenderPageBar(current, total, winStart, winEnd, pageSize int, sizes []int) string {
	if total <= 1 {
		return ""
	}

	parts := make([]string, 0, winEnd-winStart+4)

	if winStart > 1 {
		parts = append(parts, styles.PageButtonStyle.Render("1"))
		if winStart > 2 {
			parts = append(parts, styles.DimStyle.Render("…"))
		}
	}

	for page := winStart; page <= winEnd; page++ {
		label := fmt.Sprintf("%d", page)
		if page == current {
			parts = append(parts, styles.CurrentPageStyle.Render(label))
		} else {
			parts = append(parts, styles.PageButtonStyle.Render(label))
		}
	}

	if winEnd < total {
		if winEnd < total-1 {
			parts = append(parts, styles.DimStyle.Render("…"))
		}
		parts = append(parts, styles.PageButtonStyle.Render(fmt.Sprintf("%d", total)))
	}

	labels := make([]string, len(sizes))
	for i, size := range sizes {
		label := fmt.Sprintf("%d", size)
		if size == pageSize {
			labels[i] = styles.AccentStyle.Render(label)
		} else {
			labels[i] = styles.DimStyle.Render(label)
		}
	}
	parts = append(parts,
		styles.DimStyle.Render("  per page: ")+strings.Join(labels, styles.DimStyle.Render("/")))

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// RenderSuggestions renders the "did you mean" line shown on zero hits
func RenderSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	return styles.DimStyle.Render("did you mean: ") +
		styles.AccentStyle.Render(strings.Join(suggestions, ", "))
}
