package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskboard/internal/urlsync"
)

// viewStatusLine renders the sort type, the drag state and the view state
// encoded as a URL query.
func (m *Model) viewStatusLine() string {
	left := m.styles.FooterKey.Render("sort") + " " + m.state.Sort.Display()
	if !m.dragDrop {
		left += "  " + lipgloss.NewStyle().Foreground(Colors.Warning).Render("reorder off")
	}

	query := urlsync.EncodeQuery(m.state)
	if query == "" {
		query = "(default view)"
	} else {
		query = "?" + query
	}
	right := m.styles.Footer.Render(query)

	width := max(m.width-6, 40)
	spacing := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", spacing) + right
}
