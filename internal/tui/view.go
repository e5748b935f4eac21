package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/taskboard/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeQuery:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the sectioned task list.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if m.mode == ModeQuery {
		b.WriteString(m.styles.InputPrompt.Render("Query: "))
		b.WriteString(m.queryInput.View())
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(m.styles.Footer.Render("No tasks"))
		b.WriteString("\n")
	} else {
		index := 0
		for _, section := range []domain.TaskSection{m.view.WithDue, m.view.WithoutDue} {
			b.WriteString(m.viewSection(section, index))
			index += section.Count()
		}
	}

	b.WriteString("\n")
	b.WriteString(m.viewStatusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// viewHeader renders the view tabs and the task count.
func (m *Model) viewHeader() string {
	tabs := make([]string, 0, len(domain.AllViewTypes()))
	for _, v := range domain.AllViewTypes() {
		label := strings.ToUpper(string(v[:1])) + string(v[1:])
		if v == m.state.View {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabNormal.Render(label))
		}
	}
	left := m.styles.HeaderText.Render("Tasks") + "  " + strings.Join(tabs, " ")

	right := lipgloss.NewStyle().Foreground(Colors.Muted).
		Render(fmt.Sprintf("%d tasks", m.view.TotalTaskCount()))

	headerWidth := max(m.width-6, 40)
	spacing := max(headerWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return m.styles.Header.Render(left + strings.Repeat(" ", spacing) + right)
}

// viewSection renders a section header followed by its rows.
// offset is the flattened index of the first row.
func (m *Model) viewSection(section domain.TaskSection, offset int) string {
	var b strings.Builder

	label := fmt.Sprintf(" %s (%d) ", section.Label, section.Count())
	lineWidth := max(m.width-6-lipgloss.Width(label)-2, 4)
	b.WriteString(m.styles.SectionLine.Render("──"))
	b.WriteString(m.styles.SectionLabel.Render(label))
	b.WriteString(m.styles.SectionLine.Render(strings.Repeat("─", lineWidth)))
	b.WriteString("\n")

	if section.IsEmpty() {
		b.WriteString(m.styles.SectionLabel.Render("  (empty)"))
		b.WriteString("\n")
	}
	for i, task := range section.Tasks() {
		b.WriteString(m.viewTaskRow(task, offset+i == m.cursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}

// viewTaskRow renders one task.
func (m *Model) viewTaskRow(task domain.Task, selected bool) string {
	cursor := m.styles.CursorNormal.Render("  ")
	idStyle := m.styles.TaskID
	titleStyle := m.styles.TaskTitle
	if selected {
		cursor = m.styles.CursorSelected.Render("> ")
		idStyle = m.styles.TaskIDSelected
		titleStyle = m.styles.TaskTitleSelected
	}
	if task.IsCompleted() {
		titleStyle = m.styles.TaskDone
	}

	parts := []string{
		cursor + idStyle.Render(fmt.Sprintf("#%d", task.ID)),
		m.styles.PriorityStyle(task.Priority).Render(PriorityBadge(task.Priority)),
		titleStyle.Render(runewidth.Truncate(task.Title, m.titleWidth, "...")),
	}
	if task.HasDue() {
		parts = append(parts, m.dueStyle(*task.DueAt).Render(task.DueAt.Format(domain.DueDateLayout)))
	}
	if len(task.Tags) > 0 {
		slugs := make([]string, len(task.Tags))
		for i, t := range task.Tags {
			slugs[i] = "#" + t.Slug
		}
		parts = append(parts, m.styles.TaskTags.Render(strings.Join(slugs, " ")))
	}
	return strings.Join(parts, " ")
}

// dueStyle highlights due dates before today.
func (m *Model) dueStyle(due time.Time) lipgloss.Style {
	now := m.container.Clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return m.styles.TaskOverdue
	}
	return m.styles.TaskDue
}

// viewHelp renders the full key help.
func (m *Model) viewHelp() string {
	full := m.help
	full.ShowAll = true
	return m.styles.Help.Render(m.styles.HeaderText.Render("Keys") + "\n\n" + full.View(m.keys) +
		"\n\n" + m.styles.Footer.Render("press any key to close"))
}
