package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskboard/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgTasksLoaded:
		m.applyLoaded(msg.Output)
		return m, nil

	case MsgTaskChanged:
		m.selectID = msg.TaskID
		return m, m.loadTasks()

	case MsgError:
		m.err = msg.Err
		m.mode = ModeNormal
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches key presses by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeQuery:
		return m.handleQueryMode(msg)
	case ModeHelp:
		if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.mode = ModeNormal
		return m, nil
	case ModeNormal:
		return m.handleNormalMode(msg)
	}
	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key clears a shown error
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.MoveUp):
		return m, m.moveSelected(-1)

	case key.Matches(msg, m.keys.MoveDown):
		return m, m.moveSelected(1)

	case key.Matches(msg, m.keys.ToggleDue):
		return m, m.toggleDue()

	case key.Matches(msg, m.keys.ToggleDone):
		return m, m.toggleDone()

	case key.Matches(msg, m.keys.ToggleDelete):
		return m, m.toggleDelete()

	case key.Matches(msg, m.keys.Sort):
		next := m.state.Sort.Next()
		return m, m.setState(domain.ViewUpdate{Sort: &next}, true)

	case key.Matches(msg, m.keys.NextView):
		next := m.state.View.Next()
		m.cursor = 0
		return m, m.setState(domain.ViewUpdate{View: &next}, false)

	case key.Matches(msg, m.keys.Query):
		m.mode = ModeQuery
		m.queryInput.SetValue(m.state.Filter.Query)
		m.queryInput.CursorEnd()
		return m, m.queryInput.Focus()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

func (m *Model) handleQueryMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.queryInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.mode = ModeNormal
		m.queryInput.Blur()
		query := strings.TrimSpace(m.queryInput.Value())
		m.cursor = 0
		return m, m.setState(domain.ViewUpdate{Filter: &domain.FilterUpdate{Query: &query}}, false)
	}

	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	return m, cmd
}

// setState applies a view update and reloads the list. With follow, the
// cursor stays on the selected task.
func (m *Model) setState(u domain.ViewUpdate, follow bool) tea.Cmd {
	if follow {
		if task, ok := m.SelectedTask(); ok {
			m.selectID = task.ID
		}
	}
	m.state = m.state.With(u)
	return m.loadTasks()
}
