package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// Rendered list
	view    domain.TaskListView
	visible []domain.Task
	state   domain.ViewState

	// Components
	keys       KeyMap
	styles     Styles
	help       help.Model
	queryInput textinput.Model

	// Numeric state (smaller types last)
	mode       Mode
	width      int
	height     int
	cursor     int
	selectID   int // Task the cursor should follow on the next load (0 = keep index)
	titleWidth int
	dragDrop   bool
}

// New creates a new TUI Model showing the given view state.
func New(c *app.Container, state domain.ViewState) *Model {
	qi := textinput.New()
	qi.Placeholder = "Search title and description..."
	qi.CharLimit = 200

	titleWidth := domain.DefaultTitleWidth
	if c.AppConfig != nil && c.AppConfig.TUI.TitleWidth > 0 {
		titleWidth = c.AppConfig.TUI.TitleWidth
	}

	return &Model{
		container:  c,
		state:      domain.NewViewState(state),
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		help:       help.New(),
		queryInput: qi,
		mode:       ModeNormal,
		titleWidth: titleWidth,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// State returns the current view state.
func (m *Model) State() domain.ViewState {
	return m.state
}

// Cursor returns the index of the selected row in the flattened list.
func (m *Model) Cursor() int {
	return m.cursor
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Err returns the last error shown to the user.
func (m *Model) Err() error {
	return m.err
}

// loadTasks returns a command that rebuilds the list for the current view state.
func (m *Model) loadTasks() tea.Cmd {
	state := m.state
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{State: state})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Output: out}
	}
}

// SelectedTask returns the currently selected task.
func (m *Model) SelectedTask() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return domain.Task{}, false
	}
	return m.visible[m.cursor], true
}

// applyLoaded replaces the rendered list and repositions the cursor.
func (m *Model) applyLoaded(out *usecase.ListTasksOutput) {
	m.view = out.View
	m.visible = out.View.AllTasks()
	m.state = out.State
	m.dragDrop = out.DragDropEnabled

	if m.selectID != 0 {
		if idx := domain.FindTask(m.visible, m.selectID); idx >= 0 {
			m.cursor = idx
		}
		m.selectID = 0
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// sectionBounds returns the flattened index range [start, end) of the
// section holding the cursor.
func (m *Model) sectionBounds() (int, int) {
	due := m.view.WithDue.Count()
	if m.cursor < due {
		return 0, due
	}
	return due, len(m.visible)
}

// moveSelected moves the selected task by delta rows inside its section.
// Drop indices refer to the list before removal, so moving down by one
// drops at cursor+2.
func (m *Model) moveSelected(delta int) tea.Cmd {
	task, ok := m.SelectedTask()
	if !ok {
		return nil
	}
	if !m.dragDrop {
		return errCmd(domain.ErrDragDropDisabled)
	}
	start, end := m.sectionBounds()
	target := m.cursor + delta
	if target < start || target >= end {
		return nil
	}
	dropIndex := target
	if delta > 0 {
		dropIndex = target + 1
	}

	state := m.state
	drag := domain.NewDragContext(m.cursor, task.Section(), task)
	drop := domain.NewDropTarget(dropIndex, task.Section())
	return func() tea.Msg {
		_, err := m.container.ReorderTasksUseCase().Execute(context.Background(), usecase.ReorderTasksInput{
			State: state,
			Drag:  drag,
			Drop:  drop,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskChanged{TaskID: task.ID}
	}
}

// toggleDue adds today as the due date, or clears an existing one.
func (m *Model) toggleDue() tea.Cmd {
	task, ok := m.SelectedTask()
	if !ok {
		return nil
	}
	var due *time.Time
	if !task.HasDue() {
		now := m.container.Clock.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		due = &today
	}
	return func() tea.Msg {
		_, err := m.container.SetTaskDueUseCase().Execute(context.Background(), usecase.SetTaskDueInput{
			TaskID: task.ID,
			DueAt:  due,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskChanged{TaskID: task.ID}
	}
}

// toggleDone completes an active task or reopens a completed one.
func (m *Model) toggleDone() tea.Cmd {
	task, ok := m.SelectedTask()
	if !ok {
		return nil
	}
	return m.runTaskIDUseCase(task.ID, func() taskIDUseCase {
		if task.IsCompleted() {
			return m.container.UncompleteTaskUseCase()
		}
		return m.container.CompleteTaskUseCase()
	})
}

// toggleDelete moves a task to the trash, or restores it in the trash view.
func (m *Model) toggleDelete() tea.Cmd {
	task, ok := m.SelectedTask()
	if !ok {
		return nil
	}
	return m.runTaskIDUseCase(task.ID, func() taskIDUseCase {
		if task.IsArchived() {
			return m.container.RestoreTaskUseCase()
		}
		return m.container.DeleteTaskUseCase()
	})
}

// taskIDUseCase is the shape shared by the single-ID state use cases.
type taskIDUseCase interface {
	Execute(ctx context.Context, in usecase.TaskIDInput) (*usecase.TaskChangeOutput, error)
}

func (m *Model) runTaskIDUseCase(taskID int, pick func() taskIDUseCase) tea.Cmd {
	uc := pick()
	return func() tea.Msg {
		if _, err := uc.Execute(context.Background(), usecase.TaskIDInput{TaskID: taskID}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskChanged{TaskID: taskID}
	}
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return MsgError{Err: err}
	}
}
