package tui

import "github.com/runoshun/taskboard/internal/usecase"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the task list is rebuilt from the store.
type MsgTasksLoaded struct {
	Output *usecase.ListTasksOutput
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskChanged is sent after a mutation of one task.
// The cursor follows TaskID on the next load.
type MsgTaskChanged struct {
	TaskID int
}

func (MsgTaskChanged) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
