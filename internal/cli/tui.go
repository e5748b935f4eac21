package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running `taskboard` without arguments.
func newTUICommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for managing tasks.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e.markDirty()
			return launchTUIFunc(cmd.Context(), e.c, e.state)
		},
	}
	return cmd
}

// launchTUI runs the board until the user quits.
func launchTUI(ctx context.Context, c *app.Container, state domain.ViewState) error {
	model := tui.New(c, state)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
