// Package cli provides the command-line interface for taskboard.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/seed"
	"github.com/runoshun/taskboard/internal/urlsync"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
	groupView  = "view"
)

// errNoSeedFile is returned by --save when the store was not loaded from a file.
var errNoSeedFile = errors.New("--save requires --file or [seed].file")

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// newContainerFunc builds the container from the persistent flags, allowing it to be mocked in tests.
var newContainerFunc = app.New

// env carries the container and the view state shared by all subcommands.
// The container is built in PersistentPreRunE once the flags are parsed.
// Fields are ordered to minimize memory padding.
type env struct {
	c       *app.Container
	state   domain.ViewState
	workDir string
	file    string
	config  string
	view    string
	save    bool
	dirty   bool
	owned   bool
}

// markDirty records that the command changed the store.
func (e *env) markDirty() {
	e.dirty = true
}

// NewRootCommand creates the root command for taskboard.
// A nil container is built from --file and --config before any subcommand runs;
// a non-nil one is used as is.
func NewRootCommand(c *app.Container, workDir, version string) *cobra.Command {
	e := &env{c: c, workDir: workDir}

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Sectioned task list with manual ordering",
		Long: `taskboard manages a task list split into two sections:
tasks with a due date and tasks without one.

Tasks are loaded from a YAML or TOML seed file (--file or [seed].file),
changed in memory and printed. Use --save to write the result back.

The --view flag takes a URL query string that selects the tab, the sort
and the filters, for example:
  taskboard list --view "view=inbox&sort=manual&tags=work&due=today"`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return e.finish()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Default: launch the TUI
			e.markDirty()
			return launchTUIFunc(cmd.Context(), e.c, e.state)
		},
	}

	root.PersistentFlags().StringVarP(&e.file, "file", "f", "", "Task seed file (YAML or TOML)")
	root.PersistentFlags().StringVar(&e.config, "config", "", "Project config file (default: ./.taskboard.toml)")
	root.PersistentFlags().StringVar(&e.view, "view", "", "View state as a URL query string")
	root.PersistentFlags().BoolVar(&e.save, "save", false, "Write the tasks back to the seed file")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupView, Title: "Views:"},
	)

	// Setup commands
	configCmd := newConfigCommand(e)
	configCmd.GroupID = groupSetup

	// Task management commands
	addCmd := newAddCommand(e)
	addCmd.GroupID = groupTask

	editCmd := newEditCommand(e)
	editCmd.GroupID = groupTask

	moveCmd := newMoveCommand(e)
	moveCmd.GroupID = groupTask

	dueCmd := newDueCommand(e)
	dueCmd.GroupID = groupTask

	doneCmd := newDoneCommand(e)
	doneCmd.GroupID = groupTask

	undoneCmd := newUndoneCommand(e)
	undoneCmd.GroupID = groupTask

	rmCmd := newRmCommand(e)
	rmCmd.GroupID = groupTask

	restoreCmd := newRestoreCommand(e)
	restoreCmd.GroupID = groupTask

	priorityCmd := newPriorityCommand(e)
	priorityCmd.GroupID = groupTask

	tagCmd := newTagCommand(e)
	tagCmd.GroupID = groupTask

	// View commands
	listCmd := newListCommand(e)
	listCmd.GroupID = groupView

	exportCmd := newExportCommand(e)
	exportCmd.GroupID = groupView

	urlCmd := newURLCommand(e)
	urlCmd.GroupID = groupView

	tuiCmd := newTUICommand(e)
	tuiCmd.GroupID = groupView

	root.AddCommand(
		configCmd,
		addCmd,
		editCmd,
		moveCmd,
		dueCmd,
		doneCmd,
		undoneCmd,
		rmCmd,
		restoreCmd,
		priorityCmd,
		tagCmd,
		listCmd,
		exportCmd,
		urlCmd,
		tuiCmd,
	)

	return root
}

// setup builds the container when needed, prints config warnings and
// resolves the view state from [view] and --view.
func (e *env) setup(cmd *cobra.Command) error {
	if e.c == nil {
		c, err := newContainerFunc(app.Config{
			WorkDir:    e.workDir,
			ConfigPath: e.config,
			SeedPath:   e.file,
		})
		if err != nil {
			return err
		}
		e.c = c
		e.owned = true
	}

	for _, w := range e.c.AppConfig.Warnings {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}

	e.state = e.c.InitialViewState()
	if e.view != "" {
		state, err := urlsync.Overlay(e.state, e.view)
		if err != nil {
			return fmt.Errorf("invalid --view: %w", err)
		}
		e.state = state
	}
	return nil
}

// finish writes the store back with --save and closes an owned container.
func (e *env) finish() error {
	var err error
	if e.save && e.dirty {
		err = e.writeSeed()
	}
	if e.owned {
		err = errors.Join(err, e.c.Close())
	}
	return err
}

func (e *env) writeSeed() error {
	path := e.c.SeedFile()
	if path == "" {
		return errNoSeedFile
	}
	format, err := seed.FormatFromPath(path)
	if err != nil {
		return err
	}
	snap, err := e.c.Tasks.Snapshot()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write seed file: %w", err)
	}
	if err := seed.Encode(f, format, snap); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
