package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(e *env) *cobra.Command {
	var opts struct {
		Description string
		Due         string
	}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new task",
		Long: `Create a new task at the end of the manual order.

Examples:
  # Create a task without a due date
  taskboard add "Write report"

  # Create a task due on a date
  taskboard add "Pay rent" --due 2026-02-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.AddTaskInput{
				Title:       args[0],
				Description: opts.Description,
			}
			if opts.Due != "" {
				due, err := parseDueDate(opts.Due)
				if err != nil {
					return err
				}
				input.DueAt = due
			}

			out, err := e.c.AddTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			e.markDirty()

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

// newEditCommand creates the edit command for changing title and description.
func newEditCommand(e *env) *cobra.Command {
	var opts struct {
		Title       string
		Description string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit task title or description",
		Long: `Edit the title or description of a task.

At least one of --title or --body must be given.

Examples:
  taskboard edit 3 --title "Write final report"
  taskboard edit 3 --body ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			var update domain.TaskUpdate
			if cmd.Flags().Changed("title") {
				update.Title = &opts.Title
			}
			if cmd.Flags().Changed("body") {
				update.Description = &opts.Description
			}

			out, err := e.c.UpdateTaskUseCase().Execute(cmd.Context(), usecase.UpdateTaskInput{
				TaskID: taskID,
				Update: update,
			})
			if err != nil {
				return err
			}
			return e.reportChange(cmd, taskID, out, "Updated")
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New description")

	return cmd
}

// newDueCommand creates the due command for adding, changing or clearing a due date.
func newDueCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "due <id> <YYYY-MM-DD|none>",
		Short: "Set or clear the due date",
		Long: `Set or clear the due date of a task.

Adding a due date moves the task to the top of the due section.
Clearing it moves the task to the bottom of the section without a due date.
Changing an existing due date keeps the task in place.

Examples:
  taskboard due 3 2026-02-01
  taskboard due 3 none`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}
			var due *time.Time
			if args[1] != "none" {
				if due, err = parseDueDate(args[1]); err != nil {
					return err
				}
			}

			out, err := e.c.SetTaskDueUseCase().Execute(cmd.Context(), usecase.SetTaskDueInput{
				TaskID: taskID,
				DueAt:  due,
			})
			if err != nil {
				return err
			}
			return e.reportChange(cmd, taskID, out, "Updated due date of")
		},
	}
	return cmd
}

// newPriorityCommand creates the priority command.
func newPriorityCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "priority <id> <high|medium|low|none>",
		Short: "Set the priority",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}
			p, err := domain.ParsePriority(args[1])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[1])
			}

			out, err := e.c.SetTaskPriorityUseCase().Execute(cmd.Context(), usecase.SetTaskPriorityInput{
				TaskID:   taskID,
				Priority: p,
			})
			if err != nil {
				return err
			}
			return e.reportChange(cmd, taskID, out, "Updated priority of")
		},
	}
	return cmd
}

// newTagCommand creates the tag command for replacing the tag set.
func newTagCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag <id> [slug...]",
		Short: "Replace the tags",
		Long: `Replace the tags of a task. With no slug, all tags are removed.

Examples:
  taskboard tag 3 work urgent
  taskboard tag 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}
			tags := make([]domain.Tag, 0, len(args)-1)
			for _, slug := range args[1:] {
				slug = strings.TrimSpace(slug)
				if slug == "" {
					continue
				}
				tags = append(tags, domain.NewTag(0, slug, slug))
			}

			out, err := e.c.SetTaskTagsUseCase().Execute(cmd.Context(), usecase.SetTaskTagsInput{
				TaskID: taskID,
				Tags:   tags,
			})
			if err != nil {
				return err
			}
			return e.reportChange(cmd, taskID, out, "Updated tags of")
		},
	}
	return cmd
}

// taskIDUseCase is the shape shared by the single-ID state commands.
type taskIDUseCase interface {
	Execute(ctx context.Context, in usecase.TaskIDInput) (*usecase.TaskChangeOutput, error)
}

// newTaskIDCommand builds a command that runs one TaskIDInput use case.
func newTaskIDCommand(e *env, use, short, verb string, uc func() taskIDUseCase) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}
			out, err := uc().Execute(cmd.Context(), usecase.TaskIDInput{TaskID: taskID})
			if err != nil {
				return err
			}
			return e.reportChange(cmd, taskID, out, verb)
		},
	}
}

// newDoneCommand creates the done command.
func newDoneCommand(e *env) *cobra.Command {
	return newTaskIDCommand(e, "done", "Mark a task as completed", "Completed",
		func() taskIDUseCase { return e.c.CompleteTaskUseCase() })
}

// newUndoneCommand creates the undone command.
func newUndoneCommand(e *env) *cobra.Command {
	return newTaskIDCommand(e, "undone", "Mark a task as not completed", "Reopened",
		func() taskIDUseCase { return e.c.UncompleteTaskUseCase() })
}

// newRmCommand creates the rm command. Deleted tasks move to the trash view.
func newRmCommand(e *env) *cobra.Command {
	return newTaskIDCommand(e, "rm", "Move a task to the trash", "Deleted",
		func() taskIDUseCase { return e.c.DeleteTaskUseCase() })
}

// newRestoreCommand creates the restore command.
func newRestoreCommand(e *env) *cobra.Command {
	return newTaskIDCommand(e, "restore", "Restore a task from the trash", "Restored",
		func() taskIDUseCase { return e.c.RestoreTaskUseCase() })
}

// reportChange prints the outcome of a single-task mutation.
// A missing task is an error at the command line.
func (e *env) reportChange(cmd *cobra.Command, taskID int, out *usecase.TaskChangeOutput, verb string) error {
	if !out.Found {
		return fmt.Errorf("task #%d: %w", taskID, domain.ErrTaskNotFound)
	}
	w := cmd.OutOrStdout()
	if !out.Changed {
		_, _ = fmt.Fprintf(w, "Task #%d unchanged\n", taskID)
		return nil
	}
	e.markDirty()
	_, _ = fmt.Fprintf(w, "%s task #%d\n", verb, taskID)
	return nil
}

// parseTaskID parses a task ID string to int.
func parseTaskID(s string) (int, error) {
	// Remove leading # if present
	s = strings.TrimPrefix(s, "#")
	var id int
	_, err := fmt.Sscanf(s, "%d", &id)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("task ID must be positive")
	}
	return id, nil
}

// parseDueDate parses a YYYY-MM-DD date as midnight local time.
func parseDueDate(s string) (*time.Time, error) {
	t, err := time.ParseInLocation(domain.DueDateLayout, s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q: expected YYYY-MM-DD", s)
	}
	return &t, nil
}
