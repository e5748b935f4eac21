package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

// newListCommand creates the list command.
func newListCommand(e *env) *cobra.Command {
	var opts struct {
		Sort string
		Tab  string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by section",
		Long: `Display the task list split into the due section and the
section without a due date.

The INDEX column is the position in the flattened list (due section
first) and is what 'taskboard move --to' expects.

Output format is tab-separated with columns:
  INDEX, ID, DUE, PRIORITY, DONE, TAGS, TITLE

Examples:
  # Inbox in manual order
  taskboard list

  # Archived tasks
  taskboard list --tab trash

  # Filter with a view query
  taskboard list --view "tags=work&status=active"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := e.stateWithFlags(opts.Tab, opts.Sort)
			if err != nil {
				return err
			}

			out, err := e.c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{State: state})
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out.View, e.c.AppConfig.TUI.TitleWidth)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Tab, "tab", "", "View tab (inbox, project, trash)")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "Sort (manual, createdAt, dueAt, priority)")

	return cmd
}

// stateWithFlags applies the --tab and --sort shortcuts on top of the view state.
func (e *env) stateWithFlags(tab, sort string) (domain.ViewState, error) {
	var update domain.ViewUpdate
	if tab != "" {
		v := domain.ViewType(tab)
		if !v.IsValid() {
			return domain.ViewState{}, fmt.Errorf("%w: %q", domain.ErrInvalidViewType, tab)
		}
		update.View = &v
	}
	if sort != "" {
		s := domain.SortType(sort)
		if !s.IsValid() {
			return domain.ViewState{}, fmt.Errorf("%w: %q", domain.ErrInvalidSortType, sort)
		}
		update.Sort = &s
	}
	return e.state.With(update), nil
}

// printTaskList prints both sections in TSV format.
func printTaskList(w io.Writer, view domain.TaskListView, titleWidth int) {
	if view.IsEmpty() {
		_, _ = fmt.Fprintln(w, "No tasks")
		return
	}

	index := 0
	for i, section := range []domain.TaskSection{view.WithDue, view.WithoutDue} {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "%s (%d)\n", section.Label, section.Count())

		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(tw, "INDEX\tID\tDUE\tPRIORITY\tDONE\tTAGS\tTITLE")
		for _, task := range section.Tasks() {
			_, _ = fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
				index,
				task.ID,
				formatDue(task),
				task.Priority,
				formatDone(task),
				formatTags(task.Tags),
				truncateTitle(task.Title, titleWidth),
			)
			index++
		}
		_ = tw.Flush()
	}
}

func formatDue(task domain.Task) string {
	if !task.HasDue() {
		return "-"
	}
	return task.DueAt.Format(domain.DueDateLayout)
}

func formatDone(task domain.Task) string {
	if task.IsCompleted() {
		return "x"
	}
	return "-"
}

func formatTags(tags []domain.Tag) string {
	if len(tags) == 0 {
		return "-"
	}
	slugs := make([]string, len(tags))
	for i, t := range tags {
		slugs[i] = t.Slug
	}
	return "[" + strings.Join(slugs, ",") + "]"
}

// truncateTitle shortens a title to width display cells.
// Zero or negative width disables truncation.
func truncateTitle(title string, width int) string {
	if width <= 0 {
		return title
	}
	return runewidth.Truncate(title, width, "...")
}

// newMoveCommand creates the move command for manual reordering.
func newMoveCommand(e *env) *cobra.Command {
	var opts struct {
		Section string
		To      int
	}

	cmd := &cobra.Command{
		Use:   "move <id> --to <index>",
		Short: "Move a task in the manual order",
		Long: `Move a task to an index of the flattened list shown by 'taskboard list'.

The move is resolved against the current view: tasks hidden by the tab or
the filters keep their slots in the global order. Moving requires manual sort.
With --section, the drop is treated as a move into that section.

Examples:
  # Move task 5 to the top of the list
  taskboard move 5 --to 0

  # Move task 5 into the section without a due date
  taskboard move 5 --to 3 --section withoutDue`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}
			input := usecase.MoveTaskInput{
				State:       e.state,
				TaskID:      taskID,
				TargetIndex: opts.To,
			}
			if opts.Section != "" {
				section, err := domain.ParseSectionType(opts.Section)
				if err != nil {
					return fmt.Errorf("%w: %q", err, opts.Section)
				}
				input.TargetSection = section
			}

			out, err := e.c.MoveTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			e.markDirty()

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved task #%d\nOrder: %s\n", taskID, formatOrder(out.Order))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.To, "to", 0, "Target index in the flattened list")
	cmd.Flags().StringVar(&opts.Section, "section", "", "Target section (withDue, withoutDue)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func formatOrder(order []int) string {
	parts := make([]string, len(order))
	for i, id := range order {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, " ")
}
