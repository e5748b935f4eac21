package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskboard/internal/infra/seed"
	"github.com/runoshun/taskboard/internal/urlsync"
)

// newExportCommand creates the export command.
func newExportCommand(e *env) *cobra.Command {
	var opts struct {
		Format string
		Output string
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print all tasks as a seed file",
		Long: `Print every task, including archived ones, together with the
global manual order. The output can be loaded again with --file.

Examples:
  taskboard export > tasks.yaml
  taskboard export --format toml -o tasks.toml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := seed.ParseFormat(opts.Format)
			if err != nil {
				return err
			}

			out, err := e.c.ExportTasksUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if opts.Output != "" {
				f, err := os.Create(opts.Output)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}
			return seed.Encode(w, format, out.Snapshot)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", string(seed.FormatYAML), "Output format (yaml, toml)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

// newURLCommand creates the url command that prints the encoded view state.
func newURLCommand(e *env) *cobra.Command {
	var opts struct {
		Sort string
		Tab  string
	}

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the view state as a URL query string",
		Long: `Print the current view state (from [view], --view, --tab and --sort)
as a URL query string. Default values are omitted.

Examples:
  taskboard url --tab trash --sort priority
  # sort=priority&view=trash`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := e.stateWithFlags(opts.Tab, opts.Sort)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), urlsync.EncodeQuery(state))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Tab, "tab", "", "View tab (inbox, project, trash)")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "Sort (manual, createdAt, dueAt, priority)")

	return cmd
}
