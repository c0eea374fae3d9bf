package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/memview/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List persisted inspection reports",
		Long: `List reports previously persisted with inspect --db or run --db,
newest first.

Example:
  memview history --db ./reports.db
  memview history --db ./reports.db --limit 10 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the report database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of reports to list (0 = all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open report database", err)
	}
	defer st.Close()

	reports, err := st.ListReports(cmd.Context(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list reports", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(reports)
	}

	if len(reports) == 0 {
		return formatter.Success("no reports recorded")
	}

	var sb strings.Builder
	for _, r := range reports {
		fmt.Fprintf(&sb, "%s  %s  %-16s %-8s %d byte(s)\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.Target, r.Kind, r.DataLen)
	}
	return formatter.Success(strings.TrimRight(sb.String(), "\n"))
}
