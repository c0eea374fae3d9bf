package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/memview/internal/report"
	"github.com/roach88/memview/internal/sample"
	"github.com/roach88/memview/internal/store"
)

// InspectOptions holds flags for the inspect command.
type InspectOptions struct {
	*RootOptions
	Database string
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InspectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect the built-in demo values",
		Long: `Inspect a fixed set of demo values: a string, a byte slice with
spare capacity, an int32 slice, a padded struct, and a UUID. For each
value the header words are dumped, along with any backing data reached
through them.

Example:
  memview inspect
  memview inspect --format json
  memview inspect --db ./reports.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "persist reports to this SQLite database")

	return cmd
}

// builtinSamples is the fixed demo catalog behind `memview inspect`.
func builtinSamples() []sample.Sample {
	return []sample.Sample{
		{Name: "greeting", Kind: sample.KindString, Text: "Hello, world!"},
		{Name: "buf", Kind: sample.KindBytes, Bytes: []int{1, 2, 3, 4}, Capacity: 8},
		{Name: "primes", Kind: sample.KindInts, Ints: []int32{2, 3, 5, 7}},
		{Name: "envelope", Kind: sample.KindStruct, Tag: 7, Count: 4},
		{Name: "namespace-dns", Kind: sample.KindUUID, UUID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
	}
}

func runInspect(opts *InspectOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	samples := builtinSamples()
	reports := make([]report.Report, 0, len(samples))
	for i := range samples {
		v, err := samples[i].Build()
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to build demo value", err)
		}
		reports = append(reports, report.New(v))
	}

	return emitReports(cmd.Context(), formatter, reports, opts.Database)
}

// emitReports optionally persists the reports, then renders them in
// the configured format.
func emitReports(ctx context.Context, formatter *OutputFormatter, reports []report.Report, dbPath string) error {
	if dbPath != "" {
		if ctx == nil {
			ctx = context.Background()
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open report database", err)
		}
		defer st.Close()

		for _, r := range reports {
			if err := st.WriteReport(ctx, r); err != nil {
				return WrapExitError(ExitCommandError, "failed to persist report", err)
			}
		}
		formatter.VerboseLog("persisted %d report(s) to %s", len(reports), dbPath)
	}

	if formatter.Format == "json" {
		return formatter.Success(reports)
	}
	return formatter.Success(renderReportsText(reports))
}

func renderReportsText(reports []report.Report) string {
	var sb strings.Builder
	for i, r := range reports {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s (%s)\n", r.Target, r.Kind)
		fmt.Fprintf(&sb, "  header: %d bytes\n", r.HeaderLen)
		sb.WriteString(indent(r.HeaderDump, "    "))
		if r.DataDump != "" {
			fmt.Fprintf(&sb, "  data: %d bytes\n", r.DataLen)
			sb.WriteString(indent(r.DataDump, "    "))
		}
		if r.AllocDump != "" {
			fmt.Fprintf(&sb, "  allocated: %d bytes\n", r.AllocLen)
			sb.WriteString(indent(r.AllocDump, "    "))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n") + "\n"
}
