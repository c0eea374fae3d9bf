package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/memview/internal/report"
	"github.com/roach88/memview/internal/sample"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Database string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <samples.yaml>",
		Short: "Inspect every value in a samples catalog",
		Long: `Load a YAML samples catalog, validate it against the schema, build
each sample value, and dump its header and backing data.

Example:
  memview run ./samples.yaml
  memview run ./samples.yaml --db ./reports.db --verbose`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "persist reports to this SQLite database")

	return cmd
}

func runCatalog(opts *RunOptions, path string, cmd *cobra.Command) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	logger := slog.New(handler)

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	logger.Debug("loading samples catalog", "path", path)
	f, err := sample.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if outputErr := formatter.Error(ErrCodeNotFound, err.Error(), nil); outputErr != nil {
				return outputErr
			}
			return WrapExitError(ExitCommandError, "samples file not found", err)
		}
		if outputErr := formatter.Error(ErrCodeInvalidCatalog, err.Error(), nil); outputErr != nil {
			return outputErr
		}
		return WrapExitError(ExitFailure, "invalid samples catalog", err)
	}
	logger.Debug("catalog loaded", "samples", len(f.Samples))

	values, err := f.BuildAll()
	if err != nil {
		if outputErr := formatter.Error(ErrCodeGeneric, err.Error(), nil); outputErr != nil {
			return outputErr
		}
		return WrapExitError(ExitFailure, "failed to build sample", err)
	}

	reports := make([]report.Report, 0, len(values))
	for _, v := range values {
		reports = append(reports, report.New(v))
	}
	logger.Debug("samples inspected", "reports", len(reports))

	return emitReports(cmd.Context(), formatter, reports, opts.Database)
}
