package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/memview/internal/sample"
)

// ValidationResult holds the outcome of a catalog validation.
type ValidationResult struct {
	Valid   bool     `json:"valid"`
	Samples int      `json:"samples"`
	Errors  []string `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <samples.yaml>",
		Short: "Validate a samples catalog without inspecting anything",
		Long: `Schema-check a YAML samples catalog against the embedded CUE schema.
No values are built and no memory is inspected.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		msg := fmt.Sprintf("samples file not found: %s", path)
		if outputErr := formatter.Error(ErrCodeNotFound, msg, nil); outputErr != nil {
			return outputErr
		}
		return NewExitError(ExitCommandError, msg)
	}

	f, err := sample.Load(path)
	if err != nil {
		result := ValidationResult{Valid: false, Errors: []string{err.Error()}}
		if formatter.Format == "json" {
			if outputErr := formatter.Success(result); outputErr != nil {
				return outputErr
			}
		} else {
			fmt.Fprintf(formatter.Writer, "✗ catalog invalid\n  %s\n", err.Error())
		}
		return WrapExitError(ExitFailure, "invalid samples catalog", err)
	}

	result := ValidationResult{Valid: true, Samples: len(f.Samples)}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ catalog valid (%d sample(s))\n", len(f.Samples))
	return nil
}
