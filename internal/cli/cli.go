package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const (
	exitRuntime = 1
	exitUsage   = 2
)

func usageError(err error) error {
	return &ExitError{Code: exitUsage, Message: err.Error()}
}

func runtimeError(err error) error {
	return &ExitError{Code: exitRuntime, Message: err.Error()}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
}

// Run executes the gridcalc command line. Data goes to stdout, logs and
// help errors to stderr. Every returned error is an *ExitError.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCommand(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything cobra rejects before a command runs is a usage problem.
	return usageError(err)
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "gridcalc",
		Short: "Evaluate spreadsheet formulas",
		Long: `gridcalc evaluates the formula cells of a spreadsheet table.

A table is a grid of cells keyed like A1 or BC12. Cells hold either a literal
value or a formula starting with "=". gridcalc resolves references between
cells, evaluates formulas in dependency order and reports per-cell errors
(#REF!, #DIV/0!, #VALUE!, #NAME!, #ERROR!).

Tables can be read from JSON, YAML, HCL or XLSX files, or posted to the HTTP
API started by "gridcalc serve".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "json", "Log output format. Options: 'text' or 'json'.")

	root.AddCommand(
		newEvalCommand(g, stdout, stderr),
		newServeCommand(g, stderr),
	)
	return root
}

// exactArgs wraps cobra.ExactArgs so arity problems surface as usage errors.
func exactArgs(n int) cobra.PositionalArgs {
	check := cobra.ExactArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}
