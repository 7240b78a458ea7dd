package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/vk/gridcalc/internal/app"
	"github.com/vk/gridcalc/internal/config"
)

func newEvalCommand(g *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	var output, outFile, outDir string

	cmd := &cobra.Command{
		Use:   "eval SHEET|DIR",
		Short: "Evaluate a sheet file and print the evaluated table",
		Long: `Evaluate a sheet file (.json, .yaml, .yml, .hcl or .xlsx) and write the
evaluated table to stdout, or to --out-file.

When --out-file is given without --output, the format follows the file
extension. XLSX output always needs --out-file or --out-dir.

A directory argument evaluates every sheet found under it; results are
written into --out-dir, one file per sheet.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := config.Format(output)
			if outFile != "" && !cmd.Flags().Changed("output") {
				if detected, err := config.DetectFormat(outFile); err == nil {
					format = detected
				}
			}

			cfg, err := app.NewConfig(app.Config{
				LogLevel:     g.logLevel,
				LogFormat:    g.logFormat,
				SheetPath:    args[0],
				OutputFormat: format,
				OutFile:      outFile,
				OutDir:       outDir,
			})
			if err != nil {
				return usageError(err)
			}
			slog.Debug("CLI eval parsed.", "config", cfg)

			a := app.NewApp(stdout, stderr, cfg)
			if err := a.EvaluateFile(cmd.Context()); err != nil {
				return runtimeError(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(config.FormatJSON), "Output format. Options: 'json', 'yaml', 'hcl', 'xlsx'.")
	cmd.Flags().StringVarP(&outFile, "out-file", "f", "", "Write the evaluated sheet to this file instead of stdout.")
	cmd.Flags().StringVarP(&outDir, "out-dir", "d", "", "Write evaluated sheets into this directory, named after their sources.")
	return cmd
}
