package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/gridcalc/internal/session"
	"github.com/vk/gridcalc/internal/sheet"
	"github.com/vk/gridcalc/internal/sheetio"
)

// EvaluateFile loads the configured sheet, evaluates it and writes the
// result to the configured output file, or to the app's output writer.
// When the sheet path is a directory, every sheet found under it is
// evaluated into the output directory.
func (a *App) EvaluateFile(ctx context.Context) error {
	ctx = a.Context(ctx)
	a.logger.Debug("EvaluateFile started.", "sheet", a.config.SheetPath, "format", a.config.OutputFormat)

	if a.config.SheetPath == "" {
		return errors.New("no sheet path given")
	}
	if info, err := os.Stat(a.config.SheetPath); err == nil && info.IsDir() {
		return a.evaluateDir(ctx)
	}

	out, err := a.evaluatePath(ctx, a.config.SheetPath)
	if err != nil {
		return err
	}

	switch {
	case a.config.OutDir != "":
		return a.writeInto(ctx, a.config.OutDir, a.config.SheetPath, out)
	case a.config.OutFile != "":
		if err := sheetio.WriteFile(ctx, a.config.OutFile, a.config.OutputFormat, out); err != nil {
			return err
		}
		a.logger.Info("Evaluated sheet written.", "path", a.config.OutFile, "format", a.config.OutputFormat)
		return nil
	}

	w, err := sheetio.WriterFor(a.config.OutputFormat)
	if err != nil {
		return err
	}
	return w.Write(ctx, a.outW, out)
}

func (a *App) evaluatePath(ctx context.Context, path string) (*sheet.Table, error) {
	tbl, err := sheetio.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	out, err := session.Evaluate(ctx, a.sessions, tbl)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate %s: %w", path, err)
	}
	return out, nil
}

// evaluateDir evaluates every sheet under the sheet directory. It keeps
// going past failing sheets and reports them together.
func (a *App) evaluateDir(ctx context.Context) error {
	if a.config.OutDir == "" {
		return errors.New("evaluating a directory requires an output directory")
	}
	paths, err := sheetio.FindSheets(a.config.SheetPath)
	if err != nil {
		return fmt.Errorf("failed to list sheets: %w", err)
	}
	if len(paths) == 0 {
		a.logger.Warn("No sheets found, evaluation not required.", "dir", a.config.SheetPath)
		return nil
	}

	var errs []error
	for _, path := range paths {
		out, err := a.evaluatePath(ctx, path)
		if err == nil {
			err = a.writeInto(ctx, a.config.OutDir, path, out)
		}
		if err != nil {
			a.logger.Error("Sheet failed.", "path", path, "error", err)
			errs = append(errs, err)
		}
	}
	a.logger.Info("Directory evaluated.", "sheets", len(paths), "failed", len(errs))
	return errors.Join(errs...)
}

// writeInto writes tbl into dir under the source file's base name, with the
// output format's extension.
func (a *App) writeInto(ctx context.Context, dir, source string, tbl *sheet.Table) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	path := filepath.Join(dir, base+"."+string(a.config.OutputFormat))
	if err := sheetio.WriteFile(ctx, path, a.config.OutputFormat, tbl); err != nil {
		return err
	}
	a.logger.Info("Evaluated sheet written.", "path", path, "format", a.config.OutputFormat)
	return nil
}
