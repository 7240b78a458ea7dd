package sheetio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/gridcalc/internal/config"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/fsutil"
	"github.com/vk/gridcalc/internal/hcl"
	"github.com/vk/gridcalc/internal/sheet"
)

// LoaderFor returns the loader for a format. The name is used in
// diagnostics by formats that report positions.
func LoaderFor(format config.Format, name string) (config.Loader, error) {
	switch format {
	case config.FormatJSON:
		return JSON{}, nil
	case config.FormatYAML:
		return YAML{}, nil
	case config.FormatHCL:
		return hcl.NewLoader(name), nil
	case config.FormatXLSX:
		return XLSX{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
}

// WriterFor returns the writer for a format.
func WriterFor(format config.Format) (config.Writer, error) {
	switch format {
	case config.FormatJSON:
		return JSON{}, nil
	case config.FormatYAML:
		return YAML{}, nil
	case config.FormatHCL:
		return hcl.NewWriter(), nil
	case config.FormatXLSX:
		return XLSX{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
}

// ReadFile loads the sheet at path, choosing the format by extension.
func ReadFile(ctx context.Context, path string) (*sheet.Table, error) {
	logger := ctxlog.FromContext(ctx)

	format, err := config.DetectFormat(path)
	if err != nil {
		return nil, err
	}
	loader, err := LoaderFor(format, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet: %w", err)
	}
	defer f.Close()

	logger.Debug("Loading sheet.", "path", path, "format", format)
	tbl, err := loader.Load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load sheet %s: %w", path, err)
	}
	return tbl, nil
}

// WriteFile saves tbl to path in the given format. The file is created or
// truncated.
func WriteFile(ctx context.Context, path string, format config.Format, tbl *sheet.Table) (err error) {
	writer, err := WriterFor(format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	ctxlog.FromContext(ctx).Debug("Writing sheet.", "path", path, "format", format)
	return writer.Write(ctx, f, tbl)
}

// FindSheets returns every sheet file under root, sorted by path.
func FindSheets(root string) ([]string, error) {
	return fsutil.FindFilesByExtension(root, "json", "yaml", "yml", "hcl", "xlsx")
}
