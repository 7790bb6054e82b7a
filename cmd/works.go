package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"repertorio/internal/formatter"
	"repertorio/internal/models"
	"repertorio/internal/shared"
)

// WorksList lists stored works, optionally filtered by status.
func (r *Runner) WorksList(ctx context.Context, cmd *cli.Command) error {
	works, _, err := r.repos()
	if err != nil {
		return err
	}

	criteria := map[string]any{}
	if status := cmd.String("status"); status != "" {
		criteria["status"] = status
	}

	stored, err := works.List(criteria)
	if err != nil {
		return fmt.Errorf("failed to list works: %w", err)
	}

	if cmd.Bool("json") {
		dtos := make([]models.Work, len(stored))
		for i, work := range stored {
			dtos[i] = work.Work()
		}
		return r.writeJSON(dtos, cmd.Bool("pretty"))
	}

	if len(stored) == 0 {
		r.writePlain("No works stored. Run 'repertorio extract --save <report>' first.\n")
		return nil
	}

	for _, work := range stored {
		code := work.ExternalCode()
		if code == "" {
			code = "-"
		}
		r.writePlain("%s  %-12s %s\n", work.ID(), code, work.Title())
	}
	r.writePlainln("%d works", len(stored))

	return nil
}

// WorksShow prints one stored work with its right holders.
func (r *Runner) WorksShow(ctx context.Context, cmd *cli.Command) error {
	work, err := r.loadWork(cmd.StringArg("id"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(work, cmd.Bool("pretty"))
	}

	data, err := formatter.ExportToText(work)
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}

// WorksExport writes one stored work to the requested format.
func (r *Runner) WorksExport(ctx context.Context, cmd *cli.Command) error {
	work, err := r.loadWork(cmd.StringArg("id"))
	if err != nil {
		return err
	}

	format := cmd.String("format")
	if format == "" {
		format = r.config.Export.Format
	}
	output := cmd.String("output")
	if output == "" && r.config.Export.OutputDir != "" {
		output = filepath.Join(r.config.Export.OutputDir, work.RegistryWorkID)
		switch format {
		case "markdown", "md":
			output += ".md"
		case "text", "txt":
			output += ".txt"
		}
	}

	switch format {
	case "csv":
		result, err := formatter.WriteCSVExport(work, trimExportExt(output))
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported to %s and %s\n", result.RightHoldersFile, result.WorkFile)
	case "markdown", "md":
		written, err := formatter.WriteMarkdownExport(work, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported to %s\n", written)
	case "text", "txt":
		written, err := formatter.WriteTextExport(work, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported to %s\n", written)
	case "json":
		return r.writeJSON(work, true)
	default:
		return fmt.Errorf("%w: format %q", shared.ErrUnsupportedFormat, format)
	}

	return nil
}

// loadWork fetches a stored work and its right holders, by entity id first
// and registry work id as a fallback.
func (r *Runner) loadWork(id string) (models.Work, error) {
	if id == "" {
		return models.Work{}, fmt.Errorf("%w: work id", shared.ErrMissingArgument)
	}

	works, holders, err := r.repos()
	if err != nil {
		return models.Work{}, err
	}

	stored, err := works.Get(id)
	if err != nil {
		if stored, err = works.GetByRegistryID(id); err != nil {
			return models.Work{}, err
		}
	}

	storedHolders, err := holders.ListByWork(stored.ID())
	if err != nil {
		return models.Work{}, fmt.Errorf("failed to load right holders: %w", err)
	}

	work := stored.Work()
	work.RightHolders = make([]models.RightHolder, len(storedHolders))
	for i, holder := range storedHolders {
		work.RightHolders[i] = holder.RightHolder()
	}

	return work, nil
}

// trimExportExt strips a format extension so CSV export can derive its two
// filenames from a single base.
func trimExportExt(path string) string {
	if ext := filepath.Ext(path); ext == ".csv" || ext == ".md" || ext == ".txt" {
		return path[:len(path)-len(ext)]
	}
	return path
}
