package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/urfave/cli/v3"

	"repertorio/internal/shared"
	"repertorio/internal/tasks"
)

// Extract renders a report document, extracts its works, and optionally
// persists them.
func (r *Runner) Extract(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: report path", shared.ErrMissingArgument)
	}

	persist := cmd.Bool("save")
	quiet := cmd.Bool("quiet")

	engine, err := r.engine(persist)
	if err != nil {
		return err
	}

	progress := make(chan tasks.ProgressUpdate, 50)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for update := range progress {
			if quiet {
				continue
			}
			r.logger.Info(update.Message, "phase", update.Phase.String())
		}
	}()

	result, err := engine.Run(ctx, progress, path, persist)
	close(progress)
	wg.Wait()
	if err != nil {
		return err
	}

	if output := cmd.String("output"); output != "" {
		data, err := shared.MarshalJSON(result.Works, cmd.Bool("pretty"))
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		r.writePlain("✓ Extracted works written to %s\n", output)
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(result.Works, cmd.Bool("pretty"))
	}

	r.writePlain("Extracted %d works (%d right holders) from %s\n", result.WorkCount, result.RightHolderCount, result.Path)
	if persist {
		r.writePlain("Saved %d works to %s\n", result.Persisted, r.config.Database.Path)
	}

	return nil
}
