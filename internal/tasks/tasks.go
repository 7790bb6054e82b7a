package tasks

import (
	"context"
	"fmt"

	"repertorio/internal/models"
	"repertorio/internal/render"
	"repertorio/internal/report"
	"repertorio/internal/repositories"
	"repertorio/internal/shared"
)

// ExtractRunResult contains all data from a full extraction run.
type ExtractRunResult struct {
	Path             string         // Source document path
	LineCount        int            // Rendered text lines
	WorkCount        int            // Works extracted
	RightHolderCount int            // Right holders extracted across all works
	Works            []*models.Work // Extracted works in source order
	Persisted        int            // Works written to the database (0 when not persisting)
}

// ExtractEngine defines the report extraction pipeline.
type ExtractEngine interface {
	// Run renders the document at path, extracts works and right holders
	// from it, and persists them when persist is true.
	Run(ctx context.Context, progress chan<- ProgressUpdate, path string, persist bool) (*ExtractRunResult, error)
}

// RenderFunc turns a source document into text lines.
type RenderFunc func(path string) ([]string, error)

// ReportEngine implements ExtractEngine.
// Contains dependencies on the document renderer and the persistence layer.
type ReportEngine struct {
	render       RenderFunc
	works        *repositories.WorkRepository
	holders      *repositories.RightHolderRepository
	sourceSystem string
}

// NewReportEngine creates a new ReportEngine. The repositories may be nil for
// extract-only runs; rendering defaults to render.File.
func NewReportEngine(works *repositories.WorkRepository, holders *repositories.RightHolderRepository) *ReportEngine {
	return &ReportEngine{
		render:  render.File,
		works:   works,
		holders: holders,
	}
}

// SetRender overrides the document renderer.
func (e *ReportEngine) SetRender(fn RenderFunc) {
	e.render = fn
}

// SetSourceSystem overrides the source system name stamped on extracted
// provenance references.
func (e *ReportEngine) SetSourceSystem(name string) {
	e.sourceSystem = name
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *ReportEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Run performs a full render, extract, persist pass over one document.
//
// A format error from the extraction stage aborts the run with no works
// persisted; the source document is treated as all-or-nothing.
func (e *ReportEngine) Run(ctx context.Context, progress chan<- ProgressUpdate, path string, persist bool) (*ExtractRunResult, error) {
	if e.render == nil {
		return nil, fmt.Errorf("%w: no renderer configured", shared.ErrInvalidInput)
	}

	result := &ExtractRunResult{Path: path}

	e.sendProgress(progress, renderingUpdate(path))
	lines, err := e.render(path)
	if err != nil {
		return nil, err
	}
	result.LineCount = len(lines)
	e.sendProgress(progress, renderedUpdate(len(lines)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.sendProgress(progress, extractingUpdate(len(lines)))
	works, err := report.Extract(lines)
	if err != nil {
		return nil, err
	}

	result.Works = works
	result.WorkCount = len(works)
	for _, work := range works {
		result.RightHolderCount += len(work.RightHolders)
	}

	if e.sourceSystem != "" {
		restampSourceSystem(works, e.sourceSystem)
	}

	e.sendProgress(progress, extractedUpdate(works))

	if !persist {
		return result, nil
	}

	if e.works == nil || e.holders == nil {
		return nil, fmt.Errorf("%w: repositories not initialized", shared.ErrDatabaseUnavailable)
	}

	total := len(works)
	holderCount := 0
	for i, work := range works {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		e.sendProgress(progress, persistingUpdate(i+1, total, work))

		persisted := models.NewPersistedWork(0, *work)
		if err := e.works.Create(persisted); err != nil {
			return result, fmt.Errorf("failed to save work %s: %w", work.RegistryWorkID, err)
		}

		for _, holder := range work.RightHolders {
			entity := models.NewPersistedRightHolder(0, persisted.ID(), holder)
			if err := e.holders.Create(entity); err != nil {
				return result, fmt.Errorf("failed to save right holder %s: %w", holder.Name, err)
			}
			holderCount++
		}

		result.Persisted++
	}

	e.sendProgress(progress, persistedUpdate(total, holderCount))
	return result, nil
}

// restampSourceSystem rewrites the provenance system name on every extracted
// reference, preserving record ids.
func restampSourceSystem(works []*models.Work, name string) {
	for _, work := range works {
		for i := range work.RightHolders {
			refs := work.RightHolders[i].SourceReferences
			for j := range refs {
				refs[j].SourceSystemName = name
			}
		}
	}
}
