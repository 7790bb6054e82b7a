package tasks

import (
	"fmt"

	"repertorio/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	RenderDocument Phase = iota
	ExtractWorks
	PersistWorks
)

func (p Phase) String() string {
	switch p {
	case RenderDocument:
		return "render_document"
	case ExtractWorks:
		return "extract_works"
	case PersistWorks:
		return "persist_works"
	default:
		return ""
	}
}

func renderingUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   RenderDocument,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Rendering %s...", path),
	}
}

func renderedUpdate(lineCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   RenderDocument,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Rendered %d lines", lineCount),
	}
}

func extractingUpdate(lineCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExtractWorks,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Extracting works from %d lines...", lineCount),
	}
}

func extractedUpdate(works []*models.Work) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExtractWorks,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Extracted %d works", len(works)),
		Data:    works,
	}
}

func persistingUpdate(step, total int, work *models.Work) ProgressUpdate {
	title := work.Title
	if title == "" {
		title = work.RegistryWorkID
	}
	return ProgressUpdate{
		Phase:   PersistWorks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Saving: %s...", step, total, title),
	}
}

func persistedUpdate(total, holderCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PersistWorks,
		Step:    total,
		Total:   total,
		Message: fmt.Sprintf("Saved %d works (%d right holders)", total, holderCount),
	}
}
