package report

import "repertorio/internal/models"

// Extract runs the full pipeline over raw report lines: page furniture is
// discarded, work headers open new works, and every right-holder row is
// attached to the most recently opened work.
//
// The pass is deterministic and side-effect free; running it twice over the
// same lines yields structurally identical output. The first format error
// aborts the whole document.
func Extract(lines []string) ([]*models.Work, error) {
	content := make([]string, 0, len(lines))
	for _, line := range lines {
		if IsContentLine(line) {
			content = append(content, line)
		}
	}
	return ExtractContent(content)
}

// ExtractContent aggregates pre-classified content lines into works. A
// right-holder line before the first work header has nothing to attach to
// and fails with [ErrStructural].
func ExtractContent(lines []string) ([]*models.Work, error) {
	var works []*models.Work

	for _, line := range lines {
		if IsWorkLine(line) {
			works = append(works, ParseWork(line))
			continue
		}

		if len(works) == 0 {
			return nil, structuralError(line)
		}

		holder, err := ParseRightHolder(line)
		if err != nil {
			return nil, err
		}

		current := works[len(works)-1]
		current.RightHolders = append(current.RightHolders, *holder)
	}

	return works, nil
}
