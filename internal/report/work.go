package report

import (
	"regexp"
	"strings"

	"repertorio/internal/models"
)

var (
	// rowPrefixPattern peels the leading row-number column off a content
	// line. The gap after it can be narrower than a full column gap, so it
	// is split off before any column-width heuristic runs.
	rowPrefixPattern = regexp.MustCompile(`^(\d+)\s+(.*)$`)

	// workColumnPattern splits work headers on runs of 4+ whitespace. Work
	// columns are spaced more generously than right-holder sub-columns;
	// the wider threshold keeps multi-word titles in one token.
	workColumnPattern = regexp.MustCompile(`\s{4,}`)
)

// ParseWork converts a work header line into a Work record.
//
// Expected columns after the row number: external code (or "-"), title,
// status, created date. Columns beyond those are reserved and ignored;
// absent trailing columns yield empty fields rather than failing, since the
// report sometimes leaves them blank.
func ParseWork(line string) *models.Work {
	trimmed := strings.TrimSpace(line)

	m := rowPrefixPattern.FindStringSubmatch(trimmed)
	if m == nil {
		// A bare row number: everything else is blank.
		return &models.Work{RegistryWorkID: trimmed}
	}

	tokens := workColumnPattern.Split(m[2], -1)
	column := func(i int) string {
		if i < len(tokens) {
			return strings.TrimSpace(tokens[i])
		}
		return ""
	}

	return &models.Work{
		RegistryWorkID: m[1],
		ExternalCode:   column(0),
		Title:          column(1),
		Status:         column(2),
		CreatedAt:      column(3),
	}
}
