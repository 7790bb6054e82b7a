package report

import (
	"regexp"
	"strings"
)

const (
	// workCodePrefix marks the ISWC-style identifier column of a work header.
	workCodePrefix = "T-"
	// missingCodeMarker is the report's explicit "no identifier" column value.
	missingCodeMarker = "-"
)

var rowNumberPattern = regexp.MustCompile(`^\d+$`)

// IsContentLine reports whether line carries report data at all: its first
// whitespace-delimited column must be purely numeric (the row-number or
// work-id column). Headers, footers, and other page furniture fail this test
// and never reach the rest of the pipeline.
func IsContentLine(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && rowNumberPattern.MatchString(fields[0])
}

// IsWorkLine reports whether line begins a new work. After the leading row
// number, a work header carries either an identifier (T- prefix) or the
// explicit missing-identifier marker; right-holder rows carry a person id
// there instead, so the two never overlap.
func IsWorkLine(line string) bool {
	if !IsContentLine(line) {
		return false
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return false
	}
	return strings.HasPrefix(fields[1], workCodePrefix) || fields[1] == missingCodeMarker
}
