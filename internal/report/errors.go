package report

import (
	"errors"
	"fmt"
)

// Format errors. None of these are recoverable per line: silently malformed
// output is worse than an explicit failure for rights data, so the first
// error aborts extraction of the whole document.
var (
	// ErrFormat is the common ancestor of every extraction failure.
	ErrFormat = errors.New("report format not recognized")

	// ErrColumnCount signals a left-block token count outside {2,3,4}: the
	// report's layout convention has changed and the column heuristics are
	// no longer valid.
	ErrColumnCount = fmt.Errorf("unexpected column count: %w", ErrFormat)

	// ErrUnknownRole signals a role code missing from the category table.
	ErrUnknownRole = fmt.Errorf("unknown role code: %w", ErrFormat)

	// ErrStructural signals a right-holder line with no preceding work to
	// attach to.
	ErrStructural = fmt.Errorf("right holder before first work: %w", ErrFormat)
)

// The wrapped errors carry the raw line and the violated expectation so the
// heuristic or the source report can be corrected by hand.

func columnCountError(line string, count int) error {
	return fmt.Errorf("%w: got %d left columns, want 2, 3 or 4 in line %q", ErrColumnCount, count, line)
}

func unknownRoleError(line, code string) error {
	return fmt.Errorf("%w: %q in line %q", ErrUnknownRole, code, line)
}

func structuralError(line string) error {
	return fmt.Errorf("%w: line %q", ErrStructural, line)
}

func anchorError(line string) error {
	return fmt.Errorf("%w: no role/share anchor in line %q", ErrFormat, line)
}
