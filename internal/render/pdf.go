package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// Fragments whose Y coordinates differ by less than this belong to
	// the same visual line.
	defaultRowTolerance = 2.0

	// Approximate width of one space character in page points. Used to
	// re-derive the space runs that separate columns, so that gap-width
	// heuristics downstream keep working on PDF input.
	pointsPerSpace = 4.0
)

// row collects the text fragments of one visual line on a page.
type row struct {
	y         float64
	fragments []pdf.Text
}

// Document renders a PDF report into whitespace-aligned text lines.
func Document(path string) ([]string, error) {
	return DocumentWithTolerance(path, defaultRowTolerance)
}

// DocumentWithTolerance is Document with an explicit row grouping tolerance.
func DocumentWithTolerance(path string, tolerance float64) ([]string, error) {
	if tolerance <= 0 {
		tolerance = defaultRowTolerance
	}

	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer file.Close()

	var lines []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		lines = append(lines, pageLines(page.Content().Text, tolerance)...)
	}

	return lines, nil
}

// pageLines reassembles positioned fragments into text lines, top to
// bottom, left to right.
func pageLines(texts []pdf.Text, tolerance float64) []string {
	rows := groupRows(texts, tolerance)

	// PDF Y coordinates grow upward, so the top line has the largest Y.
	sort.Slice(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, layoutRow(r.fragments))
	}
	return lines
}

// groupRows buckets fragments by Y coordinate within the given tolerance.
func groupRows(texts []pdf.Text, tolerance float64) []row {
	var rows []row

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}

		placed := false
		for i := range rows {
			if abs(rows[i].y-t.Y) < tolerance {
				rows[i].fragments = append(rows[i].fragments, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, row{y: t.Y, fragments: []pdf.Text{t}})
		}
	}

	return rows
}

// layoutRow joins a line's fragments in X order, converting the horizontal
// distance between fragments back into runs of spaces.
func layoutRow(fragments []pdf.Text) string {
	sort.Slice(fragments, func(i, j int) bool { return fragments[i].X < fragments[j].X })

	var sb strings.Builder
	cursor := 0.0
	for i, t := range fragments {
		if i > 0 {
			gap := int((t.X - cursor) / pointsPerSpace)
			if gap < 1 {
				gap = 1
			}
			sb.WriteString(strings.Repeat(" ", gap))
		}
		sb.WriteString(t.S)
		cursor = t.X + t.W
	}

	return sb.String()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
