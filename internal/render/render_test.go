package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"

	"repertorio/internal/shared"
)

func TestText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")

	content := "REGISTRY REPORT\n\n1  T-000123    My Song Title    Active    2020\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	lines, err := Text(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}

	want := []string{
		"REGISTRY REPORT",
		"",
		"1  T-000123    My Song Title    Active    2020",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := File(filepath.Join(t.TempDir(), "nope.txt"))
		if !errors.Is(err, shared.ErrFileNotFound) {
			t.Errorf("expected ErrFileNotFound, got %v", err)
		}
	})

	t.Run("plain text dispatch", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.txt")
		if err := os.WriteFile(path, []byte("one line"), 0o644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		lines, err := File(path)
		if err != nil {
			t.Fatalf("failed to render file: %v", err)
		}
		if len(lines) != 1 || lines[0] != "one line" {
			t.Errorf("unexpected lines: %v", lines)
		}
	})
}

func TestGroupRows(t *testing.T) {
	texts := []pdf.Text{
		{S: "1", X: 10, Y: 700},
		{S: "T-000123", X: 30, Y: 700.5},
		{S: "2", X: 10, Y: 688},
		{S: "  ", X: 40, Y: 688},
		{S: "T-000456", X: 30, Y: 687.9},
	}

	rows := groupRows(texts, defaultRowTolerance)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rows[0].fragments) != 2 || len(rows[1].fragments) != 2 {
		t.Errorf("whitespace fragments should be dropped: %v", rows)
	}
}

func TestLayoutRow(t *testing.T) {
	t.Run("gap widths become space runs", func(t *testing.T) {
		fragments := []pdf.Text{
			{S: "My Song Title", X: 60, W: 52, Y: 700},
			{S: "1", X: 10, W: 4, Y: 700},
			{S: "T-000123", X: 22, W: 32, Y: 700},
		}

		line := layoutRow(fragments)
		// 14 - 10 = 8pt -> 2 spaces, 60 - 54 = 6pt -> 1 space
		want := "1  T-000123 My Song Title"
		if line != want {
			t.Errorf("expected %q, got %q", want, line)
		}
	})

	t.Run("touching fragments keep one space", func(t *testing.T) {
		fragments := []pdf.Text{
			{S: "John", X: 10, W: 16, Y: 500},
			{S: "Roe", X: 26, W: 12, Y: 500},
		}

		if line := layoutRow(fragments); line != "John Roe" {
			t.Errorf("expected %q, got %q", "John Roe", line)
		}
	})
}

func TestPageLines(t *testing.T) {
	texts := []pdf.Text{
		{S: "Active", X: 120, W: 24, Y: 688},
		{S: "1", X: 10, W: 4, Y: 700},
		{S: "2", X: 10, W: 4, Y: 688},
		{S: "T-000123", X: 30, W: 32, Y: 700},
		{S: "T-000456", X: 30, W: 32, Y: 688},
	}

	lines := pageLines(texts, defaultRowTolerance)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "1") || !strings.Contains(lines[0], "T-000123") {
		t.Errorf("top line should come first: %q", lines[0])
	}
	if !strings.Contains(lines[1], "T-000456") || !strings.Contains(lines[1], "Active") {
		t.Errorf("second line misassembled: %q", lines[1])
	}
}
