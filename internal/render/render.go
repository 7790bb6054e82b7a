// package render turns source documents into the plain text lines the
// extraction pipeline consumes.
//
// Two input shapes are supported: plain text reports, read line by line,
// and PDF reports, whose positioned text fragments are reassembled into
// whitespace-aligned lines so that column gaps survive the conversion.
package render

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"repertorio/internal/shared"
)

// File renders the document at path into text lines, dispatching on the
// file extension. Anything that is not a PDF is treated as plain text.
func File(path string) ([]string, error) {
	return FileWithTolerance(path, defaultRowTolerance)
}

// FileWithTolerance is File with an explicit PDF row tolerance.
func FileWithTolerance(path string, tolerance float64) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrFileNotFound, path)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return DocumentWithTolerance(path, tolerance)
	}

	return Text(path)
}

// Text reads a plain text report line by line.
func Text(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	return lines, nil
}
