// package formatter provides functions to export extracted works to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"repertorio/internal/models"
	"repertorio/internal/shared"
)

// ExportToCSV converts a work's right holders to CSV format with columns:
// PersonID, Name, Pseudonym, Role, Share, Society, RegistryNumber
func ExportToCSV(work models.Work) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"PersonID", "Name", "Pseudonym", "Role", "Share", "Society", "RegistryNumber"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, holder := range work.RightHolders {
		record := []string{
			holder.RegistryPersonID,
			holder.Name,
			holder.PrimaryPseudonym(),
			string(holder.Role),
			strconv.FormatFloat(holder.Share, 'f', -1, 64),
			holder.SocietyName,
			holder.RegistryNumber,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a work and its right holders to Markdown format
func ExportToMarkdown(work models.Work) ([]byte, error) {
	var buf bytes.Buffer

	title := work.Title
	if title == "" {
		title = "Untitled Work"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", title))

	if work.ExternalCode != "" {
		buf.WriteString(fmt.Sprintf("**Code**: %s\n", work.ExternalCode))
	}
	if work.Status != "" {
		buf.WriteString(fmt.Sprintf("**Status**: %s\n", work.Status))
	}
	if work.CreatedAt != "" {
		buf.WriteString(fmt.Sprintf("**Registered**: %s\n", work.CreatedAt))
	}
	buf.WriteString(fmt.Sprintf("**Right holders**: %d\n\n", len(work.RightHolders)))

	buf.WriteString("## Right Holders\n\n")
	for i, holder := range work.RightHolders {
		pseudonymPart := ""
		if pseudonym := holder.PrimaryPseudonym(); pseudonym != "" {
			pseudonymPart = fmt.Sprintf(" (%s)", pseudonym)
		}
		societyPart := ""
		if holder.SocietyName != "" {
			societyPart = fmt.Sprintf(" [%s]", holder.SocietyName)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s - %s %s%%%s\n", i+1, holder.Name, pseudonymPart, holder.Role, formatShare(holder.Share), societyPart))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a work and its right holders to plain text format
func ExportToText(work models.Work) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Work: %s\n", work.Title))
	if work.ExternalCode != "" {
		buf.WriteString(fmt.Sprintf("Code: %s\n", work.ExternalCode))
	}
	if work.Status != "" {
		buf.WriteString(fmt.Sprintf("Status: %s\n", work.Status))
	}
	buf.WriteString(fmt.Sprintf("Right holders: %d\n\n", len(work.RightHolders)))

	for i, holder := range work.RightHolders {
		buf.WriteString(fmt.Sprintf("%d. %s - %s %s%%\n", i+1, holder.Name, holder.Role, formatShare(holder.Share)))
	}

	return buf.Bytes(), nil
}

// ToWorkJSON generates a JSON representation of a work, including its right holders
func ToWorkJSON(work models.Work) ([]byte, error) {
	return shared.MarshalJSON(work, true)
}

func formatShare(share float64) string {
	return strconv.FormatFloat(share, 'f', -1, 64)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	RightHoldersFile string
	WorkFile         string
}

// WriteCSVExport exports a work to CSV format with an accompanying work JSON file.
//
// Defaults to the registry work id as the base filename & creates
// {base}_rightholders.csv and {base}_work.json
func WriteCSVExport(work models.Work, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = work.RegistryWorkID
	}

	csvData, err := ExportToCSV(work)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	holdersFile := baseFilepath + "_rightholders.csv"
	if err := os.WriteFile(holdersFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	workJSON, err := ToWorkJSON(work)
	if err != nil {
		return nil, fmt.Errorf("failed to generate work JSON: %w", err)
	}

	workFile := baseFilepath + "_work.json"
	if err := os.WriteFile(workFile, workJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write work file: %w", err)
	}

	return &CSVExportResult{
		RightHoldersFile: holdersFile,
		WorkFile:         workFile,
	}, nil
}

// WriteMarkdownExport exports a work to Markdown format.
//
// Defaults to {registry work id}.md as the filename.
func WriteMarkdownExport(work models.Work, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s.md", work.RegistryWorkID)
	}

	mdData, err := ExportToMarkdown(work)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	if err := os.WriteFile(filepath, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return filepath, nil
}

// WriteTextExport exports a work to plain text format.
//
// Defaults to {registry work id}.txt as the filename.
func WriteTextExport(work models.Work, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s.txt", work.RegistryWorkID)
	}

	textData, err := ExportToText(work)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}
