package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Converter renders spreadsheet files as markdown tables so they can be
// appended to the conversation as a plain text turn.
type Converter struct{}

func NewConverter() Converter {
	return Converter{}
}

func (Converter) Convertible(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".csv":
		return true
	default:
		return false
	}
}

func (c Converter) ToMarkdown(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return c.excelToMarkdown(path)
	case ".csv":
		return c.csvToMarkdown(path)
	default:
		return "", fmt.Errorf("unsupported spreadsheet format: %s", filepath.Ext(path))
	}
}

func (Converter) excelToMarkdown(path string) (string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	var sections []string
	sheets := file.GetSheetList()
	for _, sheet := range sheets {
		rows, err := file.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}

		table := renderTable(rows)
		if len(sheets) > 1 {
			table = fmt.Sprintf("## %s\n\n%s", sheet, table)
		}
		sections = append(sections, table)
	}

	if len(sections) == 0 {
		return "", fmt.Errorf("workbook %s contains no data", filepath.Base(path))
	}
	return strings.Join(sections, "\n\n"), nil
}

func (Converter) csvToMarkdown(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("csv %s contains no data", filepath.Base(path))
	}

	return renderTable(rows), nil
}

// renderTable renders rows as a markdown table, treating the first row as
// the header. Ragged rows are padded to the widest row.
func renderTable(rows [][]string) string {
	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}

	var b strings.Builder
	for i, row := range rows {
		b.WriteString("|")
		for col := 0; col < columns; col++ {
			cell := ""
			if col < len(row) {
				cell = strings.ReplaceAll(row[col], "|", "\\|")
				cell = strings.ReplaceAll(cell, "\n", " ")
			}
			b.WriteString(" " + cell + " |")
		}
		b.WriteString("\n")

		if i == 0 {
			b.WriteString("|")
			for col := 0; col < columns; col++ {
				b.WriteString(" --- |")
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
