// Package export renders parsed message records as CSV, JSON or XLSX.
// The CSV dialect matches what the downstream spreadsheet import expects:
// semicolon-separated, every field quoted, UTF-8 with byte-order mark.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"shiftlog/internal/model"
	"shiftlog/internal/timeutil"
)

// utf8BOM is prepended to CSV output so spreadsheet imports detect the
// encoding. Written as an escape: a literal U+FEFF is only legal as the
// very first code point of a source file.
const utf8BOM = "\uFEFF"

// Header is the fixed column set of the tabular export.
var Header = []string{
	"Msg Date", "Date", "Start", "End", "Break", "Netto", "Regie-hrs", "Worker", "Log-Text",
}

// Row flattens a record into the export columns. Newlines in the message
// body are collapsed to spaces so each record stays one row.
func Row(r model.MessageRecord) []string {
	return []string{
		timeutil.FormatDateToDDMMYYYY(r.Date),
		timeutil.FormatDateToDDMMYYYY(r.WorkDate),
		r.StartTime,
		r.EndTime,
		r.BreakTime,
		r.NettoTime,
		r.RegieTime,
		r.Sender,
		strings.TrimSpace(strings.ReplaceAll(r.Message, "\n", " ")),
	}
}

// WriteCSV writes all records with the BOM, header row and the
// always-quoted semicolon dialect.
func WriteCSV(w io.Writer, records []model.MessageRecord) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	if err := writeCSVRow(w, Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := writeCSVRow(w, Row(r)); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = csvQuote(f)
	}
	if _, err := io.WriteString(w, strings.Join(quoted, ";")+"\n"); err != nil {
		return fmt.Errorf("writing CSV row: %w", err)
	}
	return nil
}

// csvQuote wraps a field in quotes, doubling internal double quotes.
// Every field is quoted so semicolons in message text never break a row.
func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WriteJSON writes the records as indented JSON.
func WriteJSON(w io.Writer, records []model.MessageRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

// WriteXLSX writes the records as a single-sheet workbook.
func WriteXLSX(w io.Writer, records []model.MessageRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if err := setRow(f, sheet, 1, Header); err != nil {
		return err
	}
	for i, r := range records {
		if err := setRow(f, sheet, i+2, Row(r)); err != nil {
			return err
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, fields []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("resolving cell for row %d: %w", rowNum, err)
	}
	values := make([]interface{}, len(fields))
	for i, v := range fields {
		values[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", rowNum, err)
	}
	return nil
}
