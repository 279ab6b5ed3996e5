package reporting

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	apperrors "myjobs/internal/errors"

	"github.com/xuri/excelize/v2"
)

// PresentationType is a download format
type PresentationType string

const (
	PresentationCSV  PresentationType = "csv"
	PresentationXLSX PresentationType = "xlsx"
	PresentationJSON PresentationType = "json"
)

// ParsePresentation validates a format name
func ParsePresentation(s string) (PresentationType, error) {
	switch p := PresentationType(s); p {
	case PresentationCSV, PresentationXLSX, PresentationJSON:
		return p, nil
	case "":
		return PresentationCSV, nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidPresentation, s)
}

// ContentType returns the MIME type of the format
func (p PresentationType) ContentType() string {
	switch p {
	case PresentationXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case PresentationJSON:
		return "application/json"
	default:
		return "text/csv"
	}
}

// Row is one report result keyed by field name
type Row map[string]interface{}

// Render writes rows in the given format with humanized headers in column order
func Render(w io.Writer, p PresentationType, cols []Column, rows []Row) error {
	switch p {
	case PresentationCSV:
		return renderCSV(w, cols, rows)
	case PresentationXLSX:
		return renderXLSX(w, cols, rows)
	case PresentationJSON:
		return renderJSON(w, cols, rows)
	}
	return fmt.Errorf("%w: %q", apperrors.ErrInvalidPresentation, p)
}

func headers(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header()
	}
	return out
}

func renderCSV(w io.Writer, cols []Column, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers(cols)); err != nil {
		return err
	}
	record := make([]string, len(cols))
	for _, row := range rows {
		for i, c := range cols {
			record[i] = FormatValue(c, row[c.Field])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func renderXLSX(w io.Writer, cols []Column, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", headerRow(cols)); err != nil {
		return fmt.Errorf("failed to write xlsx header: %w", err)
	}
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(cols))
		for i, c := range cols {
			values[i] = xlsxValue(c, row[c.Field])
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write xlsx row: %w", err)
		}
	}
	return f.Write(w)
}

func headerRow(cols []Column) *[]interface{} {
	row := make([]interface{}, len(cols))
	for i, h := range headers(cols) {
		row[i] = h
	}
	return &row
}

func xlsxValue(c Column, v interface{}) interface{} {
	switch c.Type {
	case TypeInt:
		if f, ok := v.(float64); ok {
			return int64(f)
		}
	case TypeBool:
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return FormatValue(c, v)
}

func renderJSON(w io.Writer, cols []Column, rows []Row) error {
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		item := make(map[string]string, len(cols))
		for _, c := range cols {
			item[c.Header()] = FormatValue(c, row[c.Field])
		}
		out = append(out, item)
	}
	return json.NewEncoder(w).Encode(out)
}

// FormatValue renders a stored result value as display text
func FormatValue(c Column, v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		if c.Type == TypeDate {
			if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
				return ts.Format("2006-01-02 15:04")
			}
		}
		return t
	case time.Time:
		return t.Format("2006-01-02 15:04")
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case []byte:
		return string(t)
	}
	return fmt.Sprint(v)
}
