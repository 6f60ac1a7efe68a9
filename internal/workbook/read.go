// Package workbook handles the xlsx edges of the converter: reading source
// sheets, locating columns in free-form headers, and writing import files.
package workbook

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/sam-oracle/internal/model"
)

// Table is one source sheet surfaced as strings: a trimmed header row plus
// data rows.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Open opens the source workbook. Failure here fails the whole run.
func Open(path string) (*xlsx.File, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "workbook: open %s", path)
	}
	return f, nil
}

// SheetNames returns the workbook's sheet names in file order.
func SheetNames(f *xlsx.File) []string {
	names := make([]string, 0, len(f.Sheets))
	for _, s := range f.Sheets {
		names = append(names, s.Name)
	}
	return names
}

// ReadSheet reads the named sheet into a Table. The second return is false
// when the sheet does not exist or has no header row.
func ReadSheet(f *xlsx.File, name string) (*Table, bool) {
	sheet, ok := f.Sheet[name]
	if !ok || len(sheet.Rows) == 0 {
		return nil, false
	}

	t := &Table{Name: name}
	for i, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		if i == 0 {
			for j := range cells {
				cells[j] = strings.TrimSpace(cells[j])
			}
			t.Headers = cells
			continue
		}
		t.Rows = append(t.Rows, cells)
	}
	return t, true
}

// Records converts the table's data rows into input records using the
// detected column positions. Row numbers are 1-based workbook rows (the
// header is row 1).
func (t *Table) Records(cols Columns) []model.InputRecord {
	recs := make([]model.InputRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		recs = append(recs, model.InputRecord{
			CostCenter: cellAt(row, cols.CostCenter),
			OracleID:   cellAt(row, cols.OracleID),
			RawRole:    cellAt(row, cols.Role),
			RawFrom:    cellAt(row, cols.ThresholdFrom),
			RawTo:      cellAt(row, cols.ThresholdTo),
			Row:        i + 2,
		})
	}
	return recs
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
