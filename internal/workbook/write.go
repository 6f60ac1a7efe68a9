package workbook

import (
	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"

	"github.com/sells-group/sam-oracle/internal/model"
)

// ImportHeaders is the fixed column order of the Oracle import file.
var ImportHeaders = []string{
	"Cost Center",
	"Level",
	"Type",
	"Role",
	"Oracle ID",
	"Threshold Amount From",
	"Threshold Amount To",
}

// ImportFileName returns the output file name for a source sheet.
func ImportFileName(sheet string) string {
	return "Oracle_Import_" + sheet + ".xlsx"
}

// WriteImport writes the transformed rows to an import workbook at path.
// Amounts are written as numeric cells.
func WriteImport(path string, rows []model.OutputRow) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	for i, h := range ImportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return eris.Wrap(err, "workbook: header cell name")
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return eris.Wrap(err, "workbook: write header")
		}
	}

	for r, row := range rows {
		values := []any{
			row.CostCenter,
			row.Level,
			row.Type,
			string(row.Role),
			row.OracleID,
			row.From.InexactFloat64(),
			row.To.InexactFloat64(),
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return eris.Wrap(err, "workbook: cell name")
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return eris.Wrapf(err, "workbook: write row %d", r+2)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return eris.Wrapf(err, "workbook: save %s", path)
	}
	return nil
}
