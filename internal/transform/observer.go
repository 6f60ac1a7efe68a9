package transform

import (
	"go.uber.org/zap"

	"github.com/sells-group/sam-oracle/internal/model"
)

// Observer receives per-row progress from the sheet transform. The transform
// itself is a pure function of (records, table); all diagnostic output flows
// through here.
type Observer interface {
	RowProcessed(sheet string, rec model.InputRecord, rows []model.OutputRow)
	RowSkipped(sheet string, rec model.InputRecord)
	SheetDone(sheet string, sourceRows, outputRows, skippedRows int)
}

// NopObserver discards all progress events.
type NopObserver struct{}

func (NopObserver) RowProcessed(string, model.InputRecord, []model.OutputRow) {}
func (NopObserver) RowSkipped(string, model.InputRecord)                      {}
func (NopObserver) SheetDone(string, int, int, int)                           {}

// ZapObserver logs progress through the global zap logger: per-row events at
// debug, sheet summaries at info.
type ZapObserver struct{}

func (ZapObserver) RowProcessed(sheet string, rec model.InputRecord, rows []model.OutputRow) {
	zap.L().Debug("row expanded",
		zap.String("sheet", sheet),
		zap.Int("source_row", rec.Row),
		zap.String("cost_center", rec.CostCenter),
		zap.String("oracle_id", rec.OracleID),
		zap.Int("levels", len(rows)),
	)
}

func (ZapObserver) RowSkipped(sheet string, rec model.InputRecord) {
	zap.L().Debug("row skipped: missing cost center or oracle id",
		zap.String("sheet", sheet),
		zap.Int("source_row", rec.Row),
	)
}

func (ZapObserver) SheetDone(sheet string, sourceRows, outputRows, skippedRows int) {
	zap.L().Info("sheet transformed",
		zap.String("sheet", sheet),
		zap.Int("source_rows", sourceRows),
		zap.Int("output_rows", outputRows),
		zap.Int("skipped_rows", skippedRows),
	)
}
