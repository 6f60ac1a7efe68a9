// Package transform implements the threshold-range to approval-level
// conversion: amount normalization with role-dependent sentinels, level
// expansion against the approval table, and the per-sheet batch transform.
package transform

import (
	"sort"
	"strings"

	"github.com/sells-group/sam-oracle/internal/levels"
	"github.com/sells-group/sam-oracle/internal/model"
)

// SheetOutput is the result of transforming one source sheet.
type SheetOutput struct {
	Sheet       string
	Rows        []model.OutputRow
	SourceRows  int
	SkippedRows int
}

// Sheet transforms a sheet's records into sorted import rows. Records missing
// a cost center or oracle id are skipped before normalization. Emitted rows
// are sorted by (CostCenter, OracleID, Level) ascending.
func Sheet(name string, recs []model.InputRecord, table levels.Table, obs Observer) *SheetOutput {
	if obs == nil {
		obs = NopObserver{}
	}

	out := &SheetOutput{Sheet: name, SourceRows: len(recs)}
	for _, rec := range recs {
		if strings.TrimSpace(rec.CostCenter) == "" || strings.TrimSpace(rec.OracleID) == "" {
			out.SkippedRows++
			obs.RowSkipped(name, rec)
			continue
		}

		role := model.ClassifyRole(rec.RawRole)
		rows := ExpandLevels(table, ExpandInput{
			CostCenter: rec.CostCenter,
			OracleID:   rec.OracleID,
			Role:       role,
			From:       NormalizeAmount(rec.RawFrom, role),
			To:         NormalizeAmount(rec.RawTo, role),
		})

		obs.RowProcessed(name, rec, rows)
		out.Rows = append(out.Rows, rows...)
	}

	sort.SliceStable(out.Rows, func(i, j int) bool {
		return out.Rows[i].Less(out.Rows[j])
	})

	obs.SheetDone(name, out.SourceRows, len(out.Rows), out.SkippedRows)
	return out
}
