package transform

import (
	"github.com/shopspring/decimal"

	"github.com/sells-group/sam-oracle/internal/levels"
	"github.com/sells-group/sam-oracle/internal/model"
)

// Full-range grants are recorded in the source matrix as "1 to some very
// large number". Any ceiling at or above fullRangeCeiling means "authority
// over everything", regardless of how large the cell value actually is.
const (
	fullRangeFloor   = 1
	fullRangeCeiling = 99999999
)

var (
	fullRangeFloorDec   = decimal.NewFromInt(fullRangeFloor)
	fullRangeCeilingDec = decimal.NewFromInt(fullRangeCeiling)
)

// ExpandInput is one cleaned source record ready for level expansion.
type ExpandInput struct {
	CostCenter string
	OracleID   string
	Role       model.Role
	From       decimal.Decimal
	To         decimal.Decimal
}

// ExpandLevels decomposes a person's threshold range into per-level import
// rows against the given table.
//
// A reviewer whose range collapsed to (0, 0) — the "-" sentinel — gets a
// single level-1 marker row with zero bounds. An approver covering the full
// range (from 1 up to at least the ceiling sentinel) gets one row per table
// level carrying the table's own bounds verbatim. Every other range is
// clipped against each level in ascending order, emitting a row wherever the
// intersection is non-empty. Bounds are inclusive at both ends; the table's
// cent-adjacent levels guarantee no range lands in two levels at a boundary.
func ExpandLevels(table levels.Table, in ExpandInput) []model.OutputRow {
	if in.Role == model.RoleReviewer && in.From.IsZero() && in.To.IsZero() {
		return []model.OutputRow{outputRow(in, 1, decimal.Zero, decimal.Zero)}
	}

	if in.Role == model.RoleApprover &&
		in.From.Equal(fullRangeFloorDec) &&
		in.To.GreaterThanOrEqual(fullRangeCeilingDec) {
		rows := make([]model.OutputRow, 0, len(table))
		for _, l := range table {
			rows = append(rows, outputRow(in, l.Level, l.From, l.To))
		}
		return rows
	}

	var rows []model.OutputRow
	for _, l := range table {
		start := decimal.Max(in.From, l.From)
		end := decimal.Min(in.To, l.To)
		if start.LessThanOrEqual(end) {
			rows = append(rows, outputRow(in, l.Level, start, end))
		}
	}
	return rows
}

func outputRow(in ExpandInput, level int, from, to decimal.Decimal) model.OutputRow {
	return model.OutputRow{
		CostCenter: in.CostCenter,
		Level:      level,
		Type:       model.EmployeeType,
		Role:       in.Role,
		OracleID:   in.OracleID,
		From:       from,
		To:         to,
	}
}
