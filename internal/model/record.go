package model

import "github.com/shopspring/decimal"

// InputRecord is one source row from an authority matrix sheet, with amounts
// still in their raw cell form.
type InputRecord struct {
	CostCenter string
	OracleID   string
	RawRole    string
	RawFrom    string
	RawTo      string
	Row        int // 1-based source row, for diagnostics
}

// OutputRow is one row of the Oracle import table: a single approval level
// granted to a person within a cost center.
type OutputRow struct {
	CostCenter string
	Level      int
	Type       string
	Role       Role
	OracleID   string
	From       decimal.Decimal
	To         decimal.Decimal
}

// Less orders rows by (CostCenter, OracleID, Level) ascending, the import
// file's required sort order.
func (r OutputRow) Less(other OutputRow) bool {
	if r.CostCenter != other.CostCenter {
		return r.CostCenter < other.CostCenter
	}
	if r.OracleID != other.OracleID {
		return r.OracleID < other.OracleID
	}
	return r.Level < other.Level
}
