// Package levels holds the fixed approval-level table: an ordered,
// cent-contiguous partition of the dollar range used to decompose threshold
// ranges into per-level import rows.
package levels

import (
	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
)

// Level is one approval band: an inclusive [From, To] dollar interval.
type Level struct {
	Level int
	From  decimal.Decimal
	To    decimal.Decimal
}

// Table is an ordered sequence of approval levels. A valid table is numbered
// 1..n ascending with cent-adjacent, non-overlapping bounds.
type Table []Level

// cent is the gap between adjacent level bounds (1000.99 -> 1001.00).
var cent = decimal.New(1, -2)

// Default returns the standard seven-level table used by the downstream
// Oracle import.
func Default() Table {
	return Table{
		{Level: 1, From: dec("1"), To: dec("1000.99")},
		{Level: 2, From: dec("1001.00"), To: dec("5000.99")},
		{Level: 3, From: dec("5001.00"), To: dec("10000.99")},
		{Level: 4, From: dec("10001.00"), To: dec("25000.99")},
		{Level: 5, From: dec("25001.00"), To: dec("100000.99")},
		{Level: 6, From: dec("100001.00"), To: dec("1000000.99")},
		{Level: 7, From: dec("1000001.00"), To: dec("99999999.99")},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Validate checks that the table is non-empty, numbered 1..n ascending, each
// level's From does not exceed its To, and consecutive levels are exactly one
// cent apart. A table passing Validate makes inclusive-bound overlap clipping
// well defined: no range can land in two levels at once.
func (t Table) Validate() error {
	if len(t) == 0 {
		return eris.New("levels: empty table")
	}
	for i, l := range t {
		if l.Level != i+1 {
			return eris.Errorf("levels: level %d at position %d, want %d", l.Level, i, i+1)
		}
		if l.From.GreaterThan(l.To) {
			return eris.Errorf("levels: level %d has from %s > to %s", l.Level, l.From, l.To)
		}
		if i > 0 {
			prev := t[i-1]
			if !l.From.Equal(prev.To.Add(cent)) {
				return eris.Errorf("levels: level %d from %s is not one cent above level %d to %s",
					l.Level, l.From, prev.Level, prev.To)
			}
		}
	}
	return nil
}

// Ceiling returns the To bound of the highest level.
func (t Table) Ceiling() decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	return t[len(t)-1].To
}
