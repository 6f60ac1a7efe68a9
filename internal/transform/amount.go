package transform

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/sells-group/sam-oracle/internal/model"
)

// NormalizeAmount converts a raw threshold cell into a decimal amount.
//
// A blank cell, a bare "-", or anything that still fails to parse after
// stripping whitespace, commas, and quote characters collapses to the
// role-dependent sentinel: 0 for reviewers, 1 for approvers. The sentinel is
// an exact business rule of the source matrix, not a parsing fallback.
func NormalizeAmount(raw string, role model.Role) decimal.Decimal {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "-" {
		return sentinelAmount(role)
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ',' || r == '"' {
			return -1
		}
		return r
	}, trimmed)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return sentinelAmount(role)
	}
	return d
}

func sentinelAmount(role model.Role) decimal.Decimal {
	if role == model.RoleReviewer {
		return decimal.Zero
	}
	return decimal.NewFromInt(1)
}
