package workbook

import (
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/unicode/norm"
)

// Columns holds the detected column index for each target field. -1 means
// the field was not found; only Role may legitimately stay -1.
type Columns struct {
	CostCenter    int
	OracleID      int
	ThresholdFrom int
	ThresholdTo   int
	Role          int
}

// columnRule matches one target field against a normalized header. Rules are
// ranked: the first rule a header satisfies claims it, and a later header
// satisfying the same rule overrides an earlier assignment.
type columnRule struct {
	field    string
	required bool
	match    func(h string) bool
	assign   func(c *Columns, idx int)
	found    func(c Columns) bool
}

func containsAll(h string, subs ...string) bool {
	for _, s := range subs {
		if !strings.Contains(h, s) {
			return false
		}
	}
	return true
}

var columnRules = []columnRule{
	{
		field:    "cost center",
		required: true,
		match:    func(h string) bool { return containsAll(h, "cost", "center") },
		assign:   func(c *Columns, idx int) { c.CostCenter = idx },
		found:    func(c Columns) bool { return c.CostCenter >= 0 },
	},
	{
		field:    "oracle id",
		required: true,
		match:    func(h string) bool { return containsAll(h, "oracle", "id") },
		assign:   func(c *Columns, idx int) { c.OracleID = idx },
		found:    func(c Columns) bool { return c.OracleID >= 0 },
	},
	{
		field:    "threshold from",
		required: true,
		match:    func(h string) bool { return containsAll(h, "threshold", "from") },
		assign:   func(c *Columns, idx int) { c.ThresholdFrom = idx },
		found:    func(c Columns) bool { return c.ThresholdFrom >= 0 },
	},
	{
		field:    "threshold to",
		required: true,
		match: func(h string) bool {
			return strings.Contains(h, "threshold") &&
				(strings.Contains(h, "to") || strings.Contains(h, "too"))
		},
		assign: func(c *Columns, idx int) { c.ThresholdTo = idx },
		found:  func(c Columns) bool { return c.ThresholdTo >= 0 },
	},
	{
		field: "role",
		match: func(h string) bool {
			return strings.Contains(h, "role") || strings.Contains(h, "type")
		},
		assign: func(c *Columns, idx int) { c.Role = idx },
		found:  func(c Columns) bool { return c.Role >= 0 },
	},
}

// normalizeHeader folds a free-form header for substring matching: NFKC
// normalization, lowercase, trimmed.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(h)))
}

// DetectColumns locates the target fields in a sheet's header row by ranked
// substring rules. Any required field left unresolved aborts the sheet with
// an error naming the missing fields and the available headers.
func DetectColumns(headers []string) (Columns, error) {
	cols := Columns{CostCenter: -1, OracleID: -1, ThresholdFrom: -1, ThresholdTo: -1, Role: -1}

	for idx, header := range headers {
		h := normalizeHeader(header)
		for _, rule := range columnRules {
			if rule.match(h) {
				rule.assign(&cols, idx)
				break
			}
		}
	}

	var missing []string
	for _, rule := range columnRules {
		if rule.required && !rule.found(cols) {
			missing = append(missing, rule.field)
		}
	}
	if len(missing) > 0 {
		return cols, eris.Errorf("workbook: could not identify columns [%s] in headers [%s]",
			strings.Join(missing, ", "), strings.Join(headers, ", "))
	}
	return cols, nil
}

// Report maps each target field to the header it resolved to, for the column
// identification log line.
func (c Columns) Report(headers []string) map[string]string {
	name := func(idx int) string {
		if idx < 0 || idx >= len(headers) {
			return ""
		}
		return headers[idx]
	}
	return map[string]string{
		"cost_center":    name(c.CostCenter),
		"oracle_id":      name(c.OracleID),
		"threshold_from": name(c.ThresholdFrom),
		"threshold_to":   name(c.ThresholdTo),
		"role":           name(c.Role),
	}
}
