package transform

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sam-oracle/internal/levels"
	"github.com/sells-group/sam-oracle/internal/model"
)

func expandInput(role model.Role, from, to string) ExpandInput {
	return ExpandInput{
		CostCenter: "CC100",
		OracleID:   "E42",
		Role:       role,
		From:       decimal.RequireFromString(from),
		To:         decimal.RequireFromString(to),
	}
}

func TestExpandLevels_ReviewerSentinel(t *testing.T) {
	rows := ExpandLevels(levels.Default(), expandInput(model.RoleReviewer, "0", "0"))

	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Level)
	assert.Equal(t, model.RoleReviewer, rows[0].Role)
	assert.Equal(t, model.EmployeeType, rows[0].Type)
	assert.True(t, rows[0].From.IsZero())
	assert.True(t, rows[0].To.IsZero())
}

func TestExpandLevels_ApproverZeroIsNotSentinel(t *testing.T) {
	// The (0, 0) marker row is reviewer-only. An approver with that range has
	// no overlap with any level and gets nothing.
	rows := ExpandLevels(levels.Default(), expandInput(model.RoleApprover, "0", "0"))
	assert.Empty(t, rows)
}

func TestExpandLevels_ApproverFullRange(t *testing.T) {
	table := levels.Default()
	for _, to := range []string{"99999999", "99999999.99", "100000000", "999999999"} {
		t.Run("to="+to, func(t *testing.T) {
			rows := ExpandLevels(table, expandInput(model.RoleApprover, "1", to))

			require.Len(t, rows, 7)
			for i, r := range rows {
				assert.Equal(t, table[i].Level, r.Level)
				assert.True(t, r.From.Equal(table[i].From), "level %d from", r.Level)
				assert.True(t, r.To.Equal(table[i].To), "level %d to", r.Level)
				assert.Equal(t, model.RoleApprover, r.Role)
			}
			// Table bounds verbatim, not clipped to the input ceiling.
			assert.True(t, rows[2].From.Equal(decimal.RequireFromString("5001.00")))
			assert.True(t, rows[2].To.Equal(decimal.RequireFromString("10000.99")))
		})
	}
}

func TestExpandLevels_FullRangeRequiresFloorOne(t *testing.T) {
	// Starting above 1 is a plain clipped range even with a huge ceiling.
	rows := ExpandLevels(levels.Default(), expandInput(model.RoleApprover, "2", "100000000"))

	require.Len(t, rows, 7)
	assert.True(t, rows[0].From.Equal(decimal.NewFromInt(2)))
	assert.True(t, rows[6].To.Equal(decimal.RequireFromString("99999999.99")),
		"ceiling clipped to the table, not the input")
}

func TestExpandLevels_ReviewerFullRangeIsClipped(t *testing.T) {
	// The short-circuit is approver-only; a reviewer spanning everything
	// still goes through clipping (same rows here, since 1..ceiling covers
	// every level exactly).
	table := levels.Default()
	rows := ExpandLevels(table, expandInput(model.RoleReviewer, "1", "99999999.99"))

	require.Len(t, rows, 7)
	for i, r := range rows {
		assert.Equal(t, model.RoleReviewer, r.Role)
		assert.True(t, r.From.Equal(table[i].From))
		assert.True(t, r.To.Equal(table[i].To))
	}
}

func TestExpandLevels_SpanTwoLevels(t *testing.T) {
	rows := ExpandLevels(levels.Default(), expandInput(model.RoleReviewer, "900", "1500"))

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Level)
	assert.True(t, rows[0].From.Equal(decimal.NewFromInt(900)))
	assert.True(t, rows[0].To.Equal(decimal.RequireFromString("1000.99")))
	assert.Equal(t, 2, rows[1].Level)
	assert.True(t, rows[1].From.Equal(decimal.RequireFromString("1001.00")))
	assert.True(t, rows[1].To.Equal(decimal.NewFromInt(1500)))
}

func TestExpandLevels_BoundaryInclusive(t *testing.T) {
	// Ending exactly on a level ceiling includes that level only.
	rows := ExpandLevels(levels.Default(), expandInput(model.RoleApprover, "500", "1000.99"))
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Level)

	// Starting exactly on the next level floor lands in that level only.
	rows = ExpandLevels(levels.Default(), expandInput(model.RoleApprover, "1001.00", "1500"))
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Level)
}

func TestExpandLevels_ApproverSentinelPair(t *testing.T) {
	// Both cells "-" for an approver normalize to (1, 1): a single level-1
	// row with a one-dollar range.
	rows := ExpandLevels(levels.Default(), expandInput(model.RoleApprover, "1", "1"))

	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Level)
	assert.True(t, rows[0].From.Equal(decimal.NewFromInt(1)))
	assert.True(t, rows[0].To.Equal(decimal.NewFromInt(1)))
}

func TestExpandLevels_NoPhantomRows(t *testing.T) {
	table := levels.Default()
	inputs := []ExpandInput{
		expandInput(model.RoleApprover, "900", "1500"),
		expandInput(model.RoleApprover, "1", "99999999.99"),
		expandInput(model.RoleReviewer, "25000", "150000"),
		expandInput(model.RoleApprover, "0.50", "0.75"),
		expandInput(model.RoleApprover, "1500", "900"),
	}

	for _, in := range inputs {
		for _, r := range ExpandLevels(table, in) {
			assert.False(t, r.From.GreaterThan(r.To),
				"emitted row with from %s > to %s", r.From, r.To)

			l := table[r.Level-1]
			assert.False(t, l.From.GreaterThan(r.To), "level %d: no true overlap", r.Level)
			assert.False(t, r.From.GreaterThan(l.To), "level %d: no true overlap", r.Level)
			assert.False(t, r.From.LessThan(l.From), "level %d: row below level floor", r.Level)
			assert.False(t, r.To.GreaterThan(l.To), "level %d: row above level ceiling", r.Level)
		}
	}
}

func TestExpandLevels_AscendingLevelOrder(t *testing.T) {
	rows := ExpandLevels(levels.Default(), expandInput(model.RoleApprover, "500", "30000"))

	require.NotEmpty(t, rows)
	for i := 1; i < len(rows); i++ {
		assert.Greater(t, rows[i].Level, rows[i-1].Level)
	}
}

func TestExpandLevels_InvertedRange(t *testing.T) {
	rows := ExpandLevels(levels.Default(), expandInput(model.RoleApprover, "5000", "100"))
	assert.Empty(t, rows)
}
