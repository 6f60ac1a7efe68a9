package workbook

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sells-group/sam-oracle/internal/model"
)

func TestWriteImport_RoundTrip(t *testing.T) {
	rows := []model.OutputRow{
		{
			CostCenter: "CC1",
			Level:      1,
			Type:       model.EmployeeType,
			Role:       model.RoleApprover,
			OracleID:   "E1",
			From:       decimal.NewFromInt(1),
			To:         decimal.RequireFromString("1000.99"),
		},
		{
			CostCenter: "CC1",
			Level:      2,
			Type:       model.EmployeeType,
			Role:       model.RoleApprover,
			OracleID:   "E1",
			From:       decimal.RequireFromString("1001.00"),
			To:         decimal.RequireFromString("1500"),
		},
	}

	path := filepath.Join(t.TempDir(), ImportFileName("General"))
	require.NoError(t, WriteImport(path, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	got, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, ImportHeaders, got[0])
	assert.Equal(t, "CC1", got[1][0])
	assert.Equal(t, "1", got[1][1])
	assert.Equal(t, "Employee", got[1][2])
	assert.Equal(t, "APPROVER", got[1][3])
	assert.Equal(t, "E1", got[1][4])
	assert.Equal(t, "1", got[1][5])
	assert.Equal(t, "1000.99", got[1][6])
	assert.Equal(t, "2", got[2][1])
	assert.Equal(t, "1001", got[2][5])
}

func TestWriteImport_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteImport(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	got, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, got, 1, "header row only")
	assert.Equal(t, ImportHeaders, got[0])
}

func TestImportFileName(t *testing.T) {
	assert.Equal(t, "Oracle_Import_General.xlsx", ImportFileName("General"))
	assert.Equal(t, "Oracle_Import_Research.xlsx", ImportFileName("Research"))
}
