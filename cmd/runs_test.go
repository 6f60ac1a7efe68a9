package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/sam-oracle/internal/model"
)

func TestFormatRunsList(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	runs := []model.Run{
		{
			ID:        "abc12345-6789-0000-0000-000000000000",
			InputFile: "Raw Data.xlsx",
			Status:    model.RunStatusComplete,
			Result:    &model.RunResult{OutputRows: 21},
			CreatedAt: now,
			UpdatedAt: now.Add(2 * time.Second),
		},
		{
			ID:        "def12345-6789-0000-0000-000000000000",
			InputFile: "/very/long/path/to/some/deeply/nested/input.xlsx",
			Status:    model.RunStatusFailed,
			CreatedAt: now.Add(-1 * time.Hour),
			UpdatedAt: now.Add(-1 * time.Hour),
		},
	}

	var buf bytes.Buffer
	formatRunsList(&buf, runs)

	output := buf.String()
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "INPUT")
	assert.Contains(t, output, "STATUS")
	assert.Contains(t, output, "abc12345")
	assert.Contains(t, output, "Raw Data.xlsx")
	assert.Contains(t, output, "complete")
	assert.Contains(t, output, "21")
	assert.Contains(t, output, "failed")
	assert.Contains(t, output, "2026-08-15 10:30")
	assert.Contains(t, output, "...", "long input paths are truncated")
	assert.NotContains(t, output, "/very/long/path")
}

func TestComputeRunStats(t *testing.T) {
	now := time.Now()
	runs := []model.Run{
		{
			Status:    model.RunStatusComplete,
			Result:    &model.RunResult{OutputRows: 10, Sheets: []model.SheetResult{{SkippedRows: 2}}},
			CreatedAt: now,
			UpdatedAt: now.Add(4 * time.Second),
		},
		{
			Status:    model.RunStatusComplete,
			Result:    &model.RunResult{OutputRows: 5},
			CreatedAt: now,
			UpdatedAt: now.Add(2 * time.Second),
		},
		{Status: model.RunStatusFailed},
		{Status: model.RunStatusRunning},
	}

	s := computeRunStats(runs)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Complete)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 1, s.Other)
	assert.Equal(t, 15, s.OutputRows)
	assert.Equal(t, 2, s.SkippedRows)
	assert.InDelta(t, 3.0, s.AvgDurSecs, 0.001)
}

func TestFormatRunStats(t *testing.T) {
	var buf bytes.Buffer
	formatRunStats(&buf, runStats{Total: 3, Complete: 2, Failed: 1, OutputRows: 15, AvgDurSecs: 3.0})

	output := buf.String()
	assert.Contains(t, output, "Total runs:")
	assert.Contains(t, output, "3")
	assert.Contains(t, output, "Avg duration:")
	assert.Contains(t, output, "3.0s")
}

func TestTruncateID(t *testing.T) {
	assert.Equal(t, "abc12345", truncateID("abc12345-6789"))
	assert.Equal(t, "short", truncateID("short"))
}
