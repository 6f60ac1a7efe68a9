package model

import "time"

// RunStatus represents the current state of a conversion run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// SheetStatus represents the outcome of processing a single source sheet.
type SheetStatus string

const (
	SheetStatusComplete SheetStatus = "complete"
	SheetStatusFailed   SheetStatus = "failed"
	SheetStatusMissing  SheetStatus = "missing"
)

// SheetResult records what happened to one source sheet during a run.
type SheetResult struct {
	Sheet       string      `json:"sheet"`
	Status      SheetStatus `json:"status"`
	SourceRows  int         `json:"source_rows"`
	OutputRows  int         `json:"output_rows"`
	SkippedRows int         `json:"skipped_rows"`
	OutputFile  string      `json:"output_file,omitempty"`
	Error       string      `json:"error,omitempty"`
}

// RunResult holds the final per-sheet outcomes of a run.
type RunResult struct {
	Sheets     []SheetResult `json:"sheets"`
	OutputRows int           `json:"output_rows"`
}

// Run represents a single conversion run over one input workbook.
type Run struct {
	ID        string     `json:"id"`
	InputFile string     `json:"input_file"`
	Status    RunStatus  `json:"status"`
	Result    *RunResult `json:"result,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
