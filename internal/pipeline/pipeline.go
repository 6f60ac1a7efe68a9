// Package pipeline orchestrates a conversion run: open the source workbook,
// process each fixed sheet through column detection and the level expansion
// transform, write import files, and record the run in the history store.
package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/sam-oracle/internal/levels"
	"github.com/sells-group/sam-oracle/internal/model"
	"github.com/sells-group/sam-oracle/internal/store"
	"github.com/sells-group/sam-oracle/internal/transform"
	"github.com/sells-group/sam-oracle/internal/workbook"
)

// SheetNames is the fixed set of source sheets a run processes. Both are
// optional; a missing sheet is reported and skipped.
var SheetNames = []string{"General", "Research"}

// Runner executes conversion runs.
type Runner struct {
	table      levels.Table
	store      store.Store
	obs        transform.Observer
	outputDir  string
	writeFiles bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithStore records runs in the given history store.
func WithStore(st store.Store) Option {
	return func(r *Runner) { r.store = st }
}

// WithObserver routes per-row transform progress to obs.
func WithObserver(obs transform.Observer) Option {
	return func(r *Runner) { r.obs = obs }
}

// WithOutputDir sets the directory import files are written to.
func WithOutputDir(dir string) Option {
	return func(r *Runner) { r.outputDir = dir }
}

// WithoutFiles disables import file writing (preview mode).
func WithoutFiles() Option {
	return func(r *Runner) { r.writeFiles = false }
}

// New creates a Runner over the given level table.
func New(table levels.Table, opts ...Option) *Runner {
	r := &Runner{
		table:      table,
		obs:        transform.NopObserver{},
		outputDir:  ".",
		writeFiles: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report is the full outcome of a run: the audit record plus the transformed
// rows of each successful sheet, in sheet order.
type Report struct {
	Run     *model.Run
	Outputs []*transform.SheetOutput
}

// Run converts one input workbook. The returned error is non-nil only for
// run-level failure: the workbook cannot be opened, no sheet produced output,
// or the history store rejected the record. Partial success (one sheet failed,
// the other written) is a complete run.
func (r *Runner) Run(ctx context.Context, inputPath string) (*Report, error) {
	run, err := r.createRun(ctx, inputPath)
	if err != nil {
		return nil, err
	}
	report := &Report{Run: run}

	f, err := workbook.Open(inputPath)
	if err != nil {
		if ferr := r.finishRun(ctx, run, nil); ferr != nil {
			return report, ferr
		}
		return report, err
	}

	zap.L().Info("workbook opened",
		zap.String("input", inputPath),
		zap.Strings("sheets", workbook.SheetNames(f)),
	)

	result := &model.RunResult{}
	for _, name := range SheetNames {
		out, sr := r.processSheet(f, name)
		result.Sheets = append(result.Sheets, sr)
		result.OutputRows += sr.OutputRows
		if out != nil {
			report.Outputs = append(report.Outputs, out)
		}
	}

	if err := r.finishRun(ctx, run, result); err != nil {
		return report, err
	}
	if run.Status == model.RunStatusFailed {
		return report, eris.Errorf("pipeline: no sheet in %s produced output", inputPath)
	}
	return report, nil
}

// processSheet runs one source sheet end to end. A nil SheetOutput means the
// sheet contributed nothing (missing, unidentifiable columns, empty result,
// or write failure); the SheetResult says which.
func (r *Runner) processSheet(f *xlsx.File, name string) (*transform.SheetOutput, model.SheetResult) {
	sr := model.SheetResult{Sheet: name}
	log := zap.L().With(zap.String("sheet", name))

	tbl, ok := workbook.ReadSheet(f, name)
	if !ok {
		log.Warn("sheet not found, skipping")
		sr.Status = model.SheetStatusMissing
		sr.Error = "sheet not found"
		return nil, sr
	}
	sr.SourceRows = len(tbl.Rows)

	cols, err := workbook.DetectColumns(tbl.Headers)
	if err != nil {
		log.Error("column detection failed", zap.Error(err))
		sr.Status = model.SheetStatusFailed
		sr.Error = err.Error()
		return nil, sr
	}
	log.Info("columns identified", zap.Any("columns", cols.Report(tbl.Headers)))

	out := transform.Sheet(name, tbl.Records(cols), r.table, r.obs)
	sr.SkippedRows = out.SkippedRows
	sr.OutputRows = len(out.Rows)

	if len(out.Rows) == 0 {
		log.Error("no rows transformed")
		sr.Status = model.SheetStatusFailed
		sr.Error = "no rows transformed"
		return nil, sr
	}

	if r.writeFiles {
		path := filepath.Join(r.outputDir, workbook.ImportFileName(name))
		if err := workbook.WriteImport(path, out.Rows); err != nil {
			log.Error("write import file failed", zap.Error(err))
			sr.Status = model.SheetStatusFailed
			sr.Error = err.Error()
			return nil, sr
		}
		sr.OutputFile = path
		log.Info("import file written",
			zap.String("file", path),
			zap.Int("rows", len(out.Rows)),
		)
	}

	sr.Status = model.SheetStatusComplete
	return out, sr
}

func (r *Runner) createRun(ctx context.Context, inputPath string) (*model.Run, error) {
	if r.store != nil {
		run, err := r.store.CreateRun(ctx, inputPath)
		return run, eris.Wrap(err, "pipeline: create run")
	}
	now := time.Now().UTC()
	return &model.Run{
		ID:        uuid.New().String(),
		InputFile: inputPath,
		Status:    model.RunStatusRunning,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// finishRun sets the run's final status from the sheet results and persists
// it. A run completes if at least one sheet completed; otherwise it failed.
func (r *Runner) finishRun(ctx context.Context, run *model.Run, result *model.RunResult) error {
	run.Result = result
	run.Status = model.RunStatusFailed
	if result != nil {
		for _, sr := range result.Sheets {
			if sr.Status == model.SheetStatusComplete {
				run.Status = model.RunStatusComplete
				break
			}
		}
	}
	run.UpdatedAt = time.Now().UTC()

	if r.store == nil {
		return nil
	}
	if result != nil {
		if err := r.store.UpdateRunResult(ctx, run.ID, result); err != nil {
			return eris.Wrap(err, "pipeline: record run result")
		}
	}
	if run.Status == model.RunStatusFailed {
		if err := r.store.UpdateRunStatus(ctx, run.ID, model.RunStatusFailed); err != nil {
			return eris.Wrap(err, "pipeline: record run status")
		}
	}
	return nil
}
