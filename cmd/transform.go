package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sam-oracle/internal/model"
	"github.com/sells-group/sam-oracle/internal/pipeline"
	"github.com/sells-group/sam-oracle/internal/transform"
)

var (
	transformInput     string
	transformOutputDir string
	transformTableFile string
	transformNoHistory bool
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Convert an input workbook to Oracle import files",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		table, err := loadTable(transformTableFile)
		if err != nil {
			return err
		}

		outputDir := transformOutputDir
		if outputDir == "" {
			outputDir = cfg.Output.Dir
		}

		opts := []pipeline.Option{
			pipeline.WithOutputDir(outputDir),
			pipeline.WithObserver(transform.ZapObserver{}),
		}

		if cfg.History.Enabled && !transformNoHistory {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
			if err := st.Migrate(ctx); err != nil {
				return err
			}
			opts = append(opts, pipeline.WithStore(st))
		}

		runner := pipeline.New(table, opts...)
		report, err := runner.Run(ctx, transformInput)
		if err != nil {
			return eris.Wrap(err, "transform")
		}

		logRunSummary(report.Run)
		return nil
	},
}

func logRunSummary(run *model.Run) {
	for _, sr := range run.Result.Sheets {
		if sr.Status != model.SheetStatusComplete {
			zap.L().Warn("sheet not converted",
				zap.String("sheet", sr.Sheet),
				zap.String("status", string(sr.Status)),
				zap.String("error", sr.Error),
			)
			continue
		}
		zap.L().Info("sheet converted",
			zap.String("sheet", sr.Sheet),
			zap.Int("source_rows", sr.SourceRows),
			zap.Int("output_rows", sr.OutputRows),
			zap.Int("skipped_rows", sr.SkippedRows),
			zap.String("file", sr.OutputFile),
		)
	}
	zap.L().Info("transformation complete",
		zap.String("run_id", run.ID),
		zap.String("status", string(run.Status)),
		zap.Int("output_rows", run.Result.OutputRows),
	)
}

func init() {
	transformCmd.Flags().StringVar(&transformInput, "input", "", "path to input workbook (required)")
	transformCmd.Flags().StringVar(&transformOutputDir, "output-dir", "", "directory for import files (default from config)")
	transformCmd.Flags().StringVar(&transformTableFile, "table", "", "YAML file overriding the approval-level table")
	transformCmd.Flags().BoolVar(&transformNoHistory, "no-history", false, "do not record this run in the history store")
	_ = transformCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(transformCmd)
}
