package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/sam-oracle/internal/pipeline"
	"github.com/sells-group/sam-oracle/internal/transform"
)

var (
	previewInput     string
	previewRows      int
	previewTableFile string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Dry-run the conversion and print the first output rows",
	Long:  "Transforms both sheets without writing import files or recording a run, and prints the first N output rows per sheet.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		table, err := loadTable(previewTableFile)
		if err != nil {
			return err
		}

		runner := pipeline.New(table, pipeline.WithoutFiles())
		report, err := runner.Run(cmd.Context(), previewInput)
		if err != nil {
			return eris.Wrap(err, "preview")
		}

		for _, out := range report.Outputs {
			fmt.Fprintf(os.Stdout, "\n%s (%d rows, %d skipped):\n",
				out.Sheet, len(out.Rows), out.SkippedRows)
			formatPreview(os.Stdout, out, previewRows)
		}
		return nil
	},
}

// formatPreview writes the first n output rows of a sheet as a table.
func formatPreview(w io.Writer, out *transform.SheetOutput, n int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "COST CENTER\tLEVEL\tTYPE\tROLE\tORACLE ID\tFROM\tTO")

	rows := out.Rows
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			r.CostCenter, r.Level, r.Type, r.Role, r.OracleID, r.From, r.To)
	}
	if len(out.Rows) > len(rows) {
		_, _ = fmt.Fprintf(tw, "... %d more rows\n", len(out.Rows)-len(rows))
	}
	_ = tw.Flush()
}

func init() {
	previewCmd.Flags().StringVar(&previewInput, "input", "", "path to input workbook (required)")
	previewCmd.Flags().IntVar(&previewRows, "rows", 10, "number of output rows to print per sheet")
	previewCmd.Flags().StringVar(&previewTableFile, "table", "", "YAML file overriding the approval-level table")
	_ = previewCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(previewCmd)
}
