package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/sam-oracle/internal/levels"
)

var levelsTableFile string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the active approval-level table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		table, err := loadTable(levelsTableFile)
		if err != nil {
			return err
		}
		formatLevels(os.Stdout, table)
		return nil
	},
}

func formatLevels(w io.Writer, table levels.Table) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "LEVEL\tFROM\tTO")
	for _, l := range table {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", l.Level, l.From, l.To)
	}
	_ = tw.Flush()
}

func init() {
	levelsCmd.Flags().StringVar(&levelsTableFile, "table", "", "YAML file overriding the approval-level table")
	rootCmd.AddCommand(levelsCmd)
}
