package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sam-oracle/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "sam-oracle",
	Short: "Convert SAM approval authority workbooks to Oracle import format",
	Long:  "Reads a spreadsheet of per-person approval/review thresholds, expands each threshold range across the fixed approval-level table, and writes one Oracle import workbook per source sheet.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
