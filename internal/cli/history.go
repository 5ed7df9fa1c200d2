// history.go implements the "pwcheck history" command listing logged checks.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pwcheck-dev/pwcheck/internal/log"
	"github.com/pwcheck-dev/pwcheck/internal/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently logged password checks",
	Long: `Display the most recent entries of the password log along with
a tally of ratings across the whole log.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Number of recent entries to show (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := resolveLogPath(cfg)
	if err != nil {
		return err
	}

	attempts, err := log.NewLogger(path).ReadAll()
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), report.FormatReport(report.Generate(path, attempts, historyLimit)))
	return nil
}
