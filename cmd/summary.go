package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shiftlog/internal/session"
	"shiftlog/internal/timeutil"
)

var (
	summaryFrom   string
	summaryTo     string
	summaryWorker string
)

var summaryCmd = &cobra.Command{
	Use:   "summary <export-file>",
	Short: "Show aggregated per-worker totals",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFrom, "from", "", "Only include entries on or after this date (dd.mm.yyyy)")
	summaryCmd.Flags().StringVar(&summaryTo, "to", "", "Only include entries on or before this date (dd.mm.yyyy)")
	summaryCmd.Flags().StringVar(&summaryWorker, "worker", "", "Only include entries from this sender")
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	worker := summaryWorker
	if worker == "" {
		worker = cfg.Summary.Worker
	}

	records, err := parseExportFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	sess := session.New(records)
	filtered := sess.Filter(summaryFrom, summaryTo, worker)
	summaries := session.Summarize(filtered)

	if len(summaries) == 0 {
		fmt.Println("No complete entries in range.")
		return nil
	}

	fmt.Printf("%-24s%6s  %8s  %8s\n", "Worker", "Days", "Netto", "Regie")
	fmt.Println("--------------------------------------------------")
	var totalNetto, totalRegie, totalDays int
	for _, s := range summaries {
		fmt.Printf("%-24s%6d  %8s  %8s\n", s.Worker, s.WorkingDays, s.NettoHHMM(), s.RegieHHMM())
		totalNetto += s.NettoMinutes
		totalRegie += s.RegieMinutes
		totalDays += s.WorkingDays
	}
	fmt.Println("--------------------------------------------------")
	fmt.Printf("%-24s%6d  %8s  %8s\n", "Total", totalDays,
		timeutil.MinutesToHHMM(totalNetto), timeutil.MinutesToHHMM(totalRegie))

	return nil
}
