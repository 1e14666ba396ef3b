package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"shiftlog/internal/session"
)

var parseCmd = &cobra.Command{
	Use:   "parse <export-file>",
	Short: "Parse a chat export and print the extracted table",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	records, err := parseExportFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	sess := session.New(records)
	duplicates := sess.DuplicateDates()

	fmt.Printf("%-12s %-12s %-16s %-6s %-6s %-6s %-6s %-6s %s\n",
		"Msg Date", "Date", "Worker", "Start", "End", "Break", "Netto", "Regie", "")
	for _, r := range records {
		flag := ""
		switch {
		case duplicates[r.ID]:
			flag = "! duplicate date"
		case r.StartTime == "" || r.EndTime == "":
			flag = "? needs attention"
		}
		fmt.Printf("%-12s %-12s %-16s %-6s %-6s %-6s %-6s %-6s %s\n",
			r.Date, r.WorkDate, r.Sender,
			r.StartTime, r.EndTime, r.BreakTime, r.NettoTime, r.RegieTime, flag)
	}

	stats := session.Analyze(records)
	fmt.Printf("\n%d messages", stats.TotalMessages)
	if stats.FirstDate != "" {
		fmt.Printf(", %s to %s", stats.FirstDate, stats.LastDate)
	}
	fmt.Println()

	var senders []string
	for s := range stats.Senders {
		senders = append(senders, s)
	}
	sort.Strings(senders)
	for _, s := range senders {
		fmt.Printf("  %-20s %d\n", s, stats.Senders[s])
	}

	return nil
}
