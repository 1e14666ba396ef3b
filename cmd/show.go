package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"shiftlog/internal/highlight"
	"shiftlog/internal/model"
)

var showMarkers bool

var showCmd = &cobra.Command{
	Use:   "show <export-file>",
	Short: "Print each message with the extracted spans highlighted",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showMarkers, "markers", false,
		"Emit <highlight> text markers instead of ANSI colors")
}

var (
	highlightStyle = lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0"))
	warningStyle   = lipgloss.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("15"))
	headerStyle    = lipgloss.NewStyle().Bold(true)
)

func runShow(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	markers := showMarkers || cfg.Show.Markers

	records, err := parseExportFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	for _, r := range records {
		header := fmt.Sprintf("%s %s  %s", r.Date, r.Time, r.Sender)
		if markers {
			fmt.Println(header)
		} else {
			fmt.Println(headerStyle.Render(header))
		}

		entries := []model.WorkEntry{r.WorkEntry}
		if markers {
			fmt.Println(highlight.Message(r.Message, entries))
		} else {
			ranges := highlight.Ranges(r.Message, entries)
			fmt.Println(renderStyled(r.Message, ranges))
		}
		fmt.Println()
	}
	return nil
}

// renderStyled colorizes the highlight ranges, applying them from the
// highest offset down so earlier insertions never shift pending spans.
func renderStyled(message string, ranges []model.HighlightRange) string {
	ordered := make([]model.HighlightRange, len(ranges))
	copy(ordered, ranges)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Start > ordered[j].Start })

	out := message
	for _, r := range ordered {
		style := highlightStyle
		if r.Warning {
			style = warningStyle
		}
		out = out[:r.Start] + style.Render(out[r.Start:r.End]) + out[r.End:]
	}
	return out
}
