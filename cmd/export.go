package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"shiftlog/internal/export"
	"shiftlog/internal/model"
	"shiftlog/internal/session"
)

var (
	exportFormat string
	exportOutput string
	exportFrom   string
	exportTo     string
	exportWorker string
)

var exportCmd = &cobra.Command{
	Use:   "export <export-file>",
	Short: "Export parsed work entries as CSV, JSON or XLSX",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv, json or xlsx")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout; required for xlsx)")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Only include entries on or after this date (dd.mm.yyyy)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Only include entries on or before this date (dd.mm.yyyy)")
	exportCmd.Flags().StringVar(&exportWorker, "worker", "", "Only include entries from this sender")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	format := exportFormat
	if format == "" {
		format = cfg.Export.Format
	}
	output := exportOutput
	if output == "" {
		output = cfg.Export.Output
	}

	records, err := parseExportFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	sess := session.New(records)
	filtered := sess.Filter(exportFrom, exportTo, exportWorker)

	write, err := exportWriter(format, filtered)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if output == "" {
		if format == "xlsx" {
			fmt.Fprintln(os.Stderr, "xlsx export requires --output")
			os.Exit(2)
		}
		if err := write(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return nil
	}

	if err := export.WriteFile(output, write); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Exported %d entries to %s\n", len(filtered), output)
	return nil
}

func exportWriter(format string, records []model.MessageRecord) (func(io.Writer) error, error) {
	switch format {
	case "csv", "":
		return func(w io.Writer) error { return export.WriteCSV(w, records) }, nil
	case "json":
		return func(w io.Writer) error { return export.WriteJSON(w, records) }, nil
	case "xlsx":
		return func(w io.Writer) error { return export.WriteXLSX(w, records) }, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (want csv, json or xlsx)", format)
	}
}
