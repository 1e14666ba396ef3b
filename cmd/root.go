package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shiftlog/internal/chat"
	"shiftlog/internal/config"
	"shiftlog/internal/model"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "shiftlog",
	Short: "shiftlog – extract work-shift records from chat exports",
	Long: `shiftlog parses WhatsApp-style chat exports in which field workers
report their daily working time, extracts date, start/end time, break and
regie ("overtime task") durations from each message, and exports the
resulting table or per-worker totals.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show parse diagnostics")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(summaryCmd)
}

// newLogger builds the parse-diagnostics logger. Without --verbose only
// warnings (dropped messages, unparseable headers) are shown.
func newLogger() *zap.SugaredLogger {
	zapCfg := zap.NewDevelopmentConfig()
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// loadConfig returns settings from file/env, falling back to defaults on
// error so a broken config file never blocks parsing.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return config.Config{}
	}
	return cfg
}

// parseExportFile reads and segments one chat export file.
func parseExportFile(path string) ([]model.MessageRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export file: %w", err)
	}

	log := newLogger()
	defer func() { _ = log.Sync() }()

	records, err := chat.ParseExport(string(data), log)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
