// Package cmd provides CLI commands for bibtidy.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "bibtidy",
	Short: "Normalize BibTeX entries into one canonical convention",
	Long: `Bibtidy reformats BibTeX entries into a single deterministic convention:
author names reduced to initials plus family name, chemical formulas in
titles marked up with subscripts, DOI and URL fields reconciled, and fields
emitted in a fixed order.

It can also build entries from scratch by looking DOIs up in Crossref.

Examples:
  bibtidy fmt -i refs.bib -o tidy.bib
  cat refs.bib | bibtidy fmt
  bibtidy doi -i dois.txt
  echo 10.1038/nature12373 | bibtidy doi`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Optional .env for LOG_LEVEL and CROSSREF_MAILTO; absence is fine.
	_ = godotenv.Load()
	setupLogger()
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(doiCmd)
	rootCmd.AddCommand(profilesCmd)
}
