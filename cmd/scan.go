package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeinv/pkg/detect"
	codeinverrors "codeinv/pkg/errors"
	"codeinv/pkg/export"
	"codeinv/pkg/scan"
	"codeinv/pkg/walk"
)

var (
	scanInput  string
	scanOutput string
	scanFormat string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a folder and export a project inventory",
	Long: `Scan a folder recursively for git repositories and nested projects,
then export one inventory record per detected project.

The output format is chosen with --format, or inferred from the output
file extension (.csv, .json, .yaml/.yml, .db/.sqlite/.sqlite3).

Examples:
  codeinv scan --input ~/src --output inventory.csv
  codeinv scan --input ~/src --output inventory.db --format sqlite
  codeinv scan --input . --output /tmp/projects.json -v`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScanCommand()
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanInput, "input", "", "input folder to scan recursively (required)")
	scanCmd.Flags().StringVar(&scanOutput, "output", "", "output file path (default from config)")
	scanCmd.Flags().StringVar(&scanFormat, "format", "", "output format: csv, json, yaml, sqlite (default inferred)")
	_ = scanCmd.MarkFlagRequired("input")
}

func runScanCommand() error {
	cfg, err := loadConfig()
	if err != nil {
		return codeinverrors.Wrap(err, "failed to load configuration")
	}

	outputPath := scanOutput
	if outputPath == "" {
		outputPath = cfg.Output.Path
	}
	format := scanFormat
	if format == "" {
		format = cfg.Output.Format
	}

	writer, err := export.NewWriter(format, outputPath)
	if err != nil {
		return err
	}

	walker := walk.NewWalker(cfg.Scan.IgnoreSet(), logger)
	scanner := scan.NewScanner(detect.DefaultPipeline(), walker, logger)

	records, err := scanner.Scan(scanInput)
	if err != nil {
		return err
	}

	if err := writer.Write(records); err != nil {
		return err
	}

	fmt.Printf("Wrote %d record(s) to %s\n", len(records), outputPath)
	return nil
}
