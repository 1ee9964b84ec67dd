// Package main provides the CLI entry point for tidemerge-go.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmcruz/tidemerge-go/pkg/tidemerge"
	"github.com/lmcruz/tidemerge-go/pkg/tidemerge/xlsxio"
)

var (
	outputPath string
	configPath string
	quiet      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tidemerge [tides.xlsx] [temperatures.xlsx]",
		Short: "Merge tide events with nearest-in-time temperature readings",
		Long: `tidemerge-go pairs each high-tide ('Preia-Mar') event with the nearest
temperature reading from every sheet of the temperature workbook, within
a one-hour tolerance, and writes one merged sheet per sensor sheet.`,
		Args: cobra.ExactArgs(2),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "merged_data.xlsx", "Output workbook path")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file with column-name overrides")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress diagnostics")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	tidePath, tempPath := args[0], args[1]
	for _, path := range []string{tidePath, tempPath} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
	}

	opts := tidemerge.DefaultOptions()
	if configPath != "" {
		var err error
		if opts, err = tidemerge.LoadOptions(configPath); err != nil {
			return err
		}
	}

	var reporter tidemerge.Reporter = tidemerge.NopReporter{}
	if !quiet {
		reporter = tidemerge.NewLogReporter(log.New(cmd.ErrOrStderr(), "", log.LstdFlags))
	}

	events, err := xlsxio.ReadEventTable(tidePath)
	if err != nil {
		return fmt.Errorf("tide data: %w", err)
	}
	reporter.Infof("tide data loaded from the first sheet of %s", tidePath)

	sheets, err := xlsxio.ReadSensorSheets(tempPath)
	if err != nil {
		return fmt.Errorf("temperature data: %w", err)
	}

	results, err := tidemerge.Merge(events, sheets, opts, reporter)
	if err != nil {
		if errors.Is(err, tidemerge.ErrNoData) {
			return fmt.Errorf("no valid temperature data sheets found after processing")
		}
		return err
	}

	if err := xlsxio.WriteResultSet(outputPath, results); err != nil {
		return err
	}
	reporter.Infof("wrote %d merged sheets to %s", results.Len(), outputPath)
	return nil
}
