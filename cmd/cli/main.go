package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/yurifrl/resultado/pkg/config"
	"github.com/yurifrl/resultado/pkg/extractor"
	"github.com/yurifrl/resultado/pkg/manifest"
	"github.com/yurifrl/resultado/pkg/store"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "resultado-cli",
	Short: "Financial spreadsheet extraction command-line interface",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract [flags] <input_path>",
	Short: "Extract yearly records from result spreadsheets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			Prefix:          "resultado-cli",
			Level:           log.DebugLevel,
		})

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		matches, err := filepath.Glob(args[0])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no files found matching pattern %s", args[0])
		}

		ex := extractor.New(logger, cfg.Extraction)
		records := ex.ExtractBatch(matches)
		if len(records) == 0 {
			return fmt.Errorf("no records extracted from %d file(s)", len(matches))
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}

		printSummary(records)

		if cfg.OutputPath != "" {
			st, err := store.NewFileStore(cfg.OutputPath)
			if err != nil {
				return err
			}
			for year, rec := range records {
				if err := store.Validate(rec); err != nil {
					logger.Warn("record failed validation", "year", year, "reason", err)
					continue
				}
				if err := st.Put(year, rec); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <manifest_file>",
	Short: "Preview a YAML manifest of workbooks (dry-run)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(args[0])
		if err != nil {
			return err
		}

		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "resultado-cli"})
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		fmt.Printf("Manifest preview for %s\n", args[0])
		m.Print()

		paths, err := m.Paths()
		if err != nil {
			return err
		}

		ex := extractor.New(logger, cfg.Extraction)
		records := ex.ExtractBatch(paths)

		years := sortedYears(records)
		fmt.Println("Summary of extraction:")
		for _, year := range years {
			status := "ok"
			if err := store.Validate(records[year]); err != nil {
				status = err.Error()
			}
			fmt.Printf("  - year %d : %d line items, %s\n", year, len(records[year].LineItems), status)
		}
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <input_path>",
	Short: "Extract and dump full records for debugging",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "resultado-cli",
			Level:  log.DebugLevel,
		})

		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		ex := extractor.New(logger, cfg.Extraction)
		records := ex.ExtractBatch([]string{args[0]})
		if len(records) == 0 {
			return fmt.Errorf("no records extracted from %s", args[0])
		}

		for _, year := range sortedYears(records) {
			pp.Println(records[year])
		}
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().String("output_path", "", "Directory to store extracted records")

	// Flags specific to the extract subcommand
	extractCmd.Flags().Bool("json", false, "Print records as JSON instead of a summary")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
