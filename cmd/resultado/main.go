package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/resultado/pkg/config"
	"github.com/yurifrl/resultado/pkg/service"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "resultado",
	})

	var outputPath string
	flag.StringVar(&outputPath, "o", "", "Output directory (default: records/ under the input directory)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		logger.Error("invalid usage", "args", args)
		fmt.Fprintf(os.Stderr, "Usage: resultado [-o output_dir] <directory>\n")
		os.Exit(1)
	}

	cfg := config.New(outputPath)
	processor := service.NewProcessor(cfg, logger)

	dir := args[0]
	if err := processor.ProcessDirectory(dir); err != nil {
		logger.Fatal("processing failed", "error", err)
	}
}
