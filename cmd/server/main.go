package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/resultado/pkg/config"
	"github.com/yurifrl/resultado/pkg/server"
	"github.com/yurifrl/resultado/pkg/store"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "resultado",
	})

	var (
		port   = flag.String("port", "3000", "Server port")
		output = flag.String("o", "records", "Record store directory")
	)
	flag.Parse()

	cfg := config.New(*output)
	st, err := store.NewFileStore(*output)
	if err != nil {
		logger.Fatal("failed to open store", "err", err)
	}

	srv := server.New(cfg, logger, st)
	addr := fmt.Sprintf("0.0.0.0:%s", *port)
	logger.Info("starting server", "addr", addr)
	if err := srv.Start(addr); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
