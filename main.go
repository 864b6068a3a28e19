package main

import (
	"context"
	"fmt"
	"os"

	"github.com/meenmo/yieldcurve/config"
	"github.com/meenmo/yieldcurve/logging"
	"github.com/meenmo/yieldcurve/marketdata"
	"github.com/meenmo/yieldcurve/report"
)

func main() {
	cfg := config.Default()
	logger := logging.NewOrNop(cfg.Log)
	defer func() { _ = logger.Sync() }()

	res, err := report.Run(context.Background(), cfg, marketdata.DefaultSource(), logger.Named("demo"))
	if err == nil {
		err = report.WriteTable(os.Stdout, res)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred (%s): %v\n", report.ErrorKind(err), err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
