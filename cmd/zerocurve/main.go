package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/meenmo/yieldcurve/config"
	"github.com/meenmo/yieldcurve/logging"
	"github.com/meenmo/yieldcurve/report"
)

const (
	envConfigPath = "ZEROCURVE_CONFIG"
	envLogLevel   = "LOG_LEVEL"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zerocurve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", os.Getenv(envConfigPath), "YAML config path (defaults to the bundled reference curve)")
	format := fs.String("format", "table", "Output format: table or json")
	help := fs.Bool("h", false, "Show help")
	fs.BoolVar(help, "help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		usage(stdout)
		return 0
	}

	write, ok := writers[strings.ToLower(strings.TrimSpace(*format))]
	if !ok {
		fmt.Fprintf(stderr, "unknown format %q\n\n", *format)
		usage(stderr)
		return 2
	}

	cfg := config.Default()
	if path := strings.TrimSpace(*configPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return fail(stderr, err)
		}
		cfg = loaded
	}
	if lvl := os.Getenv(envLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fail(stderr, err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.Named("zerocurve")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	src, closeSource, err := report.OpenSource(cfg, logger)
	if err != nil {
		return fail(stderr, err)
	}
	defer func() {
		if err := closeSource(); err != nil {
			logger.Warn("closing quote source", zap.Error(err))
		}
	}()

	res, err := report.Run(ctx, cfg, src, logger)
	if err != nil {
		logger.Debug("run failed", zap.Error(err))
		return fail(stderr, err)
	}
	if err := write(stdout, res); err != nil {
		return fail(stderr, err)
	}
	return 0
}

var writers = map[string]func(io.Writer, *report.Result) error{
	"table": report.WriteTable,
	"json":  report.WriteJSON,
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "An error occurred (%s): %v\n", report.ErrorKind(err), err)
	return 1
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  zerocurve")
	fmt.Fprintln(w, "  zerocurve -config curve.yaml -format json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a zero curve and compare linear and natural cubic spline zero rates.")
	fmt.Fprintln(w, "Without -config the bundled reference quotes are used.")
	fmt.Fprintf(w, "Environment: %s (config path), %s (log level); a .env file is loaded if present.\n", envConfigPath, envLogLevel)
}
