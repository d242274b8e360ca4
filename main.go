package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	"rental-viewer/cache"
	"rental-viewer/config"
	"rental-viewer/models"
	"rental-viewer/server"
	"rental-viewer/services"
	"rental-viewer/storage"
	"rental-viewer/utils"
)

// listFlag collects a repeatable, comma-separated string flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

type options struct {
	file   string
	format string
	out    string
	sel    models.Selection
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("rental-viewer", flag.ContinueOnError)
	o := &options{}
	var regions, subRegions, axis1, axis2 listFlag

	fs.StringVar(&o.file, "file", "", "announcement file to query once (name in SOURCE_DIR or a path); serves HTTP when empty")
	fs.StringVar(&o.format, "format", "table", "one-shot output format: table or csv")
	fs.StringVar(&o.out, "out", "", "write csv output to this path instead of stdout")
	fs.Var(&regions, "region", "시도 to include (repeatable, comma-separated)")
	fs.Var(&subRegions, "sub-region", "시군구 to include (repeatable, comma-separated)")
	fs.Var(&axis1, "axis1", "first categorical filter values")
	fs.Var(&axis2, "axis2", "second categorical filter values")
	fs.BoolVar(&o.sel.Deduplicate, "dedupe", false, "collapse listings sharing the same address")
	fs.Func("area-min", "minimum floor area (㎡)", floatFlag(&o.sel.AreaMin))
	fs.Func("area-max", "maximum floor area (㎡)", floatFlag(&o.sel.AreaMax))
	fs.Func("deposit-min", "minimum deposit (원)", intFlag(&o.sel.DepositMin))
	fs.Func("deposit-max", "maximum deposit (원)", intFlag(&o.sel.DepositMax))

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.format != "table" && o.format != "csv" {
		return nil, fmt.Errorf("unknown -format %q (want table or csv)", o.format)
	}
	o.sel.Regions, o.sel.SubRegions = regions, subRegions
	o.sel.Axis1, o.sel.Axis2 = axis1, axis2
	return o, nil
}

func floatFlag(dst **float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func intFlag(dst **int64) func(string) error {
	return func(s string) error {
		v, err := services.ParseCurrency(s)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func main() {
	cfg := config.Load()
	logger := utils.NewLoggerTo(os.Stdout, os.Stderr, utils.ParseLevel(cfg.LogLevel))

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Error("%v", err)
		os.Exit(2)
	}

	links := services.MapLinker{BaseURL: cfg.MapBaseURL, Encode: cfg.MapURLEncode}
	loader := services.NewLoader(logger, links)
	datasets := cache.New(loader.Load, cfg.CacheTTL, logger)
	viewer := services.NewViewer(
		datasets,
		services.NewFilterEngine(cfg.DepositStep),
		services.NewAggregator(logger, links),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.file != "" {
		if err := runOnce(ctx, cfg, viewer, opts); err != nil {
			logger.Error("%v", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("=== Rental housing viewer starting ===")
	logger.Info("Config: source: %s | addr: %s | map links encoded: %v | deposit step: %d",
		cfg.SourceDir, cfg.HTTPAddr, cfg.MapURLEncode, cfg.DepositStep)

	gin.SetMode(cfg.GinMode)
	if err := server.New(cfg, viewer, logger).Run(ctx); err != nil {
		logger.Error("HTTP server failed: %v", err)
		os.Exit(1)
	}
}

// runOnce answers a single query from the command line.
func runOnce(ctx context.Context, cfg *config.Config, viewer *services.Viewer, opts *options) error {
	path := opts.file
	if _, err := os.Stat(path); err != nil && filepath.Base(path) == path {
		if path, err = storage.ResolveSource(cfg.SourceDir, opts.file); err != nil {
			return err
		}
	}

	view, err := viewer.Query(ctx, path, opts.sel)
	if err != nil && !errors.Is(err, services.ErrEmptySelection) {
		return err
	}

	if opts.format == "table" {
		services.NewPrinter(os.Stdout).Print(view)
		return nil
	}

	var w storage.TableWriter = storage.NewCSVWriter(os.Stdout)
	if opts.out != "" {
		if w, err = storage.NewCSVFileWriter(opts.out); err != nil {
			return err
		}
	}
	if err := w.WriteTable(&view.Table); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
