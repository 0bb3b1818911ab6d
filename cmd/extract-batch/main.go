package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/receiptwise/extractor/internal/common"
	"github.com/receiptwise/extractor/internal/export"
	"github.com/receiptwise/extractor/internal/ingest"
	"github.com/receiptwise/extractor/internal/pipeline"
	"github.com/receiptwise/extractor/internal/strategy"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	watch := flag.Bool("watch", false, "keep watching the directory for new files")
	flag.Parse()
	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "extract-batch [-watch] <directory>")
		os.Exit(2)
	}
	root := flag.Arg(0)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	var vendors *strategy.VendorIndex
	if cfg.Vendor.AliasFile != "" {
		v, err := strategy.LoadVendorAliases(cfg.Vendor.AliasFile)
		if err != nil {
			logger.Error("load vendor aliases", "path", cfg.Vendor.AliasFile, "error", err)
			os.Exit(1)
		}
		vendors = v
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	proc := pipeline.NewProcessor(logger, vendors)
	batch := pipeline.NewBatch(logger, proc, cfg.Batch)

	if *watch {
		runWatch(ctx, logger, batch, cfg, root)
		return
	}

	paths, stats, err := ingest.ScanDirectory(root, nil)
	if err != nil {
		logger.Error("scan directory", "root", root, "error", err)
		os.Exit(1)
	}
	logger.Info("scan.done", "root", root, "scanned", stats.Scanned, "matched", stats.Matched)

	items := batch.ProcessFiles(ctx, paths)
	emit(logger, cfg, items)
}

func runWatch(ctx context.Context, logger *slog.Logger, batch *pipeline.Batch, cfg *common.Config, root string) {
	evCh, errCh, err := ingest.StartWatcher(ctx, logger, ingest.WatchConfig{
		Roots:       []string{root},
		InitialScan: cfg.Ingest.InitialScan,
		Debounce:    cfg.Ingest.Debounce,
	})
	if err != nil {
		logger.Error("start watcher", "root", root, "error", err)
		os.Exit(1)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-evCh:
			if !ok {
				return
			}
			items := batch.ProcessFiles(ctx, []string{path})
			emit(logger, cfg, items)
		case werr, ok := <-errCh:
			if !ok {
				return
			}
			logger.Error("watch error", "error", werr)
		}
	}
}

func emit(logger *slog.Logger, cfg *common.Config, items []pipeline.BatchItem) {
	enc := json.NewEncoder(os.Stdout)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			logger.Error("encode result", "path", it.Path, "error", err)
		}
	}
	if cfg.Export.OutputPath == "" {
		return
	}
	svc := export.NewService(logger)
	b, err := svc.WriteResultsXLSX(items)
	if err != nil {
		logger.Error("export xlsx", "error", err)
		return
	}
	if err := os.WriteFile(cfg.Export.OutputPath, b, 0o644); err != nil {
		logger.Error("write xlsx", "path", cfg.Export.OutputPath, "error", err)
		return
	}
	logger.Info("xlsx written", "path", cfg.Export.OutputPath, "rows", len(items))
}
