package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/receiptwise/extractor/internal/common"
	"github.com/receiptwise/extractor/internal/normalize"
	"github.com/receiptwise/extractor/internal/pipeline"
	"github.com/receiptwise/extractor/internal/schema"
	"github.com/receiptwise/extractor/internal/strategy"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "extract <ocr-text-file | ->")
		os.Exit(2)
	}

	raw, err := readInput(os.Args[1])
	if err != nil {
		logger.Error("read input", "arg", os.Args[1], "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	vendors, err := loadVendors(cfg, logger)
	if err != nil {
		os.Exit(1)
	}

	requestID := uuid.New().String()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = common.WithRequestID(ctx, requestID)

	p := pipeline.NewProcessor(logger, vendors)

	start := time.Now()
	res, err := p.Process(ctx, string(raw), normalize.DefaultOptions())
	dur := time.Since(start)
	if err != nil {
		logger.Error("extraction failed", "request_id", requestID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	out, err := schema.ValidateResult(res)
	if err != nil {
		logger.Error("result failed schema validation", "request_id", requestID, "error", err)
		os.Exit(1)
	}

	logger.Info("extraction OK",
		"request_id", requestID,
		"vendor", res.Vendor,
		"validation_passed", res.ValidationPassed,
		"overall_confidence", res.OverallConfidence,
		"duration_ms", dur.Milliseconds(),
	)
	fmt.Println(string(out))
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

func loadVendors(cfg *common.Config, logger *slog.Logger) (*strategy.VendorIndex, error) {
	if cfg.Vendor.AliasFile == "" {
		return nil, nil
	}
	vendors, err := strategy.LoadVendorAliases(cfg.Vendor.AliasFile)
	if err != nil {
		logger.Error("load vendor aliases", "path", cfg.Vendor.AliasFile, "error", err)
		return nil, err
	}
	return vendors, nil
}
