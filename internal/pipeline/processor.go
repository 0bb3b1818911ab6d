package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/common"
	"github.com/receiptwise/extractor/internal/consolidate"
	"github.com/receiptwise/extractor/internal/entity"
	"github.com/receiptwise/extractor/internal/normalize"
	"github.com/receiptwise/extractor/internal/strategy"
	"github.com/receiptwise/extractor/internal/structure"
)

// Processor coordinates the linear extraction pipeline:
// raw text -> normalized text -> structure -> strategy results -> record.
// Stateless across calls; every invocation builds fresh value objects.
type Processor struct {
	Logger *slog.Logger
	Engine *strategy.Engine
}

// NewProcessor wires the pipeline. A nil vendor index uses the built-in
// vendor list.
func NewProcessor(logger *slog.Logger, vendors *strategy.VendorIndex) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger: logger,
		Engine: strategy.NewEngine(logger, vendors),
	}
}

// Process runs one document through the full pipeline. Absence of a field
// is never an error; only empty or malformed input is rejected here.
func (p *Processor) Process(ctx context.Context, raw string, opts normalize.Options) (entity.ConsolidatedResult, error) {
	logger := p.requestLogger(ctx)

	if strings.TrimSpace(raw) == "" {
		return entity.ConsolidatedResult{}, common.NewAppError("EMPTY_INPUT", "no text to process", common.ErrEmptyInput)
	}
	v := common.NewValidator()
	v.Field("text", raw, common.UTF8, common.MaxBytes(constants.MaxInputBytes))
	if v.HasErrors() {
		return entity.ConsolidatedResult{}, common.NewAppError("INVALID_INPUT", v.Error().Error(), common.ErrInvalidInput)
	}

	text := normalize.Normalize(raw, opts)
	logger.Debug("normalize.done",
		"quality", text.Quality,
		"corrections", len(text.Corrections),
		"lines", len(text.Lines),
	)

	doc := structure.Analyze(text.Cleaned)
	logger.Debug("structure.done",
		"format", doc.Format,
		"layout", doc.Layout,
		"sections", len(doc.Sections),
		"confidence", doc.Confidence,
	)

	results, err := p.Engine.Run(ctx, doc, text)
	if err != nil {
		return entity.ConsolidatedResult{}, common.WrapError(err, "run strategies")
	}

	out := consolidate.Consolidate(results)
	logger.Info("extract.ok",
		"vendor", out.Vendor,
		"total_set", out.Total != nil,
		"date", out.Date,
		"methods", out.ExtractionMethods,
		"overall_confidence", out.OverallConfidence,
		"validation_passed", out.ValidationPassed,
	)
	return out, nil
}

// requestLogger tags the pipeline logs with whatever correlation IDs the
// caller put on the context.
func (p *Processor) requestLogger(ctx context.Context) *slog.Logger {
	logger := p.Logger
	if id := common.RequestIDFromContext(ctx); id != "" {
		logger = logger.With("request_id", id)
	}
	if id := common.JobIDFromContext(ctx); id != "" {
		logger = logger.With("job_id", id)
	}
	return logger
}
