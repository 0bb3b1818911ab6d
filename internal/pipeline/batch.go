package pipeline

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/common"
	"github.com/receiptwise/extractor/internal/entity"
	"github.com/receiptwise/extractor/internal/normalize"
)

// BatchItem is the outcome of one file in a batch run.
type BatchItem struct {
	JobID  uuid.UUID                  `json:"job_id"`
	Path   string                     `json:"path"`
	Status constants.JobStatus        `json:"status"`
	Result *entity.ConsolidatedResult `json:"result,omitempty"`
	Error  string                     `json:"error,omitempty"`
}

// Batch runs the pipeline over many OCR text files with bounded
// concurrency. Each file is independent; one failure never aborts the run.
type Batch struct {
	Logger *slog.Logger
	Proc   *Processor
	Cfg    common.BatchConfig
}

func NewBatch(logger *slog.Logger, proc *Processor, cfg common.BatchConfig) *Batch {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 4
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	return &Batch{Logger: logger, Proc: proc, Cfg: cfg}
}

// ProcessFiles reads and extracts every path, returning one item per input
// in input order. Results below the confidence gate are marked for review.
func (b *Batch) ProcessFiles(ctx context.Context, paths []string) []BatchItem {
	items := make([]BatchItem, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.Cfg.Concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			items[i] = b.processOne(gctx, path)
			return nil
		})
	}
	_ = g.Wait()

	ok := 0
	for _, it := range items {
		if it.Status != constants.JobStatusFailed {
			ok++
		}
	}
	b.Logger.Info("batch.done", "files", len(paths), "ok", ok)
	return items
}

func (b *Batch) processOne(ctx context.Context, path string) BatchItem {
	item := BatchItem{JobID: uuid.New(), Path: path, Status: constants.JobStatusRunning}
	ctx = common.WithJobID(ctx, item.JobID.String())

	raw, err := os.ReadFile(path)
	if err != nil {
		b.Logger.Error("batch.read.failed", "job_id", item.JobID, "path", path, "error", err)
		item.Status = constants.JobStatusFailed
		item.Error = err.Error()
		return item
	}

	res, err := b.Proc.Process(ctx, string(raw), normalize.DefaultOptions())
	if err != nil {
		b.Logger.Error("batch.extract.failed", "job_id", item.JobID, "path", path, "error", err)
		item.Status = constants.JobStatusFailed
		item.Error = err.Error()
		return item
	}

	item.Result = &res
	if res.ValidationPassed && res.OverallConfidence >= b.Cfg.MinConfidence {
		item.Status = constants.JobStatusExtracted
	} else {
		item.Status = constants.JobStatusNeedsReview
	}
	b.Logger.Info("batch.extract.ok",
		"job_id", item.JobID,
		"path", path,
		"status", item.Status,
		"confidence", res.OverallConfidence,
	)
	return item
}
