package strategy

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/receiptwise/extractor/constants"
	"github.com/receiptwise/extractor/internal/entity"
)

// Strategy is one self-contained extraction heuristic. Implementations
// are stateless and side-effect-free: Extract is a pure function of the
// two inputs, so strategies can run concurrently.
type Strategy interface {
	Name() string
	Priority() int
	IsApplicable(doc entity.DocumentStructure, text entity.ProcessedText) bool
	Extract(doc entity.DocumentStructure, text entity.ProcessedText) entity.ExtractionResult
}

// Engine runs every applicable strategy and collects the results whose
// confidence clears the floor.
type Engine struct {
	logger     *slog.Logger
	strategies []Strategy
}

// NewEngine builds the default strategy set, highest priority first.
// A nil vendor index falls back to the built-in list.
func NewEngine(logger *slog.Logger, vendors *VendorIndex) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if vendors == nil {
		vendors = DefaultVendors()
	}
	e := &Engine{
		logger: logger,
		strategies: []Strategy{
			&structureAware{vendors: vendors},
			&contextual{vendors: vendors},
			&mathematical{},
			&heuristic{},
		},
	}
	sort.SliceStable(e.strategies, func(i, j int) bool {
		return e.strategies[i].Priority() > e.strategies[j].Priority()
	})
	return e
}

// Run evaluates applicability per strategy, executes the applicable ones
// concurrently, and returns results above the confidence floor in
// descending priority order. Execution order does not affect correctness;
// consolidation re-sorts by confidence.
func (e *Engine) Run(ctx context.Context, doc entity.DocumentStructure, text entity.ProcessedText) ([]entity.ExtractionResult, error) {
	applicable := make([]Strategy, 0, len(e.strategies))
	for _, s := range e.strategies {
		if s.IsApplicable(doc, text) {
			applicable = append(applicable, s)
		}
	}

	results := make([]entity.ExtractionResult, len(applicable))
	g, _ := errgroup.WithContext(ctx)
	for i, s := range applicable {
		i, s := i, s
		g.Go(func() error {
			results[i] = s.Extract(doc, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]entity.ExtractionResult, 0, len(results))
	for _, r := range results {
		if r.Confidence > constants.MinStrategyConfidence && r.HasAny() {
			kept = append(kept, r)
		}
	}
	e.logger.Debug("strategies.run",
		"applicable", len(applicable),
		"kept", len(kept),
	)
	return kept, nil
}
