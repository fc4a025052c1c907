package service

import (
	"context"

	"greenboard/internal/core/logger"
	"greenboard/internal/features/emissions/domain"
	pkgdomain "greenboard/internal/features/packages/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// defaultBatchConcurrency bounds the worker pool when no limit is given.
const defaultBatchConcurrency = 10

// maxSummaryMessages caps how many failure messages a summary carries.
const maxSummaryMessages = 5

// BatchItem is the outcome of one package in a batch. Index ties the
// outcome back to its position in the input slice, since completion order
// under concurrency is not input order.
type BatchItem struct {
	Index  int                    `json:"index"`
	Result *domain.EmissionResult `json:"result,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// BatchSummary aggregates a batch run.
type BatchSummary struct {
	Total     int      `json:"total"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	// Errors holds a representative sample of failure messages.
	Errors []string `json:"errors,omitempty"`
}

// BatchRunner calculates emissions for many packages with a bounded
// worker pool. One failed package never aborts the batch; failures are
// recorded per item and summarized.
type BatchRunner struct {
	engine      *Engine
	concurrency int
	logger      *zap.Logger
}

// NewBatchRunner creates a BatchRunner with the given worker limit.
// Limits below 1 use the default.
func NewBatchRunner(engine *Engine, concurrency int) *BatchRunner {
	if concurrency < 1 {
		concurrency = defaultBatchConcurrency
	}
	return &BatchRunner{
		engine:      engine,
		concurrency: concurrency,
		logger:      logger.Named("batch"),
	}
}

// Run calculates emissions for every package and returns per-item results
// in input order plus a summary.
func (r *BatchRunner) Run(ctx context.Context, packages []pkgdomain.PackageInfo) ([]BatchItem, BatchSummary) {
	items := make([]BatchItem, len(packages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i := range packages {
		i := i
		g.Go(func() error {
			result, err := r.engine.Calculate(gctx, &packages[i])
			if err != nil {
				items[i] = BatchItem{Index: i, Error: err.Error()}
				return nil
			}
			items[i] = BatchItem{Index: i, Result: result}
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes completion.
	_ = g.Wait()

	summary := BatchSummary{Total: len(packages)}
	for _, item := range items {
		if item.Error != "" {
			summary.Failed++
			if len(summary.Errors) < maxSummaryMessages {
				summary.Errors = append(summary.Errors, item.Error)
			}
			continue
		}
		summary.Succeeded++
	}

	r.logger.Info("Batch calculation finished",
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
	)

	return items, summary
}
