package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/pwstrength/internal/model"
)

// DefaultConcurrency is the number of passwords evaluated at once.
const DefaultConcurrency = 10

// Evaluator produces a result for a single password.
// *strength.Evaluator satisfies it.
type Evaluator interface {
	Analyze(password string) *model.Result
}

// BatchProcessor evaluates candidates concurrently.
type BatchProcessor struct {
	// evaluator is shared by all goroutines and must be safe for concurrent use.
	evaluator Evaluator

	// concurrency is the maximum number of concurrent evaluations.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent evaluations.
// Non-positive values keep the default of 10.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor around evaluator.
func NewBatchProcessor(evaluator Evaluator, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		evaluator:   evaluator,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch evaluates all candidates and returns a report with one
// entry per candidate, in input order.
// If ctx is cancelled before every candidate is evaluated, it returns nil
// and the context error.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, candidates []Candidate) (*model.Report, error) {
	report := model.NewReport()
	results := make([]*model.Result, len(candidates))

	err := bp.ProcessBatchWithCallback(ctx, candidates, func(entry model.Entry) {
		// Each goroutine owns one index.
		results[entry.Index] = entry.Result
	})
	if err != nil {
		return nil, err
	}

	for i, c := range candidates {
		report.AddEntry(c.Source, results[i])
	}
	return report, nil
}

// ProcessBatchWithCallback evaluates all candidates and calls callback for
// each result as soon as it is ready. Entry.Index is the candidate's
// position in the input slice.
//
// The callback is called from the evaluating goroutine, so it must be safe
// for concurrent use if it touches shared state.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	candidates []Candidate,
	callback func(entry model.Entry),
) error {
	bp.logger.Info("starting batch evaluation",
		"total", len(candidates),
		"concurrency", bp.concurrency,
	)
	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, candidate := range candidates {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result := bp.evaluator.Analyze(candidate.Password)
			bp.logger.Debug("password evaluated",
				"source", candidate.Source,
				"label", result.Label.String(),
			)

			callback(model.Entry{
				Index:  i,
				Source: candidate.Source,
				Result: result,
			})
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch evaluation complete",
		"total", len(candidates),
		"elapsed", time.Since(startTime),
	)

	return err
}
