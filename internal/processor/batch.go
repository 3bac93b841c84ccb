// Package processor runs filtering over batches of transcripts with a
// bounded worker pool.
package processor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonesrussell/content-qa/internal/domain"
	"github.com/jonesrussell/content-qa/internal/filter"
	"github.com/jonesrussell/content-qa/internal/logger"
	"github.com/jonesrussell/content-qa/internal/telemetry"
)

// defaultConcurrency bounds the worker pool when no value is configured.
const defaultConcurrency = 10

// BatchProcessor filters multiple transcripts in parallel using a
// worker pool. Results come back in input order regardless of which
// worker handled each item.
type BatchProcessor struct {
	filter      *filter.ContentFilter
	concurrency int
	telemetry   *telemetry.Provider
	logger      logger.Logger
}

// ProcessResult holds the outcome for a single transcript. Exactly one
// of Result and Error is set.
type ProcessResult struct {
	Transcript *domain.Transcript          `json:"-"`
	VideoID    string                      `json:"video_id"`
	Result     *domain.ContentFilterResult `json:"result,omitempty"`
	Error      error                       `json:"-"`
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(f *filter.ContentFilter, concurrency int, tp *telemetry.Provider, log logger.Logger) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &BatchProcessor{
		filter:      f,
		concurrency: concurrency,
		telemetry:   tp,
		logger:      log,
	}
}

type job struct {
	index      int
	transcript *domain.Transcript
}

// Process filters a batch of transcripts using the worker pool. The
// returned slice has one entry per input transcript in input order;
// per-item failures land in the entry's Error, not in the returned
// error. The returned error is reserved for context cancellation.
func (b *BatchProcessor) Process(ctx context.Context, transcripts []*domain.Transcript) ([]*ProcessResult, error) {
	if len(transcripts) == 0 {
		return []*ProcessResult{}, nil
	}

	b.logger.Info("starting batch filtering",
		logger.Int("batch_size", len(transcripts)),
		logger.Int("concurrency", b.concurrency),
	)

	startTime := time.Now()
	if b.telemetry != nil {
		b.telemetry.RecordBatchSize(len(transcripts))
		b.telemetry.SetQueueDepth(len(transcripts))
		defer b.telemetry.SetQueueDepth(0)
	}

	jobs := make(chan job, len(transcripts))
	results := make([]*ProcessResult, len(transcripts))

	var wg sync.WaitGroup
	for i := 0; i < b.concurrency; i++ {
		wg.Add(1)
		go b.worker(ctx, i, jobs, results, &wg)
	}

	for i, transcript := range transcripts {
		jobs <- job{index: i, transcript: transcript}
	}
	close(jobs)

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch filtering canceled: %w", err)
	}

	duration := time.Since(startTime)
	successCount := 0
	errorCount := 0
	for _, result := range results {
		if result != nil && result.Error == nil {
			successCount++
		} else {
			errorCount++
		}
	}

	b.logger.Info("batch filtering complete",
		logger.Int("total", len(transcripts)),
		logger.Int("success", successCount),
		logger.Int("errors", errorCount),
		logger.Int64("duration_ms", duration.Milliseconds()),
		logger.Float64("items_per_second", float64(len(transcripts))/duration.Seconds()),
	)

	return results, nil
}

// worker drains the jobs channel, writing each outcome to its input slot.
func (b *BatchProcessor) worker(
	ctx context.Context,
	id int,
	jobs <-chan job,
	results []*ProcessResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	if b.telemetry != nil {
		b.telemetry.Metrics.ActiveWorkers.Inc()
		defer b.telemetry.Metrics.ActiveWorkers.Dec()
	}

	for j := range jobs {
		select {
		case <-ctx.Done():
			b.logger.Warn("worker stopping, context canceled", logger.Int("worker_id", id))
			results[j.index] = &ProcessResult{
				Transcript: j.transcript,
				VideoID:    videoID(j.transcript),
				Error:      ctx.Err(),
			}
			continue
		default:
		}

		results[j.index] = b.processItem(ctx, j.transcript)
	}
}

// processItem filters a single transcript. A nil entry in the batch is
// an input error on that slot, never a worker panic.
func (b *BatchProcessor) processItem(ctx context.Context, transcript *domain.Transcript) *ProcessResult {
	if transcript == nil {
		return &ProcessResult{Error: domain.ErrNilTranscript}
	}

	result := &ProcessResult{
		Transcript: transcript,
		VideoID:    transcript.VideoID,
	}

	filterResult, err := b.filter.Filter(ctx, transcript)
	if err != nil {
		result.Error = fmt.Errorf("filtering failed: %w", err)
		b.logger.Error("failed to filter transcript",
			logger.String("video_id", transcript.VideoID),
			logger.Error(err),
		)
		return result
	}

	result.Result = filterResult
	return result
}

func videoID(t *domain.Transcript) string {
	if t == nil {
		return ""
	}
	return t.VideoID
}

// Concurrency returns the configured worker count.
func (b *BatchProcessor) Concurrency() int {
	return b.concurrency
}
