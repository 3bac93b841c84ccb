package processor_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jonesrussell/content-qa/internal/domain"
	"github.com/jonesrussell/content-qa/internal/filter"
	"github.com/jonesrussell/content-qa/internal/logger"
	"github.com/jonesrussell/content-qa/internal/processor"
)

func newProcessor(concurrency int) *processor.BatchProcessor {
	f := filter.New(logger.NewNop(), nil)
	return processor.NewBatchProcessor(f, concurrency, nil, logger.NewNop())
}

func TestProcess_PreservesInputOrder(t *testing.T) {
	transcripts := make([]*domain.Transcript, 20)
	for i := range transcripts {
		transcripts[i] = &domain.Transcript{
			VideoID:    fmt.Sprintf("vid-%03d", i),
			Transcript: "A quiet afternoon walk through the park with friends.",
		}
	}

	results, err := newProcessor(4).Process(context.Background(), transcripts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(transcripts) {
		t.Fatalf("expected %d results, got %d", len(transcripts), len(results))
	}

	for i, result := range results {
		if result.VideoID != transcripts[i].VideoID {
			t.Errorf("result %d: expected video %s, got %s", i, transcripts[i].VideoID, result.VideoID)
		}
		if result.Error != nil {
			t.Errorf("result %d: unexpected error %v", i, result.Error)
		}
		if result.Result == nil {
			t.Errorf("result %d: missing filter result", i)
		}
	}
}

func TestProcess_PerItemFailuresDoNotFailBatch(t *testing.T) {
	transcripts := []*domain.Transcript{
		{VideoID: "vid-ok", Transcript: "A calm walk by the river."},
		{Transcript: "missing video id"},
		{VideoID: "vid-ok-2", Transcript: "Another calm walk."},
	}

	results, err := newProcessor(2).Process(context.Background(), transcripts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results[0].Error != nil || results[2].Error != nil {
		t.Error("valid transcripts must succeed")
	}
	if results[1].Error == nil {
		t.Error("transcript without video_id must fail")
	}
	if results[1].Result != nil {
		t.Error("failed item must not carry a result")
	}
}

func TestProcess_NilTranscriptEntry(t *testing.T) {
	transcripts := []*domain.Transcript{
		nil,
		{VideoID: "vid-ok", Transcript: "A calm walk by the river."},
	}

	results, err := newProcessor(2).Process(context.Background(), transcripts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !errors.Is(results[0].Error, domain.ErrNilTranscript) {
		t.Errorf("nil entry must fail with ErrNilTranscript, got %v", results[0].Error)
	}
	if results[0].VideoID != "" {
		t.Errorf("nil entry must carry no video id, got %q", results[0].VideoID)
	}
	if results[1].Error != nil {
		t.Errorf("valid transcript must succeed, got %v", results[1].Error)
	}
}

func TestProcess_EmptyBatch(t *testing.T) {
	results, err := newProcessor(2).Process(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty result set, got %d", len(results))
	}
}
