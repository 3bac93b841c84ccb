package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/content-qa/internal/api"
	"github.com/jonesrussell/content-qa/internal/domain"
	"github.com/jonesrussell/content-qa/internal/filter"
	"github.com/jonesrussell/content-qa/internal/logger"
	"github.com/jonesrussell/content-qa/internal/processor"
	"github.com/jonesrussell/content-qa/internal/quality"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	contentFilter := filter.New(log, nil)
	assessor := quality.New(log, nil)
	batchProcessor := processor.NewBatchProcessor(contentFilter, 2, nil, log)
	handler := api.NewHandler(contentFilter, assessor, batchProcessor, nil, nil, log)

	router := gin.New()
	api.SetupRoutes(router, handler, nil)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestFilterEndpoint(t *testing.T) {
	router := newRouter()

	body := api.FilterRequest{
		Transcript: &domain.Transcript{
			VideoID:    "vid-1",
			Transcript: "Use the promo code SAVE20 to buy now and get a discount today only.",
		},
	}

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/filter", body)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var resp api.FilterResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.VideoID != "vid-1" {
		t.Errorf("expected video id vid-1, got %s", resp.VideoID)
	}
	if resp.Result == nil {
		t.Fatal("expected a filter result")
	}
	if resp.Result.OverallCompliance != domain.ComplianceWarning {
		t.Errorf("expected warning verdict, got %s", resp.Result.OverallCompliance)
	}
	if !resp.Result.IsSponsorContent {
		t.Error("expected sponsor content")
	}
}

func TestFilterEndpoint_BadRequest(t *testing.T) {
	router := newRouter()

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/filter", map[string]any{})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing transcript, got %d", recorder.Code)
	}
}

func TestFilterEndpoint_InvalidTranscript(t *testing.T) {
	router := newRouter()

	body := api.FilterRequest{
		Transcript: &domain.Transcript{Transcript: "text without a video id"},
	}

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/filter", body)
	if recorder.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for invalid transcript, got %d", recorder.Code)
	}
}

func TestBatchFilterEndpoint(t *testing.T) {
	router := newRouter()

	body := api.BatchFilterRequest{
		Transcripts: []*domain.Transcript{
			{VideoID: "vid-1", Transcript: "A calm morning by the lake."},
			{Transcript: "missing id"},
		},
	}

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/filter/batch", body)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var resp api.BatchFilterResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 2 || resp.Success != 1 || resp.Failed != 1 {
		t.Errorf("unexpected batch counts: %+v", resp)
	}
	if resp.Results[0].VideoID != "vid-1" {
		t.Errorf("results must preserve input order, got %+v", resp.Results)
	}
	if resp.Results[1].Error == "" {
		t.Error("expected an error for the invalid transcript")
	}
}

func TestAssessEndpoint_BadRequest(t *testing.T) {
	router := newRouter()

	recorder := doJSON(t, router, http.MethodPost, "/api/v1/assess", map[string]any{"video_id": "vid-1"})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for incomplete assessment request, got %d", recorder.Code)
	}
}

func TestHistoryEndpoint_WithoutStore(t *testing.T) {
	router := newRouter()

	recorder := doJSON(t, router, http.MethodGet, "/api/v1/history/vid-1", nil)
	if recorder.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without a history store, got %d", recorder.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	router := newRouter()

	if recorder := doJSON(t, router, http.MethodGet, "/health", nil); recorder.Code != http.StatusOK {
		t.Errorf("expected 200 from /health, got %d", recorder.Code)
	}
	if recorder := doJSON(t, router, http.MethodGet, "/ready", nil); recorder.Code != http.StatusOK {
		t.Errorf("expected 200 from /ready, got %d", recorder.Code)
	}
}
