package scans_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alisyos/contract-scanner/internal/analysis"
	"github.com/alisyos/contract-scanner/internal/scans"
	"github.com/alisyos/contract-scanner/internal/workflow"
)

type mockSystem struct {
	analyzeFn func(ctx context.Context, req *analysis.AnalysisRequest) (*analysis.AnalysisResponse, error)
}

func (m *mockSystem) Handler() *scans.Handler {
	return scans.NewHandler(m, discardLogger())
}

func (m *mockSystem) Analyze(ctx context.Context, req *analysis.AnalysisRequest) (*analysis.AnalysisResponse, error) {
	return m.analyzeFn(ctx, req)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupMux(h *scans.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func validRequestBody() map[string]any {
	return map[string]any{
		"contract_file": map[string]any{
			"name":       "service-agreement.pdf",
			"mimeType":   "application/pdf",
			"size":       204800,
			"storageKey": "contracts/service-agreement.txt",
		},
		"contract_type":        "service",
		"analysis_focus":       []string{"unfavorable_terms", "legal_risk"},
		"analysis_perspective": "party_b",
		"jurisdiction":         "KR",
		"language":             "ko",
		"report_format":        "detailed",
		"consent_privacy":      true,
	}
}

func postAnalyze(t *testing.T, mux *http.ServeMux, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) *analysis.AnalysisResponse {
	t.Helper()

	var resp analysis.AnalysisResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return &resp
}

func TestHandlerAnalyze(t *testing.T) {
	sys := &mockSystem{
		analyzeFn: func(_ context.Context, req *analysis.AnalysisRequest) (*analysis.AnalysisResponse, error) {
			return workflow.Assemble(req, workflow.Synthesize(req, nil)), nil
		},
	}

	rec := postAnalyze(t, setupMux(sys.Handler()), validRequestBody())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	resp := decodeResponse(t, rec)
	if resp.Status != analysis.StatusCompleted {
		t.Errorf("status: got %s, want completed", resp.Status)
	}
	if !strings.HasPrefix(resp.JobID, "scan_") {
		t.Errorf("job id %s should have scan_ prefix", resp.JobID)
	}
}

func TestHandlerAnalyzeMalformedBody(t *testing.T) {
	sys := &mockSystem{
		analyzeFn: func(_ context.Context, _ *analysis.AnalysisRequest) (*analysis.AnalysisResponse, error) {
			t.Fatal("system should not be called for a malformed body")
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader("{not json"))
	setupMux(sys.Handler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	resp := decodeResponse(t, rec)
	if resp.Status != analysis.StatusError {
		t.Errorf("status: got %s, want error", resp.Status)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Code != analysis.CodeValidation {
		t.Errorf("errors: got %+v", resp.Errors)
	}
}

func TestHandlerAnalyzeInvalidEnum(t *testing.T) {
	body := validRequestBody()
	body["contract_type"] = "friendship"

	sys := &mockSystem{
		analyzeFn: func(_ context.Context, _ *analysis.AnalysisRequest) (*analysis.AnalysisResponse, error) {
			t.Fatal("system should not be called for an invalid enum value")
			return nil, nil
		},
	}

	rec := postAnalyze(t, setupMux(sys.Handler()), body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerAnalyzeValidationErrors(t *testing.T) {
	body := validRequestBody()
	body["analysis_focus"] = []string{}
	delete(body, "analysis_perspective")

	rec := postAnalyze(t, setupMux((&mockSystem{}).Handler()), body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	resp := decodeResponse(t, rec)
	if len(resp.Errors) != 2 {
		t.Errorf("errors: got %d, want 2: %+v", len(resp.Errors), resp.Errors)
	}
	for _, detail := range resp.Errors {
		if detail.Code != analysis.CodeValidation {
			t.Errorf("error code: got %s, want VALIDATION_ERROR", detail.Code)
		}
	}
}

func TestHandlerAnalyzeSystemFailure(t *testing.T) {
	sys := &mockSystem{
		analyzeFn: func(_ context.Context, _ *analysis.AnalysisRequest) (*analysis.AnalysisResponse, error) {
			return nil, errors.New("graph execution failed")
		},
	}

	rec := postAnalyze(t, setupMux(sys.Handler()), validRequestBody())

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	resp := decodeResponse(t, rec)
	if resp.Status != analysis.StatusError {
		t.Errorf("status: got %s, want error", resp.Status)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Code != analysis.CodeAnalysisFailed {
		t.Errorf("errors: got %+v", resp.Errors)
	}
}

func TestHandlerOptions(t *testing.T) {
	mux := setupMux((&mockSystem{}).Handler())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/analyze/options", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var opts scans.OptionsResponse
	if err := json.NewDecoder(rec.Body).Decode(&opts); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(opts.ContractTypes) == 0 {
		t.Error("options should list contract types")
	}
	if len(opts.AnalysisFocus) != 5 {
		t.Errorf("analysis focus: got %d values, want 5", len(opts.AnalysisFocus))
	}
	if len(opts.ReportFormats) != 3 {
		t.Errorf("report formats: got %d values, want 3", len(opts.ReportFormats))
	}
}
