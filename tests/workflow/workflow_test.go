package workflow_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/alisyos/contract-scanner/internal/analysis"
	"github.com/alisyos/contract-scanner/internal/prompts"
	"github.com/alisyos/contract-scanner/internal/workflow"
	"github.com/alisyos/contract-scanner/pkg/blobstore"
	"github.com/alisyos/contract-scanner/pkg/lifecycle"
)

type memStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}}
}

func (s *memStore) Start(lc *lifecycle.Coordinator) error { return nil }

func (s *memStore) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, blobstore.ErrNotFound
	}
	return data, nil
}

func (s *memStore) Write(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = data
	return nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}

func (s *memStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.blobs[key]
	return ok, nil
}

type stubInvoker struct {
	result *workflow.ModelAnalysis
	err    error
}

func (i *stubInvoker) Invoke(ctx context.Context, system, user string) (*workflow.ModelAnalysis, error) {
	if i.err != nil {
		return nil, i.err
	}
	return i.result, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRuntime(store *memStore, invoker workflow.Invoker) *workflow.Runtime {
	return &workflow.Runtime{
		Prompts: prompts.New(store, discardLogger()),
		Storage: store,
		Invoker: invoker,
		Logger:  discardLogger(),
	}
}

func sampleRequest() *analysis.AnalysisRequest {
	return &analysis.AnalysisRequest{
		ContractFile: analysis.FileInfo{
			Name:       "service-agreement.pdf",
			MimeType:   "application/pdf",
			Size:       102400,
			StorageKey: "contracts/service-agreement.txt",
		},
		ContractType:   analysis.TypeService,
		AnalysisFocus:  []analysis.Focus{analysis.FocusUnfavorableTerms, analysis.FocusLegalRisk},
		Perspective:    analysis.PerspectivePartyB,
		Jurisdiction:   analysis.JurisdictionKR,
		Language:       analysis.LanguageKO,
		ReportFormat:   analysis.FormatNegotiation,
		ConsentPrivacy: true,
	}
}

func TestExecuteWithModelOutcome(t *testing.T) {
	store := newMemStore()
	store.blobs["contracts/service-agreement.txt"] = []byte("제1조 (목적) 본 계약은 서비스 제공에 관한 계약이다.")

	score := 0.82
	invoker := &stubInvoker{
		result: &workflow.ModelAnalysis{
			RiskScore: &score,
			KeyFindings: []workflow.ModelFinding{
				{
					Type:        "unfavorable_terms",
					Title:       "결제 지연 조항",
					Severity:    "high",
					Description: "지급 기한이 과도하게 깁니다.",
				},
			},
			ExecutiveSummary: "전반적으로 위험도가 높습니다.",
			Recommendations:  []string{"재협상을 권장합니다."},
		},
	}

	req := sampleRequest()
	resp, err := workflow.Execute(context.Background(), testRuntime(store, invoker), req)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if resp.Status != analysis.StatusCompleted {
		t.Errorf("status: got %s, want completed", resp.Status)
	}
	if resp.Summary.RiskScore != score {
		t.Errorf("risk score: got %f, want %f", resp.Summary.RiskScore, score)
	}
	if len(resp.Summary.KeyFindings) != 1 {
		t.Fatalf("findings: got %d, want 1", len(resp.Summary.KeyFindings))
	}
	if resp.Summary.KeyFindings[0].Reason != "지급 기한이 과도하게 깁니다." {
		t.Errorf("finding reason: got %s", resp.Summary.KeyFindings[0].Reason)
	}
	if !strings.HasPrefix(resp.JobID, "scan_") {
		t.Errorf("job id: got %s, want scan_ prefix", resp.JobID)
	}
	if resp.Report.Format != analysis.FormatNegotiation {
		t.Errorf("report format: got %s", resp.Report.Format)
	}
}

func TestExecuteFallsBackOnInvocationFailure(t *testing.T) {
	store := newMemStore()
	invoker := &stubInvoker{err: errors.New("provider unreachable")}

	req := sampleRequest()
	resp, err := workflow.Execute(context.Background(), testRuntime(store, invoker), req)
	if err != nil {
		t.Fatalf("execute should survive invocation failure: %v", err)
	}

	if resp.Status != analysis.StatusCompleted {
		t.Errorf("status: got %s, want completed", resp.Status)
	}
	if resp.Summary.RiskScore < 0.4 || resp.Summary.RiskScore > 0.7 {
		t.Errorf("fallback risk score: got %f, want within [0.4, 0.7]", resp.Summary.RiskScore)
	}
	if len(resp.Summary.KeyFindings) != 3 {
		t.Errorf("fallback findings: got %d, want 3", len(resp.Summary.KeyFindings))
	}
	if len(resp.NegotiationPoints) != 3 {
		t.Errorf("fallback negotiation points: got %d, want 3", len(resp.NegotiationPoints))
	}

	breakdown := resp.Summary.RiskBreakdown
	if breakdown.UnfavorableTerms != 0.25 {
		t.Errorf("unfavorable_terms weight: got %f, want 0.25", breakdown.UnfavorableTerms)
	}
	if breakdown.Ambiguity != 0.03 {
		t.Errorf("ambiguity weight: got %f, want 0.03", breakdown.Ambiguity)
	}
	if breakdown.LegalRisk != 0.20 {
		t.Errorf("legal_risk weight: got %f, want 0.20", breakdown.LegalRisk)
	}
	if len(resp.Errors) != 0 {
		t.Errorf("fallback response should carry no errors, got %v", resp.Errors)
	}
}

func TestExecuteWithoutStoredContract(t *testing.T) {
	store := newMemStore()
	score := 0.5
	invoker := &stubInvoker{result: &workflow.ModelAnalysis{RiskScore: &score}}

	req := sampleRequest()
	req.ContractFile.StorageKey = "contracts/missing.txt"

	resp, err := workflow.Execute(context.Background(), testRuntime(store, invoker), req)
	if err != nil {
		t.Fatalf("execute with missing contract text: %v", err)
	}

	if resp.Status != analysis.StatusCompleted {
		t.Errorf("status: got %s, want completed", resp.Status)
	}
}
