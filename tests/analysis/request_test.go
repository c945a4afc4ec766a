package analysis_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/alisyos/contract-scanner/internal/analysis"
)

func validRequest() *analysis.AnalysisRequest {
	return &analysis.AnalysisRequest{
		ContractFile: analysis.FileInfo{
			Name:       "nda.pdf",
			StorageKey: "contracts/nda.txt",
		},
		ContractType:   analysis.TypeNDA,
		AnalysisFocus:  []analysis.Focus{analysis.FocusAmbiguity},
		Perspective:    analysis.PerspectiveNeutral,
		Jurisdiction:   analysis.JurisdictionKR,
		Language:       analysis.LanguageKO,
		ReportFormat:   analysis.FormatBrief,
		ConsentPrivacy: true,
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		if errs := validRequest().Validate(); len(errs) != 0 {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("empty focus", func(t *testing.T) {
		req := validRequest()
		req.AnalysisFocus = nil

		errs := req.Validate()
		if len(errs) != 1 || !errors.Is(errs[0], analysis.ErrEmptyFocus) {
			t.Errorf("errors: got %v, want ErrEmptyFocus", errs)
		}
	})

	t.Run("missing enum fields", func(t *testing.T) {
		req := &analysis.AnalysisRequest{
			AnalysisFocus: []analysis.Focus{analysis.FocusLegalRisk},
		}

		errs := req.Validate()
		if len(errs) != 5 {
			t.Fatalf("errors: got %d, want 5: %v", len(errs), errs)
		}
	})
}

func TestHasFocus(t *testing.T) {
	req := validRequest()
	req.AnalysisFocus = []analysis.Focus{analysis.FocusAmbiguity, analysis.FocusTermination}

	if !req.HasFocus(analysis.FocusTermination) {
		t.Error("termination focus should be reported")
	}
	if req.HasFocus(analysis.FocusLegalRisk) {
		t.Error("legal risk focus should not be reported")
	}
}

func TestRequestUnmarshal(t *testing.T) {
	payload := `{
		"contract_file": {"name": "lease.pdf", "storageKey": "contracts/lease.txt"},
		"contract_type": "real_estate",
		"analysis_focus": ["unfavorable_terms", "termination_liquidated_damages"],
		"analysis_perspective": "buyer",
		"jurisdiction": "KR",
		"language": "ko",
		"report_format": "detailed",
		"meta": {"party_role": "buyer", "contract_title": "상가 임대차 계약"},
		"consent_privacy": true
	}`

	var req analysis.AnalysisRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if req.ContractType != analysis.TypeRealEstate {
		t.Errorf("contract type: got %s", req.ContractType)
	}
	if len(req.AnalysisFocus) != 2 || req.AnalysisFocus[1] != analysis.FocusTermination {
		t.Errorf("focus: got %v", req.AnalysisFocus)
	}
	if req.Meta == nil || *req.Meta.PartyRole != analysis.RoleBuyer {
		t.Errorf("meta: got %+v", req.Meta)
	}
	if !req.ConsentPrivacy {
		t.Error("consent should be set")
	}
}

func TestRequestUnmarshalRejectsInvalidFocus(t *testing.T) {
	payload := `{"analysis_focus": ["unfavorable_terms", "vibes"]}`

	var req analysis.AnalysisRequest
	err := json.Unmarshal([]byte(payload), &req)
	if !errors.Is(err, analysis.ErrInvalidFocus) {
		t.Errorf("error: got %v, want ErrInvalidFocus", err)
	}
}
