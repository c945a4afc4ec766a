package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/alisyos/contract-scanner/internal/analysis"
)

// ModelAnalysis is the raw JSON shape the model is asked to produce. It is
// deliberately loose: every field tolerates absence or unexpected values so
// a partially conformant response still yields a usable outcome.
type ModelAnalysis struct {
	RiskScore         *float64           `json:"riskScore"`
	KeyFindings       []ModelFinding     `json:"keyFindings"`
	NegotiationPoints []ModelNegotiation `json:"negotiationPoints"`
	ExecutiveSummary  string             `json:"executiveSummary"`
	Recommendations   []string           `json:"recommendations"`
}

type ModelFinding struct {
	Type           string `json:"type"`
	Title          string `json:"title"`
	Severity       string `json:"severity"`
	Description    string `json:"description"`
	ClauseLocation string `json:"clauseLocation"`
	Recommendation string `json:"recommendation"`
}

type ModelNegotiation struct {
	Issue           string `json:"issue"`
	Priority        string `json:"priority"`
	SuggestedChange string `json:"suggestedChange"`
	Rationale       string `json:"rationale"`
}

// Invoker sends composed instructions to a language model and returns its
// parsed analysis.
type Invoker interface {
	Invoke(ctx context.Context, system string, user string) (*ModelAnalysis, error)
}

const defaultRiskScore = 0.5

// OutcomeFromModel normalizes a parsed model response into the envelope
// vocabulary. The risk breakdown is always computed locally from the
// request's focus set.
func OutcomeFromModel(req *analysis.AnalysisRequest, m *ModelAnalysis) Outcome {
	score := defaultRiskScore
	if m.RiskScore != nil && *m.RiskScore >= 0 && *m.RiskScore <= 1 {
		score = *m.RiskScore
	}

	findings := make([]analysis.Finding, 0, len(m.KeyFindings))
	for _, f := range m.KeyFindings {
		findings = append(findings, normalizeFinding(f))
	}

	points := make([]analysis.NegotiationPoint, 0, len(m.NegotiationPoints))
	for _, p := range m.NegotiationPoints {
		points = append(points, analysis.NegotiationPoint{
			Issue:            p.Issue,
			Priority:         normalizePriority(p.Priority),
			SuggestedRewrite: p.SuggestedChange,
			Rationale:        p.Rationale,
		})
	}

	return Outcome{
		RiskScore:         score,
		Breakdown:         Breakdown(req),
		Findings:          findings,
		Sections:          summarySections(m),
		NegotiationPoints: points,
	}
}

func normalizeFinding(f ModelFinding) analysis.Finding {
	finding := analysis.Finding{
		Type:       analysis.Focus(f.Type),
		Title:      f.Title,
		Severity:   normalizeSeverity(f.Severity),
		Confidence: analysis.ConfidenceMedium,
		Reason:     f.Description,
	}

	if loc := strings.TrimSpace(f.ClauseLocation); loc != "" {
		finding.Location = &analysis.ClauseLocation{Section: &loc}
	}

	return finding
}

func normalizeSeverity(s string) analysis.Severity {
	switch sev := analysis.Severity(strings.ToLower(s)); sev {
	case analysis.SeverityHigh, analysis.SeverityMedium, analysis.SeverityLow, analysis.SeverityNone:
		return sev
	default:
		return analysis.SeverityMedium
	}
}

func normalizePriority(p string) analysis.Priority {
	switch pri := analysis.Priority(strings.ToLower(p)); pri {
	case analysis.PriorityHigh, analysis.PriorityMedium, analysis.PriorityLow:
		return pri
	default:
		return analysis.PriorityMedium
	}
}

func summarySections(m *ModelAnalysis) []analysis.ReportSection {
	detail := strings.TrimSpace(m.ExecutiveSummary)
	if detail == "" {
		detail = "분석이 완료되었습니다."
	}

	recommendation := "전문가 검토를 권장합니다."
	if len(m.Recommendations) > 0 && strings.TrimSpace(m.Recommendations[0]) != "" {
		recommendation = m.Recommendations[0]
	}

	return []analysis.ReportSection{
		{
			Heading: "Executive Summary",
			Items: []analysis.ReportItem{
				{
					Label:          "전체 평가",
					Detail:         detail,
					Recommendation: recommendation,
				},
			},
		},
	}
}

// InvokeNode returns a state node that sends the composed prompts to the
// model. Invocation failure never aborts the graph; it flags the state so
// the synthesizer can take over.
func InvokeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, err := extractRequest(s)
		if err != nil {
			return s, fmt.Errorf("invoke: %w", err)
		}

		composed, err := extractPrompts(s)
		if err != nil {
			return s, fmt.Errorf("invoke: %w", err)
		}

		ictx := ctx
		if rt.InvokeTimeout > 0 {
			var cancel context.CancelFunc
			ictx, cancel = context.WithTimeout(ctx, rt.InvokeTimeout)
			defer cancel()
		}

		result, err := rt.Invoker.Invoke(ictx, composed.System, composed.User)
		if err != nil {
			rt.Logger.WarnContext(
				ctx, "model invocation failed, falling back to synthesized analysis",
				"error", err,
			)
			return s.Set(KeyFailed, true), nil
		}

		outcome := OutcomeFromModel(req, result)

		rt.Logger.InfoContext(
			ctx, "invoke node complete",
			"risk_score", outcome.RiskScore,
			"finding_count", len(outcome.Findings),
		)

		return s.Set(KeyOutcome, outcome), nil
	})
}
