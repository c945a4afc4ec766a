package workflow

import "github.com/alisyos/contract-scanner/internal/analysis"

// State keys shared across the graph nodes.
const (
	KeyRequest  = "request"
	KeyPrompts  = "composed_prompts"
	KeyOutcome  = "outcome"
	KeyFailed   = "invoke_failed"
	KeyResponse = "response"
)

// ComposedPrompts holds the instructions handed to the model. The system
// instruction describes how to analyze, the user instruction carries the
// contract itself and the response contract.
type ComposedPrompts struct {
	System string
	User   string
}

// Outcome is the normalized analysis result produced by either the model
// invocation or the fallback synthesizer. Assembly wraps it into the
// response envelope without caring which path produced it.
type Outcome struct {
	RiskScore         float64
	Breakdown         analysis.RiskBreakdown
	Findings          []analysis.Finding
	Sections          []analysis.ReportSection
	NegotiationPoints []analysis.NegotiationPoint
}
