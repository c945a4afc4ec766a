package analysis

// Status indicates whether an analysis produced a usable result.
type Status string

// Terminal response statuses.
const (
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Severity grades a finding.
type Severity string

// Finding severities.
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
	SeverityNone   Severity = "none"
)

// Confidence grades how certain a finding is.
type Confidence string

// Finding confidence levels.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Priority grades a negotiation point.
type Priority string

// Negotiation point priorities.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RiskBreakdown is the fixed five-key risk decomposition. Each value is in
// [0,1] and is computed locally from the request's focus set, never asked of
// the model.
type RiskBreakdown struct {
	UnfavorableTerms float64 `json:"unfavorable_terms"`
	Ambiguity        float64 `json:"ambiguity"`
	LegalRisk        float64 `json:"legal_risk"`
	Timeline         float64 `json:"performance_timeline"`
	Termination      float64 `json:"termination_liquidated_damages"`
}

// ClauseLocation points at where a finding was observed. Each field is
// independently optional.
type ClauseLocation struct {
	Page      *int    `json:"page"`
	Section   *string `json:"section"`
	Paragraph *string `json:"paragraph"`
}

// Finding is a single analytical observation about the contract.
type Finding struct {
	Type          Focus           `json:"type"`
	Title         string          `json:"title"`
	Severity      Severity        `json:"severity"`
	Confidence    Confidence      `json:"confidence"`
	Reason        string          `json:"reason"`
	ClauseExcerpt string          `json:"clause_excerpt,omitempty"`
	Location      *ClauseLocation `json:"clause_location,omitempty"`
}

// RiskSummary holds the overall score, its breakdown, and the findings.
type RiskSummary struct {
	RiskScore     float64       `json:"risk_score"`
	RiskBreakdown RiskBreakdown `json:"risk_breakdown"`
	KeyFindings   []Finding     `json:"key_findings"`
}

// ReportItem is one labeled entry within a report section.
type ReportItem struct {
	Label            string `json:"label"`
	Detail           string `json:"detail"`
	Recommendation   string `json:"recommendation,omitempty"`
	SuggestedRewrite string `json:"suggested_rewrite,omitempty"`
}

// ReportSection groups report items under a heading.
type ReportSection struct {
	Heading string       `json:"heading"`
	Items   []ReportItem `json:"items"`
}

// Report is the rendered analysis report.
type Report struct {
	Format   ReportFormat    `json:"format"`
	Sections []ReportSection `json:"sections"`
}

// NegotiationPoint is one suggested negotiation item.
type NegotiationPoint struct {
	Issue            string   `json:"issue"`
	Impact           string   `json:"impact"`
	Priority         Priority `json:"priority"`
	SuggestedRewrite string   `json:"suggested_rewrite"`
	Rationale        string   `json:"rationale"`
}

// AlignmentMismatch is a deviation from a supplied reference document.
type AlignmentMismatch struct {
	Topic        string `json:"topic"`
	Deviation    string `json:"deviation"`
	Risk         string `json:"risk"`
	SuggestedFix string `json:"suggested_fix"`
}

// Alignment reports how the contract compares against reference documents.
type Alignment struct {
	HasReference bool                `json:"has_reference"`
	Notes        string              `json:"notes"`
	Mismatches   []AlignmentMismatch `json:"mismatches"`
}

// InputEcho repeats the request's classification fields back to the caller.
type InputEcho struct {
	ContractType  ContractType         `json:"contract_type"`
	Jurisdiction  Jurisdiction         `json:"jurisdiction"`
	Language      Language             `json:"language"`
	AnalysisFocus []Focus              `json:"analysis_focus"`
	Notification  NotificationSettings `json:"notification"`
}

// Parties describes the contracting parties in the overview block.
type Parties struct {
	ThisPartyRole    *PartyRole `json:"this_party_role,omitempty"`
	CounterpartyName string     `json:"counterparty_name,omitempty"`
}

// Term describes the contract period in the overview block.
type Term struct {
	EffectiveDate string `json:"effective_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
}

// Value describes the contract value in the overview block.
type Value struct {
	Currency   string   `json:"currency,omitempty"`
	TotalValue *float64 `json:"total_value,omitempty"`
}

// ContractOverview echoes the descriptive contract metadata.
type ContractOverview struct {
	Title   string   `json:"title,omitempty"`
	Parties *Parties `json:"parties,omitempty"`
	Term    *Term    `json:"term,omitempty"`
	Value   *Value   `json:"value,omitempty"`
}

// ResponseMeta carries the input echo, overview, and disclaimer.
type ResponseMeta struct {
	InputEcho        InputEcho        `json:"input_echo"`
	ContractOverview ContractOverview `json:"contract_overview"`
	Disclaimer       string           `json:"disclaimer"`
}

// ErrorDetail is one structured error in the response envelope.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AnalysisResponse is the canonical response envelope. Every request receives
// one: either a completed analysis or an error variant with a zeroed summary
// and a non-empty error list.
type AnalysisResponse struct {
	JobID             string             `json:"jobId"`
	Status            Status             `json:"status"`
	Summary           RiskSummary        `json:"summary"`
	Report            Report             `json:"report"`
	NegotiationPoints []NegotiationPoint `json:"negotiation_points,omitempty"`
	Alignment         *Alignment         `json:"alignment_with_reference,omitempty"`
	Meta              ResponseMeta       `json:"meta"`
	Errors            []ErrorDetail      `json:"errors,omitempty"`
}
