package workflow

import (
	"github.com/alisyos/contract-scanner/internal/analysis"
)

// Breakdown derives the per-category risk weights from the request's focus
// areas. Selected categories carry their full weight, unselected ones a
// residual baseline so the breakdown always covers every category.
func Breakdown(req *analysis.AnalysisRequest) analysis.RiskBreakdown {
	pick := func(f analysis.Focus, selected, baseline float64) float64 {
		if req.HasFocus(f) {
			return selected
		}
		return baseline
	}

	return analysis.RiskBreakdown{
		UnfavorableTerms: pick(analysis.FocusUnfavorableTerms, 0.25, 0.05),
		Ambiguity:        pick(analysis.FocusAmbiguity, 0.15, 0.03),
		LegalRisk:        pick(analysis.FocusLegalRisk, 0.20, 0.08),
		Timeline:         pick(analysis.FocusTimeline, 0.10, 0.02),
		Termination:      pick(analysis.FocusTermination, 0.12, 0.04),
	}
}
