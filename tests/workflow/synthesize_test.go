package workflow_test

import (
	"testing"

	"github.com/alisyos/contract-scanner/internal/analysis"
	"github.com/alisyos/contract-scanner/internal/workflow"
)

func TestSynthesizeScoreRange(t *testing.T) {
	req := sampleRequest()

	for range 100 {
		score := workflow.SynthesizeScore(req, nil)
		if score < 0.4 || score >= 0.7 {
			t.Fatalf("score %f outside [0.4, 0.7)", score)
		}
	}
}

func TestSynthesizeScoreBroadFocusModifier(t *testing.T) {
	fixed := func() float64 { return 0.5 }

	req := sampleRequest()
	if got := workflow.SynthesizeScore(req, fixed); got != 0.55 {
		t.Errorf("two-focus score: got %f, want 0.55", got)
	}

	req.AnalysisFocus = analysis.Focuses()
	if got := workflow.SynthesizeScore(req, fixed); got != 0.65 {
		t.Errorf("broad-focus score: got %f, want 0.65", got)
	}
}

func TestSynthesizeScoreCap(t *testing.T) {
	req := sampleRequest()
	req.AnalysisFocus = analysis.Focuses()

	high := func() float64 { return 0.9999 }
	if got := workflow.SynthesizeScore(req, high); got > 1.0 {
		t.Errorf("score should be capped at 1.0, got %f", got)
	}
}

func TestSynthesizeOutcome(t *testing.T) {
	req := sampleRequest()
	outcome := workflow.Synthesize(req, nil)

	if len(outcome.Findings) != 3 {
		t.Errorf("findings: got %d, want 3", len(outcome.Findings))
	}
	if len(outcome.Sections) != 2 {
		t.Errorf("sections: got %d, want 2", len(outcome.Sections))
	}
	if len(outcome.NegotiationPoints) != 3 {
		t.Errorf("negotiation points: got %d, want 3", len(outcome.NegotiationPoints))
	}

	severities := map[analysis.Severity]bool{}
	for _, f := range outcome.Findings {
		severities[f.Severity] = true
		if f.Location == nil {
			t.Errorf("finding %s should carry a clause location", f.Title)
		}
	}
	for _, want := range []analysis.Severity{analysis.SeverityHigh, analysis.SeverityMedium, analysis.SeverityLow} {
		if !severities[want] {
			t.Errorf("findings should span severity %s", want)
		}
	}
}

func TestSynthesizeOmitsNegotiationPointsForOtherFormats(t *testing.T) {
	req := sampleRequest()
	req.ReportFormat = analysis.FormatDetailed

	outcome := workflow.Synthesize(req, nil)
	if len(outcome.NegotiationPoints) != 0 {
		t.Errorf("detailed format should carry no negotiation points, got %d", len(outcome.NegotiationPoints))
	}
}
