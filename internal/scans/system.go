package scans

import (
	"context"

	"github.com/alisyos/contract-scanner/internal/analysis"
)

// System defines the public contract for contract analysis operations.
type System interface {
	Handler() *Handler

	Analyze(ctx context.Context, req *analysis.AnalysisRequest) (*analysis.AnalysisResponse, error)
}
