package scans

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/alisyos/contract-scanner/internal/analysis"
	"github.com/alisyos/contract-scanner/internal/prompts"
	"github.com/alisyos/contract-scanner/internal/workflow"
	"github.com/alisyos/contract-scanner/pkg/blobstore"
)

const noConsentMessage = "개인정보 처리 동의가 필요합니다."

type service struct {
	rt     *workflow.Runtime
	logger *slog.Logger
}

// New creates the analysis service implementing the System interface. It
// internally constructs the workflow runtime from the provided dependencies.
func New(
	agent gaconfig.AgentConfig,
	invokeTimeout time.Duration,
	storage blobstore.System,
	registry prompts.System,
	logger *slog.Logger,
) System {
	rt := &workflow.Runtime{
		Prompts:       registry,
		Storage:       storage,
		Invoker:       workflow.NewAgentInvoker(agent, logger.With("workflow", "invoke")),
		Logger:        logger.With("workflow", "analysis"),
		InvokeTimeout: invokeTimeout,
	}

	return &service{
		rt:     rt,
		logger: logger.With("system", "scans"),
	}
}

// NewWithRuntime creates the service around a prebuilt workflow runtime.
func NewWithRuntime(rt *workflow.Runtime, logger *slog.Logger) System {
	return &service{
		rt:     rt,
		logger: logger.With("system", "scans"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Analyze runs the full analysis workflow for a request. A request without
// privacy consent is answered with an error envelope rather than rejected,
// so callers always receive the canonical response shape.
func (s *service) Analyze(ctx context.Context, req *analysis.AnalysisRequest) (*analysis.AnalysisResponse, error) {
	if !req.ConsentPrivacy {
		s.logger.InfoContext(ctx, "analysis refused, no privacy consent",
			"contract", req.ContractFile.Name,
		)

		return workflow.ErrorEnvelope(req, analysis.ErrorDetail{
			Code:    analysis.CodeNoConsent,
			Message: noConsentMessage,
		}), nil
	}

	resp, err := workflow.Execute(ctx, s.rt, req)
	if err != nil {
		return nil, fmt.Errorf("analyze contract %s: %w", req.ContractFile.Name, err)
	}

	s.logger.InfoContext(ctx, "analysis complete",
		"job_id", resp.JobID,
		"risk_score", resp.Summary.RiskScore,
	)

	return resp, nil
}
