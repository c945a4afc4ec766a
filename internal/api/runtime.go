package api

import (
	"time"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/alisyos/contract-scanner/internal/config"
	"github.com/alisyos/contract-scanner/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Agent         gaconfig.AgentConfig
	InvokeTimeout time.Duration
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Storage:   infra.Storage,
		},
		Agent:         cfg.Agent,
		InvokeTimeout: cfg.Analysis.InvokeTimeoutDuration(),
	}
}
