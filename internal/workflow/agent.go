package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/alisyos/contract-scanner/pkg/formatting"
)

type agentInvoker struct {
	config gaconfig.AgentConfig
	logger *slog.Logger
}

// NewAgentInvoker returns an Invoker backed by a go-agents chat agent. A
// fresh agent is created per invocation so concurrent analyses never share
// transport state.
func NewAgentInvoker(config gaconfig.AgentConfig, logger *slog.Logger) Invoker {
	return &agentInvoker{
		config: config,
		logger: logger,
	}
}

func (i *agentInvoker) Invoke(ctx context.Context, system string, user string) (*ModelAnalysis, error) {
	a, err := agent.New(&i.config)
	if err != nil {
		return nil, fmt.Errorf("%w: create agent: %w", ErrInvokeFailed, err)
	}

	// Chat takes a single prompt. The system instruction is prepended so
	// providers without a separate system role still receive it first.
	prompt := strings.Join([]string{system, user}, "\n\n")

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: chat: %w", ErrInvokeFailed, err)
	}

	parsed, err := formatting.Parse[ModelAnalysis](resp.Content())
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrInvokeFailed, err)
	}

	i.logger.DebugContext(
		ctx, "model analysis parsed",
		"finding_count", len(parsed.KeyFindings),
	)

	return &parsed, nil
}
