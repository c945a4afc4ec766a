package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvAgentProviderName = "SCANNER_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "SCANNER_AGENT_BASE_URL"
	EnvAgentToken        = "SCANNER_AGENT_TOKEN"
	EnvAgentDeployment   = "SCANNER_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "SCANNER_AGENT_API_VERSION"
	EnvAgentAuthType     = "SCANNER_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "SCANNER_AGENT_MODEL_NAME"
)

// FinalizeAgent applies the three-phase finalize pattern to a go-agents
// AgentConfig: defaults from go-agents DefaultAgentConfig, environment
// variable overrides, and validation. The analysis tuning values are pushed
// into the model options so every invocation runs with them.
func FinalizeAgent(c *gaconfig.AgentConfig, analysis *AnalysisConfig) error {
	loadAgentDefaults(c)
	loadAgentEnv(c)
	applyAnalysisOptions(c, analysis)
	return validateAgent(c)
}

func loadAgentDefaults(c *gaconfig.AgentConfig) {
	defaults := gaconfig.DefaultAgentConfig()
	defaults.Merge(c)
	*c = defaults
}

func loadAgentEnv(c *gaconfig.AgentConfig) {
	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}
	if v := os.Getenv(EnvAgentProviderName); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModelName); v != "" {
		c.Model.Name = v
	}

	setOption := func(envVar, key string) {
		if v := os.Getenv(envVar); v != "" {
			c.Provider.Options[key] = v
		}
	}

	setOption(EnvAgentToken, "token")
	setOption(EnvAgentDeployment, "deployment")
	setOption(EnvAgentAPIVersion, "api_version")
	setOption(EnvAgentAuthType, "auth_type")
}

func applyAnalysisOptions(c *gaconfig.AgentConfig, analysis *AnalysisConfig) {
	if analysis == nil {
		return
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}
	if c.Model.Capabilities == nil {
		c.Model.Capabilities = make(map[string]map[string]any)
	}
	if c.Model.Capabilities["chat"] == nil {
		c.Model.Capabilities["chat"] = make(map[string]any)
	}

	c.Model.Capabilities["chat"]["temperature"] = analysis.Temperature
	c.Model.Capabilities["chat"]["max_tokens"] = analysis.MaxTokens
}

func validateAgent(c *gaconfig.AgentConfig) error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider == nil {
		return fmt.Errorf("provider required")
	}
	if c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Model == nil {
		return fmt.Errorf("model required")
	}
	return nil
}
