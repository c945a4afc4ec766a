package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvAnalysisMaxTokens     = "SCANNER_ANALYSIS_MAX_TOKENS"
	EnvAnalysisTemperature   = "SCANNER_ANALYSIS_TEMPERATURE"
	EnvAnalysisInvokeTimeout = "SCANNER_ANALYSIS_INVOKE_TIMEOUT"
)

// AnalysisConfig holds model invocation tuning for the analysis workflow.
type AnalysisConfig struct {
	MaxTokens     int     `toml:"max_tokens"`
	Temperature   float64 `toml:"temperature"`
	InvokeTimeout string  `toml:"invoke_timeout"`
}

// InvokeTimeoutDuration returns InvokeTimeout as a time.Duration.
func (c *AnalysisConfig) InvokeTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.InvokeTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AnalysisConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AnalysisConfig) Merge(overlay *AnalysisConfig) {
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
	if overlay.InvokeTimeout != "" {
		c.InvokeTimeout = overlay.InvokeTimeout
	}
}

func (c *AnalysisConfig) loadDefaults() {
	if c.MaxTokens == 0 {
		c.MaxTokens = 4000
	}
	if c.Temperature == 0 {
		c.Temperature = 0.3
	}
	if c.InvokeTimeout == "" {
		c.InvokeTimeout = "2m"
	}
}

func (c *AnalysisConfig) loadEnv() {
	if v := os.Getenv(EnvAnalysisMaxTokens); v != "" {
		if tokens, err := strconv.Atoi(v); err == nil {
			c.MaxTokens = tokens
		}
	}
	if v := os.Getenv(EnvAnalysisTemperature); v != "" {
		if temp, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = temp
		}
	}
	if v := os.Getenv(EnvAnalysisInvokeTimeout); v != "" {
		c.InvokeTimeout = v
	}
}

func (c *AnalysisConfig) validate() error {
	if c.MaxTokens < 1 {
		return fmt.Errorf("invalid max_tokens: %d", c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("invalid temperature: %f", c.Temperature)
	}
	if _, err := time.ParseDuration(c.InvokeTimeout); err != nil {
		return fmt.Errorf("invalid invoke_timeout: %w", err)
	}
	return nil
}
