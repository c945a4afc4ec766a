package blobstore

import (
	"fmt"
	"os"
)

// Supported blob store providers.
const (
	ProviderFile  = "file"
	ProviderAzure = "azure"
)

// Config holds blob store connection parameters. Root applies to the file
// provider; ContainerName and ConnectionString apply to the azure provider.
type Config struct {
	Provider         string `toml:"provider"`
	Root             string `toml:"root"`
	ContainerName    string `toml:"container_name"`
	ConnectionString string `toml:"connection_string"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Provider         string
	Root             string
	ContainerName    string
	ConnectionString string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.Root != "" {
		c.Root = overlay.Root
	}
	if overlay.ContainerName != "" {
		c.ContainerName = overlay.ContainerName
	}
	if overlay.ConnectionString != "" {
		c.ConnectionString = overlay.ConnectionString
	}
}

func (c *Config) loadDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderFile
	}
	if c.Root == "" {
		c.Root = "data"
	}
	if c.ContainerName == "" {
		c.ContainerName = "contracts"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Provider != "" {
		if v := os.Getenv(env.Provider); v != "" {
			c.Provider = v
		}
	}
	if env.Root != "" {
		if v := os.Getenv(env.Root); v != "" {
			c.Root = v
		}
	}
	if env.ContainerName != "" {
		if v := os.Getenv(env.ContainerName); v != "" {
			c.ContainerName = v
		}
	}
	if env.ConnectionString != "" {
		if v := os.Getenv(env.ConnectionString); v != "" {
			c.ConnectionString = v
		}
	}
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderFile:
		if c.Root == "" {
			return fmt.Errorf("root required for file provider")
		}
	case ProviderAzure:
		if c.ContainerName == "" {
			return fmt.Errorf("container_name required for azure provider")
		}
		if c.ConnectionString == "" {
			return fmt.Errorf("connection_string required for azure provider")
		}
	default:
		return fmt.Errorf("provider must be %s or %s", ProviderFile, ProviderAzure)
	}
	return nil
}
