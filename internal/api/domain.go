package api

import (
	"github.com/alisyos/contract-scanner/internal/prompts"
	"github.com/alisyos/contract-scanner/internal/scans"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Scans   scans.System
	Prompts prompts.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	promptsSystem := prompts.New(
		runtime.Storage,
		runtime.Logger,
	)

	scansSystem := scans.New(
		runtime.Agent,
		runtime.InvokeTimeout,
		runtime.Storage,
		promptsSystem,
		runtime.Logger,
	)

	return &Domain{
		Scans:   scansSystem,
		Prompts: promptsSystem,
	}
}
