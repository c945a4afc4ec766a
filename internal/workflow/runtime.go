package workflow

import (
	"log/slog"
	"time"

	"github.com/alisyos/contract-scanner/internal/prompts"
	"github.com/alisyos/contract-scanner/pkg/blobstore"
)

// Runtime carries the shared dependencies each workflow node closes over.
type Runtime struct {
	Prompts       prompts.System
	Storage       blobstore.System
	Invoker       Invoker
	Logger        *slog.Logger
	InvokeTimeout time.Duration
}
