package api

import (
	"net/http"

	"github.com/alisyos/contract-scanner/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Scans.Handler().Routes(),
	)

	routes.Register(
		mux,
		domain.Prompts.Handler().Routes(),
	)

	storage := newStorageHandler(runtime.Storage, runtime.Logger)
	routes.Register(mux, storage.routes())
}
