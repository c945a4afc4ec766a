package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/alisyos/contract-scanner/pkg/blobstore"
	"github.com/alisyos/contract-scanner/pkg/handlers"
	"github.com/alisyos/contract-scanner/pkg/routes"
)

// storageHandler exposes the blob store for extracted contract text. The
// upload pipeline writes documents here before requesting analysis; the
// analyze workflow reads them back by storage key.
type storageHandler struct {
	store  blobstore.System
	logger *slog.Logger
}

func newStorageHandler(store blobstore.System, logger *slog.Logger) *storageHandler {
	return &storageHandler{
		store:  store,
		logger: logger.With("handler", "storage"),
	}
}

func (h *storageHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/storage",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{key...}", Handler: h.read},
			{Method: "PUT", Pattern: "/{key...}", Handler: h.write},
			{Method: "DELETE", Pattern: "/{key...}", Handler: h.delete},
		},
	}
}

func (h *storageHandler) read(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	data, err := h.store.Read(r.Context(), key)
	if err != nil {
		handlers.RespondError(
			w, h.logger,
			blobstore.MapHTTPStatus(err), err,
		)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *storageHandler) write(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	data, err := io.ReadAll(r.Body)
	if err != nil {
		handlers.RespondError(
			w, h.logger,
			http.StatusBadRequest, err,
		)
		return
	}

	if err := h.store.Write(r.Context(), key, data); err != nil {
		handlers.RespondError(
			w, h.logger,
			blobstore.MapHTTPStatus(err), err,
		)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, map[string]string{"key": key})
}

func (h *storageHandler) delete(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	if err := h.store.Delete(r.Context(), key); err != nil {
		handlers.RespondError(
			w, h.logger,
			blobstore.MapHTTPStatus(err), err,
		)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
