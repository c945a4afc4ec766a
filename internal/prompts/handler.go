package prompts

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alisyos/contract-scanner/pkg/handlers"
	"github.com/alisyos/contract-scanner/pkg/routes"
)

// Handler provides HTTP endpoints for prompt registry operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "prompts"),
	}
}

// Routes returns the route group definition for prompt endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/prompts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/categories", Handler: h.Categories},
			{Method: "GET", Pattern: "/{category}/active", Handler: h.Active},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "POST", Pattern: "/reset", Handler: h.Reset},
			{Method: "POST", Pattern: "/{id}/activate", Handler: h.Activate},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

// List returns the full definition set in insertion order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	set, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, set)
}

// Categories returns the list of valid prompt categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Categories())
}

// Active returns the active definition for a category.
func (h *Handler) Active(w http.ResponseWriter, r *http.Request) {
	category, err := ParseCategory(r.PathValue("category"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.sys.ActiveFor(r.Context(), category)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

// Create processes a JSON body to create a new prompt definition.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	set, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, set)
}

// Update processes a JSON body with a partial update for an existing definition.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	set, err := h.sys.Update(r.Context(), r.PathValue("id"), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, set)
}

// Delete removes a definition by id. The UI restricts this to user-created
// definitions; the endpoint itself does not.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	set, err := h.sys.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, set)
}

// Activate sets a definition as the active prompt for its category,
// atomically deactivating any currently active sibling.
func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	set, err := h.sys.Activate(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, set)
}

// Reset replaces the definition set with the built-in defaults,
// discarding all custom definitions.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	set, err := h.sys.Reset(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, set)
}
