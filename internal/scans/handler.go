package scans

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alisyos/contract-scanner/internal/analysis"
	"github.com/alisyos/contract-scanner/internal/workflow"
	"github.com/alisyos/contract-scanner/pkg/handlers"
	"github.com/alisyos/contract-scanner/pkg/routes"
)

// Handler provides HTTP endpoints for contract analysis.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// OptionsResponse lists the accepted values for each request vocabulary.
type OptionsResponse struct {
	ContractTypes []analysis.ContractType `json:"contract_types"`
	AnalysisFocus []analysis.Focus        `json:"analysis_focus"`
	Perspectives  []analysis.Perspective  `json:"analysis_perspectives"`
	Jurisdictions []analysis.Jurisdiction `json:"jurisdictions"`
	Languages     []analysis.Language     `json:"languages"`
	ReportFormats []analysis.ReportFormat `json:"report_formats"`
	PartyRoles    []analysis.PartyRole    `json:"party_roles"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "scans"),
	}
}

// Routes returns the route group definition for analysis endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analyze",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Analyze},
			{Method: "GET", Pattern: "/options", Handler: h.Options},
		},
	}
}

// Analyze validates the request and runs the analysis workflow. Invalid
// requests receive a 400 with the error envelope; the envelope is also used
// for refusals and internal failures so the response shape never varies.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analysis.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("rejected undecodable analysis request", "error", err)

		handlers.RespondJSON(w, http.StatusBadRequest, workflow.ErrorEnvelope(&req, analysis.ErrorDetail{
			Code:    analysis.CodeValidation,
			Message: err.Error(),
		}))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		details := make([]analysis.ErrorDetail, len(errs))
		for i, err := range errs {
			details[i] = analysis.ErrorDetail{
				Code:    analysis.CodeValidation,
				Message: err.Error(),
			}
		}

		handlers.RespondJSON(w, http.StatusBadRequest, workflow.ErrorEnvelope(&req, details...))
		return
	}

	resp, err := h.sys.Analyze(r.Context(), &req)
	if err != nil {
		h.logger.Error("analysis failed", "error", err)

		handlers.RespondJSON(w, http.StatusInternalServerError, workflow.ErrorEnvelope(&req, analysis.ErrorDetail{
			Code:    analysis.CodeAnalysisFailed,
			Message: "계약서 분석에 실패했습니다.",
		}))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Options returns the accepted request vocabularies.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, OptionsResponse{
		ContractTypes: analysis.ContractTypes(),
		AnalysisFocus: analysis.Focuses(),
		Perspectives:  analysis.Perspectives(),
		Jurisdictions: analysis.Jurisdictions(),
		Languages:     analysis.Languages(),
		ReportFormats: analysis.ReportFormats(),
		PartyRoles:    analysis.PartyRoles(),
	})
}
