package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rajesh2024-krita/fintcs/internal/adapter/http/dto"
	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/usecase"
)

// DemandService defines the behavior needed by DemandHandler.
type DemandService interface {
	GenerateDemand(ctx context.Context, input usecase.GenerateDemandInput) ([]*domain.DemandRow, error)
	GetDemand(ctx context.Context, input usecase.GetDemandInput) ([]*domain.DemandRow, error)
}

// DemandHandler handles monthly demand statement HTTP requests.
type DemandHandler struct {
	demandUC DemandService
}

// NewDemandHandler creates a new DemandHandler.
func NewDemandHandler(demandUC DemandService) *DemandHandler {
	return &DemandHandler{demandUC: demandUC}
}

// Generate builds the demand statement for a society and period.
// Regenerating the same period replaces the previous rows.
func (h *DemandHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateDemandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	rows, err := h.demandUC.GenerateDemand(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to generate demand", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DemandStatementFromDomain(req.SocietyID, req.Month, req.Year, rows))
}

// Get retrieves a previously generated demand statement.
func (h *DemandHandler) Get(w http.ResponseWriter, r *http.Request) {
	societyID := r.URL.Query().Get("society_id")
	if societyID == "" {
		writeError(w, http.StatusBadRequest, "missing society_id query parameter", "")
		return
	}

	month := parseIntQuery(r, "month", 0)
	year := parseIntQuery(r, "year", 0)

	rows, err := h.demandUC.GetDemand(r.Context(), usecase.GetDemandInput{
		SocietyID: societyID,
		Month:     month,
		Year:      year,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get demand", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DemandStatementFromDomain(societyID, month, year, rows))
}
