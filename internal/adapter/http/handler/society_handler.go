package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rajesh2024-krita/fintcs/internal/adapter/http/dto"
	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/usecase"
)

// SocietyService defines the behavior needed by SocietyHandler.
type SocietyService interface {
	CreateSociety(ctx context.Context, input usecase.CreateSocietyInput) (*domain.Society, error)
	GetSociety(ctx context.Context, id string) (*domain.Society, error)
	UpdateSociety(ctx context.Context, input usecase.UpdateSocietyInput) (*domain.Society, error)
	DeleteSociety(ctx context.Context, id string) error
	ListSocieties(ctx context.Context, input usecase.ListSocietiesInput) ([]*domain.Society, error)
}

// SocietyHandler handles society-related HTTP requests.
type SocietyHandler struct {
	societyUC SocietyService
}

// NewSocietyHandler creates a new SocietyHandler.
func NewSocietyHandler(societyUC SocietyService) *SocietyHandler {
	return &SocietyHandler{societyUC: societyUC}
}

// Create registers a new society.
func (h *SocietyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSocietyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	society, err := h.societyUC.CreateSociety(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create society", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SocietyFromDomain(society))
}

// Get retrieves a society by ID.
func (h *SocietyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing society ID", "")
		return
	}

	society, err := h.societyUC.GetSociety(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get society", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SocietyFromDomain(society))
}

// Update modifies a society. The society code is immutable.
func (h *SocietyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing society ID", "")
		return
	}

	var req dto.UpdateSocietyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	society, err := h.societyUC.UpdateSociety(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update society", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SocietyFromDomain(society))
}

// Delete removes a society.
func (h *SocietyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing society ID", "")
		return
	}

	if err := h.societyUC.DeleteSociety(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete society", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists societies.
func (h *SocietyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	societies, err := h.societyUC.ListSocieties(r.Context(), usecase.ListSocietiesInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list societies", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListSocietiesResponse{
		Societies: dto.SocietiesFromDomain(societies),
		Total:     int64(len(societies)),
	})
}
