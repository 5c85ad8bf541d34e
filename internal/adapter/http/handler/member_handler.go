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

// MemberService defines the behavior needed by MemberHandler.
type MemberService interface {
	CreateMember(ctx context.Context, input usecase.CreateMemberInput) (*domain.Member, error)
	GetMember(ctx context.Context, id string) (*domain.Member, error)
	UpdateMember(ctx context.Context, input usecase.UpdateMemberInput) (*domain.Member, error)
	DeleteMember(ctx context.Context, id string) error
	ListMembers(ctx context.Context, input usecase.ListMembersInput) ([]*domain.Member, error)
}

// MemberHandler handles member-related HTTP requests.
type MemberHandler struct {
	memberUC MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberUC MemberService) *MemberHandler {
	return &MemberHandler{memberUC: memberUC}
}

// Create enrolls a new member. When no member number is supplied one
// is generated in sequence for the society.
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	member, err := h.memberUC.CreateMember(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create member", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MemberFromDomain(member))
}

// Get retrieves a member by ID.
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing member ID", "")
		return
	}

	member, err := h.memberUC.GetMember(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get member", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MemberFromDomain(member))
}

// Update modifies a member. The member number is immutable.
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing member ID", "")
		return
	}

	var req dto.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	member, err := h.memberUC.UpdateMember(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update member", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MemberFromDomain(member))
}

// Delete removes a member.
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing member ID", "")
		return
	}

	if err := h.memberUC.DeleteMember(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete member", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists members of a society.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	societyID := r.URL.Query().Get("society_id")
	if societyID == "" {
		writeError(w, http.StatusBadRequest, "missing society_id query parameter", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	members, err := h.memberUC.ListMembers(r.Context(), usecase.ListMembersInput{
		SocietyID: societyID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list members", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListMembersResponse{
		Members: dto.MembersFromDomain(members),
		Total:   int64(len(members)),
	})
}
