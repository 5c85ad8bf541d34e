package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rajesh2024-krita/fintcs/internal/adapter/http/dto"
	"github.com/rajesh2024-krita/fintcs/internal/adapter/http/middleware"
	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/usecase"
)

// VoucherService defines the behavior needed by VoucherHandler.
type VoucherService interface {
	CreateVoucher(ctx context.Context, input usecase.CreateVoucherInput) (*domain.Voucher, error)
	GetVoucher(ctx context.Context, id string) (*domain.Voucher, error)
	VoucherTotals(ctx context.Context, id string) (totalDebit, totalCredit decimal.Decimal, err error)
	DeleteVoucher(ctx context.Context, id string) error
	ListVouchers(ctx context.Context, input usecase.ListVouchersInput) ([]*domain.Voucher, error)
}

// VoucherHandler handles voucher-related HTTP requests.
type VoucherHandler struct {
	voucherUC VoucherService
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(voucherUC VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherUC: voucherUC}
}

// Create records a new voucher. An unbalanced entry set is rejected
// before anything is persisted.
func (h *VoucherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var createdBy string
	if user, ok := middleware.GetUserFromContext(r.Context()); ok {
		createdBy = user.ID
	}

	voucher, err := h.voucherUC.CreateVoucher(r.Context(), req.ToUseCaseInput(createdBy))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create voucher", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.VoucherFromDomain(voucher))
}

// Get retrieves a voucher by ID, entries included.
func (h *VoucherHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing voucher ID", "")
		return
	}

	voucher, err := h.voucherUC.GetVoucher(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get voucher", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VoucherFromDomain(voucher))
}

// Totals returns the debit and credit sums of a voucher.
func (h *VoucherHandler) Totals(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing voucher ID", "")
		return
	}

	totalDebit, totalCredit, err := h.voucherUC.VoucherTotals(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get voucher totals", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]decimal.Decimal{
		"total_debit":  totalDebit,
		"total_credit": totalCredit,
	})
}

// Delete removes a voucher and its entries.
func (h *VoucherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing voucher ID", "")
		return
	}

	if err := h.voucherUC.DeleteVoucher(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete voucher", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists vouchers of a society, optionally filtered by type.
func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
	societyID := r.URL.Query().Get("society_id")
	if societyID == "" {
		writeError(w, http.StatusBadRequest, "missing society_id query parameter", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	vouchers, err := h.voucherUC.ListVouchers(r.Context(), usecase.ListVouchersInput{
		SocietyID: societyID,
		Type:      domain.VoucherType(r.URL.Query().Get("type")),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list vouchers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListVouchersResponse{
		Vouchers: dto.VouchersFromDomain(vouchers),
		Total:    int64(len(vouchers)),
	})
}
