package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rajesh2024-krita/fintcs/internal/adapter/http/dto"
	"github.com/rajesh2024-krita/fintcs/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes. A malformed
// stored number is a data corruption signal and surfaces as a 500.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrSocietyNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMemberNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrLoanNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrVoucherNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDemandNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateNumber):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSocietyInactive):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMemberInactive):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMemberSocietyMismatch):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidLoanType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidNumber):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrVoucherNotBalanced):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrVoucherEmpty):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNegativeEntryAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidVoucherType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidPeriod):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidName):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidSocietyCode):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountNegative):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPasswordTooWeak):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidEDPNumber):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInsufficientRole):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
