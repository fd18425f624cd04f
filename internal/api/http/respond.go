package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/logger"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// writeError maps domain error codes to HTTP statuses. Anything that is
// not a typed domain error is an infrastructure failure and surfaces as
// a 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		logger.Error("Internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error: errorDetail{Code: "INTERNAL", Message: "internal server error"},
		})
		return
	}

	var status int
	switch de.Code {
	case domain.CodeNotFound:
		status = http.StatusNotFound
	case domain.CodeForbidden, domain.CodeSelfBookingForbidden:
		status = http.StatusForbidden
	case domain.CodeInvalidState, domain.CodeDateConflict, domain.CodeAlreadyReviewed:
		status = http.StatusConflict
	case domain.CodeProfileIncomplete:
		status = http.StatusUnprocessableEntity
	case domain.CodeItemUnavailable, domain.CodeValidation:
		status = http.StatusBadRequest
	default:
		status = http.StatusBadRequest
	}

	writeJSON(w, status, errorBody{
		Error: errorDetail{Code: string(de.Code), Message: de.Message},
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, errorBody{
		Error: errorDetail{Code: "UNAUTHORIZED", Message: message},
	})
}
