// Package helpers holds the JSON envelope, request decoding and pagination helpers
// shared by the HTTP controllers and middleware.
package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Kirubel-Te/Event-Next/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeConflict         = "conflict"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeInternalError    = "internal_error"
	ErrCodeUnavailable      = "service_unavailable"
)

// APIError is the error object in the standardized API response envelope.
// Details lists the individual field violations of a rejected save.
// swagger:model APIError
type APIError struct {
	Code    string                    `json:"code"`
	Message string                    `json:"message"`
	Details []*domain.ValidationError `json:"details,omitempty"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, APIResponse{
		Data:  nil,
		Error: &APIError{Code: code, Message: message},
	})
}

// WriteValidationError writes err as 400 validation_failed with per-field details and
// reports true when err carries domain.ValidationErrors. A rejection made up solely of
// uniqueness violations is written as 409 conflict instead. It writes nothing and
// returns false for any other error.
func WriteValidationError(w http.ResponseWriter, err error) bool {
	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return false
	}
	status, code := http.StatusBadRequest, ErrCodeValidationFailed
	if onlyKind(verrs, domain.KindUniqueness) {
		status, code = http.StatusConflict, ErrCodeConflict
	}
	writeJSON(w, status, APIResponse{
		Error: &APIError{Code: code, Message: verrs.Error(), Details: verrs},
	})
	return true
}

func onlyKind(verrs domain.ValidationErrors, kind domain.ValidationKind) bool {
	for _, e := range verrs {
		if e.Kind != kind {
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
