package helpers

import (
	"encoding/json"
	"net/http"
)

// Machine-readable codes carried in the error object. Clients branch on
// these rather than on the HTTP status alone.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeNotFound      = "not_found"
	ErrCodeInternalError = "internal_error"
)

// APIError explains why a request was rejected.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the envelope every endpoint returns. Exactly one of Data
// and Error is non-nil; the other is serialized as JSON null so clients can
// always check the same two fields.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess writes statusCode and the envelope with Error null.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeEnvelope(w, statusCode, APIResponse{Data: data})
}

// WriteJSONError writes statusCode and the envelope with Data null.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeEnvelope(w, statusCode, APIResponse{
		Error: &APIError{Code: code, Message: message},
	})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	// Encode failures past WriteHeader are unrecoverable; nothing to do.
	_ = json.NewEncoder(w).Encode(resp)
}
