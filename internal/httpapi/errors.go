package httpapi

import (
	"encoding/json"
	"net/http"

	"notifyd/pkg/types"
)

// requestError is a client error raised while decoding /publish.
type requestError struct {
	status int
	reason string
	msg    string
}

func (e requestError) Error() string   { return e.msg }
func (e requestError) StatusCode() int { return e.status }

// isRequestError reports whether err is a requestError.
func isRequestError(err error) (requestError, bool) {
	re, ok := err.(requestError)
	return re, ok
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
