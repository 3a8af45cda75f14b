package http

import (
	"encoding/json"
	"net/http"
)

// AppHttpHandler is implemented by all route handlers. Returned errors flow
// through errorHandlingAdapter, which maps them to JSON error responses.
type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(body)
}
