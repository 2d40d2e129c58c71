package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody mirrors the REST error envelope so middleware failures look
// like handler failures.
type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Status: "error", Message: message, Error: code}) //nolint:errcheck
}
