package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/coursestore/backend/internal/models"
)

// WriteError writes a JSON error reply carrying the request ID of r
func WriteError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:     message,
		RequestID: GetRequestID(r.Context()),
	})
}
