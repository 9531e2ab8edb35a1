package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/coursestore/backend/internal/middleware"
	"github.com/coursestore/backend/internal/models"
	"go.uber.org/zap"
)

// BaseHandler provides the JSON replies shared by all handlers
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response carrying the request ID
func (h *BaseHandler) RespondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.RespondJSON(w, status, models.ErrorResponse{
		Error:     message,
		RequestID: middleware.GetRequestID(r.Context()),
	})
}
