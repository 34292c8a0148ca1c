package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/retailshop/customer-services/internal/customersvc/service"
)

type Handler struct {
	customerService *service.CustomerService
}

func NewHandler(cs *service.CustomerService) *Handler {
	return &Handler{customerService: cs}
}

// ErrorResponse is the body of every failure, regardless of endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) writeError(w http.ResponseWriter, code int, category, message string) {
	h.writeJSON(w, code, ErrorResponse{Error: category, Message: message})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message":   "API is running successfully",
		"timestamp": time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}

// NotFoundHandler answers any unmatched route.
func (h *Handler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, http.StatusNotFound, "Endpoint not found", "The requested API endpoint does not exist")
}
