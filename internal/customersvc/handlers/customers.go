package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"

	"github.com/retailshop/customer-services/internal/customersvc/models"
	"github.com/retailshop/customer-services/internal/customersvc/validate"
)

type listCustomersResponse struct {
	Count     int                      `json:"count"`
	Customers []models.CustomerSummary `json:"customers"`
}

// RegisterCustomer handles POST /api/customers.
func (h *Handler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	payload := &validate.RegistrationPayload{}
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		h.writeError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	if err := validate.Registration(payload); err != nil {
		h.writeError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}

	customer := &models.Customer{
		Name:           payload.Name,
		Address:        payload.Address,
		Email:          payload.Email,
		DateOfBirth:    payload.DateOfBirth,
		Gender:         payload.Gender,
		Age:            payload.Age,
		CardHolderName: payload.CardHolderName,
		CardNumber:     payload.CardNumber,
		ExpiryDate:     payload.ExpiryDate,
		CVV:            payload.CVV,
		TimeStamp:      payload.TimeStamp,
	}

	result, err := h.customerService.Register(r.Context(), customer)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			h.writeError(w, http.StatusBadRequest, "Bad Request", "Email address is already registered")
			return
		}
		log.Errorf("database error registering customer: %v", err)
		h.writeError(w, http.StatusInternalServerError, "Internal Server Error",
			"Failed to register customer due to a database error")
		return
	}

	h.writeJSON(w, http.StatusCreated, result)
}

// ListCustomers handles GET /api/customers.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerService.List(r.Context())
	if err != nil {
		log.Errorf("database error listing customers: %v", err)
		h.writeError(w, http.StatusInternalServerError, "Internal Server Error",
			"Failed to retrieve customers")
		return
	}

	h.writeJSON(w, http.StatusOK, listCustomersResponse{
		Count:     len(customers),
		Customers: customers,
	})
}

// GetCustomer handles GET /api/customers/{id}.
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerId, ok := h.parseCustomerId(w, r)
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(r.Context(), customerId)
	if err != nil {
		log.Errorf("database error fetching customer %d: %v", customerId, err)
		h.writeError(w, http.StatusInternalServerError, "Internal Server Error",
			"Failed to retrieve customer")
		return
	}
	if customer == nil {
		h.writeError(w, http.StatusNotFound, "Not Found", "Customer not found")
		return
	}

	h.writeJSON(w, http.StatusOK, customer)
}

// UpdateCustomer handles PUT /api/customers/{id}.
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerId, ok := h.parseCustomerId(w, r)
	if !ok {
		return
	}

	fields := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.writeError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return
	}

	updated, err := h.customerService.Update(r.Context(), customerId, fields)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyUpdate):
			h.writeError(w, http.StatusBadRequest, "Bad Request", "No fields to update")
		case errors.Is(err, models.ErrUnknownField):
			h.writeError(w, http.StatusBadRequest, "Bad Request", err.Error())
		default:
			log.Errorf("database error updating customer %d: %v", customerId, err)
			h.writeError(w, http.StatusInternalServerError, "Internal Server Error",
				"Failed to update customer")
		}
		return
	}
	if !updated {
		h.writeError(w, http.StatusNotFound, "Not Found", "Customer not found")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Customer updated successfully"})
}

// DeleteCustomer handles DELETE /api/customers/{id}.
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerId, ok := h.parseCustomerId(w, r)
	if !ok {
		return
	}

	deleted, err := h.customerService.Delete(r.Context(), customerId)
	if err != nil {
		log.Errorf("database error deleting customer %d: %v", customerId, err)
		h.writeError(w, http.StatusInternalServerError, "Internal Server Error",
			"Failed to delete customer")
		return
	}
	if !deleted {
		h.writeError(w, http.StatusNotFound, "Not Found", "Customer not found")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted successfully"})
}

func (h *Handler) parseCustomerId(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	customerId, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Bad Request", "Invalid customer id")
		return 0, false
	}
	return customerId, true
}
