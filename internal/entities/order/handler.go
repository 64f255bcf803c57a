package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cornerstore/internal/entities/product"
)

type OrderHandler struct {
	service OrderService
}

func NewOrderHandler(service OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /orders", h.HandleCreate)
	mux.HandleFunc("GET /orders", h.HandleList)
	mux.HandleFunc("GET /orders/{id}", h.HandleGet)
	mux.HandleFunc("DELETE /orders/{id}", h.HandleDelete)
}

// CREATE (order plus line items as one unit)
func (h *OrderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input Order
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateOrder(r.Context(), input)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/orders/%d", created.Id))
	h.respondWithJSON(w, http.StatusCreated, created)
}

// GET
func (h *OrderHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	order, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, order)
}

// LIST (optionally filtered by ?orderDate=YYYY-MM-DD)
func (h *OrderHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var paidOn *time.Time
	if v := r.URL.Query().Get("orderDate"); v != "" {
		day, err := time.Parse("2006-01-02", v)
		if err != nil {
			http.Error(w, "Invalid orderDate", http.StatusBadRequest)
			return
		}
		paidOn = &day
	}

	orders, err := h.service.ListOrders(r.Context(), paidOn)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, orders)
}

// DELETE (cascades to line items)
func (h *OrderHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		h.respondWithError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Helpers ---

func (h *OrderHandler) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func (h *OrderHandler) respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	switch {
	case errors.Is(err, ErrOrderNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, ErrInvalidOrderInput):
		statusCode = http.StatusBadRequest
	case errors.Is(err, ErrCashierNotFound):
		// dangling cashierId on create is a validation failure
		statusCode = http.StatusBadRequest
	case errors.Is(err, product.ErrProductNotFound):
		// dangling productId in a line item likewise
		statusCode = http.StatusBadRequest
	default:
		statusCode = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
