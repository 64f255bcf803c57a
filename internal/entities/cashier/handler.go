package cashier

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

type CashierHandler struct {
	service CashierService
}

func NewCashierHandler(service CashierService) *CashierHandler {
	return &CashierHandler{service: service}
}

func (h *CashierHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /cashiers", h.HandleCreate)
	mux.HandleFunc("GET /cashiers/{id}", h.HandleGet)
}

func (h *CashierHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input Cashier
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateCashier(r.Context(), input)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/cashiers/%d", created.Id))
	h.respondWithJSON(w, http.StatusCreated, created)
}

func (h *CashierHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	cashier, err := h.service.GetCashier(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, cashier)
}

// --- Helpers ---

func (h *CashierHandler) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func (h *CashierHandler) respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	switch {
	case errors.Is(err, ErrCashierNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, ErrInvalidCashierInput):
		statusCode = http.StatusBadRequest
	default:
		statusCode = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
