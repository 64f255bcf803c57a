package product

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cornerstore/internal/entities/category"
)

type ProductHandler struct {
	service ProductService
}

func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /products", h.HandleCreate)
	mux.HandleFunc("GET /products", h.HandleList)
	mux.HandleFunc("GET /products/popular", h.HandlePopular)
	mux.HandleFunc("GET /products/{id}", h.HandleGet)
	mux.HandleFunc("PUT /products/{id}", h.HandleUpdate)
}

// GET
func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, product)
}

// CREATE
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input Product
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateProduct(r.Context(), input)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/products/%d", created.Id))
	h.respondWithJSON(w, http.StatusCreated, created)
}

// LIST (optionally filtered by ?search= against name or brand)
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	products, err := h.service.ListProducts(r.Context(), search)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, products)
}

// POPULAR (top sellers by summed quantity)
func (h *ProductHandler) HandlePopular(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.PopularProducts(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, products)
}

// UPDATE (full replacement of mutable fields)
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	var input Product
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateProduct(r.Context(), id, input); err != nil {
		h.respondWithError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Helpers ---

func (h *ProductHandler) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func (h *ProductHandler) respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	switch {
	case errors.Is(err, ErrProductNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, ErrInvalidProductInput):
		statusCode = http.StatusBadRequest
	case errors.Is(err, category.ErrCategoryNotFound):
		// dangling categoryId on create/update is a validation failure
		statusCode = http.StatusBadRequest
	default:
		statusCode = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
