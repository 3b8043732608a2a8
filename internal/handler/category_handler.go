package handlers

import (
	"encoding/json"
	"net/http"

	"photofolio/internal/service"
)

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryService.ListCategories(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, categories, http.StatusOK)
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req service.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Name is required", http.StatusBadRequest)
		return
	}

	category, err := h.CategoryService.CreateCategory(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, category, http.StatusCreated)
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, "ID is required", http.StatusBadRequest)
		return
	}

	if err := h.CategoryService.DeleteCategory(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, map[string]bool{"success": true}, http.StatusOK)
}
