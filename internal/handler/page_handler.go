package handlers

import (
	"encoding/json"
	"net/http"

	"photofolio/internal/service"
)

func (h *Handlers) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.PageService.ListPages(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, pages, http.StatusOK)
}

func (h *Handlers) CreatePage(w http.ResponseWriter, r *http.Request) {
	var req service.PageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Title is required", http.StatusBadRequest)
		return
	}

	page, err := h.PageService.CreatePage(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, page, http.StatusCreated)
}

func (h *Handlers) UpdatePage(w http.ResponseWriter, r *http.Request) {
	var req service.PageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteError(w, "ID is required", http.StatusBadRequest)
		return
	}

	page, err := h.PageService.UpdatePage(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, page, http.StatusOK)
}

func (h *Handlers) DeletePage(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, "ID is required", http.StatusBadRequest)
		return
	}

	if err := h.PageService.DeletePage(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, map[string]bool{"success": true}, http.StatusOK)
}
