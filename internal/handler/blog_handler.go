package handlers

import (
	"encoding/json"
	"net/http"

	"photofolio/internal/service"
)

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.BlogService.ListPosts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	principal, ok := service.PrincipalFrom(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req service.BlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Title is required", http.StatusBadRequest)
		return
	}

	post, err := h.BlogService.CreatePost(r.Context(), req, principal.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req service.BlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteError(w, "ID is required", http.StatusBadRequest)
		return
	}

	post, err := h.BlogService.UpdatePost(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, "ID is required", http.StatusBadRequest)
		return
	}

	if err := h.BlogService.DeletePost(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, map[string]bool{"success": true}, http.StatusOK)
}
