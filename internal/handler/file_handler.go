package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"photofolio/internal/service"
)

func (h *Handlers) ListFiles(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("categoryId")

	files, err := h.FileService.ListFiles(r.Context(), categoryID)
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, files, http.StatusOK)
}

// CreateFile is step three of the upload protocol: the binary is
// already in the bucket, this records its metadata.
func (h *Handlers) CreateFile(w http.ResponseWriter, r *http.Request) {
	principal, ok := service.PrincipalFrom(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req service.CreateFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Name, URL, and key are required", http.StatusBadRequest)
		return
	}

	file, err := h.FileService.CreateFile(r.Context(), req, principal.UserID)
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, file, http.StatusCreated)
}

func (h *Handlers) GetFile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	file, err := h.FileService.GetFile(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, file, http.StatusOK)
}

func (h *Handlers) UpdateFile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req service.PatchFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Name is required", http.StatusBadRequest)
		return
	}

	file, err := h.FileService.UpdateFile(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, file, http.StatusOK)
}

// DeleteFile accepts the id either as a path segment or as an ?id=
// query parameter; the admin dashboard uses both forms.
func (h *Handlers) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		id = r.URL.Query().Get("id")
	}
	if id == "" {
		WriteError(w, "ID is required", http.StatusBadRequest)
		return
	}

	if err := h.FileService.DeleteFile(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, map[string]bool{"success": true}, http.StatusOK)
}
