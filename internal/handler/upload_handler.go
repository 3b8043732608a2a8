package handlers

import (
	"encoding/json"
	"net/http"

	"photofolio/internal/service"
)

// PresignedURL is step one of the upload protocol: hand the client a
// time-limited write credential so the binary goes straight to the
// bucket.
func (h *Handlers) PresignedURL(w http.ResponseWriter, r *http.Request) {
	if _, ok := service.PrincipalFrom(r.Context()); !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Filename string `json:"filename" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Filename is required", http.StatusBadRequest)
		return
	}

	ticket, err := h.FileService.PresignUpload(r.Context(), req.Filename)
	if err != nil {
		respondError(w, err)
		return
	}

	WriteSuccess(w, ticket, http.StatusOK)
}
