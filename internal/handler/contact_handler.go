package handlers

import (
	"encoding/json"
	"net/http"

	"photofolio/internal/mailer"
)

func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
		Subject string `json:"subject"`
		Message string `json:"message" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Name, email, and message are required", http.StatusBadRequest)
		return
	}

	err := h.Mailer.SendContact(r.Context(), mailer.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		WriteError(w, "Failed to send email", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"success": true,
		"message": "Email sent successfully",
	}, http.StatusOK)
}
