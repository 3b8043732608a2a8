package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"photofolio/internal/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// ContactMessage is a submitted contact form entry forwarded to the
// site owner by email.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type Mailer interface {
	SendContact(ctx context.Context, msg ContactMessage) error
}

// ResendMailer delivers contact notifications through the Resend HTTP
// API. No retry: a failed send is surfaced to the caller.
type ResendMailer struct {
	cfg    *config.Config
	client *http.Client
}

func NewResendMailer(cfg *config.Config) *ResendMailer {
	return &ResendMailer{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type resendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	ReplyTo string `json:"reply_to"`
}

func (m *ResendMailer) SendContact(ctx context.Context, msg ContactMessage) error {
	if m.cfg.Resend.APIKey == "" {
		return fmt.Errorf("email service is not configured")
	}

	subject := msg.Subject
	if subject == "" {
		subject = fmt.Sprintf("Contact Form: Message from %s", msg.Name)
	}

	body, err := json.Marshal(resendRequest{
		From:    m.cfg.Resend.EmailFrom,
		To:      m.cfg.Resend.EmailTo,
		Subject: subject,
		HTML:    renderContactHTML(msg),
		ReplyTo: msg.Email,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.cfg.Resend.APIKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	return nil
}

func renderContactHTML(msg ContactMessage) string {
	subject := msg.Subject
	if subject == "" {
		subject = "No subject"
	}

	return fmt.Sprintf(
		`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<hr />
<p><strong>Message:</strong></p>
<p>%s</p>`,
		msg.Name,
		msg.Email,
		subject,
		strings.ReplaceAll(msg.Message, "\n", "<br>"),
	)
}
