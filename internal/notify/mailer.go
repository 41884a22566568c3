package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Mailer delivers a single transactional email.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// HTTPMailer posts messages to a transactional-email provider's REST API.
type HTTPMailer struct {
	endpoint    string
	apiKey      string
	senderEmail string
	senderName  string
	httpClient  *http.Client
}

// NewHTTPMailer returns nil when the provider is not configured; callers
// treat a nil mailer as "log and drop".
func NewHTTPMailer(endpoint, apiKey, senderEmail, senderName string) *HTTPMailer {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(senderEmail) == "" {
		return nil
	}
	if strings.TrimSpace(senderName) == "" {
		senderName = senderEmail
	}
	return &HTTPMailer{
		endpoint:    endpoint,
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		httpClient:  &http.Client{Timeout: 8 * time.Second},
	}
}

type sendRequest struct {
	Sender      sender      `json:"sender"`
	To          []recipient `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent"`
}

type sender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type recipient struct {
	Email string `json:"email"`
}

func (m *HTTPMailer) Send(ctx context.Context, to, subject, html string) error {
	if m == nil {
		return errors.New("mailer is not configured")
	}
	if strings.TrimSpace(to) == "" {
		return errors.New("missing recipient email")
	}

	payload := sendRequest{
		Sender:      sender{Name: m.senderName, Email: m.senderEmail},
		To:          []recipient{{Email: to}},
		Subject:     subject,
		HTMLContent: html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
