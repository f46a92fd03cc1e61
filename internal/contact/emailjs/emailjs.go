package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vbonduro/amblitz/internal/contact"
)

const defaultAPIURL = "https://api.emailjs.com/api/v1.0/email/send"

// request mirrors the EmailJS send API payload.
type request struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

type Client struct {
	publicKey  string
	privateKey string
	serviceID  string
	templateID string
	client     *http.Client
	baseURL    string
}

// NewClient returns a Client for the given EmailJS account. privateKey may be
// empty when the account does not enforce API access tokens.
func NewClient(publicKey, privateKey, serviceID, templateID string) *Client {
	return &Client{
		publicKey:  publicKey,
		privateKey: privateKey,
		serviceID:  serviceID,
		templateID: templateID,
		client:     &http.Client{},
		baseURL:    defaultAPIURL,
	}
}

// WithBaseURL points the client at a different endpoint.
func (c *Client) WithBaseURL(url string) *Client {
	if url != "" {
		c.baseURL = url
	}
	return c
}

func (c *Client) Send(ctx context.Context, email contact.Email) error {
	payload, err := json.Marshal(request{
		ServiceID:      c.serviceID,
		TemplateID:     c.templateID,
		UserID:         c.publicKey,
		AccessToken:    c.privateKey,
		TemplateParams: email.TemplateParams,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call emailjs: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("failed to close emailjs response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("emailjs returned status %d: %s", resp.StatusCode, errBody)
	}
	return nil
}
