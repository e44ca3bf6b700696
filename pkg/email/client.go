package email

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/mail"
	"time"

	"golang.org/x/time/rate"
)

//go:embed templates/*.html
var templateFS embed.FS

// Sender is implemented by Client and by test doubles.
type Sender interface {
	Send(ctx context.Context, msg Message) (SendResult, error)
}

// Client sends templated email through an HTTP email API.
type Client struct {
	cfg        Config
	templates  *template.Template
	limiter    *rate.Limiter
	httpClient *http.Client
}

// NewClient parses the embedded templates and builds a throttled client.
func NewClient(cfg Config) (*Client, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("email: parse templates: %w", err)
	}
	tmpl.Option("missingkey=zero")
	if cfg.PerSecond <= 0 {
		cfg.PerSecond = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &Client{
		cfg:        cfg,
		templates:  tmpl,
		limiter:    rate.NewLimiter(rate.Limit(cfg.PerSecond), cfg.Burst),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// AppURL is the public base URL used in links.
func (c *Client) AppURL() string { return c.cfg.AppURL }

// Render executes a template with vars. AppURL is always available.
func (c *Client) Render(name string, vars map[string]string) (string, error) {
	if _, ok := subjects[name]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	data := map[string]string{"AppURL": c.cfg.AppURL}
	for k, v := range vars {
		data[k] = v
	}

	var buf bytes.Buffer
	if err := c.templates.ExecuteTemplate(&buf, name+".html", data); err != nil {
		return "", fmt.Errorf("email: render %s: %w", name, err)
	}
	return buf.String(), nil
}

// Send renders msg and posts it to the provider, waiting for the throttle.
func (c *Client) Send(ctx context.Context, msg Message) (SendResult, error) {
	if _, err := mail.ParseAddress(msg.To); err != nil {
		return SendResult{}, ErrInvalidAddress
	}
	html, err := c.Render(msg.Template, msg.Variables)
	if err != nil {
		return SendResult{}, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return SendResult{}, fmt.Errorf("email: throttle: %w", err)
	}

	body, err := json.Marshal(sendRequest{
		From:    c.cfg.From,
		To:      []string{msg.To},
		Subject: subjects[msg.Template],
		HTML:    html,
	})
	if err != nil {
		return SendResult{}, fmt.Errorf("failed to marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return SendResult{}, fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SendResult{}, fmt.Errorf("failed to call email API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return SendResult{}, fmt.Errorf("email API error %d: %s", resp.StatusCode, string(raw))
	}

	var out SendResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return SendResult{}, fmt.Errorf("failed to decode email response: %w", err)
	}
	return out, nil
}
