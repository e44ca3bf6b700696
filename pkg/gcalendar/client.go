package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const dateLayout = "2006-01-02"

// Client creates due-date reminders in one calendar.
type Client struct {
	service    *calendar.Service
	calendarID string
	timezone   string
}

// NewClientFromCredentialsFile builds a client from a service account or
// installed-app credentials file.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string, opts Options) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, opts)
}

// NewClientFromCredentialsJSON tries service account credentials first and
// falls back to installed-app credentials with a stored token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, opts Options) (*Client, error) {
	if jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope); err == nil {
		svc, err := calendar.NewService(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
		if err != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", err)
		}
		return newClient(svc, opts), nil
	}

	var creds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &creds); err != nil || creds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported google credentials format")
	}

	tokenPath := opts.TokenPath
	if tokenPath == "" {
		tokenPath = "token.json"
	}
	raw, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("installed-app credentials need a token at %s: %w", tokenPath, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, err)
	}

	oauthCfg := &oauth2.Config{
		ClientID:     creds.Installed.ClientID,
		ClientSecret: creds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, &tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service from oauth token: %w", err)
	}
	return newClient(svc, opts), nil
}

// NewClientFromHTTP builds a client on a preconfigured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts Options) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc, opts), nil
}

func newClient(svc *calendar.Service, opts Options) *Client {
	id := opts.CalendarID
	if id == "" {
		id = "primary"
	}
	return &Client{service: svc, calendarID: id, timezone: opts.Timezone}
}

// CreateReminder inserts an all-day event on the due date and returns its id.
func (c *Client) CreateReminder(ctx context.Context, r Reminder) (string, error) {
	if r.Due.IsZero() {
		return "", fmt.Errorf("gcalendar: reminder due date is required")
	}

	desc := r.Description
	if r.Link != "" {
		desc = strings.TrimSpace(desc + "\n\n" + r.Link)
	}
	day := r.Due.Format(dateLayout)
	next := r.Due.AddDate(0, 0, 1).Format(dateLayout)

	event := &calendar.Event{
		Summary:     r.Title,
		Description: desc,
		Start:       &calendar.EventDateTime{Date: day, TimeZone: c.timezone},
		End:         &calendar.EventDateTime{Date: next, TimeZone: c.timezone},
		Reminders: &calendar.EventReminders{
			UseDefault:      false,
			Overrides:       []*calendar.EventReminder{{Method: "email", Minutes: 24 * 60}},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := c.service.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar reminder: %w", err)
	}
	return created.Id, nil
}
