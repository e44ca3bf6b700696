package email

import "errors"

// Template names.
const (
	TemplateInvitation           = "invitation"
	TemplateWaitlistConfirmation = "waitlist_confirmation"
	TemplateVerification         = "verification"
)

var subjects = map[string]string{
	TemplateInvitation:           "You have been invited to help on Honorly",
	TemplateWaitlistConfirmation: "You are on the Honorly waitlist",
	TemplateVerification:         "Confirm your email for Honorly",
}

var (
	ErrUnknownTemplate = errors.New("email: unknown template")
	ErrInvalidAddress  = errors.New("email: invalid recipient address")
)

// Message is one templated email.
type Message struct {
	Template  string
	To        string
	Variables map[string]string
}

// SendResult is what the provider returns for an accepted message.
type SendResult struct {
	ID string `json:"id"`
}

// Config holds the provider settings.
type Config struct {
	APIURL    string
	APIKey    string
	From      string
	AppURL    string
	PerSecond float64
	Burst     int
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}
