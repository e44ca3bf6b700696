package gcalendar

import "time"

// Reminder is an all-day calendar entry for a task due date.
type Reminder struct {
	Title       string
	Description string
	Due         time.Time
	Link        string
}

// Options configures a Client.
type Options struct {
	CalendarID string
	Timezone   string
	// TokenPath is used for installed-app credentials only.
	TokenPath string
}
