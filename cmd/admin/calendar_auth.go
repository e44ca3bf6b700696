package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"honorly/config"
)

// calendarAuthCmd runs the installed-app OAuth flow once and stores the token
// the API reads at google_calendar.token_path.
func calendarAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar reminders and save the OAuth token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			credsPath := cfg.GoogleCalendar.CredentialsPath
			if credsPath == "" {
				return fmt.Errorf("google_calendar.credentials_path is not set")
			}
			tokenPath := cfg.GoogleCalendar.TokenPath
			if tokenPath == "" {
				tokenPath = "token.json"
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("failed to read credentials file %q: %w", credsPath, err)
			}
			oauthCfg, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
			if err != nil {
				return fmt.Errorf("%q is not an installed-app credentials file: %w", credsPath, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with the calendar's Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, oauthCfg.AuthCodeURL("honorly", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code and press Enter: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}

			tok, err := oauthCfg.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("failed to exchange authorization code: %w", err)
			}

			f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", tokenPath, err)
			}
			defer f.Close()

			if err := json.NewEncoder(f).Encode(tok); err != nil {
				return fmt.Errorf("failed to write %s: %w", tokenPath, err)
			}
			fmt.Fprintf(out, "\nToken saved to %s. Restart the API to enable reminders.\n", tokenPath)
			return nil
		},
	}
}
