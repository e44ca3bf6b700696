package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"honorly/config"
	"honorly/config/sqlite"
	_ "honorly/docs" // Swagger docs
	"honorly/internal/access"
	"honorly/internal/httpserver"
	"honorly/internal/middleware"
	"honorly/internal/plan"
	"honorly/internal/question"
	"honorly/internal/task"
	"honorly/pkg/email"
	"honorly/pkg/gcalendar"
	"honorly/pkg/log"
	"honorly/pkg/ratelimit"
	"honorly/pkg/supabase"
)

// @title       Honorly API
// @description Grief support and end-of-life planning: cases, guided onboarding, task plans, invitations.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey Bearer
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Honorly API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sqlite.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if err := sqlite.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. Question catalog and plan templates
	catalog, err := question.LoadCatalog()
	if err != nil {
		logger.Error(ctx, "Failed to load question catalog: ", err)
		return
	}
	generator, err := plan.New(catalog)
	if err != nil {
		logger.Error(ctx, "Failed to load plan templates: ", err)
		return
	}

	// 5. External clients
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceRoleKey)

	emailClient, err := email.NewClient(email.Config{
		APIURL:    cfg.Email.APIURL,
		APIKey:    cfg.Email.APIKey,
		From:      cfg.Email.From,
		AppURL:    cfg.Email.AppURL,
		PerSecond: cfg.Email.PerSecond,
		Burst:     cfg.Email.Burst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize email client: ", err)
		return
	}

	// Google Calendar client (optional)
	var calendar task.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, gcalendar.Options{
			CalendarID: cfg.GoogleCalendar.CalendarID,
			Timezone:   cfg.GoogleCalendar.Timezone,
			TokenPath:  cfg.GoogleCalendar.TokenPath,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Rate limiting
	limiter := ratelimit.New(newRateLimitStore(cfg, db), rateLimitTiers(cfg), nil)
	logger.Infof(ctx, "Rate limit store: %s", cfg.RateLimit.Store)

	mw := middleware.New(logger, supabaseClient, limiter, middleware.Config{
		SessionMaxAge: cfg.Session.MaxAge,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		Environment:    cfg.Environment.Name,
		DB:             db,
		Middleware:     mw,
		Catalog:        catalog,
		Generator:      generator,
		EmailSender:    emailClient,
		Storage:        supabaseClient,
		IdentityAdmin:  supabaseClient,
		Calendar:       calendar,
		Access: access.Config{
			Passcodes:   cfg.Access.Passcodes,
			MaxAttempts: cfg.Access.MaxAttempts,
			AttemptTTL:  cfg.Access.AttemptTTL,
			Size:        cfg.RateLimit.MemorySize,
		},
		AppURL:      cfg.Email.AppURL,
		PhotoBucket: cfg.Supabase.PhotoBucket,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
