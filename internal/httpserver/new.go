package httpserver

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"honorly/internal/access"
	"honorly/internal/middleware"
	"honorly/internal/plan"
	"honorly/internal/profile"
	"honorly/internal/question"
	"honorly/internal/task"
	"honorly/pkg/email"
	"honorly/pkg/log"
)

const shutdownTimeout = 15 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db *sql.DB

	// Request pipeline
	mw middleware.Middleware

	// Domain dependencies
	catalog     *question.Catalog
	generator   *plan.Generator
	sender      email.Sender
	storage     profile.Storage
	identity    profile.IdentityAdmin
	calendar    task.Calendar
	access      access.Config
	appURL      string
	photoBucket string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// TrustedProxies may set the client IP through X-Forwarded-For. Empty
	// trusts none.
	TrustedProxies []string

	DB         *sql.DB
	Middleware middleware.Middleware

	Catalog   *question.Catalog
	Generator *plan.Generator

	// External platform clients
	EmailSender   email.Sender
	Storage       profile.Storage
	IdentityAdmin profile.IdentityAdmin
	// Calendar is optional. Leave nil to store due dates without reminders.
	Calendar task.Calendar

	Access      access.Config
	AppURL      string
	PhotoBucket string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		mw:          cfg.Middleware,
		catalog:     cfg.Catalog,
		generator:   cfg.Generator,
		sender:      cfg.EmailSender,
		storage:     cfg.Storage,
		identity:    cfg.IdentityAdmin,
		calendar:    cfg.Calendar,
		access:      cfg.Access,
		appURL:      cfg.AppURL,
		photoBucket: cfg.PhotoBucket,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.catalog == nil || srv.generator == nil {
		return errors.New("question catalog and plan generator are required")
	}
	if srv.sender == nil {
		return errors.New("email sender is required")
	}
	if srv.storage == nil || srv.identity == nil {
		return errors.New("storage and identity admin clients are required")
	}
	if len(srv.access.Passcodes) == 0 {
		return errors.New("at least one access passcode is required")
	}
	return nil
}
