package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"honorly/config/sqlite"
	"honorly/internal/access"
	"honorly/internal/middleware"
	"honorly/internal/plan"
	"honorly/internal/question"
	"honorly/pkg/email"
	"honorly/pkg/log"
	"honorly/pkg/ratelimit"
	"honorly/pkg/supabase"
)

type nopSender struct{}

func (nopSender) Send(context.Context, email.Message) (email.SendResult, error) {
	return email.SendResult{ID: "msg"}, nil
}

type nopPlatform struct{}

func (nopPlatform) GetUser(context.Context, string) (supabase.User, error) {
	return supabase.User{}, supabase.ErrInvalidToken
}
func (nopPlatform) DeleteUser(context.Context, string) error { return nil }
func (nopPlatform) ListObjects(context.Context, string, string) ([]supabase.Object, error) {
	return nil, nil
}
func (nopPlatform) RemoveObjects(context.Context, string, []string) error { return nil }

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	catalog := question.MustLoadCatalog()
	generator, err := plan.New(catalog)
	if err != nil {
		t.Fatalf("plan.New: %v", err)
	}

	l := log.NewNop()
	limiter := ratelimit.New(ratelimit.NewMemoryStore(100, time.Hour), map[string]ratelimit.Tier{
		ratelimit.TagAuth:  {Limit: 5, Window: 15 * time.Minute},
		ratelimit.TagEmail: {Limit: 10, Window: time.Hour},
		ratelimit.TagAPI:   {Limit: 100, Window: time.Minute},
	}, nil)

	srv, err := New(l, Config{
		Logger:        l,
		Port:          8080,
		Mode:          gin.TestMode,
		Environment:   "development",
		DB:            db,
		Middleware:    middleware.New(l, nopPlatform{}, limiter, middleware.Config{}),
		Catalog:       catalog,
		Generator:     generator,
		EmailSender:   nopSender{},
		Storage:       nopPlatform{},
		IdentityAdmin: nopPlatform{},
		Access:        access.Config{Passcodes: []string{"open-sesame"}, MaxAttempts: 3, AttemptTTL: time.Hour, Size: 10},
		AppURL:        "https://honorly.test",
		PhotoBucket:   "photos",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := srv.mapHandlers(context.Background()); err != nil {
		t.Fatalf("mapHandlers: %v", err)
	}
	return srv
}

func (srv *HTTPServer) serve(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode})
	if err == nil {
		t.Fatal("expected error without a database")
	}
}

func TestNewRejectsBadTrustedProxy(t *testing.T) {
	db, err := sqlite.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	catalog := question.MustLoadCatalog()
	generator, err := plan.New(catalog)
	if err != nil {
		t.Fatalf("plan.New: %v", err)
	}

	_, err = New(log.NewNop(), Config{
		Logger:         log.NewNop(),
		Port:           8080,
		Mode:           gin.TestMode,
		TrustedProxies: []string{"not-an-ip"},
		DB:             db,
		Catalog:        catalog,
		Generator:      generator,
		EmailSender:    nopSender{},
		Storage:        nopPlatform{},
		IdentityAdmin:  nopPlatform{},
		Access:         access.Config{Passcodes: []string{"open-sesame"}},
	})
	if err == nil {
		t.Fatal("expected error for an unparsable trusted proxy")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := srv.serve(http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"service":"honorly"`) {
			t.Errorf("GET %s body = %s", path, w.Body.String())
		}
	}

	if w := srv.serve(http.MethodGet, "/health", ""); w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestReadyFailsWithoutDatabase(t *testing.T) {
	srv := newTestServer(t)
	srv.db.Close()

	w := srv.serve(http.MethodGet, "/ready", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("GET /ready = %d, want 503", w.Code)
	}
}

func TestDomainRoutesRegistered(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"public questions", http.MethodGet, "/api/v1/onboarding/questions?path=recent-loss", "", http.StatusOK},
		{"unknown path", http.MethodGet, "/api/v1/onboarding/questions?path=elsewhere", "", http.StatusBadRequest},
		{"passcode accepted", http.MethodPost, "/api/v1/access/verify", `{"passcode":"open-sesame"}`, http.StatusOK},
		{"waitlist join", http.MethodPost, "/api/v1/waitlist", `{"email":"ana@example.com"}`, http.StatusOK},
		{"cases need a session", http.MethodGet, "/api/v1/cases", "", http.StatusUnauthorized},
		{"tasks need a session", http.MethodPatch, "/api/v1/tasks/t1/status", `{"status":"completed"}`, http.StatusUnauthorized},
		{"profile needs a session", http.MethodGet, "/api/v1/profile", "", http.StatusUnauthorized},
		{"account delete needs a session", http.MethodDelete, "/api/v1/account", `{"confirm":"DELETE"}`, http.StatusUnauthorized},
		{"not mounted", http.MethodGet, "/api/v2/cases", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.serve(tt.method, tt.target, tt.body)
			if w.Code != tt.want {
				t.Errorf("%s %s = %d, want %d (body %s)", tt.method, tt.target, w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t)
	// Fresh engine: Run maps handlers itself. Port 0 picks a free port.
	srv.gin = gin.New()
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
