package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"honorly/internal/waitlist"
	"honorly/pkg/log"
)

type mockUseCase struct {
	out waitlist.JoinOutput
	err error
}

func (m *mockUseCase) Join(_ context.Context, in waitlist.JoinInput) (waitlist.JoinOutput, error) {
	out := m.out
	out.Entry.Email = in.Email
	return out, m.err
}

func post(h *handler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/waitlist", h.Join)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/waitlist", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestJoinHandler(t *testing.T) {
	tests := []struct {
		name     string
		uc       *mockUseCase
		body     string
		wantCode int
		wantBody string
	}{
		{"joined", &mockUseCase{}, `{"email":"a@example.com"}`, http.StatusOK, `"alreadyJoined":false`},
		{"duplicate", &mockUseCase{out: waitlist.JoinOutput{AlreadyJoined: true}}, `{"email":"a@example.com"}`, http.StatusOK, `"alreadyJoined":true`},
		{"email failed", &mockUseCase{out: waitlist.JoinOutput{EmailFailed: true}}, `{"email":"a@example.com"}`, http.StatusOK, `"warning"`},
		{"missing email", &mockUseCase{}, `{}`, http.StatusBadRequest, `"field":"email"`},
		{"invalid email", &mockUseCase{err: waitlist.ErrInvalidEmail}, `{"email":"nope"}`, http.StatusBadRequest, `"error"`},
		{"store down", &mockUseCase{err: context.DeadlineExceeded}, `{"email":"a@example.com"}`, http.StatusInternalServerError, `"error"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(New(log.NewNop(), tt.uc), tt.body)
			if w.Code != tt.wantCode || !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("status = %d body = %s", w.Code, w.Body.String())
			}
		})
	}
}
