package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"honorly/internal/invitation"
	"honorly/internal/model"
	"honorly/pkg/log"
)

type mockUseCase struct {
	invitation.UseCase
	sendOut invitation.SendOutput
	err     error
}

func (m *mockUseCase) Send(_ context.Context, _ model.Scope, in invitation.SendInput) (invitation.SendOutput, error) {
	out := m.sendOut
	out.Invitation.CaseID = in.CaseID
	out.Invitation.Email = in.Email
	out.Invitation.Token = "secret-token"
	return out, m.err
}

func (m *mockUseCase) Accept(_ context.Context, _ model.Scope, token string) (invitation.AcceptOutput, error) {
	return invitation.AcceptOutput{CaseID: "c1", Role: model.RoleSupport}, m.err
}

func serve(h gin.HandlerFunc, method, pattern, target, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(model.SetScopeToContext(req.Context(), model.Scope{UserID: "u1", Email: "owner@example.com"}))
	c.Request = req
	r.Handle(method, pattern, h)
	r.HandleContext(c)
	return w
}

func TestSendHandler(t *testing.T) {
	expires := time.Now().Add(invitation.TTL)
	h := New(log.NewNop(), &mockUseCase{sendOut: invitation.SendOutput{Invitation: model.Invitation{ID: "i1", Status: model.InvitationPending, ExpiresAt: expires}}})

	w := serve(h.Send, http.MethodPost, "/cases/:id/invitations", "/cases/c1/invitations", `{"email":"sam@example.com"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "secret-token") {
		t.Error("response leaks the invitation token")
	}
	var body struct {
		Warning string   `json:"warning"`
		Data    sendResp `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Warning != "" || body.Data.Invitation.CaseID != "c1" || body.Data.Invitation.Expired {
		t.Errorf("unexpected body: %s", w.Body.String())
	}

	if w := serve(h.Send, http.MethodPost, "/cases/:id/invitations", "/cases/c1/invitations", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing email status = %d, want 400", w.Code)
	}
}

func TestSendHandlerEmailWarning(t *testing.T) {
	h := New(log.NewNop(), &mockUseCase{sendOut: invitation.SendOutput{EmailFailed: true}})

	w := serve(h.Send, http.MethodPost, "/cases/:id/invitations", "/cases/c1/invitations", `{"email":"sam@example.com"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"warning"`) {
		t.Errorf("status = %d body = %s", w.Code, w.Body.String())
	}
}

func TestHandlersMapErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{invitation.ErrInvalidEmail, http.StatusBadRequest},
		{invitation.ErrAlreadyInvited, http.StatusBadRequest},
		{invitation.ErrInvitationExpired, http.StatusBadRequest},
		{invitation.ErrEmailMismatch, http.StatusForbidden},
		{invitation.ErrInvitationNotFound, http.StatusNotFound},
		{context.Canceled, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		h := New(log.NewNop(), &mockUseCase{err: tt.err})
		w := serve(h.Accept, http.MethodPost, "/invitations/:token/accept", "/invitations/tok/accept", "")
		if w.Code != tt.want {
			t.Errorf("%v: status = %d, want %d", tt.err, w.Code, tt.want)
		}
	}
}
