package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	c, err := NewClient(Config{AppURL: "https://honorly.test"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	t.Run("invitation escapes variables", func(t *testing.T) {
		html, err := c.Render(TemplateInvitation, map[string]string{
			"FirstName":    "Sam",
			"InviterName":  "Ana",
			"LovedOneName": "Jane Doe",
			"Message":      "<script>alert(1)</script>",
			"AcceptURL":    "https://honorly.test/invite/abc",
		})
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		for _, want := range []string{"Hello Sam,", "Jane Doe", "https://honorly.test/invite/abc", "&lt;script&gt;"} {
			if !strings.Contains(html, want) {
				t.Errorf("rendered html missing %q", want)
			}
		}
	})

	t.Run("waitlist uses AppURL", func(t *testing.T) {
		html, err := c.Render(TemplateWaitlistConfirmation, nil)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if !strings.Contains(html, "https://honorly.test") {
			t.Error("expected app url in body")
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		if _, err := c.Render("nope", nil); !errors.Is(err, ErrUnknownTemplate) {
			t.Errorf("err = %v, want ErrUnknownTemplate", err)
		}
	})
}

func TestSend(t *testing.T) {
	var got sendRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		if got.To[0] == "fail@example.com" {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
			return
		}
		json.NewEncoder(w).Encode(SendResult{ID: "msg-1"})
	}))
	defer ts.Close()

	c, err := NewClient(Config{APIURL: ts.URL, APIKey: "key", From: "Honorly <hello@honorly.test>", PerSecond: 100, Burst: 10})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	ctx := context.Background()

	res, err := c.Send(ctx, Message{Template: TemplateVerification, To: "ana@example.com", Variables: map[string]string{"VerifyURL": "https://x"}})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if res.ID != "msg-1" {
		t.Errorf("id = %q, want msg-1", res.ID)
	}
	if got.Subject != subjects[TemplateVerification] || got.From != "Honorly <hello@honorly.test>" {
		t.Errorf("unexpected request: %+v", got)
	}

	if _, err := c.Send(ctx, Message{Template: TemplateVerification, To: "fail@example.com"}); err == nil {
		t.Error("expected provider error")
	}
	if _, err := c.Send(ctx, Message{Template: TemplateVerification, To: "not-an-address"}); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("err = %v, want ErrInvalidAddress", err)
	}
}

func TestSendHonorsContext(t *testing.T) {
	c, err := NewClient(Config{APIURL: "http://127.0.0.1:0", PerSecond: 0.001, Burst: 1})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	c.limiter.Allow() // drain the only token

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Send(ctx, Message{Template: TemplateVerification, To: "ana@example.com"}); err == nil {
		t.Error("expected throttle error on cancelled context")
	}
}
