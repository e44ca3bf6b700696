package supabase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honorly/pkg/supabase"
)

func TestClient(t *testing.T) {
	var removed []string
	mux := http.NewServeMux()

	mux.HandleFunc("GET /auth/v1/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "service-key" {
			t.Errorf("missing apikey header")
		}
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"id": "u1", "email": "ana@example.com"})
	})
	mux.HandleFunc("DELETE /auth/v1/admin/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer service-key" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if r.PathValue("id") != "u1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /storage/v1/object/list/photos", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prefix string `json:"prefix"`
			Offset int    `json:"offset"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Prefix != "u1" || req.Offset > 0 {
			json.NewEncoder(w).Encode([]supabase.Object{})
			return
		}
		json.NewEncoder(w).Encode([]supabase.Object{{Name: "a.jpg"}, {Name: "b.jpg"}})
	})
	mux.HandleFunc("DELETE /storage/v1/object/photos", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prefixes []string `json:"prefixes"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		removed = append(removed, req.Prefixes...)
		json.NewEncoder(w).Encode([]supabase.Object{})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := supabase.NewClient(ts.URL+"/", "service-key")
	ctx := context.Background()

	t.Run("GetUser", func(t *testing.T) {
		u, err := client.GetUser(ctx, "good-token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != "u1" || u.Email != "ana@example.com" {
			t.Errorf("unexpected user: %+v", u)
		}
	})

	t.Run("GetUserInvalidToken", func(t *testing.T) {
		if _, err := client.GetUser(ctx, "bad"); err != supabase.ErrInvalidToken {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("DeleteUser", func(t *testing.T) {
		if err := client.DeleteUser(ctx, "u1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := client.DeleteUser(ctx, "u2"); err != supabase.ErrUserNotFound {
			t.Errorf("err = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("ListAndRemoveObjects", func(t *testing.T) {
		objs, err := client.ListObjects(ctx, "photos", "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(objs) != 2 {
			t.Fatalf("got %d objects, want 2", len(objs))
		}
		if err := client.RemoveObjects(ctx, "photos", []string{"u1/a.jpg", "u1/b.jpg"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"u1/a.jpg", "u1/b.jpg"}, removed); diff != "" {
			t.Errorf("removed mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("RemoveNothing", func(t *testing.T) {
		if err := client.RemoveObjects(ctx, "photos", nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
