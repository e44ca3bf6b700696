package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"honorly/config"
)

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(ctx, config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "honorly.db"),
		BusyTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := Migrate(ctx, db); err != nil {
			t.Fatalf("Migrate run %d: %v", i+1, err)
		}
	}

	for _, table := range []string{
		"profiles", "cases", "loved_ones", "case_members", "onboarding_answers",
		"tasks", "plan_seeds", "invitations", "waitlist", "rate_limits",
	} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	ctx := context.Background()
	db, err := OpenMemory(ctx)
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer db.Close()

	var on int
	if err := db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&on); err != nil {
		t.Fatalf("PRAGMA: %v", err)
	}
	if on != 1 {
		t.Fatalf("foreign_keys = %d, want 1", on)
	}
}
