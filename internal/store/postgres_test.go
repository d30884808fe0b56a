package store

import (
	"context"
	"os"
	"testing"
	"time"

	"rummi-tournament/internal/db"
	"rummi-tournament/internal/tournament"
)

// newPostgresStore needs a disposable database named by TEST_DATABASE_URL.
func newPostgresStore(t *testing.T) (*Store, *Postgres, *fakeClock) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	conn, err := db.Open(dsn, db.PoolConfig{MaxOpenConns: 2})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := conn.Exec("DELETE FROM tournament_days").Error; err != nil {
		t.Fatalf("clean table: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	clock := &fakeClock{now: time.Date(2026, 3, 14, 18, 0, 0, 0, time.Local)}
	pg := NewPostgres(conn, clock.Now)
	return New(pg, WithClock(clock.Now)), pg, clock
}

func TestPostgresRoundTripAndExpiry(t *testing.T) {
	ctx := context.Background()
	s, pg, clock := newPostgresStore(t)

	saved, err := s.Update(ctx, func(doc *tournament.Document) error {
		_, err := tournament.CreateTable(doc, []string{"Alice", "Bob"})
		return err
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	// A second save upserts the same row.
	if _, err := s.Update(ctx, func(doc *tournament.Document) error {
		_, err := tournament.AdvanceTurn(doc, saved.Tables[0].ID, clock.Now())
		return err
	}); err != nil {
		t.Fatalf("second update: %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Tables) != 1 || loaded.Tables[0].CurrentPlayerIndex != 1 {
		t.Fatalf("unexpected loaded document %#v", loaded)
	}

	clock.Advance(DefaultTTL + time.Minute)
	removed, err := pg.Purge(ctx)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 purged row, got %d", removed)
	}
	if _, err := pg.Get(ctx, Key("2026-03-14")); err != ErrMissing {
		t.Fatalf("expected purged key to be missing, got %v", err)
	}
}
