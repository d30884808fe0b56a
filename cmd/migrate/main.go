package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rummi-tournament/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const migrationsDir = "db/migrations"

func main() {
	create := flag.String("create", "", "scaffold a new migration with this name instead of migrating")
	down := flag.Bool("down", false, "roll back the most recent migration")
	flag.Parse()

	if *create != "" {
		if err := scaffold(*create, time.Now().UTC()); err != nil {
			slog.Error("create migration", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Warn("failed to load .env", "error", err)
	}
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is not set")
		os.Exit(1)
	}

	m, err := migrate.New("file://"+migrationsDir, cfg.DatabaseURL)
	if err != nil {
		slog.Error("migration setup failed", "error", err)
		os.Exit(1)
	}
	defer m.Close()

	if *down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}
	version, dirty, _ := m.Version()
	slog.Info("database migrations applied", "version", version, "dirty", dirty)
}

// scaffold writes an empty up/down pair named after the UTC timestamp.
func scaffold(name string, now time.Time) error {
	if strings.ContainsAny(name, " /") {
		return errors.New("migration name must not contain spaces or slashes")
	}
	base := fmt.Sprintf("%s_%s", now.Format("20060102150405"), name)
	if err := os.MkdirAll(migrationsDir, 0o755); err != nil {
		return fmt.Errorf("create migrations dir: %w", err)
	}
	for _, suffix := range []string{".up.sql", ".down.sql"} {
		path := filepath.Join(migrationsDir, base+suffix)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file already exists: %s", path)
		}
		if err := os.WriteFile(path, []byte("-- "+strings.TrimPrefix(suffix, ".")+"\n"), 0o644); err != nil {
			return err
		}
		slog.Info("created migration", "path", path)
	}
	return nil
}
