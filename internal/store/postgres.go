package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"rummi-tournament/internal/db"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Postgres keeps day documents as jsonb rows. Expired rows read as missing and are
// overwritten by the next save.
type Postgres struct {
	conn *gorm.DB
	now  func() time.Time
}

func NewPostgres(conn *gorm.DB, now func() time.Time) *Postgres {
	if now == nil {
		now = time.Now
	}
	return &Postgres{conn: conn, now: now}
}

func (p *Postgres) Name() string {
	return "postgres"
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var row db.TournamentDay
	err := p.conn.WithContext(ctx).
		Where("key = ?", key).
		Where("expires_at IS NULL OR expires_at > ?", p.now().UTC()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMissing
	}
	if err != nil {
		return nil, err
	}
	return []byte(row.Payload), nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	row := db.TournamentDay{
		Key:     key,
		Date:    strings.TrimPrefix(key, keyPrefix),
		Payload: datatypes.JSON(value),
	}
	if ttl > 0 {
		expires := p.now().UTC().Add(ttl)
		row.ExpiresAt = &expires
	}
	return p.conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"date", "payload", "expires_at", "updated_at"}),
	}).Create(&row).Error
}

// Purge deletes rows whose expiry has passed.
func (p *Postgres) Purge(ctx context.Context) (int64, error) {
	result := p.conn.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", p.now().UTC()).
		Delete(&db.TournamentDay{})
	return result.RowsAffected, result.Error
}
