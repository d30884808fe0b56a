package db

import (
	"time"

	"gorm.io/datatypes"
)

// TournamentDay holds one serialized tournament document per key.
type TournamentDay struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Date      string         `gorm:"size:10;index;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	ExpiresAt *time.Time     `gorm:"index"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

func (TournamentDay) TableName() string {
	return "tournament_days"
}
