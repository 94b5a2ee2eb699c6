package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	Email        *string   `gorm:"type:varchar(255)"`
	// Unique when present; NULL rows are exempt from the index
	EthAddress *string   `gorm:"type:varchar(42);uniqueIndex"`
	CreatedAt  time.Time `gorm:"autoUpdateTime:false"`
	// Set only when a wallet address is attached or replaced
	UpdatedAt *time.Time `gorm:"type:timestamp;autoUpdateTime:false"`
}
