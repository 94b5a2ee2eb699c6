package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentRequest struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UpiID             string    `gorm:"type:varchar(255);not null"`
	Amount            float64   `gorm:"not null"`
	PayeeName         *string   `gorm:"type:varchar(255)"`
	Note              *string   `gorm:"type:text"`
	ContractRequestID *string   `gorm:"type:varchar(255);index"`
	WalletAddress     *string   `gorm:"type:varchar(42)"`
	DaiAmount         *float64
	EthFee            *float64
	RequesterID       string    `gorm:"type:varchar(64);not null"`
	Status            string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt         time.Time `gorm:"index"`
}
