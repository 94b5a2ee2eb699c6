package models

import "time"

// UpiIndex keys UPI details by contract request id. The primary key is
// what makes the insert-or-overwrite write atomic.
type UpiIndex struct {
	ContractRequestID string  `gorm:"type:varchar(255);primaryKey"`
	UpiID             string  `gorm:"type:varchar(255);not null"`
	PayeeName         *string `gorm:"type:varchar(255)"`
	Note              *string `gorm:"type:text"`
	CreatedAt         time.Time
}

func (UpiIndex) TableName() string {
	return "upi_index"
}
