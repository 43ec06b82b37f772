package model

import (
	"time"
)

// Transaction represents the database model for ledger transactions
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;index"`
	Description   string    `gorm:"not null;size:255"`
	Date          string    `gorm:"not null;size:10"`
	AmountInCents int64     `gorm:"not null"`
	Kind          string    `gorm:"not null;size:20"`
	Category      *string   `gorm:"size:100"`
	CreatedAt     time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
