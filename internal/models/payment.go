package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records money received from an account. Every payment has
// exactly one paired ledger entry of kind "payment".
type Payment struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	AccountID uint            `gorm:"index;not null" json:"account_id"`
	Date      string          `gorm:"size:32;not null" json:"date"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Method    string          `gorm:"size:64;default:Cash" json:"method"`
	Note      string          `gorm:"type:text" json:"note"`
	CreatedAt time.Time       `json:"created_at"`

	Account Account `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
