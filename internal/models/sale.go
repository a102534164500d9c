package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records goods sold to an account. Total is always computed by
// the recorder as Quantity * UnitPrice, never taken from the caller.
// Every sale has exactly one paired ledger entry of kind "sale".
type Sale struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	AccountID uint            `gorm:"index;not null" json:"account_id"`
	ProductID uint            `gorm:"index;not null" json:"product_id"`
	Date      string          `gorm:"size:32;not null" json:"date"`
	Quantity  decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"unit_price"`
	Total     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"total"`
	Note      string          `gorm:"type:text" json:"note"`
	CreatedAt time.Time       `json:"created_at"`

	Account Account `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Product Product `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}
