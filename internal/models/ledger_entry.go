package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger entry kinds. Sale and payment rows are derived: they mirror a
// row in the sales or payments table and carry its id in RefID.
const (
	KindManual  = "manual"
	KindSale    = "sale"
	KindPayment = "payment"
)

// LedgerEntry is one signed (debit, credit) row contributing to an
// account's running balance. Date is stored verbatim as supplied by the
// caller; chronological ordering sorts on it lexically with the row id
// as the same-date tie-break.
type LedgerEntry struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	AccountID   uint            `gorm:"index;not null" json:"account_id"`
	Date        string          `gorm:"size:32;not null" json:"date"`
	Description string          `gorm:"size:255" json:"description"`
	Debit       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"debit"`
	Credit      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"credit"`
	Kind        string          `gorm:"size:16;index;default:manual" json:"kind"`
	RefID       *uint           `gorm:"index" json:"ref_id"`
	CreatedAt   time.Time       `json:"created_at"`

	Account Account `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
