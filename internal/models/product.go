package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item referenced by sales. A product cannot be
// deleted while a sale still references it.
type Product struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Code      string          `gorm:"size:64" json:"code"`
	Name      string          `gorm:"size:128;index;not null" json:"name"`
	Unit      string          `gorm:"size:32;default:piece" json:"unit"`
	Price     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`
	Stock     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"stock"`
	Note      string          `gorm:"type:text" json:"note"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
