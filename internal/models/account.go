package models

import "time"

// Account is a counterparty (customer or supplier) whose running
// balance is tracked. Deleting an account removes every ledger entry,
// sale and payment that belongs to it.
type Account struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;index;not null" json:"name"`
	Contact   string    `gorm:"size:128" json:"contact"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Email     string    `gorm:"size:128" json:"email"`
	Address   string    `gorm:"size:255" json:"address"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
