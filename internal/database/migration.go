package database

import (
	"fmt"

	"github.com/Orionsman/cari-takip/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Account{},
		&models.Product{},
		&models.LedgerEntry{},
		&models.Sale{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
