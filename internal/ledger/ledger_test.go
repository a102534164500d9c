package ledger

import (
	"path/filepath"
	"testing"

	"github.com/Orionsman/cari-takip/internal/config"
	"github.com/Orionsman/cari-takip/internal/database"
	"github.com/Orionsman/cari-takip/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// newTestService opens a fresh migrated database in a temp dir.
func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(db), db
}

func mustAccount(t *testing.T, s *Service, name string) *models.Account {
	t.Helper()
	a := &models.Account{Name: name}
	if err := s.CreateAccount(a); err != nil {
		t.Fatalf("create account %q: %v", name, err)
	}
	return a
}

func mustProduct(t *testing.T, s *Service, name string) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Price: dec("10.50")}
	if err := s.CreateProduct(p); err != nil {
		t.Fatalf("create product %q: %v", name, err)
	}
	return p
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
