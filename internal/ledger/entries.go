package ledger

import (
	"errors"
	"fmt"

	"github.com/Orionsman/cari-takip/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatementLine is one ledger row augmented with the running balance
// up to and including that row.
type StatementLine struct {
	models.LedgerEntry
	Balance decimal.Decimal `json:"balance"`
}

// Statement projects the account's ledger in chronological order
// (date ascending, row id breaking same-date ties) and folds a running
// balance over it: balance_i = balance_{i-1} + debit_i - credit_i,
// starting at zero. The balance is never persisted; every read
// recomputes it from the rows, so it cannot drift.
func (s *Service) Statement(accountID uint) ([]StatementLine, error) {
	var entries []models.LedgerEntry
	if err := s.db.
		Where("account_id = ?", accountID).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("load ledger entries: %w", err)
	}

	lines := make([]StatementLine, 0, len(entries))
	balance := decimal.Zero
	for i := range entries {
		balance = balance.Add(entries[i].Debit).Sub(entries[i].Credit)
		lines = append(lines, StatementLine{LedgerEntry: entries[i], Balance: balance})
	}
	return lines, nil
}

// AddEntry inserts a manual ledger row. The kind is forced to manual
// and the back-reference cleared; derived rows only ever come from the
// sale and payment recorders.
func (s *Service) AddEntry(e *models.LedgerEntry) error {
	if e.AccountID == 0 {
		return fmt.Errorf("%w: account id is required", ErrValidation)
	}
	if e.Date == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if e.Debit.Sign() < 0 || e.Credit.Sign() < 0 {
		return fmt.Errorf("%w: debit and credit must not be negative", ErrValidation)
	}

	var exists int64
	if err := s.db.Model(&models.Account{}).Where("id = ?", e.AccountID).Count(&exists).Error; err != nil {
		return fmt.Errorf("check account: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: account %d does not exist", ErrValidation, e.AccountID)
	}

	e.Kind = models.KindManual
	e.RefID = nil
	if err := s.db.Create(e).Error; err != nil {
		return fmt.Errorf("create ledger entry: %w", err)
	}
	return nil
}

// DeleteEntry removes one ledger row by id. Missing ids succeed.
func (s *Service) DeleteEntry(id uint) error {
	if err := s.db.Delete(&models.LedgerEntry{}, id).Error; err != nil {
		return fmt.Errorf("delete ledger entry: %w", err)
	}
	return nil
}

// accountExists reports whether the account row is present; shared by
// the sale and payment recorders.
func (s *Service) accountExists(tx *gorm.DB, id uint) error {
	var a models.Account
	if err := tx.Select("id").First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: account %d does not exist", ErrValidation, id)
		}
		return fmt.Errorf("check account: %w", err)
	}
	return nil
}
