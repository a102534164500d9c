package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Orionsman/cari-takip/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BalanceSummary totals one account's ledger columns.
// Balance = Debit - Credit; positive means the counterparty owes us.
type BalanceSummary struct {
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

// ListAccounts returns accounts ordered by name. A non-empty q filters
// on a case-insensitive substring of the name.
func (s *Service) ListAccounts(q string) ([]models.Account, error) {
	var accounts []models.Account
	query := s.db.Order("name ASC")
	if q != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+q+"%")
	}
	if err := query.Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (s *Service) CreateAccount(a *models.Account) error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return fmt.Errorf("%w: account name is required", ErrValidation)
	}
	if err := s.db.Create(a).Error; err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// UpdateAccount replaces all mutable fields of the account with the
// given id. A missing id is reported, not silently ignored.
func (s *Service) UpdateAccount(id uint, in models.Account) (*models.Account, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("%w: account name is required", ErrValidation)
	}

	var a models.Account
	if err := s.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: account %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("load account: %w", err)
	}

	a.Name = in.Name
	a.Contact = in.Contact
	a.Phone = in.Phone
	a.Email = in.Email
	a.Address = in.Address
	a.Note = in.Note

	if err := s.db.Save(&a).Error; err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	return &a, nil
}

// DeleteAccount removes the account and, via cascade, all of its
// ledger entries, sales and payments. Deleting a missing id succeeds.
func (s *Service) DeleteAccount(id uint) error {
	if err := s.db.Delete(&models.Account{}, id).Error; err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

// AccountSummary folds the account's ledger columns into debit/credit
// totals. An account with no rows (or a missing id) sums to zero.
func (s *Service) AccountSummary(accountID uint) (*BalanceSummary, error) {
	var entries []models.LedgerEntry
	if err := s.db.
		Select("debit", "credit").
		Where("account_id = ?", accountID).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("load ledger entries: %w", err)
	}

	sum := &BalanceSummary{}
	for i := range entries {
		sum.Debit = sum.Debit.Add(entries[i].Debit)
		sum.Credit = sum.Credit.Add(entries[i].Credit)
	}
	sum.Balance = sum.Debit.Sub(sum.Credit)
	return sum, nil
}
