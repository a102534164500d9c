package ledger

import (
	"errors"
	"fmt"

	"github.com/Orionsman/cari-takip/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentInput carries everything the payment recorder needs. An empty
// method defaults to "Cash".
type PaymentInput struct {
	AccountID uint
	Date      string
	Amount    decimal.Decimal
	Method    string
	Note      string
}

// PaymentRow is a payment joined with its account's display name.
type PaymentRow struct {
	ID          uint            `json:"id"`
	AccountID   uint            `json:"account_id"`
	AccountName string          `json:"account_name"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	Note        string          `json:"note"`
}

// RecordPayment inserts the payment and its mirrored ledger row
// (credit = amount, kind payment, back-reference to the payment id) in
// one transaction.
func (s *Service) RecordPayment(in PaymentInput) (*models.Payment, error) {
	if in.AccountID == 0 {
		return nil, fmt.Errorf("%w: account is required", ErrValidation)
	}
	if in.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if in.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if in.Method == "" {
		in.Method = "Cash"
	}

	desc := fmt.Sprintf("Payment (%s)", in.Method)
	if in.Note != "" {
		desc += " – " + in.Note
	}

	payment := models.Payment{
		AccountID: in.AccountID,
		Date:      in.Date,
		Amount:    in.Amount,
		Method:    in.Method,
		Note:      in.Note,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.accountExists(tx, in.AccountID); err != nil {
			return err
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		entry := models.LedgerEntry{
			AccountID:   payment.AccountID,
			Date:        payment.Date,
			Description: desc,
			Debit:       decimal.Zero,
			Credit:      payment.Amount,
			Kind:        models.KindPayment,
			RefID:       &payment.ID,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("create ledger entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListPayments returns all payments joined with account names, newest
// first.
func (s *Service) ListPayments() ([]PaymentRow, error) {
	var rows []PaymentRow
	if err := s.db.Model(&models.Payment{}).
		Select("payments.id, payments.account_id, accounts.name AS account_name, " +
			"payments.date, payments.amount, payments.method, payments.note").
		Joins("JOIN accounts ON accounts.id = payments.account_id").
		Order("payments.date DESC, payments.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return rows, nil
}

// DeletePayment removes a payment together with its mirrored ledger
// row, using the same exact-then-heuristic correlation as DeleteSale.
func (s *Service) DeletePayment(id uint) error {
	var payment models.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("load payment: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("kind = ? AND ref_id = ?", models.KindPayment, payment.ID).
			Delete(&models.LedgerEntry{})
		if res.Error != nil {
			return fmt.Errorf("delete ledger entry: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			if err := tx.Where("account_id = ? AND date = ? AND credit = ? AND kind = ?",
				payment.AccountID, payment.Date, payment.Amount, models.KindPayment).
				Delete(&models.LedgerEntry{}).Error; err != nil {
				return fmt.Errorf("delete ledger entry: %w", err)
			}
		}
		if err := tx.Delete(&models.Payment{}, payment.ID).Error; err != nil {
			return fmt.Errorf("delete payment: %w", err)
		}
		return nil
	})
}
