package ledger

import (
	"errors"
	"fmt"

	"github.com/Orionsman/cari-takip/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleInput carries everything the sale recorder needs. ProductName is
// only used to render the ledger description; when blank a generic
// placeholder is used.
type SaleInput struct {
	AccountID   uint
	ProductID   uint
	ProductName string
	Date        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Note        string
}

// SaleRow is a sale joined with the display names of its account and
// product, for listings.
type SaleRow struct {
	ID          uint            `json:"id"`
	AccountID   uint            `json:"account_id"`
	AccountName string          `json:"account_name"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Date        string          `json:"date"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	Note        string          `json:"note"`
}

// RecordSale inserts the sale and its mirrored ledger row (debit =
// quantity * unit price, kind sale, back-reference to the sale id) in
// one transaction. The caller never supplies the total. On success
// exactly one sale row and exactly one paired ledger row exist.
func (s *Service) RecordSale(in SaleInput) (*models.Sale, error) {
	if in.AccountID == 0 || in.ProductID == 0 {
		return nil, fmt.Errorf("%w: account and product are required", ErrValidation)
	}
	if in.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if in.Quantity.Sign() <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if in.UnitPrice.Sign() < 0 {
		return nil, fmt.Errorf("%w: unit price must not be negative", ErrValidation)
	}

	total := in.Quantity.Mul(in.UnitPrice)

	name := in.ProductName
	if name == "" {
		name = "product"
	}
	desc := fmt.Sprintf("Sale: %s x%s @ %s", name, in.Quantity.String(), in.UnitPrice.StringFixed(2))
	if in.Note != "" {
		desc += " – " + in.Note
	}

	sale := models.Sale{
		AccountID: in.AccountID,
		ProductID: in.ProductID,
		Date:      in.Date,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Total:     total,
		Note:      in.Note,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.accountExists(tx, in.AccountID); err != nil {
			return err
		}
		var p models.Product
		if err := tx.Select("id").First(&p, in.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: product %d does not exist", ErrValidation, in.ProductID)
			}
			return fmt.Errorf("check product: %w", err)
		}

		if err := tx.Create(&sale).Error; err != nil {
			return fmt.Errorf("create sale: %w", err)
		}

		entry := models.LedgerEntry{
			AccountID:   sale.AccountID,
			Date:        sale.Date,
			Description: desc,
			Debit:       total,
			Credit:      decimal.Zero,
			Kind:        models.KindSale,
			RefID:       &sale.ID,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("create ledger entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// ListSales returns all sales joined with account and product names,
// newest first.
func (s *Service) ListSales() ([]SaleRow, error) {
	var rows []SaleRow
	if err := s.db.Model(&models.Sale{}).
		Select("sales.id, sales.account_id, accounts.name AS account_name, " +
			"sales.product_id, products.name AS product_name, sales.date, " +
			"sales.quantity, sales.unit_price, sales.total, sales.note").
		Joins("JOIN accounts ON accounts.id = sales.account_id").
		Joins("JOIN products ON products.id = sales.product_id").
		Order("sales.date DESC, sales.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return rows, nil
}

// DeleteSale removes a sale together with its mirrored ledger row.
// The paired row is found by exact back-reference (kind=sale, ref_id);
// rows restored from dumps taken before ref_id existed fall back to the
// historical (account, date, amount) match, which can be ambiguous when
// two same-day sales share a total. The sale row itself is always
// removed; a missing id is a successful no-op.
func (s *Service) DeleteSale(id uint) error {
	var sale models.Sale
	if err := s.db.First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("load sale: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("kind = ? AND ref_id = ?", models.KindSale, sale.ID).
			Delete(&models.LedgerEntry{})
		if res.Error != nil {
			return fmt.Errorf("delete ledger entry: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			if err := tx.Where("account_id = ? AND date = ? AND debit = ? AND kind = ?",
				sale.AccountID, sale.Date, sale.Total, models.KindSale).
				Delete(&models.LedgerEntry{}).Error; err != nil {
				return fmt.Errorf("delete ledger entry: %w", err)
			}
		}
		if err := tx.Delete(&models.Sale{}, sale.ID).Error; err != nil {
			return fmt.Errorf("delete sale: %w", err)
		}
		return nil
	})
}
