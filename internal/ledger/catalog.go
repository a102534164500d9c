package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Orionsman/cari-takip/internal/models"

	"gorm.io/gorm"
)

// ListProducts returns the catalog ordered by name.
func (s *Service) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("name ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *Service) CreateProduct(p *models.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if p.Unit == "" {
		p.Unit = "piece"
	}
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// UpdateProduct replaces all mutable fields of the product by id.
func (s *Service) UpdateProduct(id uint, in models.Product) (*models.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrValidation)
	}

	var p models.Product
	if err := s.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("load product: %w", err)
	}

	p.Name = in.Name
	p.Code = in.Code
	p.Unit = in.Unit
	if p.Unit == "" {
		p.Unit = "piece"
	}
	p.Price = in.Price
	p.Stock = in.Stock
	p.Note = in.Note

	if err := s.db.Save(&p).Error; err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &p, nil
}

// DeleteProduct removes a product from the catalog. A product that
// still appears in at least one sale cannot be deleted; the caller
// gets ErrConflict and the row stays intact.
func (s *Service) DeleteProduct(id uint) error {
	var refs int64
	if err := s.db.Model(&models.Sale{}).
		Where("product_id = ?", id).
		Count(&refs).Error; err != nil {
		return fmt.Errorf("count sale references: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: product %d is used in %d sale(s)", ErrConflict, id, refs)
	}
	if err := s.db.Delete(&models.Product{}, id).Error; err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
