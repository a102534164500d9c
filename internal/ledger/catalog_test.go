package ledger

import (
	"errors"
	"testing"

	"github.com/Orionsman/cari-takip/internal/models"
)

func TestCreateProduct_Defaults(t *testing.T) {
	s, _ := newTestService(t)

	p := &models.Product{Name: "Bolt"}
	if err := s.CreateProduct(p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Unit != "piece" {
		t.Errorf("unit = %q, want default piece", p.Unit)
	}

	if err := s.CreateProduct(&models.Product{Name: "  "}); !errors.Is(err, ErrValidation) {
		t.Errorf("blank name error = %v, want ErrValidation", err)
	}
}

func TestDeleteProduct_ReferencedBySale(t *testing.T) {
	s, db := newTestService(t)

	a := mustAccount(t, s, "Buyer")
	p := mustProduct(t, s, "Anvil")

	sale, err := s.RecordSale(SaleInput{
		AccountID: a.ID, ProductID: p.ID, ProductName: p.Name,
		Date: "2026-03-01", Quantity: dec("1"), UnitPrice: dec("99"),
	})
	if err != nil {
		t.Fatalf("record sale: %v", err)
	}

	err = s.DeleteProduct(p.ID)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("DeleteProduct(referenced) error = %v, want ErrConflict", err)
	}

	// the row must stay intact
	var n int64
	if err := db.Model(&models.Product{}).Where("id = ?", p.ID).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("product rows = %d, want 1 after refused delete", n)
	}

	// after the sale is gone the delete goes through
	if err := s.DeleteSale(sale.ID); err != nil {
		t.Fatalf("delete sale: %v", err)
	}
	if err := s.DeleteProduct(p.ID); err != nil {
		t.Errorf("DeleteProduct(unreferenced) = %v, want nil", err)
	}
}

func TestUpdateProduct_Missing(t *testing.T) {
	s, _ := newTestService(t)
	if _, err := s.UpdateProduct(42, models.Product{Name: "Ghost"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateProduct(42) error = %v, want ErrNotFound", err)
	}
}

func TestListProducts_Order(t *testing.T) {
	s, _ := newTestService(t)
	mustProduct(t, s, "Washer")
	mustProduct(t, s, "Anvil")

	products, err := s.ListProducts()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 2 || products[0].Name != "Anvil" {
		t.Errorf("products not ordered by name: got %v", names(products))
	}
}

func names(ps []models.Product) []string {
	out := make([]string, len(ps))
	for i := range ps {
		out[i] = ps[i].Name
	}
	return out
}
