// Package ledger implements the current-account engine: account and
// product stores, the sale/payment recorders that mirror every money
// movement into the ledger table, the running-balance projection, and
// the synchronizer that removes a mirrored row when its source sale or
// payment is deleted.
package ledger

import "gorm.io/gorm"

// Service runs all ledger operations against one gorm connection pool.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}
