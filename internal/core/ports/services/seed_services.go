package services

import (
	"context"

	"github.com/SscSPs/pharma_backend/internal/core/domain"
)

// SeedSvc populates a company's chart of accounts from the default catalog.
type SeedSvc interface {
	// SeedDefaults seeds the company once. An empty companyID targets the most recently created company.
	// A company that already has default groups is left untouched.
	SeedDefaults(ctx context.Context, companyID string) (*domain.SeedResult, error)
}
