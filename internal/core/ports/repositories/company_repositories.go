package repositories

import (
	"context"

	"github.com/SscSPs/pharma_backend/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a company by its identifier.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// FindLatestCompany retrieves the most recently created company.
	FindLatestCompany(ctx context.Context) (*domain.Company, error)

	// ListCompanies retrieves every company ordered by name.
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany persists a new company. A duplicate name yields a conflict.
	SaveCompany(ctx context.Context, company domain.Company) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
