package services

import (
	"context"

	"github.com/SscSPs/pharma_backend/internal/core/domain"
	"github.com/SscSPs/pharma_backend/internal/dto"
)

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// GetCompany retrieves a company by id.
	GetCompany(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompanies retrieves every company.
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	// CreateCompany onboards a company and, when enabled, seeds its default chart of accounts.
	// Seeding is best effort: its failure is logged and the returned seed result is nil.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, *domain.SeedResult, error)
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
}
