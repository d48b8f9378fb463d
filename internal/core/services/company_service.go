package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/pharma_backend/internal/apperrors"
	"github.com/SscSPs/pharma_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pharma_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pharma_backend/internal/core/ports/services"
	"github.com/SscSPs/pharma_backend/internal/dto"
	"github.com/google/uuid"
)

// companyService handles company onboarding and lookup.
type companyService struct {
	BaseService
	companyRepo  portsrepo.CompanyRepositoryFacade
	seeder       portssvc.SeedSvc
	seedOnCreate bool
}

// CompanyServiceOption is a functional option for configuring the company service
type CompanyServiceOption func(*companyService)

// WithSeeder seeds the default chart of accounts whenever a company is created.
func WithSeeder(seeder portssvc.SeedSvc) CompanyServiceOption {
	return func(s *companyService) {
		s.seeder = seeder
		s.seedOnCreate = seeder != nil
	}
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, options ...CompanyServiceOption) portssvc.CompanySvcFacade {
	svc := &companyService{companyRepo: companyRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, *domain.SeedResult, error) {
	name := strings.TrimSpace(req.Name)
	company := domain.Company{
		CompanyID:   uuid.NewString(),
		Name:        name,
		Status:      domain.StatusActive,
		AuditFields: domain.NewAuditFields(time.Now(), userID),
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save company", slog.String("company_name", name))
		}
		return nil, nil, err
	}
	s.LogInfo(ctx, "Company created", slog.String("company_id", company.CompanyID))

	if !s.seedOnCreate {
		return &company, nil, nil
	}
	result, err := s.seeder.SeedDefaults(ctx, company.CompanyID)
	if err != nil {
		// Seeding is best effort; onboarding still succeeds.
		s.LogError(ctx, err, "Seeding default chart of accounts failed", slog.String("company_id", company.CompanyID))
		return &company, nil, nil
	}
	return &company, result, nil
}

func (s *companyService) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.CompanyNotFound(companyID)
		}
		s.LogError(ctx, err, "Failed to find company", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies")
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	if companies == nil {
		return []domain.Company{}, nil
	}
	return companies, nil
}
