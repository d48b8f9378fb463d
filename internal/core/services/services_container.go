package services

import (
	portsrepo "github.com/SscSPs/pharma_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pharma_backend/internal/core/ports/services"
	"github.com/SscSPs/pharma_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Seeding is built first since company onboarding depends on it
	container.Seed = NewSeedService(repos.CompanyRepo, repos.GroupRepo, repos.LedgerRepo)

	companyOptions := []CompanyServiceOption{}
	if cfg.SeedOnCompanyCreate {
		companyOptions = append(companyOptions, WithSeeder(container.Seed))
	}
	container.Company = NewCompanyService(repos.CompanyRepo, companyOptions...)

	container.Group = NewGroupService(repos.GroupRepo)
	container.Ledger = NewLedgerService(
		repos.LedgerRepo,
		repos.GroupRepo,
		repos.TransactionRepo,
		WithDefaultPageLimit(cfg.DefaultPageLimit),
	)

	return container
}
