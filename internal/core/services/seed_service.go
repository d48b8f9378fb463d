package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/pharma_backend/internal/apperrors"
	"github.com/SscSPs/pharma_backend/internal/core/defaults"
	"github.com/SscSPs/pharma_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pharma_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pharma_backend/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// seedService instantiates the default chart of accounts for a company.
// Each insert commits on its own; a failed row is logged and skipped.
type seedService struct {
	BaseService
	companyRepo portsrepo.CompanyReader
	groupRepo   portsrepo.GroupRepositoryFacade
	ledgerRepo  portsrepo.LedgerWriter
	groups      []defaults.GroupFixture
	ledgers     []defaults.LedgerFixture
}

// SeedServiceOption is a functional option for configuring the seed service
type SeedServiceOption func(*seedService)

// WithCatalog replaces the built-in fixture catalog.
func WithCatalog(groups []defaults.GroupFixture, ledgers []defaults.LedgerFixture) SeedServiceOption {
	return func(s *seedService) {
		s.groups = groups
		s.ledgers = ledgers
	}
}

// NewSeedService creates a new seed service
func NewSeedService(
	companyRepo portsrepo.CompanyReader,
	groupRepo portsrepo.GroupRepositoryFacade,
	ledgerRepo portsrepo.LedgerWriter,
	options ...SeedServiceOption,
) portssvc.SeedSvc {
	svc := &seedService{
		companyRepo: companyRepo,
		groupRepo:   groupRepo,
		ledgerRepo:  ledgerRepo,
		groups:      defaults.Groups(),
		ledgers:     defaults.Ledgers(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SeedSvc = (*seedService)(nil)

func (s *seedService) resolveCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	var (
		company *domain.Company
		err     error
	)
	if companyID == "" {
		company, err = s.companyRepo.FindLatestCompany(ctx)
	} else {
		company, err = s.companyRepo.FindCompanyByID(ctx, companyID)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if companyID == "" {
				return nil, apperrors.NewNotFoundError("no company to seed")
			}
			return nil, apperrors.CompanyNotFound(companyID)
		}
		return nil, fmt.Errorf("failed to resolve company: %w", err)
	}
	return company, nil
}

func (s *seedService) SeedDefaults(ctx context.Context, companyID string) (*domain.SeedResult, error) {
	company, err := s.resolveCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	logger := s.GetLogger(ctx).With(slog.String("company_id", company.CompanyID))
	result := &domain.SeedResult{CompanyID: company.CompanyID, Skipped: []string{}}

	seeded, err := s.groupRepo.HasDefaultGroups(ctx, company.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing default groups: %w", err)
	}
	if seeded {
		logger.Info("Company already seeded, skipping")
		result.AlreadySeeded = true
		return result, nil
	}

	now := time.Now()
	ids := s.insertGroups(ctx, logger, company.CompanyID, now, result)
	s.linkParents(ctx, logger, company.CompanyID, ids, now, result)
	if err := s.insertLedgers(ctx, logger, company.CompanyID, ids, now, result); err != nil {
		return result, err
	}

	logger.Info("Default chart of accounts seeded",
		slog.Int("groups", result.GroupsCreated),
		slog.Int("parents_linked", result.ParentsLinked),
		slog.Int("ledgers", result.LedgersCreated),
		slog.Int("skipped", len(result.Skipped)))
	return result, nil
}

// insertGroups is pass one: every fixture group goes in without a parent.
// It returns the generated ids keyed by lower-cased fixture name.
func (s *seedService) insertGroups(ctx context.Context, logger *slog.Logger, companyID string, now time.Time, result *domain.SeedResult) map[string]string {
	ids := make(map[string]string, len(s.groups))
	for _, f := range s.groups {
		group := domain.Group{
			GroupID:     uuid.NewString(),
			CompanyID:   companyID,
			GroupName:   f.GroupName,
			GroupType:   f.GroupType,
			IsDefault:   f.IsDefault,
			IsEditable:  f.IsEditable,
			IsDeletable: f.IsDeletable,
			Prohibit:    domain.ProhibitNo,
			SortOrder:   f.SortOrder,
			Status:      domain.StatusActive,
			AuditFields: domain.NewAuditFields(now, domain.SystemUserID),
		}
		if err := s.groupRepo.SaveGroup(ctx, group); err != nil {
			logger.Warn("Skipping default group", slog.String("group_name", f.GroupName), slog.String("error", err.Error()))
			result.Skipped = append(result.Skipped, "group "+f.GroupName+": "+err.Error())
			continue
		}
		ids[strings.ToLower(f.GroupName)] = group.GroupID
		result.GroupsCreated++
	}
	return ids
}

// linkParents is pass two: patch parent links through the name to id map.
// The catalog is one level deep, so every parent exists once pass one is done.
func (s *seedService) linkParents(ctx context.Context, logger *slog.Logger, companyID string, ids map[string]string, now time.Time, result *domain.SeedResult) {
	for _, f := range s.groups {
		if f.Undergroup == "" {
			continue
		}
		childID, ok := ids[strings.ToLower(f.GroupName)]
		if !ok {
			continue
		}
		parentID, ok := ids[strings.ToLower(f.Undergroup)]
		if !ok {
			logger.Warn("Parent of default group not created", slog.String("group_name", f.GroupName), slog.String("parent", f.Undergroup))
			result.Skipped = append(result.Skipped, "parent link "+f.GroupName+": group "+f.Undergroup+" not found")
			continue
		}
		if err := s.groupRepo.SetGroupParent(ctx, companyID, childID, parentID, f.Undergroup, domain.SystemUserID, now); err != nil {
			logger.Warn("Failed to link default group to parent", slog.String("group_name", f.GroupName), slog.String("error", err.Error()))
			result.Skipped = append(result.Skipped, "parent link "+f.GroupName+": "+err.Error())
			continue
		}
		result.ParentsLinked++
	}
}

// groupIndex maps lower-cased group names of the company to ids. Groups the company already
// had take part in the lookup; when the listing fails, the ids from pass one are used.
func (s *seedService) groupIndex(ctx context.Context, logger *slog.Logger, companyID string, created map[string]string) map[string]string {
	groups, err := s.groupRepo.ListGroups(ctx, companyID, domain.GroupFilter{})
	if err != nil {
		logger.Warn("Failed to list company groups, resolving ledgers against seeded groups only", slog.String("error", err.Error()))
		return created
	}
	index := make(map[string]string, len(groups))
	for _, g := range groups {
		index[strings.ToLower(g.GroupName)] = g.GroupID
	}
	return index
}

func (s *seedService) insertLedgers(ctx context.Context, logger *slog.Logger, companyID string, created map[string]string, now time.Time, result *domain.SeedResult) error {
	index := s.groupIndex(ctx, logger, companyID, created)

	batch := make([]domain.Ledger, 0, len(s.ledgers))
	for _, f := range s.ledgers {
		groupID, ok := index[strings.ToLower(f.GroupName)]
		if !ok {
			logger.Warn("Skipping default ledger, group not found", slog.String("ledger_name", f.LedgerName), slog.String("group_name", f.GroupName))
			result.Skipped = append(result.Skipped, "ledger "+f.LedgerName+": group "+f.GroupName+" not found")
			continue
		}
		batch = append(batch, domain.Ledger{
			LedgerID:       uuid.NewString(),
			CompanyID:      companyID,
			LedgerName:     f.LedgerName,
			GroupID:        groupID,
			OpeningBalance: decimal.Zero,
			Balance:        decimal.Zero,
			BalanceType:    f.BalanceType,
			IsActive:       true,
			SortOrder:      f.SortOrder,
			Status:         domain.StatusActive,
			IsDefault:      true,
			IsEditable:     true,
			IsDeletable:    false,
			EditableFields: defaults.EditableFields(f.GroupName),
			AuditFields:    domain.NewAuditFields(now, domain.SystemUserID),
		})
	}
	if len(batch) == 0 {
		return nil
	}

	existing, err := s.ledgerRepo.SaveLedgers(ctx, batch)
	if err != nil {
		logger.Error("Failed to insert default ledgers", slog.String("error", err.Error()))
		for _, l := range batch {
			result.Skipped = append(result.Skipped, "ledger "+l.LedgerName+": insert failed")
		}
		return fmt.Errorf("failed to insert default ledgers: %w", err)
	}
	for _, name := range existing {
		logger.Warn("Default ledger name already taken", slog.String("ledger_name", name))
		result.Skipped = append(result.Skipped, "ledger "+name+": name already exists")
	}
	result.LedgersCreated = len(batch) - len(existing)
	return nil
}
