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
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	groupRepo    portsrepo.GroupReader
	txnRepo      portsrepo.TransactionReader
	defaultLimit int
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithDefaultPageLimit sets the page size used when a listing does not ask for one.
func WithDefaultPageLimit(limit int) LedgerServiceOption {
	return func(s *ledgerService) {
		if limit > 0 && limit <= maxPageLimit {
			s.defaultLimit = limit
		}
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	groupRepo portsrepo.GroupReader,
	txnRepo portsrepo.TransactionReader,
	options ...LedgerServiceOption,
) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		ledgerRepo:   ledgerRepo,
		groupRepo:    groupRepo,
		txnRepo:      txnRepo,
		defaultLimit: defaultPageLimit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// findGroup resolves a group of the company, translating a miss into GroupNotFound.
func (s *ledgerService) findGroup(ctx context.Context, companyID, groupID string) (*domain.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, companyID, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.GroupNotFound(groupID)
		}
		s.LogError(ctx, err, "Failed to find group", slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	return group, nil
}

func (s *ledgerService) findLedger(ctx context.Context, companyID, ledgerID string) (*domain.Ledger, error) {
	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, companyID, ledgerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.LedgerNotFound(ledgerID)
		}
		s.LogError(ctx, err, "Failed to find ledger", slog.String("ledger_id", ledgerID))
		return nil, fmt.Errorf("failed to find ledger: %w", err)
	}
	return ledger, nil
}

func (s *ledgerService) ensureUniqueName(ctx context.Context, companyID, name, excludeID string) error {
	exists, err := s.ledgerRepo.LedgerNameExists(ctx, companyID, name, excludeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check ledger name", slog.String("ledger_name", name))
		return fmt.Errorf("failed to check ledger name: %w", err)
	}
	if exists {
		return apperrors.DuplicateLedgerName(name)
	}
	return nil
}

func (s *ledgerService) CreateLedger(ctx context.Context, companyID string, req dto.CreateLedgerRequest, userID string) (*domain.LedgerWithGroup, error) {
	if req.OpeningBalance != nil {
		if err := checkAmount(domain.FieldOpeningBalance, *req.OpeningBalance); err != nil {
			return nil, err
		}
	}

	group, err := s.findGroup(ctx, companyID, req.GroupID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.LedgerName)
	if err := s.ensureUniqueName(ctx, companyID, name, ""); err != nil {
		return nil, err
	}

	opening := decimal.Zero
	if req.OpeningBalance != nil {
		opening = *req.OpeningBalance
	}
	balanceType := req.BalanceType
	if balanceType == "" {
		balanceType = domain.BalanceTypeDebit
	}

	ledger := domain.Ledger{
		LedgerID:       uuid.NewString(),
		CompanyID:      companyID,
		LedgerName:     name,
		GroupID:        group.GroupID,
		OpeningBalance: opening,
		Balance:        opening,
		BalanceType:    balanceType,
		Description:    req.Description,
		Address:        req.Address,
		IsActive:       true,
		SortOrder:      req.SortOrder,
		Status:         domain.StatusActive,
		StationID:      req.StationID,
		IsDefault:      false,
		IsEditable:     true,
		IsDeletable:    true,
		EditableFields: []string{},
		AuditFields:    domain.NewAuditFields(time.Now(), userID),
	}

	if err := s.ledgerRepo.SaveLedger(ctx, ledger); err != nil {
		s.LogError(ctx, err, "Failed to save ledger",
			slog.String("ledger_name", name),
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger created successfully",
		slog.String("ledger_id", ledger.LedgerID),
		slog.String("company_id", companyID))
	return &domain.LedgerWithGroup{Ledger: ledger, Group: group.Summary()}, nil
}

func (s *ledgerService) GetLedgerByID(ctx context.Context, companyID string, ledgerID string) (*domain.LedgerWithGroup, error) {
	ledger, err := s.findLedger(ctx, companyID, ledgerID)
	if err != nil {
		return nil, err
	}
	group, err := s.findGroup(ctx, companyID, ledger.GroupID)
	if err != nil {
		return nil, err
	}
	return &domain.LedgerWithGroup{Ledger: *ledger, Group: group.Summary()}, nil
}

// changedLedgerFields lists the attributes an update request would actually change.
func changedLedgerFields(current domain.Ledger, req dto.UpdateLedgerRequest) []string {
	var changed []string
	if req.LedgerName != nil && strings.TrimSpace(*req.LedgerName) != current.LedgerName {
		changed = append(changed, domain.FieldLedgerName)
	}
	if req.GroupID != nil && *req.GroupID != current.GroupID {
		changed = append(changed, domain.FieldGroup)
	}
	if req.OpeningBalance != nil && !req.OpeningBalance.Equal(current.OpeningBalance) {
		changed = append(changed, domain.FieldOpeningBalance)
	}
	if req.BalanceType != nil && *req.BalanceType != current.BalanceType {
		changed = append(changed, domain.FieldBalanceType)
	}
	if req.Description != nil && *req.Description != current.Description {
		changed = append(changed, domain.FieldDescription)
	}
	if req.Address != nil && !equalStringPtr(emptyToNil(req.Address), current.Address) {
		changed = append(changed, domain.FieldAddress)
	}
	if req.StationID != nil && !equalStringPtr(emptyToNil(req.StationID), current.StationID) {
		changed = append(changed, domain.FieldStation)
	}
	if req.IsActive != nil && *req.IsActive != current.IsActive {
		changed = append(changed, domain.FieldIsActive)
	}
	if req.SortOrder != nil && *req.SortOrder != current.SortOrder {
		changed = append(changed, domain.FieldSortOrder)
	}
	if req.Status != nil && *req.Status != current.Status {
		changed = append(changed, domain.FieldStatus)
	}
	return changed
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// checkAmount rejects amounts the ledgers table cannot store exactly.
func checkAmount(field string, amount decimal.Decimal) error {
	if problem := domain.AmountProblem(field, amount); problem != "" {
		return apperrors.NewValidationFailedError("invalid amount", problem)
	}
	return nil
}

// emptyToNil clears optional references sent as "".
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func (s *ledgerService) UpdateLedger(ctx context.Context, companyID string, ledgerID string, req dto.UpdateLedgerRequest, userID string) (*domain.LedgerWithGroup, error) {
	if req.OpeningBalance != nil {
		if err := checkAmount(domain.FieldOpeningBalance, *req.OpeningBalance); err != nil {
			return nil, err
		}
	}

	ledger, err := s.findLedger(ctx, companyID, ledgerID)
	if err != nil {
		return nil, err
	}

	changed := changedLedgerFields(*ledger, req)
	if len(changed) > 0 && !ledger.IsEditable {
		return nil, apperrors.LedgerNotEditable(ledger.LedgerName)
	}
	var locked []string
	for _, field := range changed {
		if !ledger.CanEditField(field) {
			locked = append(locked, field)
		}
	}
	if len(locked) > 0 {
		s.LogInfo(ctx, "Rejected update of locked fields on default ledger",
			slog.String("ledger_id", ledgerID),
			slog.Any("fields", locked))
		return nil, apperrors.FieldNotEditable(ledger.LedgerName, locked...)
	}

	groupID := ledger.GroupID
	if req.GroupID != nil {
		groupID = *req.GroupID
	}
	group, err := s.findGroup(ctx, companyID, groupID)
	if err != nil {
		return nil, err
	}

	if req.LedgerName != nil {
		name := strings.TrimSpace(*req.LedgerName)
		if name != ledger.LedgerName {
			if err := s.ensureUniqueName(ctx, companyID, name, ledger.LedgerID); err != nil {
				return nil, err
			}
			ledger.LedgerName = name
		}
	}

	ledger.GroupID = group.GroupID
	if req.OpeningBalance != nil {
		// Keep posted movement intact: balance = opening + movement.
		movement := ledger.Balance.Sub(ledger.OpeningBalance)
		ledger.OpeningBalance = *req.OpeningBalance
		ledger.Balance = req.OpeningBalance.Add(movement)
		if err := checkAmount("balance", ledger.Balance); err != nil {
			return nil, err
		}
	}
	if req.BalanceType != nil {
		ledger.BalanceType = *req.BalanceType
	}
	if req.Description != nil {
		ledger.Description = *req.Description
	}
	if req.Address != nil {
		ledger.Address = emptyToNil(req.Address)
	}
	if req.StationID != nil {
		ledger.StationID = emptyToNil(req.StationID)
	}
	if req.IsActive != nil {
		ledger.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		ledger.SortOrder = *req.SortOrder
	}
	if req.Status != nil {
		ledger.Status = *req.Status
	}
	ledger.Touch(time.Now(), userID)

	if err := s.ledgerRepo.UpdateLedger(ctx, *ledger); err != nil {
		s.LogError(ctx, err, "Failed to update ledger", slog.String("ledger_id", ledgerID))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger updated successfully",
		slog.String("ledger_id", ledgerID),
		slog.Any("fields", changed))
	return &domain.LedgerWithGroup{Ledger: *ledger, Group: group.Summary()}, nil
}

func (s *ledgerService) normalizePage(filter domain.LedgerFilter) domain.LedgerFilter {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = s.defaultLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}
	return filter
}

func (s *ledgerService) GetLedgersByCompany(ctx context.Context, companyID string, filter domain.LedgerFilter) ([]domain.LedgerWithGroup, domain.PageInfo, error) {
	filter = s.normalizePage(filter)

	ledgers, total, err := s.ledgerRepo.ListLedgers(ctx, companyID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledgers", slog.String("company_id", companyID))
		return nil, domain.PageInfo{}, fmt.Errorf("failed to list ledgers: %w", err)
	}

	groups, err := s.groupRepo.ListGroups(ctx, companyID, domain.GroupFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to list groups for ledger listing", slog.String("company_id", companyID))
		return nil, domain.PageInfo{}, fmt.Errorf("failed to list groups: %w", err)
	}
	byID := make(map[string]domain.Group, len(groups))
	for _, g := range groups {
		byID[g.GroupID] = g
	}

	out := make([]domain.LedgerWithGroup, len(ledgers))
	for i, l := range ledgers {
		out[i] = domain.LedgerWithGroup{Ledger: l, Group: byID[l.GroupID].Summary()}
	}

	s.LogDebug(ctx, "Ledgers listed", slog.Int("count", len(out)), slog.Int("total", total))
	return out, domain.NewPageInfo(total, filter.Page, filter.Limit), nil
}

func (s *ledgerService) GetLedgersByGroup(ctx context.Context, companyID string, groupID string) ([]domain.Ledger, error) {
	if _, err := s.findGroup(ctx, companyID, groupID); err != nil {
		return nil, err
	}
	ledgers, err := s.ledgerRepo.ListActiveLedgersByGroup(ctx, companyID, groupID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledgers by group", slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to list ledgers by group: %w", err)
	}
	if ledgers == nil {
		return []domain.Ledger{}, nil
	}
	return ledgers, nil
}

func (s *ledgerService) GetDefaultLedgers(ctx context.Context, companyID string, groupID string) ([]domain.Ledger, error) {
	ledgers, err := s.ledgerRepo.ListDefaultLedgers(ctx, companyID, groupID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list default ledgers", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list default ledgers: %w", err)
	}
	if ledgers == nil {
		return []domain.Ledger{}, nil
	}
	return ledgers, nil
}

func (s *ledgerService) FindLedgerByKeyword(ctx context.Context, companyID string, keyword string) (*domain.Ledger, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apperrors.NewValidationFailedError("invalid lookup", "keyword is required")
	}
	ledgers, err := s.ledgerRepo.FindLedgersByKeyword(ctx, companyID, keyword)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up ledger", slog.String("keyword", keyword))
		return nil, fmt.Errorf("failed to look up ledger: %w", err)
	}
	if len(ledgers) == 0 {
		return nil, apperrors.NewNotFoundError("no ledger matching '" + keyword + "'")
	}
	return &ledgers[0], nil
}

func (s *ledgerService) UpdateOpeningBalance(ctx context.Context, companyID string, ledgerID string, amount decimal.Decimal, userID string) (*domain.Ledger, error) {
	if err := checkAmount(domain.FieldOpeningBalance, amount); err != nil {
		return nil, err
	}
	ledger, err := s.findLedger(ctx, companyID, ledgerID)
	if err != nil {
		return nil, err
	}
	if !ledger.IsEditable {
		return nil, apperrors.LedgerNotEditable(ledger.LedgerName)
	}
	if !ledger.CanEditField(domain.FieldOpeningBalance) {
		return nil, apperrors.FieldNotEditable(ledger.LedgerName, domain.FieldOpeningBalance)
	}

	now := time.Now()
	if err := s.ledgerRepo.ResetOpeningBalance(ctx, companyID, ledgerID, amount, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to reset opening balance", slog.String("ledger_id", ledgerID))
		return nil, err
	}

	ledger.OpeningBalance = amount
	ledger.Balance = amount
	ledger.Touch(now, userID)
	s.LogInfo(ctx, "Opening balance reset",
		slog.String("ledger_id", ledgerID),
		slog.String("amount", amount.String()))
	return ledger, nil
}

func (s *ledgerService) DeleteLedger(ctx context.Context, companyID string, ledgerID string) error {
	ledger, err := s.findLedger(ctx, companyID, ledgerID)
	if err != nil {
		return err
	}
	if !ledger.IsDeletable {
		return apperrors.LedgerNotDeletable(ledger.LedgerName)
	}

	count, err := s.txnRepo.CountTransactionsByLedger(ctx, companyID, ledgerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count ledger transactions", slog.String("ledger_id", ledgerID))
		return fmt.Errorf("failed to count ledger transactions: %w", err)
	}
	if count > 0 {
		return apperrors.LedgerHasTransactions(ledger.LedgerName)
	}

	if err := s.ledgerRepo.DeleteLedger(ctx, companyID, ledgerID); err != nil {
		s.LogError(ctx, err, "Failed to delete ledger", slog.String("ledger_id", ledgerID))
		return err
	}
	s.LogInfo(ctx, "Ledger deleted", slog.String("ledger_id", ledgerID))
	return nil
}

func (s *ledgerService) GetLedgerBalance(ctx context.Context, companyID string, ledgerID string, asOfDate *time.Time) (*domain.LedgerBalance, error) {
	view, err := s.GetLedgerByID(ctx, companyID, ledgerID)
	if err != nil {
		return nil, err
	}
	return &domain.LedgerBalance{
		LedgerID:       view.LedgerID,
		LedgerName:     view.LedgerName,
		OpeningBalance: view.OpeningBalance,
		CurrentBalance: view.Balance,
		BalanceType:    view.BalanceType,
		GroupName:      view.Group.GroupName,
		AsOfDate:       asOfDate,
	}, nil
}

func (s *ledgerService) ValidateLedgerData(ctx context.Context, companyID string, groupID string, req dto.ValidateLedgerRequest) (*domain.LedgerValidation, error) {
	if _, err := s.findGroup(ctx, companyID, groupID); err != nil {
		return nil, err
	}

	problems := []string{}
	if req.LedgerName == nil || strings.TrimSpace(*req.LedgerName) == "" {
		problems = append(problems, "ledgerName is required")
	}
	if req.OpeningBalance == nil {
		problems = append(problems, "openingBalance is required")
	} else if problem := domain.AmountProblem(domain.FieldOpeningBalance, *req.OpeningBalance); problem != "" {
		problems = append(problems, problem)
	}
	return &domain.LedgerValidation{IsValid: len(problems) == 0, Errors: problems}, nil
}
