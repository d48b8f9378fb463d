package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/pharma_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pharma_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- MockLedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindLedgerByID(ctx context.Context, companyID string, ledgerID string) (*domain.Ledger, error) {
	args := m.Called(ctx, companyID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) LedgerNameExists(ctx context.Context, companyID string, name string, excludeLedgerID string) (bool, error) {
	args := m.Called(ctx, companyID, name, excludeLedgerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) ListLedgers(ctx context.Context, companyID string, filter domain.LedgerFilter) ([]domain.Ledger, int, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Ledger), args.Int(1), args.Error(2)
}

func (m *MockLedgerRepository) ListActiveLedgersByGroup(ctx context.Context, companyID string, groupID string) ([]domain.Ledger, error) {
	args := m.Called(ctx, companyID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) ListDefaultLedgers(ctx context.Context, companyID string, groupID string) ([]domain.Ledger, error) {
	args := m.Called(ctx, companyID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) FindLedgersByKeyword(ctx context.Context, companyID string, keyword string) ([]domain.Ledger, error) {
	args := m.Called(ctx, companyID, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveLedgers(ctx context.Context, ledgers []domain.Ledger) ([]string, error) {
	args := m.Called(ctx, ledgers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLedgerRepository) UpdateLedger(ctx context.Context, ledger domain.Ledger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *MockLedgerRepository) ResetOpeningBalance(ctx context.Context, companyID string, ledgerID string, amount decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, companyID, ledgerID, amount, userID, now)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteLedger(ctx context.Context, companyID string, ledgerID string) error {
	args := m.Called(ctx, companyID, ledgerID)
	return args.Error(0)
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

// --- MockGroupRepository ---

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) FindGroupByID(ctx context.Context, companyID string, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, companyID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupRepository) GroupNameExists(ctx context.Context, companyID string, name string, excludeGroupID string) (bool, error) {
	args := m.Called(ctx, companyID, name, excludeGroupID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGroupRepository) ListGroups(ctx context.Context, companyID string, filter domain.GroupFilter) ([]domain.Group, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *MockGroupRepository) HasDefaultGroups(ctx context.Context, companyID string) (bool, error) {
	args := m.Called(ctx, companyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGroupRepository) CountGroupDependents(ctx context.Context, companyID string, groupID string) (int, error) {
	args := m.Called(ctx, companyID, groupID)
	return args.Int(0), args.Error(1)
}

func (m *MockGroupRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) SetGroupParent(ctx context.Context, companyID string, groupID string, parentGroupID string, undergroup string, userID string, now time.Time) error {
	args := m.Called(ctx, companyID, groupID, parentGroupID, undergroup, userID, now)
	return args.Error(0)
}

func (m *MockGroupRepository) DeleteGroup(ctx context.Context, companyID string, groupID string) error {
	args := m.Called(ctx, companyID, groupID)
	return args.Error(0)
}

var _ portsrepo.GroupRepositoryFacade = (*MockGroupRepository)(nil)

// --- MockTransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CountTransactionsByLedger(ctx context.Context, companyID string, ledgerID string) (int, error) {
	args := m.Called(ctx, companyID, ledgerID)
	return args.Int(0), args.Error(1)
}

var _ portsrepo.TransactionReader = (*MockTransactionRepository)(nil)

// --- MockCompanyRepository ---

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindLatestCompany(ctx context.Context) (*domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

var _ portsrepo.CompanyRepositoryFacade = (*MockCompanyRepository)(nil)

// --- MockSeedService ---

type MockSeedService struct {
	mock.Mock
}

func (m *MockSeedService) SeedDefaults(ctx context.Context, companyID string) (*domain.SeedResult, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeedResult), args.Error(1)
}
