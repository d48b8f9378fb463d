package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/pharma_backend/internal/core/domain"
	portssvc "github.com/SscSPs/pharma_backend/internal/core/ports/services"
	"github.com/SscSPs/pharma_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetLedgerByID(ctx context.Context, companyID string, ledgerID string) (*domain.LedgerWithGroup, error) {
	args := m.Called(ctx, companyID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerWithGroup), args.Error(1)
}
func (m *MockLedgerService) GetLedgersByCompany(ctx context.Context, companyID string, filter domain.LedgerFilter) ([]domain.LedgerWithGroup, domain.PageInfo, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, domain.PageInfo{}, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerWithGroup), args.Get(1).(domain.PageInfo), args.Error(2)
}
func (m *MockLedgerService) GetLedgersByGroup(ctx context.Context, companyID string, groupID string) ([]domain.Ledger, error) {
	args := m.Called(ctx, companyID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}
func (m *MockLedgerService) GetDefaultLedgers(ctx context.Context, companyID string, groupID string) ([]domain.Ledger, error) {
	args := m.Called(ctx, companyID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}
func (m *MockLedgerService) FindLedgerByKeyword(ctx context.Context, companyID string, keyword string) (*domain.Ledger, error) {
	args := m.Called(ctx, companyID, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}
func (m *MockLedgerService) CreateLedger(ctx context.Context, companyID string, req dto.CreateLedgerRequest, userID string) (*domain.LedgerWithGroup, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerWithGroup), args.Error(1)
}
func (m *MockLedgerService) UpdateLedger(ctx context.Context, companyID string, ledgerID string, req dto.UpdateLedgerRequest, userID string) (*domain.LedgerWithGroup, error) {
	args := m.Called(ctx, companyID, ledgerID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerWithGroup), args.Error(1)
}
func (m *MockLedgerService) UpdateOpeningBalance(ctx context.Context, companyID string, ledgerID string, amount decimal.Decimal, userID string) (*domain.Ledger, error) {
	args := m.Called(ctx, companyID, ledgerID, amount, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}
func (m *MockLedgerService) DeleteLedger(ctx context.Context, companyID string, ledgerID string) error {
	args := m.Called(ctx, companyID, ledgerID)
	return args.Error(0)
}
func (m *MockLedgerService) GetLedgerBalance(ctx context.Context, companyID string, ledgerID string, asOfDate *time.Time) (*domain.LedgerBalance, error) {
	args := m.Called(ctx, companyID, ledgerID, asOfDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerBalance), args.Error(1)
}
func (m *MockLedgerService) ValidateLedgerData(ctx context.Context, companyID string, groupID string, req dto.ValidateLedgerRequest) (*domain.LedgerValidation, error) {
	args := m.Called(ctx, companyID, groupID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerValidation), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock GroupService ---
type MockGroupService struct {
	mock.Mock
}

func (m *MockGroupService) GetGroupByID(ctx context.Context, companyID string, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, companyID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockGroupService) ListGroups(ctx context.Context, companyID string, filter domain.GroupFilter) ([]domain.Group, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}
func (m *MockGroupService) GetGroupTree(ctx context.Context, companyID string) ([]domain.GroupNode, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupNode), args.Error(1)
}
func (m *MockGroupService) CreateGroup(ctx context.Context, companyID string, req dto.CreateGroupRequest, userID string) (*domain.Group, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockGroupService) UpdateGroup(ctx context.Context, companyID string, groupID string, req dto.UpdateGroupRequest, userID string) (*domain.Group, error) {
	args := m.Called(ctx, companyID, groupID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}
func (m *MockGroupService) DeleteGroup(ctx context.Context, companyID string, groupID string) error {
	args := m.Called(ctx, companyID, groupID)
	return args.Error(0)
}

var _ portssvc.GroupSvcFacade = (*MockGroupService)(nil)

// --- Mock CompanyService ---
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, *domain.SeedResult, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var seed *domain.SeedResult
	if args.Get(1) != nil {
		seed = args.Get(1).(*domain.SeedResult)
	}
	return args.Get(0).(*domain.Company), seed, args.Error(2)
}

var _ portssvc.CompanySvcFacade = (*MockCompanyService)(nil)

// --- Mock SeedService ---
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

var _ portssvc.SeedSvc = (*MockSeedService)(nil)
