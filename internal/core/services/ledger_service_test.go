package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/pharma_backend/internal/apperrors"
	"github.com/SscSPs/pharma_backend/internal/core/domain"
	portssvc "github.com/SscSPs/pharma_backend/internal/core/ports/services"
	"github.com/SscSPs/pharma_backend/internal/core/services"
	"github.com/SscSPs/pharma_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockGroupRepo  *MockGroupRepository
	mockTxnRepo    *MockTransactionRepository
	service        portssvc.LedgerSvcFacade

	companyID string
	userID    string
	group     domain.Group
	custom    domain.Ledger
	cash      domain.Ledger
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockGroupRepo = new(MockGroupRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockGroupRepo, suite.mockTxnRepo)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.group = domain.Group{
		GroupID:   uuid.NewString(),
		CompanyID: suite.companyID,
		GroupName: "Cash-in-hand",
		GroupType: domain.GroupTypeAsset,
		Status:    domain.StatusActive,
	}
	suite.custom = domain.Ledger{
		LedgerID:       uuid.NewString(),
		CompanyID:      suite.companyID,
		LedgerName:     "Petty Cash",
		GroupID:        suite.group.GroupID,
		OpeningBalance: decimal.NewFromInt(100),
		Balance:        decimal.NewFromInt(150),
		BalanceType:    domain.BalanceTypeDebit,
		IsActive:       true,
		Status:         domain.StatusActive,
		IsEditable:     true,
		IsDeletable:    true,
		EditableFields: []string{},
	}
	suite.cash = domain.Ledger{
		LedgerID:       uuid.NewString(),
		CompanyID:      suite.companyID,
		LedgerName:     "Cash",
		GroupID:        suite.group.GroupID,
		OpeningBalance: decimal.Zero,
		Balance:        decimal.Zero,
		BalanceType:    domain.BalanceTypeDebit,
		IsActive:       true,
		Status:         domain.StatusActive,
		IsDefault:      true,
		IsEditable:     true,
		IsDeletable:    false,
		EditableFields: []string{domain.FieldOpeningBalance, domain.FieldDescription},
	}
}

func (suite *LedgerServiceTestSuite) TestCreateLedger_Success() {
	ctx := context.Background()
	opening := decimal.RequireFromString("500")
	req := dto.CreateLedgerRequest{
		LedgerName:     "  Test Cash ",
		GroupID:        suite.group.GroupID,
		OpeningBalance: &opening,
	}

	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.companyID, suite.group.GroupID).Return(&suite.group, nil).Once()
	suite.mockLedgerRepo.On("LedgerNameExists", ctx, suite.companyID, "Test Cash", "").Return(false, nil).Once()
	suite.mockLedgerRepo.On("SaveLedger", ctx, mock.AnythingOfType("domain.Ledger")).Return(nil).Once()

	created, err := suite.service.CreateLedger(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.LedgerID)
	suite.Equal("Test Cash", created.LedgerName)
	suite.Equal("500.00", created.OpeningBalance.StringFixed(2))
	suite.True(created.Balance.Equal(opening))
	suite.Equal(domain.BalanceTypeDebit, created.BalanceType)
	suite.False(created.IsDefault)
	suite.True(created.IsDeletable)
	suite.Equal(suite.group.GroupName, created.Group.GroupName)
	suite.Equal(suite.userID, created.CreatedBy)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockGroupRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateLedger_GroupNotFound() {
	ctx := context.Background()
	req := dto.CreateLedgerRequest{LedgerName: "Orphan", GroupID: "missing"}

	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.companyID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateLedger(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveLedger", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateLedger_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateLedgerRequest{LedgerName: "Cash", GroupID: suite.group.GroupID}

	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.companyID, suite.group.GroupID).Return(&suite.group, nil).Once()
	suite.mockLedgerRepo.On("LedgerNameExists", ctx, suite.companyID, "Cash", "").Return(true, nil).Once()

	_, err := suite.service.CreateLedger(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveLedger", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateLedger_LockedFieldOnDefaultLedger() {
	ctx := context.Background()
	cash := suite.cash
	newName := "Cash Box"
	req := dto.UpdateLedgerRequest{LedgerName: &newName}

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, cash.LedgerID).Return(&cash, nil).Once()

	_, err := suite.service.UpdateLedger(ctx, suite.companyID, cash.LedgerID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Equal([]string{domain.FieldLedgerName}, apperrors.DetailsOf(err))
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateLedger", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateLedger_AllowedFieldOnDefaultLedger() {
	ctx := context.Background()
	cash := suite.cash
	desc := "Main cash box"
	sameName := "Cash"
	req := dto.UpdateLedgerRequest{Description: &desc, LedgerName: &sameName}

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, cash.LedgerID).Return(&cash, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.companyID, suite.group.GroupID).Return(&suite.group, nil).Once()
	suite.mockLedgerRepo.On("UpdateLedger", ctx, mock.MatchedBy(func(l domain.Ledger) bool {
		return l.Description == desc && l.LedgerName == "Cash" && l.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateLedger(ctx, suite.companyID, cash.LedgerID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(desc, updated.Description)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "LedgerNameExists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateLedger_EmptyOptionalFieldsAreNotChanges() {
	ctx := context.Background()
	cash := suite.cash
	desc := "Counter cash"
	empty := ""
	req := dto.UpdateLedgerRequest{Description: &desc, Address: &empty, StationID: &empty}

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, cash.LedgerID).Return(&cash, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.companyID, suite.group.GroupID).Return(&suite.group, nil).Once()
	suite.mockLedgerRepo.On("UpdateLedger", ctx, mock.MatchedBy(func(l domain.Ledger) bool {
		return l.Description == desc && l.Address == nil && l.StationID == nil
	})).Return(nil).Once()

	updated, err := suite.service.UpdateLedger(ctx, suite.companyID, cash.LedgerID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(desc, updated.Description)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateLedger_ClearingStoredAddressIsAChange() {
	ctx := context.Background()
	cash := suite.cash
	stored := "Main Road"
	cash.Address = &stored
	empty := ""

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, cash.LedgerID).Return(&cash, nil).Once()

	_, err := suite.service.UpdateLedger(ctx, suite.companyID, cash.LedgerID, dto.UpdateLedgerRequest{Address: &empty}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Equal([]string{domain.FieldAddress}, apperrors.DetailsOf(err))
}

func (suite *LedgerServiceTestSuite) TestLedgerAmounts_RejectUnstorableValues() {
	ctx := context.Background()
	tooLarge := decimal.RequireFromString("10000000000000000")
	tooPrecise := decimal.RequireFromString("12.345")

	_, err := suite.service.CreateLedger(ctx, suite.companyID, dto.CreateLedgerRequest{
		LedgerName:     "Vault",
		GroupID:        suite.group.GroupID,
		OpeningBalance: &tooLarge,
	}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateLedger(ctx, suite.companyID, suite.custom.LedgerID, dto.UpdateLedgerRequest{OpeningBalance: &tooPrecise}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal([]string{"openingBalance must have at most 2 decimal places"}, apperrors.DetailsOf(err))

	_, err = suite.service.UpdateOpeningBalance(ctx, suite.companyID, suite.custom.LedgerID, tooLarge, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.companyID, suite.group.GroupID).Return(&suite.group, nil).Once()
	name := "Vault"
	result, err := suite.service.ValidateLedgerData(ctx, suite.companyID, suite.group.GroupID, dto.ValidateLedgerRequest{LedgerName: &name, OpeningBalance: &tooPrecise})
	suite.Require().NoError(err)
	suite.False(result.IsValid)

	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveLedger", mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateLedger", mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ResetOpeningBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateLedger_MovedBalanceOutOfRange() {
	ctx := context.Background()
	custom := suite.custom
	custom.Balance = decimal.RequireFromString("9999999999999000")
	custom.OpeningBalance = decimal.Zero
	newOpening := decimal.NewFromInt(5000)

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, custom.LedgerID).Return(&custom, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.companyID, suite.group.GroupID).Return(&suite.group, nil).Once()

	_, err := suite.service.UpdateLedger(ctx, suite.companyID, custom.LedgerID, dto.UpdateLedgerRequest{OpeningBalance: &newOpening}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateLedger", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateLedger_NotEditable() {
	ctx := context.Background()
	locked := suite.custom
	locked.IsEditable = false
	desc := "changed"

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, locked.LedgerID).Return(&locked, nil).Once()

	_, err := suite.service.UpdateLedger(ctx, suite.companyID, locked.LedgerID, dto.UpdateLedgerRequest{Description: &desc}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *LedgerServiceTestSuite) TestUpdateLedger_OpeningBalanceKeepsMovement() {
	ctx := context.Background()
	custom := suite.custom
	newOpening := decimal.NewFromInt(300)

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, custom.LedgerID).Return(&custom, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.companyID, suite.group.GroupID).Return(&suite.group, nil).Once()
	suite.mockLedgerRepo.On("UpdateLedger", ctx, mock.AnythingOfType("domain.Ledger")).Return(nil).Once()

	updated, err := suite.service.UpdateLedger(ctx, suite.companyID, custom.LedgerID, dto.UpdateLedgerRequest{OpeningBalance: &newOpening}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("300.00", updated.OpeningBalance.StringFixed(2))
	suite.Equal("350.00", updated.Balance.StringFixed(2))
}

func (suite *LedgerServiceTestSuite) TestUpdateLedger_RenameToTakenName() {
	ctx := context.Background()
	custom := suite.custom
	name := "Cash"

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, custom.LedgerID).Return(&custom, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.companyID, suite.group.GroupID).Return(&suite.group, nil).Once()
	suite.mockLedgerRepo.On("LedgerNameExists", ctx, suite.companyID, "Cash", custom.LedgerID).Return(true, nil).Once()

	_, err := suite.service.UpdateLedger(ctx, suite.companyID, custom.LedgerID, dto.UpdateLedgerRequest{LedgerName: &name}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *LedgerServiceTestSuite) TestUpdateOpeningBalance_ResetsBalance() {
	ctx := context.Background()
	custom := suite.custom
	amount := decimal.NewFromInt(1000)

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, custom.LedgerID).Return(&custom, nil).Once()
	suite.mockLedgerRepo.On("ResetOpeningBalance", ctx, suite.companyID, custom.LedgerID, amount, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.UpdateOpeningBalance(ctx, suite.companyID, custom.LedgerID, amount, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("1000.00", updated.OpeningBalance.StringFixed(2))
	suite.Equal("1000.00", updated.Balance.StringFixed(2))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateOpeningBalance_FieldLocked() {
	ctx := context.Background()
	cash := suite.cash
	cash.EditableFields = []string{domain.FieldDescription}

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, cash.LedgerID).Return(&cash, nil).Once()

	_, err := suite.service.UpdateOpeningBalance(ctx, suite.companyID, cash.LedgerID, decimal.NewFromInt(5), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ResetOpeningBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestDeleteLedger_NotDeletable() {
	ctx := context.Background()
	cash := suite.cash

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, cash.LedgerID).Return(&cash, nil).Once()

	err := suite.service.DeleteLedger(ctx, suite.companyID, cash.LedgerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "CountTransactionsByLedger", mock.Anything, mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "DeleteLedger", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestDeleteLedger_HasTransactions() {
	ctx := context.Background()
	custom := suite.custom

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, custom.LedgerID).Return(&custom, nil).Once()
	suite.mockTxnRepo.On("CountTransactionsByLedger", ctx, suite.companyID, custom.LedgerID).Return(3, nil).Once()

	err := suite.service.DeleteLedger(ctx, suite.companyID, custom.LedgerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Contains(err.Error(), "has transactions")
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "DeleteLedger", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestDeleteLedger_Success() {
	ctx := context.Background()
	custom := suite.custom

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, custom.LedgerID).Return(&custom, nil).Once()
	suite.mockTxnRepo.On("CountTransactionsByLedger", ctx, suite.companyID, custom.LedgerID).Return(0, nil).Once()
	suite.mockLedgerRepo.On("DeleteLedger", ctx, suite.companyID, custom.LedgerID).Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteLedger(ctx, suite.companyID, custom.LedgerID))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetLedgerByID_NotFound() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetLedgerByID(ctx, suite.companyID, "nope")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestGetLedgerByID_RepoFailure() {
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, "id").Return(nil, dbErr).Once()

	_, err := suite.service.GetLedgerByID(ctx, suite.companyID, "id")

	suite.Require().Error(err)
	suite.ErrorIs(err, dbErr)
	suite.Equal(apperrors.KindInternal, apperrors.KindOf(err))
}

func (suite *LedgerServiceTestSuite) TestGetLedgersByCompany_ClampsPaging() {
	ctx := context.Background()
	expected := domain.LedgerFilter{Page: 1, Limit: 100, Search: "cash"}

	suite.mockLedgerRepo.On("ListLedgers", ctx, suite.companyID, expected).Return([]domain.Ledger{suite.cash}, 101, nil).Once()
	suite.mockGroupRepo.On("ListGroups", ctx, suite.companyID, domain.GroupFilter{}).Return([]domain.Group{suite.group}, nil).Once()

	ledgers, page, err := suite.service.GetLedgersByCompany(ctx, suite.companyID, domain.LedgerFilter{Page: 0, Limit: 500, Search: "cash"})

	suite.Require().NoError(err)
	suite.Len(ledgers, 1)
	suite.Equal(suite.group.GroupName, ledgers[0].Group.GroupName)
	suite.Equal(domain.PageInfo{Total: 101, Page: 1, Limit: 100, TotalPages: 2}, page)
}

func (suite *LedgerServiceTestSuite) TestGetLedgersByCompany_DefaultLimitOption() {
	ctx := context.Background()
	svc := services.NewLedgerService(suite.mockLedgerRepo, suite.mockGroupRepo, suite.mockTxnRepo, services.WithDefaultPageLimit(5))

	suite.mockLedgerRepo.On("ListLedgers", ctx, suite.companyID, domain.LedgerFilter{Page: 2, Limit: 5}).Return([]domain.Ledger{}, 0, nil).Once()
	suite.mockGroupRepo.On("ListGroups", ctx, suite.companyID, domain.GroupFilter{}).Return([]domain.Group{}, nil).Once()

	_, page, err := svc.GetLedgersByCompany(ctx, suite.companyID, domain.LedgerFilter{Page: 2})

	suite.Require().NoError(err)
	suite.Equal(5, page.Limit)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestFindLedgerByKeyword() {
	ctx := context.Background()

	_, err := suite.service.FindLedgerByKeyword(ctx, suite.companyID, "   ")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockLedgerRepo.On("FindLedgersByKeyword", ctx, suite.companyID, "zzz").Return([]domain.Ledger{}, nil).Once()
	_, err = suite.service.FindLedgerByKeyword(ctx, suite.companyID, "zzz")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockLedgerRepo.On("FindLedgersByKeyword", ctx, suite.companyID, "cash").Return([]domain.Ledger{suite.cash, suite.custom}, nil).Once()
	found, err := suite.service.FindLedgerByKeyword(ctx, suite.companyID, "cash")
	suite.Require().NoError(err)
	suite.Equal(suite.cash.LedgerID, found.LedgerID)
}

func (suite *LedgerServiceTestSuite) TestValidateLedgerData() {
	ctx := context.Background()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.companyID, suite.group.GroupID).Return(&suite.group, nil)

	result, err := suite.service.ValidateLedgerData(ctx, suite.companyID, suite.group.GroupID, dto.ValidateLedgerRequest{})
	suite.Require().NoError(err)
	suite.False(result.IsValid)
	suite.Equal([]string{"ledgerName is required", "openingBalance is required"}, result.Errors)

	name := "Bank"
	zero := decimal.Zero
	result, err = suite.service.ValidateLedgerData(ctx, suite.companyID, suite.group.GroupID, dto.ValidateLedgerRequest{LedgerName: &name, OpeningBalance: &zero})
	suite.Require().NoError(err)
	suite.True(result.IsValid)
	suite.Empty(result.Errors)
}

func (suite *LedgerServiceTestSuite) TestGetLedgerBalance() {
	ctx := context.Background()
	custom := suite.custom

	suite.mockLedgerRepo.On("FindLedgerByID", ctx, suite.companyID, custom.LedgerID).Return(&custom, nil).Once()
	suite.mockGroupRepo.On("FindGroupByID", ctx, suite.companyID, suite.group.GroupID).Return(&suite.group, nil).Once()

	balance, err := suite.service.GetLedgerBalance(ctx, suite.companyID, custom.LedgerID, nil)

	suite.Require().NoError(err)
	suite.Equal("100.00", balance.OpeningBalance.StringFixed(2))
	suite.Equal("150.00", balance.CurrentBalance.StringFixed(2))
	suite.Equal(suite.group.GroupName, balance.GroupName)
	suite.Nil(balance.AsOfDate)
}

// --- Run Test Suite ---
func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
