package services

import (
	"context"
	"time"

	"github.com/SscSPs/pharma_backend/internal/core/domain"
	"github.com/SscSPs/pharma_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations for ledger data
type LedgerReaderSvc interface {
	// GetLedgerByID retrieves a ledger joined with its group summary.
	GetLedgerByID(ctx context.Context, companyID string, ledgerID string) (*domain.LedgerWithGroup, error)

	// GetLedgersByCompany retrieves one page of the company's ledgers.
	GetLedgersByCompany(ctx context.Context, companyID string, filter domain.LedgerFilter) ([]domain.LedgerWithGroup, domain.PageInfo, error)

	// GetLedgersByGroup retrieves the active ledgers of a group.
	GetLedgersByGroup(ctx context.Context, companyID string, groupID string) ([]domain.Ledger, error)

	// GetDefaultLedgers retrieves active default ledgers, optionally limited to one group.
	GetDefaultLedgers(ctx context.Context, companyID string, groupID string) ([]domain.Ledger, error)

	// FindLedgerByKeyword returns the best ledger whose name contains keyword.
	FindLedgerByKeyword(ctx context.Context, companyID string, keyword string) (*domain.Ledger, error)
}

// LedgerWriterSvc defines write operations for ledger data
type LedgerWriterSvc interface {
	// CreateLedger persists a new ledger under an existing group.
	CreateLedger(ctx context.Context, companyID string, req dto.CreateLedgerRequest, userID string) (*domain.LedgerWithGroup, error)

	// UpdateLedger applies a partial update, honouring editableFields on default ledgers.
	UpdateLedger(ctx context.Context, companyID string, ledgerID string, req dto.UpdateLedgerRequest, userID string) (*domain.LedgerWithGroup, error)

	// UpdateOpeningBalance sets both the opening and current balance.
	UpdateOpeningBalance(ctx context.Context, companyID string, ledgerID string, amount decimal.Decimal, userID string) (*domain.Ledger, error)

	// DeleteLedger removes a deletable ledger that has no transactions.
	DeleteLedger(ctx context.Context, companyID string, ledgerID string) error
}

// LedgerBalanceSvc defines balance queries and dry-run validation
type LedgerBalanceSvc interface {
	// GetLedgerBalance returns the stored balance. asOfDate is echoed, not used for recomputation.
	GetLedgerBalance(ctx context.Context, companyID string, ledgerID string, asOfDate *time.Time) (*domain.LedgerBalance, error)

	// ValidateLedgerData checks ledger input against a group without persisting it.
	ValidateLedgerData(ctx context.Context, companyID string, groupID string, req dto.ValidateLedgerRequest) (*domain.LedgerValidation, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
	LedgerBalanceSvc
}
