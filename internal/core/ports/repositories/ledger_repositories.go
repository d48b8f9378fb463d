package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pharma_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations for ledger data. Every lookup is scoped by company.
type LedgerReader interface {
	// FindLedgerByID retrieves a ledger of the company by id.
	FindLedgerByID(ctx context.Context, companyID string, ledgerID string) (*domain.Ledger, error)

	// LedgerNameExists reports whether another ledger of the company already uses name.
	// excludeLedgerID is ignored when empty.
	LedgerNameExists(ctx context.Context, companyID string, name string, excludeLedgerID string) (bool, error)

	// ListLedgers retrieves one page of the company's ledgers and the total matching count.
	ListLedgers(ctx context.Context, companyID string, filter domain.LedgerFilter) ([]domain.Ledger, int, error)

	// ListActiveLedgersByGroup retrieves the active ledgers of a group.
	ListActiveLedgersByGroup(ctx context.Context, companyID string, groupID string) ([]domain.Ledger, error)

	// ListDefaultLedgers retrieves active default ledgers, optionally limited to one group.
	ListDefaultLedgers(ctx context.Context, companyID string, groupID string) ([]domain.Ledger, error)

	// FindLedgersByKeyword retrieves ledgers whose name contains keyword, case-insensitively,
	// default ledgers first.
	FindLedgersByKeyword(ctx context.Context, companyID string, keyword string) ([]domain.Ledger, error)
}

// LedgerWriter defines write operations for ledger data
type LedgerWriter interface {
	// SaveLedger persists a new ledger.
	SaveLedger(ctx context.Context, ledger domain.Ledger) error

	// SaveLedgers bulk-inserts ledgers in a single round trip. Rows whose name already
	// exists in the company are left untouched and returned as skipped.
	SaveLedgers(ctx context.Context, ledgers []domain.Ledger) (skipped []string, err error)

	// UpdateLedger updates an existing ledger's mutable attributes.
	UpdateLedger(ctx context.Context, ledger domain.Ledger) error

	// ResetOpeningBalance sets both the opening and the current balance.
	ResetOpeningBalance(ctx context.Context, companyID string, ledgerID string, amount decimal.Decimal, userID string, now time.Time) error

	// DeleteLedger removes a ledger.
	DeleteLedger(ctx context.Context, companyID string, ledgerID string) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
