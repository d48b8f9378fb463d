package pgsql

import (
	"context"

	"github.com/SscSPs/pharma_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/pharma_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository reads the transactions posted by billing.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionReader {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionReader = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) CountTransactionsByLedger(ctx context.Context, companyID string, ledgerID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE company_id = $1 AND ledger_id = $2;`,
		companyID, ledgerID,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.KindInternal, "failed to count transactions of ledger "+ledgerID, err)
	}
	return count, nil
}
