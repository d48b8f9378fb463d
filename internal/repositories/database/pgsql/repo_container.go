package pgsql

import (
	portsrepo "github.com/SscSPs/pharma_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:     newPgxCompanyRepository(dbPool),
		GroupRepo:       newPgxGroupRepository(dbPool),
		LedgerRepo:      newPgxLedgerRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}
