package repositories

import "context"

// TransactionReader exposes the read side of posted transactions that ledger rules depend on.
type TransactionReader interface {
	// CountTransactionsByLedger counts posted transactions referencing the ledger.
	CountTransactionsByLedger(ctx context.Context, companyID string, ledgerID string) (int, error)
}
