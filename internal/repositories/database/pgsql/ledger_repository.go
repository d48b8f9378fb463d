package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/pharma_backend/internal/apperrors"
	"github.com/SscSPs/pharma_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pharma_backend/internal/core/ports/repositories"
	"github.com/SscSPs/pharma_backend/internal/models"
	"github.com/SscSPs/pharma_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

var FULL_LEDGER_SELECT_QUERY = `
SELECT
	l.id, l.company_id, l.ledger_name, l.acgroup, l.opening_balance, l.balance, l.balance_type,
	l.description, l.address, l.is_active, l.sort_order, l.status, l.station_id,
	l.is_default, l.is_editable, l.is_deletable, l.editable_fields,
	l.created_at, l.created_by, l.last_updated_at, l.last_updated_by
FROM ledgers l
`

const ledgerOrder = ` ORDER BY l.sort_order, l.ledger_name`

const fkLedgerStation = "fk_ledgers_station"

// ledgerWriteError translates a failed insert or update of m. The service resolves the
// group before writing, so a malformed id can only be the station reference.
func ledgerWriteError(err error, m models.Ledger) error {
	switch pgErrorCode(err) {
	case pgUniqueViolation:
		return apperrors.DuplicateLedgerName(m.LedgerName)
	case pgForeignKeyViolation:
		if pgConstraint(err) == fkLedgerStation && m.StationID != nil {
			return apperrors.StationNotFound(*m.StationID)
		}
		return apperrors.GroupNotFound(m.GroupID)
	case pgInvalidTextRepr:
		if m.StationID != nil {
			return apperrors.StationNotFound(*m.StationID)
		}
		return apperrors.GroupNotFound(m.GroupID)
	case pgNumericOutOfRange:
		return apperrors.NewValidationFailedError("invalid amount", "balance of ledger '"+m.LedgerName+"' is out of range")
	}
	return nil
}

const insertLedgerQuery = `
	INSERT INTO ledgers (
		id, company_id, ledger_name, acgroup, opening_balance, balance, balance_type,
		description, address, is_active, sort_order, status, station_id,
		is_default, is_editable, is_deletable, editable_fields,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
`

func ledgerInsertArgs(m models.Ledger) []any {
	return []any{
		m.LedgerID,
		m.CompanyID,
		m.LedgerName,
		m.GroupID,
		m.OpeningBalance,
		m.Balance,
		m.BalanceType,
		m.Description,
		m.Address,
		m.IsActive,
		m.SortOrder,
		m.Status,
		m.StationID,
		m.IsDefault,
		m.IsEditable,
		m.IsDeletable,
		m.EditableFields,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func (r *PgxLedgerRepository) getLedgers(ctx context.Context, filterQuery string, args ...any) ([]domain.Ledger, error) {
	rows, err := r.Pool.Query(ctx, FULL_LEDGER_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		if isMalformedID(err) {
			return []domain.Ledger{}, nil
		}
		return nil, apperrors.NewAppError(apperrors.KindInternal, "failed to query ledgers", err)
	}
	defer rows.Close()
	ledgers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Ledger])
	if err != nil {
		if isMalformedID(err) {
			return []domain.Ledger{}, nil
		}
		return nil, apperrors.NewAppError(apperrors.KindInternal, "failed to collect ledger rows", err)
	}
	return mapping.ToDomainLedgerSlice(ledgers), nil
}

func (r *PgxLedgerRepository) FindLedgerByID(ctx context.Context, companyID string, ledgerID string) (*domain.Ledger, error) {
	ledgers, err := r.getLedgers(ctx, `WHERE l.company_id = $1 AND l.id = $2`, companyID, ledgerID)
	if err != nil {
		return nil, err
	}
	if len(ledgers) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &ledgers[0], nil
}

func (r *PgxLedgerRepository) LedgerNameExists(ctx context.Context, companyID string, name string, excludeLedgerID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM ledgers
			WHERE company_id = $1 AND ledger_name = $2 AND ($3 = '' OR id::text <> $3)
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, companyID, name, excludeLedgerID).Scan(&exists); err != nil {
		if isMalformedID(err) {
			return false, nil
		}
		return false, apperrors.NewAppError(apperrors.KindInternal, "failed to check ledger name", err)
	}
	return exists, nil
}

// ListLedgers runs the count and the page query with the same filter.
func (r *PgxLedgerRepository) ListLedgers(ctx context.Context, companyID string, filter domain.LedgerFilter) ([]domain.Ledger, int, error) {
	where := &whereBuilder{}
	where.add("l.company_id = ?", companyID)
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		where.add("(l.ledger_name ILIKE ? OR l.description ILIKE ?)", pattern, pattern)
	}
	if filter.GroupID != "" {
		where.add("l.acgroup = ?", filter.GroupID)
	}
	if filter.BalanceType != "" {
		where.add("l.balance_type = ?", string(filter.BalanceType))
	}
	if filter.Status != "" {
		where.add("l.status = ?", string(filter.Status))
	}
	if filter.IsActive != nil {
		where.add("l.is_active = ?", *filter.IsActive)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM ledgers l` + where.String()
	if err := r.Pool.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		if isMalformedID(err) {
			return []domain.Ledger{}, 0, nil
		}
		return nil, 0, apperrors.NewAppError(apperrors.KindInternal, "failed to count ledgers", err)
	}
	if total == 0 {
		return []domain.Ledger{}, 0, nil
	}

	filterQuery := where.String() + ledgerOrder
	filterQuery += ` LIMIT ` + where.next(filter.Limit) + ` OFFSET ` + where.next(filter.Offset())
	ledgers, err := r.getLedgers(ctx, filterQuery, where.args...)
	if err != nil {
		return nil, 0, err
	}
	return ledgers, total, nil
}

func (r *PgxLedgerRepository) ListActiveLedgersByGroup(ctx context.Context, companyID string, groupID string) ([]domain.Ledger, error) {
	return r.getLedgers(ctx, `WHERE l.company_id = $1 AND l.acgroup = $2 AND l.is_active`+ledgerOrder, companyID, groupID)
}

func (r *PgxLedgerRepository) ListDefaultLedgers(ctx context.Context, companyID string, groupID string) ([]domain.Ledger, error) {
	if groupID == "" {
		return r.getLedgers(ctx, `WHERE l.company_id = $1 AND l.is_default AND l.is_active`+ledgerOrder, companyID)
	}
	return r.getLedgers(ctx, `WHERE l.company_id = $1 AND l.acgroup = $2 AND l.is_default AND l.is_active`+ledgerOrder, companyID, groupID)
}

func (r *PgxLedgerRepository) FindLedgersByKeyword(ctx context.Context, companyID string, keyword string) ([]domain.Ledger, error) {
	return r.getLedgers(ctx,
		`WHERE l.company_id = $1 AND l.ledger_name ILIKE $2 ORDER BY l.is_default DESC, l.sort_order, l.ledger_name`,
		companyID, containsPattern(keyword),
	)
}

func (r *PgxLedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	m := mapping.ToModelLedger(ledger)
	_, err := r.Pool.Exec(ctx, insertLedgerQuery+";", ledgerInsertArgs(m)...)
	if err != nil {
		if mapped := ledgerWriteError(err, m); mapped != nil {
			return mapped
		}
		return apperrors.NewAppError(apperrors.KindInternal, "failed to save ledger "+m.LedgerID, err)
	}
	return nil
}

// SaveLedgers pipelines every insert in one batch. A name clash inserts nothing for that row
// and is reported back; any other failure aborts the whole batch.
func (r *PgxLedgerRepository) SaveLedgers(ctx context.Context, ledgers []domain.Ledger) ([]string, error) {
	if len(ledgers) == 0 {
		return nil, nil
	}

	batch := &pgx.Batch{}
	query := insertLedgerQuery + ` ON CONFLICT (company_id, ledger_name) DO NOTHING;`
	for _, l := range ledgers {
		batch.Queue(query, ledgerInsertArgs(mapping.ToModelLedger(l))...)
	}

	br := r.Pool.SendBatch(ctx, batch)
	var skipped []string
	for _, l := range ledgers {
		cmdTag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return nil, apperrors.NewAppError(apperrors.KindInternal, "failed to insert ledger "+l.LedgerName, err)
		}
		if cmdTag.RowsAffected() == 0 {
			skipped = append(skipped, l.LedgerName)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(apperrors.KindInternal, "failed to execute ledger batch", err)
	}
	return skipped, nil
}

func (r *PgxLedgerRepository) UpdateLedger(ctx context.Context, ledger domain.Ledger) error {
	m := mapping.ToModelLedger(ledger)
	query := `
		UPDATE ledgers
		SET ledger_name = $3, acgroup = $4, opening_balance = $5, balance = $6, balance_type = $7,
			description = $8, address = $9, is_active = $10, sort_order = $11, status = $12,
			station_id = $13, last_updated_at = $14, last_updated_by = $15
		WHERE company_id = $1 AND id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.LedgerID,
		m.LedgerName,
		m.GroupID,
		m.OpeningBalance,
		m.Balance,
		m.BalanceType,
		m.Description,
		m.Address,
		m.IsActive,
		m.SortOrder,
		m.Status,
		m.StationID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if mapped := ledgerWriteError(err, m); mapped != nil {
			return mapped
		}
		return apperrors.NewAppError(apperrors.KindInternal, "failed to update ledger "+m.LedgerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.LedgerNotFound(m.LedgerID)
	}
	return nil
}

func (r *PgxLedgerRepository) ResetOpeningBalance(ctx context.Context, companyID string, ledgerID string, amount decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE ledgers
		SET opening_balance = $3, balance = $3, last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $1 AND id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, companyID, ledgerID, amount, now, userID)
	if err != nil {
		if pgErrorCode(err) == pgNumericOutOfRange {
			return apperrors.NewValidationFailedError("invalid amount", "openingBalance is out of range")
		}
		return apperrors.NewAppError(apperrors.KindInternal, "failed to reset opening balance of ledger "+ledgerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.LedgerNotFound(ledgerID)
	}
	return nil
}

func (r *PgxLedgerRepository) DeleteLedger(ctx context.Context, companyID string, ledgerID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM ledgers WHERE company_id = $1 AND id = $2;`, companyID, ledgerID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.NewForbiddenError("ledger " + ledgerID + " has transactions and cannot be deleted")
		}
		return apperrors.NewAppError(apperrors.KindInternal, "failed to delete ledger "+ledgerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.LedgerNotFound(ledgerID)
	}
	return nil
}
