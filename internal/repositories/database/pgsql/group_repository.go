package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/pharma_backend/internal/apperrors"
	"github.com/SscSPs/pharma_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pharma_backend/internal/core/ports/repositories"
	"github.com/SscSPs/pharma_backend/internal/models"
	"github.com/SscSPs/pharma_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGroupRepository struct {
	BaseRepository
}

// newPgxGroupRepository creates a new repository for group data.
func newPgxGroupRepository(pool *pgxpool.Pool) portsrepo.GroupRepositoryFacade {
	return &PgxGroupRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxGroupRepository implements portsrepo.GroupRepositoryFacade
var _ portsrepo.GroupRepositoryFacade = (*PgxGroupRepository)(nil)

var FULL_GROUP_SELECT_QUERY = `
SELECT
	g.id, g.company_id, g.group_name, g.parent_group_id, g.undergroup, g.group_type,
	g.is_default, g.is_editable, g.is_deletable, g.prohibit, g.sort_order, g.status, g.form_config,
	g.created_at, g.created_by, g.last_updated_at, g.last_updated_by
FROM groups g
`

func (r *PgxGroupRepository) getGroups(ctx context.Context, filterQuery string, args ...any) ([]domain.Group, error) {
	rows, err := r.Pool.Query(ctx, FULL_GROUP_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		if isMalformedID(err) {
			return []domain.Group{}, nil
		}
		return nil, apperrors.NewAppError(apperrors.KindInternal, "failed to query groups", err)
	}
	defer rows.Close()
	groups, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Group])
	if err != nil {
		if isMalformedID(err) {
			return []domain.Group{}, nil
		}
		return nil, apperrors.NewAppError(apperrors.KindInternal, "failed to collect group rows", err)
	}
	return mapping.ToDomainGroupSlice(groups), nil
}

func (r *PgxGroupRepository) FindGroupByID(ctx context.Context, companyID string, groupID string) (*domain.Group, error) {
	groups, err := r.getGroups(ctx, `WHERE g.company_id = $1 AND g.id = $2`, companyID, groupID)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &groups[0], nil
}

func (r *PgxGroupRepository) GroupNameExists(ctx context.Context, companyID string, name string, excludeGroupID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM groups
			WHERE company_id = $1 AND group_name = $2 AND ($3 = '' OR id::text <> $3)
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, companyID, name, excludeGroupID).Scan(&exists); err != nil {
		if isMalformedID(err) {
			return false, nil
		}
		return false, apperrors.NewAppError(apperrors.KindInternal, "failed to check group name", err)
	}
	return exists, nil
}

func (r *PgxGroupRepository) ListGroups(ctx context.Context, companyID string, filter domain.GroupFilter) ([]domain.Group, error) {
	where := &whereBuilder{}
	where.add("g.company_id = ?", companyID)
	if filter.Search != "" {
		where.add("g.group_name ILIKE ?", containsPattern(filter.Search))
	}
	if filter.GroupType != "" {
		where.add("g.group_type = ?", string(filter.GroupType))
	}
	if filter.Status != "" {
		where.add("g.status = ?", string(filter.Status))
	}
	if filter.ParentGroupID != "" {
		where.add("g.parent_group_id = ?", filter.ParentGroupID)
	}
	return r.getGroups(ctx, where.String()+` ORDER BY g.sort_order, g.group_name`, where.args...)
}

func (r *PgxGroupRepository) HasDefaultGroups(ctx context.Context, companyID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM groups WHERE company_id = $1 AND is_default);`,
		companyID,
	).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(apperrors.KindInternal, "failed to check default groups", err)
	}
	return exists, nil
}

func (r *PgxGroupRepository) CountGroupDependents(ctx context.Context, companyID string, groupID string) (int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM groups WHERE company_id = $1 AND parent_group_id = $2) +
			(SELECT COUNT(*) FROM ledgers WHERE company_id = $1 AND acgroup = $2);
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, companyID, groupID).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(apperrors.KindInternal, "failed to count group dependents", err)
	}
	return count, nil
}

func (r *PgxGroupRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	m := mapping.ToModelGroup(group)
	query := `
		INSERT INTO groups (
			id, company_id, group_name, parent_group_id, undergroup, group_type,
			is_default, is_editable, is_deletable, prohibit, sort_order, status, form_config,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GroupID,
		m.CompanyID,
		m.GroupName,
		m.ParentGroupID,
		m.Undergroup,
		m.GroupType,
		m.IsDefault,
		m.IsEditable,
		m.IsDeletable,
		m.Prohibit,
		m.SortOrder,
		m.Status,
		m.FormConfig,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.DuplicateGroupName(m.GroupName)
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("company or parent group of '" + m.GroupName + "' not found")
		}
		return apperrors.NewAppError(apperrors.KindInternal, "failed to save group "+m.GroupID, err)
	}
	return nil
}

// UpdateGroup writes the group and refreshes the undergroup label of its direct children
// in the same transaction, so a rename never leaves stale labels behind.
func (r *PgxGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	m := mapping.ToModelGroup(group)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE groups
		SET group_name = $3, parent_group_id = $4, undergroup = $5, group_type = $6,
			is_editable = $7, is_deletable = $8, prohibit = $9, sort_order = $10, status = $11,
			form_config = $12, last_updated_at = $13, last_updated_by = $14
		WHERE company_id = $1 AND id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.CompanyID,
		m.GroupID,
		m.GroupName,
		m.ParentGroupID,
		m.Undergroup,
		m.GroupType,
		m.IsEditable,
		m.IsDeletable,
		m.Prohibit,
		m.SortOrder,
		m.Status,
		m.FormConfig,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.DuplicateGroupName(m.GroupName)
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("parent group of '" + m.GroupName + "' not found")
		}
		return apperrors.NewAppError(apperrors.KindInternal, "failed to update group "+m.GroupID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.GroupNotFound(m.GroupID)
	}

	_, err = tx.Exec(ctx,
		`UPDATE groups SET undergroup = $3 WHERE company_id = $1 AND parent_group_id = $2 AND undergroup <> $3;`,
		m.CompanyID, m.GroupID, m.GroupName,
	)
	if err != nil {
		return apperrors.NewAppError(apperrors.KindInternal, "failed to refresh sub-group labels of "+m.GroupID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxGroupRepository) SetGroupParent(ctx context.Context, companyID string, groupID string, parentGroupID string, undergroup string, userID string, now time.Time) error {
	query := `
		UPDATE groups
		SET parent_group_id = $3, undergroup = $4, last_updated_at = $5, last_updated_by = $6
		WHERE company_id = $1 AND id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, companyID, groupID, parentGroupID, undergroup, now, userID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.GroupNotFound(parentGroupID)
		}
		return apperrors.NewAppError(apperrors.KindInternal, fmt.Sprintf("failed to link group %s to parent %s", groupID, parentGroupID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.GroupNotFound(groupID)
	}
	return nil
}

func (r *PgxGroupRepository) DeleteGroup(ctx context.Context, companyID string, groupID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM groups WHERE company_id = $1 AND id = $2;`, companyID, groupID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.NewForbiddenError("group " + groupID + " is referenced by sub-groups or ledgers")
		}
		return apperrors.NewAppError(apperrors.KindInternal, "failed to delete group "+groupID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.GroupNotFound(groupID)
	}
	return nil
}
