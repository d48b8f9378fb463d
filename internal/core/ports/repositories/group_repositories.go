package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pharma_backend/internal/core/domain"
)

// GroupReader defines read operations for group data. Every lookup is scoped by company.
type GroupReader interface {
	// FindGroupByID retrieves a group of the company by id.
	FindGroupByID(ctx context.Context, companyID string, groupID string) (*domain.Group, error)

	// GroupNameExists reports whether another group of the company already uses name.
	// excludeGroupID is ignored when empty.
	GroupNameExists(ctx context.Context, companyID string, name string, excludeGroupID string) (bool, error)

	// ListGroups retrieves the company's groups ordered by sort order then name.
	ListGroups(ctx context.Context, companyID string, filter domain.GroupFilter) ([]domain.Group, error)

	// HasDefaultGroups reports whether the company already has any seeded group.
	HasDefaultGroups(ctx context.Context, companyID string) (bool, error)

	// CountGroupDependents counts the sub-groups and ledgers referencing the group.
	CountGroupDependents(ctx context.Context, companyID string, groupID string) (int, error)
}

// GroupWriter defines write operations for group data
type GroupWriter interface {
	// SaveGroup persists a new group.
	SaveGroup(ctx context.Context, group domain.Group) error

	// UpdateGroup updates an existing group's mutable attributes.
	UpdateGroup(ctx context.Context, group domain.Group) error

	// SetGroupParent links a group to its parent and refreshes its undergroup label.
	SetGroupParent(ctx context.Context, companyID string, groupID string, parentGroupID string, undergroup string, userID string, now time.Time) error

	// DeleteGroup removes a group. Referencing rows make this fail with a forbidden error.
	DeleteGroup(ctx context.Context, companyID string, groupID string) error
}

// GroupRepositoryFacade combines all group-related repository interfaces
type GroupRepositoryFacade interface {
	GroupReader
	GroupWriter
}
