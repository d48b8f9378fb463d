package services

import (
	"context"

	"github.com/SscSPs/pharma_backend/internal/core/domain"
	"github.com/SscSPs/pharma_backend/internal/dto"
)

// GroupReaderSvc defines read operations for group data
type GroupReaderSvc interface {
	// GetGroupByID retrieves a group of the company.
	GetGroupByID(ctx context.Context, companyID string, groupID string) (*domain.Group, error)

	// ListGroups retrieves the company's groups matching filter.
	ListGroups(ctx context.Context, companyID string, filter domain.GroupFilter) ([]domain.Group, error)

	// GetGroupTree retrieves the company's groups nested under their parents.
	GetGroupTree(ctx context.Context, companyID string) ([]domain.GroupNode, error)
}

// GroupWriterSvc defines write operations for group data
type GroupWriterSvc interface {
	// CreateGroup persists a new user group.
	CreateGroup(ctx context.Context, companyID string, req dto.CreateGroupRequest, userID string) (*domain.Group, error)

	// UpdateGroup updates an editable group.
	UpdateGroup(ctx context.Context, companyID string, groupID string, req dto.UpdateGroupRequest, userID string) (*domain.Group, error)

	// DeleteGroup removes a deletable group that nothing references.
	DeleteGroup(ctx context.Context, companyID string, groupID string) error
}

// GroupSvcFacade combines all group-related service interfaces
type GroupSvcFacade interface {
	GroupReaderSvc
	GroupWriterSvc
}
