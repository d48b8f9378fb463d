package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/pharma_backend/internal/apperrors"
	"github.com/SscSPs/pharma_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/pharma_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pharma_backend/internal/core/ports/services"
	"github.com/SscSPs/pharma_backend/internal/dto"
	"github.com/google/uuid"
)

// groupService implements the GroupSvcFacade interface
type groupService struct {
	BaseService
	groupRepo portsrepo.GroupRepositoryFacade
}

// NewGroupService creates a new group service
func NewGroupService(groupRepo portsrepo.GroupRepositoryFacade) portssvc.GroupSvcFacade {
	return &groupService{groupRepo: groupRepo}
}

var _ portssvc.GroupSvcFacade = (*groupService)(nil)

func (s *groupService) GetGroupByID(ctx context.Context, companyID string, groupID string) (*domain.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, companyID, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.GroupNotFound(groupID)
		}
		s.LogError(ctx, err, "Failed to find group", slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	return group, nil
}

func (s *groupService) ListGroups(ctx context.Context, companyID string, filter domain.GroupFilter) ([]domain.Group, error) {
	groups, err := s.groupRepo.ListGroups(ctx, companyID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list groups", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	if groups == nil {
		return []domain.Group{}, nil
	}
	return groups, nil
}

func (s *groupService) GetGroupTree(ctx context.Context, companyID string) ([]domain.GroupNode, error) {
	groups, err := s.ListGroups(ctx, companyID, domain.GroupFilter{})
	if err != nil {
		return nil, err
	}
	return domain.NewGroupTree(groups).Nested(), nil
}

func (s *groupService) ensureUniqueName(ctx context.Context, companyID, name, excludeID string) error {
	exists, err := s.groupRepo.GroupNameExists(ctx, companyID, name, excludeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check group name", slog.String("group_name", name))
		return fmt.Errorf("failed to check group name: %w", err)
	}
	if exists {
		return apperrors.DuplicateGroupName(name)
	}
	return nil
}

func (s *groupService) CreateGroup(ctx context.Context, companyID string, req dto.CreateGroupRequest, userID string) (*domain.Group, error) {
	name := strings.TrimSpace(req.GroupName)
	if err := s.ensureUniqueName(ctx, companyID, name, ""); err != nil {
		return nil, err
	}

	group := domain.Group{
		GroupID:     uuid.NewString(),
		CompanyID:   companyID,
		GroupName:   name,
		GroupType:   req.GroupType,
		IsDefault:   false,
		IsEditable:  true,
		IsDeletable: true,
		Prohibit:    domain.ProhibitNo,
		SortOrder:   req.SortOrder,
		Status:      domain.StatusActive,
		FormConfig:  req.FormConfig,
		AuditFields: domain.NewAuditFields(time.Now(), userID),
	}
	if req.Prohibit != "" {
		group.Prohibit = req.Prohibit
	}

	if req.ParentGroupID != nil && *req.ParentGroupID != "" {
		parent, err := s.GetGroupByID(ctx, companyID, *req.ParentGroupID)
		if err != nil {
			return nil, err
		}
		group.ParentGroupID = &parent.GroupID
		group.Undergroup = parent.GroupName
	}

	if err := s.groupRepo.SaveGroup(ctx, group); err != nil {
		s.LogError(ctx, err, "Failed to save group",
			slog.String("group_name", name),
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Group created successfully",
		slog.String("group_id", group.GroupID),
		slog.String("company_id", companyID))
	return &group, nil
}

func (s *groupService) UpdateGroup(ctx context.Context, companyID string, groupID string, req dto.UpdateGroupRequest, userID string) (*domain.Group, error) {
	group, err := s.GetGroupByID(ctx, companyID, groupID)
	if err != nil {
		return nil, err
	}
	if !group.IsEditable {
		return nil, apperrors.GroupNotEditable(group.GroupName)
	}

	if req.GroupName != nil {
		name := strings.TrimSpace(*req.GroupName)
		if name != group.GroupName {
			if err := s.ensureUniqueName(ctx, companyID, name, groupID); err != nil {
				return nil, err
			}
			group.GroupName = name
		}
	}

	if req.ParentGroupID != nil {
		if err := s.reparent(ctx, group, *req.ParentGroupID); err != nil {
			return nil, err
		}
	}
	if req.GroupType != nil {
		group.GroupType = *req.GroupType
	}
	if req.Prohibit != nil {
		group.Prohibit = *req.Prohibit
	}
	if req.SortOrder != nil {
		group.SortOrder = *req.SortOrder
	}
	if req.Status != nil {
		group.Status = *req.Status
	}
	if req.FormConfig != nil {
		group.FormConfig = req.FormConfig
	}
	group.Touch(time.Now(), userID)

	if err := s.groupRepo.UpdateGroup(ctx, *group); err != nil {
		s.LogError(ctx, err, "Failed to update group", slog.String("group_id", groupID))
		return nil, err
	}

	s.LogInfo(ctx, "Group updated successfully", slog.String("group_id", groupID))
	return group, nil
}

// reparent moves group under parentID, or to the top level when parentID is empty.
func (s *groupService) reparent(ctx context.Context, group *domain.Group, parentID string) error {
	if parentID == "" {
		group.ParentGroupID = nil
		group.Undergroup = ""
		return nil
	}
	if group.ParentGroupID != nil && *group.ParentGroupID == parentID {
		return nil
	}

	groups, err := s.ListGroups(ctx, group.CompanyID, domain.GroupFilter{})
	if err != nil {
		return err
	}
	tree := domain.NewGroupTree(groups)
	parent, ok := tree.Get(parentID)
	if !ok {
		return apperrors.GroupNotFound(parentID)
	}
	if tree.WouldCreateCycle(group.GroupID, parentID) {
		return apperrors.NewValidationFailedError("invalid parent group",
			"a group cannot be moved under itself or one of its sub-groups")
	}
	group.ParentGroupID = &parent.GroupID
	group.Undergroup = parent.GroupName
	return nil
}

func (s *groupService) DeleteGroup(ctx context.Context, companyID string, groupID string) error {
	group, err := s.GetGroupByID(ctx, companyID, groupID)
	if err != nil {
		return err
	}
	if !group.IsDeletable {
		return apperrors.GroupNotDeletable(group.GroupName)
	}

	dependents, err := s.groupRepo.CountGroupDependents(ctx, companyID, groupID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count group dependents", slog.String("group_id", groupID))
		return fmt.Errorf("failed to count group dependents: %w", err)
	}
	if dependents > 0 {
		return apperrors.GroupInUse(group.GroupName)
	}

	if err := s.groupRepo.DeleteGroup(ctx, companyID, groupID); err != nil {
		s.LogError(ctx, err, "Failed to delete group", slog.String("group_id", groupID))
		return err
	}
	s.LogInfo(ctx, "Group deleted", slog.String("group_id", groupID))
	return nil
}
