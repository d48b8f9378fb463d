package dto

import (
	"time"

	"github.com/SscSPs/pharma_backend/internal/core/domain"
)

// CreateGroupRequest defines data for creating a user group.
type CreateGroupRequest struct {
	CompanyID     string           `json:"companyId"`
	GroupName     string           `json:"groupName" binding:"required,notblank,max=255"`
	ParentGroupID *string          `json:"parentGroupId"`
	GroupType     domain.GroupType `json:"groupType" binding:"required,oneof=Asset Liability Income Expense Capital"`
	Prohibit      domain.Prohibit  `json:"prohibit" binding:"omitempty,oneof=Yes No"`
	SortOrder     int              `json:"sortOrder" binding:"gte=0"`
	FormConfig    map[string]any   `json:"formConfig"`
}

func (r CreateGroupRequest) GetCompanyID() string { return r.CompanyID }

// UpdateGroupRequest defines the data allowed for updating a group.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateGroupRequest struct {
	CompanyID     string            `json:"companyId"`
	GroupName     *string           `json:"groupName" binding:"omitempty,notblank,max=255"`
	ParentGroupID *string           `json:"parentGroupId"`
	GroupType     *domain.GroupType `json:"groupType" binding:"omitempty,oneof=Asset Liability Income Expense Capital"`
	Prohibit      *domain.Prohibit  `json:"prohibit" binding:"omitempty,oneof=Yes No"`
	SortOrder     *int              `json:"sortOrder" binding:"omitempty,gte=0"`
	Status        *domain.Status    `json:"status" binding:"omitempty,oneof=Active Inactive"`
	FormConfig    map[string]any    `json:"formConfig"`
}

func (r UpdateGroupRequest) GetCompanyID() string { return r.CompanyID }

// ListGroupsParams defines query parameters for listing groups.
type ListGroupsParams struct {
	CompanyID     string `form:"companyId"`
	Search        string `form:"search"`
	GroupType     string `form:"groupType" binding:"omitempty,oneof=Asset Liability Income Expense Capital"`
	Status        string `form:"status" binding:"omitempty,oneof=Active Inactive"`
	ParentGroupID string `form:"parentGroupId"`
}

// ToFilter converts query parameters to a domain filter.
func (p ListGroupsParams) ToFilter() domain.GroupFilter {
	return domain.GroupFilter{
		Search:        p.Search,
		GroupType:     domain.GroupType(p.GroupType),
		Status:        domain.Status(p.Status),
		ParentGroupID: p.ParentGroupID,
	}
}

// GroupResponse defines data returned for a group.
type GroupResponse struct {
	GroupID       string           `json:"id"`
	CompanyID     string           `json:"companyId"`
	GroupName     string           `json:"groupName"`
	ParentGroupID *string          `json:"parentGroupId"`
	Undergroup    string           `json:"undergroup"`
	GroupType     domain.GroupType `json:"groupType"`
	IsDefault     bool             `json:"isDefault"`
	IsEditable    bool             `json:"isEditable"`
	IsDeletable   bool             `json:"isDeletable"`
	Prohibit      domain.Prohibit  `json:"prohibit"`
	SortOrder     int              `json:"sortOrder"`
	Status        domain.Status    `json:"status"`
	FormConfig    map[string]any   `json:"formConfig,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// GroupTreeResponse is a group with its nested sub-groups.
type GroupTreeResponse struct {
	GroupResponse
	Children []GroupTreeResponse `json:"children"`
}

// ToGroupResponse converts domain.Group to DTO.
func ToGroupResponse(g *domain.Group) GroupResponse {
	return GroupResponse{
		GroupID:       g.GroupID,
		CompanyID:     g.CompanyID,
		GroupName:     g.GroupName,
		ParentGroupID: g.ParentGroupID,
		Undergroup:    g.Undergroup,
		GroupType:     g.GroupType,
		IsDefault:     g.IsDefault,
		IsEditable:    g.IsEditable,
		IsDeletable:   g.IsDeletable,
		Prohibit:      g.Prohibit,
		SortOrder:     g.SortOrder,
		Status:        g.Status,
		FormConfig:    g.FormConfig,
		CreatedAt:     g.CreatedAt,
		LastUpdatedAt: g.LastUpdatedAt,
	}
}

// ToListGroupResponse converts a slice of domain.Group to DTOs.
func ToListGroupResponse(gs []domain.Group) []GroupResponse {
	list := make([]GroupResponse, len(gs))
	for i := range gs {
		list[i] = ToGroupResponse(&gs[i])
	}
	return list
}

// ToGroupTreeResponse converts nested domain nodes to DTOs.
func ToGroupTreeResponse(nodes []domain.GroupNode) []GroupTreeResponse {
	out := make([]GroupTreeResponse, len(nodes))
	for i := range nodes {
		out[i] = GroupTreeResponse{
			GroupResponse: ToGroupResponse(&nodes[i].Group),
			Children:      ToGroupTreeResponse(nodes[i].Children),
		}
	}
	return out
}
