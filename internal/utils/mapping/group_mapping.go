package mapping

import (
	"github.com/SscSPs/pharma_backend/internal/core/domain"
	"github.com/SscSPs/pharma_backend/internal/models"
)

// ToModelGroup converts a domain Group to a model Group.
// An empty parent id is stored as NULL.
func ToModelGroup(d domain.Group) models.Group {
	var parentID *string
	if !d.IsTopLevel() {
		parentID = d.ParentGroupID
	}
	return models.Group{
		GroupID:       d.GroupID,
		CompanyID:     d.CompanyID,
		GroupName:     d.GroupName,
		ParentGroupID: parentID,
		Undergroup:    d.Undergroup,
		GroupType:     string(d.GroupType),
		IsDefault:     d.IsDefault,
		IsEditable:    d.IsEditable,
		IsDeletable:   d.IsDeletable,
		Prohibit:      string(d.Prohibit),
		SortOrder:     d.SortOrder,
		Status:        string(d.Status),
		FormConfig:    d.FormConfig,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGroup converts a model Group to a domain Group
func ToDomainGroup(m models.Group) domain.Group {
	return domain.Group{
		GroupID:       m.GroupID,
		CompanyID:     m.CompanyID,
		GroupName:     m.GroupName,
		ParentGroupID: m.ParentGroupID,
		Undergroup:    m.Undergroup,
		GroupType:     domain.GroupType(m.GroupType),
		IsDefault:     m.IsDefault,
		IsEditable:    m.IsEditable,
		IsDeletable:   m.IsDeletable,
		Prohibit:      domain.Prohibit(m.Prohibit),
		SortOrder:     m.SortOrder,
		Status:        domain.Status(m.Status),
		FormConfig:    m.FormConfig,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGroupSlice converts a slice of model Groups to a slice of domain Groups
func ToDomainGroupSlice(ms []models.Group) []domain.Group {
	ds := make([]domain.Group, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGroup(m)
	}
	return ds
}
