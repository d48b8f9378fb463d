package dto

import (
	"time"

	"github.com/SscSPs/pharma_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerRequest defines the data needed to create a new ledger.
type CreateLedgerRequest struct {
	CompanyID      string             `json:"companyId"`
	LedgerName     string             `json:"ledgerName" binding:"required,notblank,max=255"`
	GroupID        string             `json:"acgroup" binding:"required"`
	OpeningBalance *decimal.Decimal   `json:"openingBalance"`
	BalanceType    domain.BalanceType `json:"balanceType" binding:"omitempty,oneof=Debit Credit"`
	Description    string             `json:"description"`
	Address        *string            `json:"address"`
	StationID      *string            `json:"station"`
	SortOrder      int                `json:"sortOrder" binding:"gte=0"`
}

func (r CreateLedgerRequest) GetCompanyID() string { return r.CompanyID }

// UpdateLedgerRequest defines the data allowed for updating a ledger.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateLedgerRequest struct {
	CompanyID      string              `json:"companyId"`
	LedgerName     *string             `json:"ledgerName" binding:"omitempty,notblank,max=255"`
	GroupID        *string             `json:"acgroup"`
	OpeningBalance *decimal.Decimal    `json:"openingBalance"`
	BalanceType    *domain.BalanceType `json:"balanceType" binding:"omitempty,oneof=Debit Credit"`
	Description    *string             `json:"description"`
	Address        *string             `json:"address"`
	StationID      *string             `json:"station"`
	IsActive       *bool               `json:"isActive"`
	SortOrder      *int                `json:"sortOrder" binding:"omitempty,gte=0"`
	Status         *domain.Status      `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

func (r UpdateLedgerRequest) GetCompanyID() string { return r.CompanyID }

// UpdateOpeningBalanceRequest re-baselines a ledger.
type UpdateOpeningBalanceRequest struct {
	CompanyID      string           `json:"companyId"`
	OpeningBalance *decimal.Decimal `json:"openingBalance" binding:"required"`
}

func (r UpdateOpeningBalanceRequest) GetCompanyID() string { return r.CompanyID }

// ValidateLedgerRequest is checked without being persisted; fields are optional on purpose.
type ValidateLedgerRequest struct {
	CompanyID      string           `json:"companyId"`
	LedgerName     *string          `json:"ledgerName"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"`
}

func (r ValidateLedgerRequest) GetCompanyID() string { return r.CompanyID }

// ListLedgersParams defines query parameters for listing ledgers.
type ListLedgersParams struct {
	CompanyID   string `form:"companyId"`
	Page        int    `form:"page,default=1" binding:"min=1"`
	Limit       int    `form:"limit" binding:"omitempty,min=1"`
	Search      string `form:"search"`
	GroupID     string `form:"groupId"`
	BalanceType string `form:"balanceType" binding:"omitempty,oneof=Debit Credit"`
	Status      string `form:"status" binding:"omitempty,oneof=Active Inactive"`
	IsActive    *bool  `form:"isActive"`
}

// ToFilter converts query parameters to a domain filter.
func (p ListLedgersParams) ToFilter() domain.LedgerFilter {
	return domain.LedgerFilter{
		Search:      p.Search,
		GroupID:     p.GroupID,
		BalanceType: domain.BalanceType(p.BalanceType),
		Status:      domain.Status(p.Status),
		IsActive:    p.IsActive,
		Page:        p.Page,
		Limit:       p.Limit,
	}
}

// LedgerResponse defines the data returned for a ledger. Amounts are fixed to two decimals.
type LedgerResponse struct {
	LedgerID       string               `json:"id"`
	CompanyID      string               `json:"companyId"`
	LedgerName     string               `json:"ledgerName"`
	GroupID        string               `json:"acgroup"`
	OpeningBalance string               `json:"openingBalance"`
	Balance        string               `json:"balance"`
	BalanceType    domain.BalanceType   `json:"balanceType"`
	Description    string               `json:"description"`
	Address        *string              `json:"address"`
	IsActive       bool                 `json:"isActive"`
	SortOrder      int                  `json:"sortOrder"`
	Status         domain.Status        `json:"status"`
	StationID      *string              `json:"station"`
	IsDefault      bool                 `json:"isDefault"`
	IsEditable     bool                 `json:"isEditable"`
	IsDeletable    bool                 `json:"isDeletable"`
	EditableFields []string             `json:"editableFields"`
	Group          *domain.GroupSummary `json:"group,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	LastUpdatedAt  time.Time            `json:"lastUpdatedAt"`
}

// LedgerBalanceResponse defines the data returned for a balance snapshot.
type LedgerBalanceResponse struct {
	LedgerID       string             `json:"ledgerId"`
	LedgerName     string             `json:"ledgerName"`
	OpeningBalance string             `json:"openingBalance"`
	CurrentBalance string             `json:"currentBalance"`
	BalanceType    domain.BalanceType `json:"balanceType"`
	GroupName      string             `json:"groupName"`
	AsOfDate       *string            `json:"asOfDate"`
}

// ToLedgerResponse converts domain.Ledger to DTO.
func ToLedgerResponse(l *domain.Ledger) LedgerResponse {
	editable := l.EditableFields
	if editable == nil {
		editable = []string{}
	}
	return LedgerResponse{
		LedgerID:       l.LedgerID,
		CompanyID:      l.CompanyID,
		LedgerName:     l.LedgerName,
		GroupID:        l.GroupID,
		OpeningBalance: l.OpeningBalance.StringFixed(2),
		Balance:        l.Balance.StringFixed(2),
		BalanceType:    l.BalanceType,
		Description:    l.Description,
		Address:        l.Address,
		IsActive:       l.IsActive,
		SortOrder:      l.SortOrder,
		Status:         l.Status,
		StationID:      l.StationID,
		IsDefault:      l.IsDefault,
		IsEditable:     l.IsEditable,
		IsDeletable:    l.IsDeletable,
		EditableFields: editable,
		CreatedAt:      l.CreatedAt,
		LastUpdatedAt:  l.LastUpdatedAt,
	}
}

// ToLedgerWithGroupResponse converts a joined ledger view to DTO.
func ToLedgerWithGroupResponse(l *domain.LedgerWithGroup) LedgerResponse {
	resp := ToLedgerResponse(&l.Ledger)
	group := l.Group
	resp.Group = &group
	return resp
}

// ToListLedgerResponse converts a slice of domain.Ledger to DTOs.
func ToListLedgerResponse(ls []domain.Ledger) []LedgerResponse {
	list := make([]LedgerResponse, len(ls))
	for i := range ls {
		list[i] = ToLedgerResponse(&ls[i])
	}
	return list
}

// ToListLedgerWithGroupResponse converts a slice of joined views to DTOs.
func ToListLedgerWithGroupResponse(ls []domain.LedgerWithGroup) []LedgerResponse {
	list := make([]LedgerResponse, len(ls))
	for i := range ls {
		list[i] = ToLedgerWithGroupResponse(&ls[i])
	}
	return list
}

// ToLedgerBalanceResponse converts a balance snapshot to DTO.
func ToLedgerBalanceResponse(b *domain.LedgerBalance) LedgerBalanceResponse {
	resp := LedgerBalanceResponse{
		LedgerID:       b.LedgerID,
		LedgerName:     b.LedgerName,
		OpeningBalance: b.OpeningBalance.StringFixed(2),
		CurrentBalance: b.CurrentBalance.StringFixed(2),
		BalanceType:    b.BalanceType,
		GroupName:      b.GroupName,
	}
	if b.AsOfDate != nil {
		d := b.AsOfDate.Format(time.DateOnly)
		resp.AsOfDate = &d
	}
	return resp
}
