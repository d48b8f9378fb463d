package mapping

import (
	"github.com/SscSPs/pharma_backend/internal/core/domain"
	"github.com/SscSPs/pharma_backend/internal/models"
)

// ToModelLedger converts a domain Ledger to a model Ledger.
// EditableFields is never nil so the TEXT[] column stays non-null.
func ToModelLedger(d domain.Ledger) models.Ledger {
	editable := d.EditableFields
	if editable == nil {
		editable = []string{}
	}
	return models.Ledger{
		LedgerID:       d.LedgerID,
		CompanyID:      d.CompanyID,
		LedgerName:     d.LedgerName,
		GroupID:        d.GroupID,
		OpeningBalance: d.OpeningBalance,
		Balance:        d.Balance,
		BalanceType:    string(d.BalanceType),
		Description:    d.Description,
		Address:        d.Address,
		IsActive:       d.IsActive,
		SortOrder:      d.SortOrder,
		Status:         string(d.Status),
		StationID:      d.StationID,
		IsDefault:      d.IsDefault,
		IsEditable:     d.IsEditable,
		IsDeletable:    d.IsDeletable,
		EditableFields: editable,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedger converts a model Ledger to a domain Ledger
func ToDomainLedger(m models.Ledger) domain.Ledger {
	return domain.Ledger{
		LedgerID:       m.LedgerID,
		CompanyID:      m.CompanyID,
		LedgerName:     m.LedgerName,
		GroupID:        m.GroupID,
		OpeningBalance: m.OpeningBalance,
		Balance:        m.Balance,
		BalanceType:    domain.BalanceType(m.BalanceType),
		Description:    m.Description,
		Address:        m.Address,
		IsActive:       m.IsActive,
		SortOrder:      m.SortOrder,
		Status:         domain.Status(m.Status),
		StationID:      m.StationID,
		IsDefault:      m.IsDefault,
		IsEditable:     m.IsEditable,
		IsDeletable:    m.IsDeletable,
		EditableFields: m.EditableFields,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerSlice converts a slice of model Ledgers to a slice of domain Ledgers
func ToDomainLedgerSlice(ms []models.Ledger) []domain.Ledger {
	ds := make([]domain.Ledger, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedger(m)
	}
	return ds
}
