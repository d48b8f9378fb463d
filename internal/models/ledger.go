package models

import "github.com/shopspring/decimal"

// Ledger represents a row of ledgers. GroupID maps the acgroup column.
type Ledger struct {
	LedgerID       string          `db:"id"`
	CompanyID      string          `db:"company_id"`
	LedgerName     string          `db:"ledger_name"`
	GroupID        string          `db:"acgroup"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	Balance        decimal.Decimal `db:"balance"`
	BalanceType    string          `db:"balance_type"`
	Description    string          `db:"description"`
	Address        *string         `db:"address"`
	IsActive       bool            `db:"is_active"`
	SortOrder      int             `db:"sort_order"`
	Status         string          `db:"status"`
	StationID      *string         `db:"station_id"`
	IsDefault      bool            `db:"is_default"`
	IsEditable     bool            `db:"is_editable"`
	IsDeletable    bool            `db:"is_deletable"`
	EditableFields []string        `db:"editable_fields"`
	AuditFields
}
