package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// BalanceType is the natural side of a ledger's balance.
type BalanceType string

const (
	BalanceTypeDebit  BalanceType = "Debit"
	BalanceTypeCredit BalanceType = "Credit"
)

func (b BalanceType) IsValid() bool {
	return b == BalanceTypeDebit || b == BalanceTypeCredit
}

// Names of the ledger attributes that may appear in EditableFields.
const (
	FieldLedgerName     = "ledgerName"
	FieldGroup          = "acgroup"
	FieldOpeningBalance = "openingBalance"
	FieldBalanceType    = "balanceType"
	FieldDescription    = "description"
	FieldAddress        = "address"
	FieldIsActive       = "isActive"
	FieldSortOrder      = "sortOrder"
	FieldStatus         = "status"
	FieldStation        = "station"
)

// Ledger is a single account attached to exactly one group of the same company.
type Ledger struct {
	LedgerID       string          `json:"id"`
	CompanyID      string          `json:"companyId"`
	LedgerName     string          `json:"ledgerName"`
	GroupID        string          `json:"acgroup"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`
	BalanceType    BalanceType     `json:"balanceType"`
	Description    string          `json:"description"`
	Address        *string         `json:"address"`
	IsActive       bool            `json:"isActive"`
	SortOrder      int             `json:"sortOrder"`
	Status         Status          `json:"status"`
	StationID      *string         `json:"station"`
	IsDefault      bool            `json:"isDefault"`
	IsEditable     bool            `json:"isEditable"`
	IsDeletable    bool            `json:"isDeletable"`
	EditableFields []string        `json:"editableFields"`
	AuditFields
}

// CanEditField reports whether a user may change the named attribute.
// Non-default ledgers are unrestricted; default ledgers only allow their EditableFields.
func (l Ledger) CanEditField(field string) bool {
	if !l.IsDefault {
		return true
	}
	for _, f := range l.EditableFields {
		if f == field {
			return true
		}
	}
	return false
}

// Amounts are stored as NUMERIC(18,2).
const AmountScale = 2

var amountLimit = decimal.New(1, 16)

// AmountProblem describes why amount cannot be stored in the named field, or returns "".
func AmountProblem(field string, amount decimal.Decimal) string {
	if amount.Abs().GreaterThanOrEqual(amountLimit) {
		return field + " must be less than 10000000000000000 in magnitude"
	}
	if !amount.Equal(amount.Round(AmountScale)) {
		return field + " must have at most 2 decimal places"
	}
	return ""
}

// GroupSummary is the slice of a group returned alongside a ledger.
type GroupSummary struct {
	GroupID    string         `json:"id"`
	GroupName  string         `json:"groupName"`
	GroupType  GroupType      `json:"groupType"`
	FormConfig map[string]any `json:"formConfig,omitempty"`
	Undergroup string         `json:"undergroup"`
}

// LedgerWithGroup is a ledger joined with its group's summary.
type LedgerWithGroup struct {
	Ledger
	Group GroupSummary `json:"group"`
}

// LedgerBalance is a point-in-time balance snapshot.
// AsOfDate is echoed back; the balance is always the stored current balance.
type LedgerBalance struct {
	LedgerID       string          `json:"ledgerId"`
	LedgerName     string          `json:"ledgerName"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	BalanceType    BalanceType     `json:"balanceType"`
	GroupName      string          `json:"groupName"`
	AsOfDate       *time.Time      `json:"asOfDate"`
}

// LedgerFilter narrows a ledger listing. Empty fields are ignored.
type LedgerFilter struct {
	Search      string
	GroupID     string
	BalanceType BalanceType
	Status      Status
	IsActive    *bool
	Page        int
	Limit       int
}

// Offset returns the row offset of the filter's page, saturating instead of overflowing.
func (f LedgerFilter) Offset() int {
	if f.Page <= 1 || f.Limit <= 0 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		return math.MaxInt
	}
	return (f.Page - 1) * f.Limit
}

// LedgerValidation is the outcome of a dry-run validation of ledger input.
type LedgerValidation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}
