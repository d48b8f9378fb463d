// Package defaults holds the chart of accounts every new company starts with.
package defaults

import "github.com/SscSPs/pharma_backend/internal/core/domain"

// GroupFixture describes one default group. Undergroup names the parent fixture; empty means top level.
type GroupFixture struct {
	GroupName   string
	Undergroup  string
	GroupType   domain.GroupType
	IsDefault   bool
	IsEditable  bool
	IsDeletable bool
	SortOrder   int
}

// LedgerFixture describes one default ledger and the group it hangs under.
type LedgerFixture struct {
	LedgerName  string
	GroupName   string
	BalanceType domain.BalanceType
	SortOrder   int
}

// Top-level defaults are locked; default sub-groups may be renamed but not removed.
func primary(name string, groupType domain.GroupType, sortOrder int) GroupFixture {
	return GroupFixture{GroupName: name, GroupType: groupType, IsDefault: true, SortOrder: sortOrder}
}

func sub(name, parent string, groupType domain.GroupType, sortOrder int) GroupFixture {
	return GroupFixture{GroupName: name, Undergroup: parent, GroupType: groupType, IsDefault: true, IsEditable: true, SortOrder: sortOrder}
}

// Groups returns the default groups in insertion order. The catalog is one level deep.
func Groups() []GroupFixture {
	return []GroupFixture{
		primary("Capital Account", domain.GroupTypeCapital, 1),
		primary("Loans (Liability)", domain.GroupTypeLiability, 2),
		primary("Current Liabilities", domain.GroupTypeLiability, 3),
		primary("Fixed Assets", domain.GroupTypeAsset, 4),
		primary("Current Assets", domain.GroupTypeAsset, 5),
		primary("Sales Accounts", domain.GroupTypeIncome, 6),
		primary("Purchase Accounts", domain.GroupTypeExpense, 7),
		primary("Direct Incomes", domain.GroupTypeIncome, 8),
		primary("Indirect Incomes", domain.GroupTypeIncome, 9),
		primary("Direct Expenses", domain.GroupTypeExpense, 10),
		primary("Indirect Expenses", domain.GroupTypeExpense, 11),

		sub("Share Capital", "Capital Account", domain.GroupTypeCapital, 1),
		sub("Reserves & Surplus", "Capital Account", domain.GroupTypeCapital, 2),

		sub("Bank OD Account", "Loans (Liability)", domain.GroupTypeLiability, 1),
		sub("Secured Loans", "Loans (Liability)", domain.GroupTypeLiability, 2),
		sub("Unsecured Loans", "Loans (Liability)", domain.GroupTypeLiability, 3),

		sub("Duties & Taxes", "Current Liabilities", domain.GroupTypeLiability, 1),
		sub("Provisions", "Current Liabilities", domain.GroupTypeLiability, 2),
		sub("Sundry Creditors", "Current Liabilities", domain.GroupTypeLiability, 3),
		sub("Suspense Account", "Current Liabilities", domain.GroupTypeLiability, 4),

		sub("Land & Building", "Fixed Assets", domain.GroupTypeAsset, 1),
		sub("Furniture & Fixtures", "Fixed Assets", domain.GroupTypeAsset, 2),

		sub("Bank Accounts", "Current Assets", domain.GroupTypeAsset, 1),
		sub("Cash-in-Hand", "Current Assets", domain.GroupTypeAsset, 2),
		sub("Deposits (Asset)", "Current Assets", domain.GroupTypeAsset, 3),
		sub("Loans & Advances (Asset)", "Current Assets", domain.GroupTypeAsset, 4),
		sub("Stock-in-Hand", "Current Assets", domain.GroupTypeAsset, 5),
		sub("Sundry Debtors", "Current Assets", domain.GroupTypeAsset, 6),
		sub("Investments", "Current Assets", domain.GroupTypeAsset, 7),

		sub("Manufacturing Expenses", "Direct Expenses", domain.GroupTypeExpense, 1),

		sub("Administrative Expenses", "Indirect Expenses", domain.GroupTypeExpense, 1),
		sub("Selling & Distribution Expenses", "Indirect Expenses", domain.GroupTypeExpense, 2),
	}
}

// Ledgers returns the default ledgers in insertion order.
func Ledgers() []LedgerFixture {
	dr, cr := domain.BalanceTypeDebit, domain.BalanceTypeCredit
	return []LedgerFixture{
		{"Capital Account", "Capital Account", cr, 1},
		{"Profit & Loss A/c", "Reserves & Surplus", cr, 2},
		{"Cash", "Cash-in-Hand", dr, 3},
		{"Petty Cash", "Cash-in-Hand", dr, 4},
		{"Bank Account", "Bank Accounts", dr, 5},
		{"Sales", "Sales Accounts", cr, 6},
		{"Sales Return", "Sales Accounts", dr, 7},
		{"Purchase", "Purchase Accounts", dr, 8},
		{"Purchase Return", "Purchase Accounts", cr, 9},
		{"CGST Output", "Duties & Taxes", cr, 10},
		{"SGST Output", "Duties & Taxes", cr, 11},
		{"IGST Output", "Duties & Taxes", cr, 12},
		{"CGST Input", "Duties & Taxes", dr, 13},
		{"SGST Input", "Duties & Taxes", dr, 14},
		{"IGST Input", "Duties & Taxes", dr, 15},
		{"TDS Payable", "Duties & Taxes", cr, 16},
		{"Round Off", "Indirect Expenses", dr, 17},
		{"Discount Allowed", "Indirect Expenses", dr, 18},
		{"Discount Received", "Indirect Incomes", cr, 19},
		{"Freight Inward", "Direct Expenses", dr, 20},
		{"Freight Outward", "Indirect Expenses", dr, 21},
		{"Salary", "Indirect Expenses", dr, 22},
		{"Rent", "Indirect Expenses", dr, 23},
		{"Electricity Charges", "Indirect Expenses", dr, 24},
		{"Telephone & Internet", "Indirect Expenses", dr, 25},
		{"Bank Charges", "Indirect Expenses", dr, 26},
		{"Interest Paid", "Indirect Expenses", dr, 27},
		{"Printing & Stationery", "Administrative Expenses", dr, 28},
		{"Interest Received", "Indirect Incomes", cr, 29},
		{"Opening Stock", "Stock-in-Hand", dr, 30},
		{"Cash Customer", "Sundry Debtors", dr, 31},
		{"Cash Supplier", "Sundry Creditors", cr, 32},
		{"Furniture & Fixtures", "Furniture & Fixtures", dr, 33},
		{"Expiry / Breakage Loss", "Direct Expenses", dr, 34},
		{"Bank OD", "Bank OD Account", cr, 35},
	}
}

// partyGroups hold bank and party ledgers, which also carry an address and station.
var partyGroups = map[string]bool{
	"Bank Accounts":    true,
	"Bank OD Account":  true,
	"Sundry Debtors":   true,
	"Sundry Creditors": true,
}

// EditableFields returns the attributes a user may change on a default ledger seeded under groupName.
func EditableFields(groupName string) []string {
	fields := []string{
		domain.FieldOpeningBalance,
		domain.FieldBalanceType,
		domain.FieldDescription,
		domain.FieldIsActive,
		domain.FieldStatus,
	}
	if partyGroups[groupName] {
		fields = append(fields, domain.FieldAddress, domain.FieldStation)
	}
	return fields
}
