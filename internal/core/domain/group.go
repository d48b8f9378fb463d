package domain

// GroupType is the accounting nature of a group.
type GroupType string

const (
	GroupTypeAsset     GroupType = "Asset"
	GroupTypeLiability GroupType = "Liability"
	GroupTypeIncome    GroupType = "Income"
	GroupTypeExpense   GroupType = "Expense"
	GroupTypeCapital   GroupType = "Capital"
)

func (t GroupType) IsValid() bool {
	switch t {
	case GroupTypeAsset, GroupTypeLiability, GroupTypeIncome, GroupTypeExpense, GroupTypeCapital:
		return true
	}
	return false
}

// Prohibit is the Yes/No posting restriction carried on a group.
type Prohibit string

const (
	ProhibitYes Prohibit = "Yes"
	ProhibitNo  Prohibit = "No"
)

// Group is a node in a company's chart-of-accounts tree.
// ParentGroupID, when set, always points at a group of the same company.
// Undergroup is the parent's name, kept as a display label.
type Group struct {
	GroupID       string         `json:"id"`
	CompanyID     string         `json:"companyId"`
	GroupName     string         `json:"groupName"`
	ParentGroupID *string        `json:"parentGroupId"`
	Undergroup    string         `json:"undergroup"`
	GroupType     GroupType      `json:"groupType"`
	IsDefault     bool           `json:"isDefault"`
	IsEditable    bool           `json:"isEditable"`
	IsDeletable   bool           `json:"isDeletable"`
	Prohibit      Prohibit       `json:"prohibit"`
	SortOrder     int            `json:"sortOrder"`
	Status        Status         `json:"status"`
	FormConfig    map[string]any `json:"formConfig,omitempty"`
	AuditFields
}

// IsTopLevel reports whether the group has no parent.
func (g Group) IsTopLevel() bool {
	return g.ParentGroupID == nil || *g.ParentGroupID == ""
}

// Summary returns the group fields embedded in a ledger view.
func (g Group) Summary() GroupSummary {
	return GroupSummary{
		GroupID:    g.GroupID,
		GroupName:  g.GroupName,
		GroupType:  g.GroupType,
		FormConfig: g.FormConfig,
		Undergroup: g.Undergroup,
	}
}

// GroupFilter narrows a group listing. Empty fields are ignored.
type GroupFilter struct {
	Search        string
	GroupType     GroupType
	Status        Status
	ParentGroupID string
}
