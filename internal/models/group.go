package models

// Group represents a row of groups.
// ParentGroupID is NULL for top-level groups; FormConfig is a nullable JSONB column.
type Group struct {
	GroupID       string         `db:"id"`
	CompanyID     string         `db:"company_id"`
	GroupName     string         `db:"group_name"`
	ParentGroupID *string        `db:"parent_group_id"`
	Undergroup    string         `db:"undergroup"`
	GroupType     string         `db:"group_type"`
	IsDefault     bool           `db:"is_default"`
	IsEditable    bool           `db:"is_editable"`
	IsDeletable   bool           `db:"is_deletable"`
	Prohibit      string         `db:"prohibit"`
	SortOrder     int            `db:"sort_order"`
	Status        string         `db:"status"`
	FormConfig    map[string]any `db:"form_config"`
	AuditFields
}
