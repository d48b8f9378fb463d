package models

// Company represents a tenant row.
type Company struct {
	CompanyID string `db:"company_id"`
	Name      string `db:"name"`
	Status    string `db:"status"`
	AuditFields
}
