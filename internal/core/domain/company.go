package domain

// Company is the tenant boundary. Every group and ledger belongs to exactly one company.
type Company struct {
	CompanyID string `json:"companyId"`
	Name      string `json:"name"`
	Status    Status `json:"status"`
	AuditFields
}
