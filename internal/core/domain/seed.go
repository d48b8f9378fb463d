package domain

// SeedResult reports what a default-data seeding run did for one company.
type SeedResult struct {
	CompanyID      string   `json:"companyId"`
	AlreadySeeded  bool     `json:"alreadySeeded"`
	GroupsCreated  int      `json:"groupsCreated"`
	ParentsLinked  int      `json:"parentsLinked"`
	LedgersCreated int      `json:"ledgersCreated"`
	Skipped        []string `json:"skipped"`
}
