package dto

import (
	"time"

	"github.com/SscSPs/pharma_backend/internal/core/domain"
)

// CreateCompanyRequest defines data for onboarding a new company.
type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required,notblank,max=255"`
}

// CompanyResponse defines data returned for a company.
type CompanyResponse struct {
	CompanyID     string        `json:"companyId"`
	Name          string        `json:"name"`
	Status        domain.Status `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	CreatedBy     string        `json:"createdBy"`
	LastUpdatedAt time.Time     `json:"lastUpdatedAt"`
	LastUpdatedBy string        `json:"lastUpdatedBy"`
}

// CreateCompanyResponse is the company plus the outcome of seeding its chart of accounts.
// Seed is nil when seeding on creation is disabled or failed.
type CreateCompanyResponse struct {
	Company CompanyResponse    `json:"company"`
	Seed    *domain.SeedResult `json:"seed,omitempty"`
}

// ToCompanyResponse converts domain.Company to DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:     c.CompanyID,
		Name:          c.Name,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ToListCompanyResponse converts a slice of domain.Company to DTOs.
func ToListCompanyResponse(cs []domain.Company) []CompanyResponse {
	list := make([]CompanyResponse, len(cs))
	for i := range cs {
		list[i] = ToCompanyResponse(&cs[i])
	}
	return list
}
