package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pharma_backend/internal/core/ports/services"
	"github.com/SscSPs/pharma_backend/internal/dto"
	"github.com/SscSPs/pharma_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
	seedService    portssvc.SeedSvc
}

func newCompanyHandler(cs portssvc.CompanySvcFacade, ss portssvc.SeedSvc) *companyHandler {
	return &companyHandler{
		companyService: cs,
		seedService:    ss,
	}
}

// registerCompanyRoutes registers routes related to companies.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade, seedService portssvc.SeedSvc) {
	h := newCompanyHandler(companyService, seedService)

	companies := rg.Group("/company/v1")
	{
		companies.POST("/add-company", h.createCompany)
		companies.GET("/get-company", h.listCompanies)
		companies.GET("/get-company/:id", h.getCompany)
		companies.POST("/:id/seed-defaults", h.seedDefaults)
	}
}

// createCompany godoc
// @Summary Onboard a company
// @Description Creates a company and, when enabled, seeds its default chart of accounts
// @Tags companies
// @Accept  json
// @Produce  json
// @Param   company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.APIResponse{data=dto.CreateCompanyResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input"
// @Failure 409 {object} dto.APIResponse "Company name already exists"
// @Failure 500 {object} dto.APIResponse "Failed to create company"
// @Security BearerAuth
// @Router /company/v1/add-company [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	company, seed, err := h.companyService.CreateCompany(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create company")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Company created", slog.String("company_id", company.CompanyID))
	c.JSON(http.StatusCreated, dto.Success("Company created successfully", dto.CreateCompanyResponse{
		Company: dto.ToCompanyResponse(company),
		Seed:    seed,
	}))
}

// listCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce  json
// @Success 200 {object} dto.APIResponse{data=[]dto.CompanyResponse}
// @Failure 500 {object} dto.APIResponse "Failed to list companies"
// @Security BearerAuth
// @Router /company/v1/get-company [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list companies")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Companies retrieved successfully", dto.ToListCompanyResponse(companies)))
}

// getCompany godoc
// @Summary Get a company by ID
// @Tags companies
// @Produce  json
// @Param   id path string true "Company ID"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyResponse}
// @Failure 404 {object} dto.APIResponse "Company not found"
// @Failure 500 {object} dto.APIResponse "Failed to retrieve company"
// @Security BearerAuth
// @Router /company/v1/get-company/{id} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	company, err := h.companyService.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve company")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Company retrieved successfully", dto.ToCompanyResponse(company)))
}

// seedDefaults godoc
// @Summary Seed the default chart of accounts
// @Description Creates the default groups and ledgers for a company. A company that is already seeded is left untouched.
// @Tags companies
// @Produce  json
// @Param   id path string true "Company ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Company not found"
// @Failure 500 {object} dto.APIResponse "Failed to seed defaults"
// @Security BearerAuth
// @Router /company/v1/{id}/seed-defaults [post]
func (h *companyHandler) seedDefaults(c *gin.Context) {
	result, err := h.seedService.SeedDefaults(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to seed defaults")
		return
	}

	msg := "Default data seeded successfully"
	if result.AlreadySeeded {
		msg = "Default data already present"
	}
	c.JSON(http.StatusOK, dto.Success(msg, result))
}
