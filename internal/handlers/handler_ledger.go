package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/pharma_backend/internal/core/ports/services"
	"github.com/SscSPs/pharma_backend/internal/dto"
	"github.com/SscSPs/pharma_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests related to ledgers.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes related to ledgers.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledgers := rg.Group("/ledger/v1")
	{
		ledgers.POST("/add-ledger", h.createLedger)
		ledgers.GET("/get-ledger", h.listLedgers)
		ledgers.GET("/get-ledger/:id", h.getLedger)
		ledgers.PUT("/update-ledger/:id", h.updateLedger)
		ledgers.DELETE("/delete-ledger/:id", h.deleteLedger)
		ledgers.PUT("/:id/opening-balance", h.updateOpeningBalance)
		ledgers.GET("/:id/balance", h.getLedgerBalance)
		ledgers.GET("/group/:groupId", h.listLedgersByGroup)
		ledgers.GET("/default-ledgers", h.listDefaultLedgers)
		ledgers.GET("/lookup", h.lookupLedger)
		ledgers.POST("/validate/:groupId", h.validateLedger)
	}
}

// createLedger godoc
// @Summary Create a ledger
// @Description Creates a ledger under an existing group. The current balance starts at the opening balance.
// @Tags ledgers
// @Accept  json
// @Produce  json
// @Param   ledger body dto.CreateLedgerRequest true "Ledger details"
// @Param   X-Company-ID header string false "Company ID when not in the body"
// @Success 201 {object} dto.APIResponse{data=dto.LedgerResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input"
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Failure 409 {object} dto.APIResponse "Ledger name already exists"
// @Failure 500 {object} dto.APIResponse "Failed to create ledger"
// @Security BearerAuth
// @Router /ledger/v1/add-ledger [post]
func (h *ledgerHandler) createLedger(c *gin.Context) {
	var req dto.CreateLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	companyID, ok := requireCompanyID(c, req)
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.CreateLedger(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create ledger")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Ledger created", slog.String("ledger_id", ledger.LedgerID))
	c.JSON(http.StatusCreated, dto.Success("Ledger created successfully", dto.ToLedgerWithGroupResponse(ledger)))
}

// listLedgers godoc
// @Summary List ledgers
// @Description Returns one page of the company's ledgers ordered by sort order then name
// @Tags ledgers
// @Produce  json
// @Param   companyId query string false "Company ID"
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size (max 100)"
// @Param   search query string false "Matches name or description"
// @Param   groupId query string false "Group ID"
// @Param   balanceType query string false "Debit or Credit"
// @Param   status query string false "Active or Inactive"
// @Param   isActive query bool false "Active flag"
// @Success 200 {object} dto.APIResponse{data=[]dto.LedgerResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input"
// @Security BearerAuth
// @Router /ledger/v1/get-ledger [get]
func (h *ledgerHandler) listLedgers(c *gin.Context) {
	var params dto.ListLedgersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	companyID, ok := requireCompanyID(c, nil)
	if !ok {
		return
	}

	ledgers, page, err := h.ledgerService.GetLedgersByCompany(c.Request.Context(), companyID, params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to list ledgers")
		return
	}
	c.JSON(http.StatusOK, dto.Paginated("Ledgers retrieved successfully", dto.ToListLedgerWithGroupResponse(ledgers), page))
}

// getLedger godoc
// @Summary Get a ledger by ID
// @Tags ledgers
// @Produce  json
// @Param   id path string true "Ledger ID"
// @Param   companyId query string false "Company ID"
// @Success 200 {object} dto.APIResponse{data=dto.LedgerResponse}
// @Failure 404 {object} dto.APIResponse "Ledger not found"
// @Security BearerAuth
// @Router /ledger/v1/get-ledger/{id} [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	companyID, ok := requireCompanyID(c, nil)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.GetLedgerByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve ledger")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Ledger retrieved successfully", dto.ToLedgerWithGroupResponse(ledger)))
}

// updateLedger godoc
// @Summary Update a ledger
// @Description Applies a partial update. Default ledgers only accept changes to their editable fields.
// @Tags ledgers
// @Accept  json
// @Produce  json
// @Param   id path string true "Ledger ID"
// @Param   ledger body dto.UpdateLedgerRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.LedgerResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input"
// @Failure 403 {object} dto.APIResponse "Ledger or field is not editable"
// @Failure 404 {object} dto.APIResponse "Ledger or group not found"
// @Failure 409 {object} dto.APIResponse "Ledger name already exists"
// @Security BearerAuth
// @Router /ledger/v1/update-ledger/{id} [put]
func (h *ledgerHandler) updateLedger(c *gin.Context) {
	var req dto.UpdateLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	companyID, ok := requireCompanyID(c, req)
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.UpdateLedger(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update ledger")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Ledger updated successfully", dto.ToLedgerWithGroupResponse(ledger)))
}

// deleteLedger godoc
// @Summary Delete a ledger
// @Tags ledgers
// @Produce  json
// @Param   id path string true "Ledger ID"
// @Param   companyId query string false "Company ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse "Ledger is not deletable or has transactions"
// @Failure 404 {object} dto.APIResponse "Ledger not found"
// @Security BearerAuth
// @Router /ledger/v1/delete-ledger/{id} [delete]
func (h *ledgerHandler) deleteLedger(c *gin.Context) {
	companyID, ok := requireCompanyID(c, nil)
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteLedger(c.Request.Context(), companyID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete ledger")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Ledger deleted successfully", nil))
}

// updateOpeningBalance godoc
// @Summary Reset a ledger's opening balance
// @Description Sets both the opening and the current balance to the given amount
// @Tags ledgers
// @Accept  json
// @Produce  json
// @Param   id path string true "Ledger ID"
// @Param   body body dto.UpdateOpeningBalanceRequest true "New opening balance"
// @Success 200 {object} dto.APIResponse{data=dto.LedgerResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input"
// @Failure 403 {object} dto.APIResponse "Opening balance is not editable"
// @Failure 404 {object} dto.APIResponse "Ledger not found"
// @Security BearerAuth
// @Router /ledger/v1/{id}/opening-balance [put]
func (h *ledgerHandler) updateOpeningBalance(c *gin.Context) {
	var req dto.UpdateOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	companyID, ok := requireCompanyID(c, req)
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.UpdateOpeningBalance(c.Request.Context(), companyID, c.Param("id"), *req.OpeningBalance, userID)
	if err != nil {
		respondError(c, err, "Failed to update opening balance")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Opening balance updated successfully", dto.ToLedgerResponse(ledger)))
}

// getLedgerBalance godoc
// @Summary Get a ledger's balance
// @Description Returns the stored balance. asOfDate is echoed back and does not change the figures.
// @Tags ledgers
// @Produce  json
// @Param   id path string true "Ledger ID"
// @Param   companyId query string false "Company ID"
// @Param   asOfDate query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.LedgerBalanceResponse}
// @Failure 400 {object} dto.APIResponse "Invalid date"
// @Failure 404 {object} dto.APIResponse "Ledger not found"
// @Security BearerAuth
// @Router /ledger/v1/{id}/balance [get]
func (h *ledgerHandler) getLedgerBalance(c *gin.Context) {
	companyID, ok := requireCompanyID(c, nil)
	if !ok {
		return
	}

	var asOfDate *time.Time
	if raw := c.Query("asOfDate"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Failure("Invalid request format", "asOfDate must be formatted YYYY-MM-DD"))
			return
		}
		asOfDate = &parsed
	}

	balance, err := h.ledgerService.GetLedgerBalance(c.Request.Context(), companyID, c.Param("id"), asOfDate)
	if err != nil {
		respondError(c, err, "Failed to retrieve ledger balance")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Ledger balance retrieved successfully", dto.ToLedgerBalanceResponse(balance)))
}

// listLedgersByGroup godoc
// @Summary List the active ledgers of a group
// @Tags ledgers
// @Produce  json
// @Param   groupId path string true "Group ID"
// @Param   companyId query string false "Company ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.LedgerResponse}
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Security BearerAuth
// @Router /ledger/v1/group/{groupId} [get]
func (h *ledgerHandler) listLedgersByGroup(c *gin.Context) {
	companyID, ok := requireCompanyID(c, nil)
	if !ok {
		return
	}

	ledgers, err := h.ledgerService.GetLedgersByGroup(c.Request.Context(), companyID, c.Param("groupId"))
	if err != nil {
		respondError(c, err, "Failed to list ledgers")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Ledgers retrieved successfully", dto.ToListLedgerResponse(ledgers)))
}

// listDefaultLedgers godoc
// @Summary List default ledgers
// @Tags ledgers
// @Produce  json
// @Param   companyId query string false "Company ID"
// @Param   groupId query string false "Restrict to one group"
// @Success 200 {object} dto.APIResponse{data=[]dto.LedgerResponse}
// @Security BearerAuth
// @Router /ledger/v1/default-ledgers [get]
func (h *ledgerHandler) listDefaultLedgers(c *gin.Context) {
	companyID, ok := requireCompanyID(c, nil)
	if !ok {
		return
	}

	ledgers, err := h.ledgerService.GetDefaultLedgers(c.Request.Context(), companyID, c.Query("groupId"))
	if err != nil {
		respondError(c, err, "Failed to list default ledgers")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Default ledgers retrieved successfully", dto.ToListLedgerResponse(ledgers)))
}

// lookupLedger godoc
// @Summary Find a ledger by keyword
// @Description Returns the best ledger whose name contains the keyword, preferring default ledgers
// @Tags ledgers
// @Produce  json
// @Param   companyId query string false "Company ID"
// @Param   keyword query string true "Name fragment"
// @Success 200 {object} dto.APIResponse{data=dto.LedgerResponse}
// @Failure 400 {object} dto.APIResponse "Keyword missing"
// @Failure 404 {object} dto.APIResponse "No matching ledger"
// @Security BearerAuth
// @Router /ledger/v1/lookup [get]
func (h *ledgerHandler) lookupLedger(c *gin.Context) {
	companyID, ok := requireCompanyID(c, nil)
	if !ok {
		return
	}

	ledger, err := h.ledgerService.FindLedgerByKeyword(c.Request.Context(), companyID, c.Query("keyword"))
	if err != nil {
		respondError(c, err, "Failed to look up ledger")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Ledger found", dto.ToLedgerResponse(ledger)))
}

// validateLedger godoc
// @Summary Validate ledger input
// @Description Checks ledger data against a group without saving it
// @Tags ledgers
// @Accept  json
// @Produce  json
// @Param   groupId path string true "Group ID"
// @Param   ledger body dto.ValidateLedgerRequest true "Ledger data"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Security BearerAuth
// @Router /ledger/v1/validate/{groupId} [post]
func (h *ledgerHandler) validateLedger(c *gin.Context) {
	var req dto.ValidateLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	companyID, ok := requireCompanyID(c, req)
	if !ok {
		return
	}

	result, err := h.ledgerService.ValidateLedgerData(c.Request.Context(), companyID, c.Param("groupId"), req)
	if err != nil {
		respondError(c, err, "Failed to validate ledger data")
		return
	}

	msg := "Ledger data is valid"
	if !result.IsValid {
		msg = "Ledger data is invalid"
	}
	c.JSON(http.StatusOK, dto.Success(msg, result))
}
