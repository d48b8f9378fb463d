package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/pharma_backend/internal/core/ports/services"
	"github.com/SscSPs/pharma_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// groupHandler handles HTTP requests related to account groups.
type groupHandler struct {
	groupService portssvc.GroupSvcFacade
}

func newGroupHandler(gs portssvc.GroupSvcFacade) *groupHandler {
	return &groupHandler{groupService: gs}
}

// registerGroupRoutes registers routes related to account groups.
func registerGroupRoutes(rg *gin.RouterGroup, groupService portssvc.GroupSvcFacade) {
	h := newGroupHandler(groupService)

	groups := rg.Group("/group/v1")
	{
		groups.POST("/add-group", h.createGroup)
		groups.GET("/get-group", h.listGroups)
		groups.GET("/get-group/:id", h.getGroup)
		groups.GET("/tree", h.getGroupTree)
		groups.PUT("/update-group/:id", h.updateGroup)
		groups.DELETE("/delete-group/:id", h.deleteGroup)
	}
}

// createGroup godoc
// @Summary Create an account group
// @Tags groups
// @Accept  json
// @Produce  json
// @Param   group body dto.CreateGroupRequest true "Group details"
// @Param   X-Company-ID header string false "Company ID when not in the body"
// @Success 201 {object} dto.APIResponse{data=dto.GroupResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input"
// @Failure 404 {object} dto.APIResponse "Parent group not found"
// @Failure 409 {object} dto.APIResponse "Group name already exists"
// @Security BearerAuth
// @Router /group/v1/add-group [post]
func (h *groupHandler) createGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
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

	group, err := h.groupService.CreateGroup(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create group")
		return
	}
	c.JSON(http.StatusCreated, dto.Success("Group created successfully", dto.ToGroupResponse(group)))
}

// listGroups godoc
// @Summary List account groups
// @Tags groups
// @Produce  json
// @Param   companyId query string false "Company ID"
// @Param   search query string false "Name contains"
// @Param   groupType query string false "Asset, Liability, Income, Expense or Capital"
// @Param   status query string false "Active or Inactive"
// @Param   parentGroupId query string false "Direct parent"
// @Success 200 {object} dto.APIResponse{data=[]dto.GroupResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input"
// @Security BearerAuth
// @Router /group/v1/get-group [get]
func (h *groupHandler) listGroups(c *gin.Context) {
	var params dto.ListGroupsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	companyID, ok := requireCompanyID(c, nil)
	if !ok {
		return
	}

	groups, err := h.groupService.ListGroups(c.Request.Context(), companyID, params.ToFilter())
	if err != nil {
		respondError(c, err, "Failed to list groups")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Groups retrieved successfully", dto.ToListGroupResponse(groups)))
}

// getGroup godoc
// @Summary Get an account group by ID
// @Tags groups
// @Produce  json
// @Param   id path string true "Group ID"
// @Param   companyId query string false "Company ID"
// @Success 200 {object} dto.APIResponse{data=dto.GroupResponse}
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Security BearerAuth
// @Router /group/v1/get-group/{id} [get]
func (h *groupHandler) getGroup(c *gin.Context) {
	companyID, ok := requireCompanyID(c, nil)
	if !ok {
		return
	}

	group, err := h.groupService.GetGroupByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve group")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Group retrieved successfully", dto.ToGroupResponse(group)))
}

// getGroupTree godoc
// @Summary Get the group hierarchy
// @Description Returns the company's groups nested under their parents
// @Tags groups
// @Produce  json
// @Param   companyId query string false "Company ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.GroupTreeResponse}
// @Security BearerAuth
// @Router /group/v1/tree [get]
func (h *groupHandler) getGroupTree(c *gin.Context) {
	companyID, ok := requireCompanyID(c, nil)
	if !ok {
		return
	}

	roots, err := h.groupService.GetGroupTree(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "Failed to build group tree")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Group tree retrieved successfully", dto.ToGroupTreeResponse(roots)))
}

// updateGroup godoc
// @Summary Update an account group
// @Tags groups
// @Accept  json
// @Produce  json
// @Param   id path string true "Group ID"
// @Param   group body dto.UpdateGroupRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.GroupResponse}
// @Failure 400 {object} dto.APIResponse "Invalid input or cyclic parent"
// @Failure 403 {object} dto.APIResponse "Group is not editable"
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Failure 409 {object} dto.APIResponse "Group name already exists"
// @Security BearerAuth
// @Router /group/v1/update-group/{id} [put]
func (h *groupHandler) updateGroup(c *gin.Context) {
	var req dto.UpdateGroupRequest
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

	group, err := h.groupService.UpdateGroup(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update group")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Group updated successfully", dto.ToGroupResponse(group)))
}

// deleteGroup godoc
// @Summary Delete an account group
// @Tags groups
// @Produce  json
// @Param   id path string true "Group ID"
// @Param   companyId query string false "Company ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse "Group is not deletable or still referenced"
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Security BearerAuth
// @Router /group/v1/delete-group/{id} [delete]
func (h *groupHandler) deleteGroup(c *gin.Context) {
	companyID, ok := requireCompanyID(c, nil)
	if !ok {
		return
	}

	if err := h.groupService.DeleteGroup(c.Request.Context(), companyID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete group")
		return
	}
	c.JSON(http.StatusOK, dto.Success("Group deleted successfully", nil))
}
