package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/middleware"
)

// AdminController handles administrator endpoints
type AdminController struct {
	adminService *services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{adminService: adminService, logger: logger}
}

// CreateMentor creates a mentor account
// @Summary Create a mentor account
// @Tags admin
// @Security BearerAuth
// @Param request body dto.CreateMentorRequest true "Mentor account"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /admin/create-mentor [post]
func (c *AdminController) CreateMentor(ctx *gin.Context) {
	var req dto.CreateMentorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.adminService.CreateMentor(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user, "Mentor created"))
}

// GetDashboard returns the dashboard counters
// @Summary Admin dashboard
// @Tags admin
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse}
// @Router /admin/dashboard [get]
func (c *AdminController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.adminService.GetDashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard, ""))
}

// CreateBatch creates a batch
// @Summary Create a batch
// @Tags admin
// @Security BearerAuth
// @Param request body dto.CreateBatchRequest true "Batch"
// @Success 201 {object} dto.APIResponse{data=dto.BatchResponse}
// @Router /admin/batches [post]
func (c *AdminController) CreateBatch(ctx *gin.Context) {
	var req dto.CreateBatchRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	batch, err := c.adminService.CreateBatch(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(batch, "Batch created"))
}

// UpdateBatchStatus changes a batch status
// @Summary Update batch status
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Param request body dto.UpdateBatchStatusRequest true "Status"
// @Success 200 {object} dto.APIResponse{data=dto.BatchResponse}
// @Router /admin/batches/{id}/status [patch]
func (c *AdminController) UpdateBatchStatus(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req dto.UpdateBatchStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	batch, err := c.adminService.UpdateBatchStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(batch, ""))
}

// RecordHire records a placement and refreshes the referenced dashboard
// @Summary Record a hire
// @Tags admin
// @Security BearerAuth
// @Param request body dto.CreateHireRequest true "Hire"
// @Success 201 {object} dto.APIResponse{data=dto.HireResponse}
// @Failure 409 {object} dto.APIResponse "Hire already recorded for this email"
// @Router /admin/hires [post]
func (c *AdminController) RecordHire(ctx *gin.Context) {
	var req dto.CreateHireRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	hire, err := c.adminService.RecordHire(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(hire, "Hire recorded"))
}

// SetUserActive enables or disables an account
// @Summary Toggle account activity
// @Tags admin
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.SetUserActiveRequest true "Active flag"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Router /admin/users/{id}/active [patch]
func (c *AdminController) SetUserActive(ctx *gin.Context) {
	actorID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req dto.SetUserActiveRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.adminService.SetUserActive(ctx.Request.Context(), actorID, id, *req.IsActive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("actorID", actorID).Int64("userID", id).Bool("active", *req.IsActive).Msg("Account activity changed")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, ""))
}
