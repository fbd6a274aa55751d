package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/middleware"
)

// UserController handles user-related operations
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetMe returns the authenticated user with its profiles
// @Summary Current user
// @Tags users
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MeResponse}
// @Router /users/me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	me, err := c.userService.GetMe(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(me, ""))
}

// GetUserByID returns any user with its profiles (admin only)
// @Summary Get user by ID
// @Tags users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.MeResponse}
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, ""))
}

// DeleteUser removes an account and everything it owns (admin only)
// @Summary Delete user
// @Tags users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 409 {object} dto.APIResponse "User has hire records"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	actorID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx.Request.Context(), actorID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "User deleted"}, "User deleted"))
}

// ListStudents returns a page of students
// @Summary List students
// @Tags users
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (1-100)"
// @Param search query string false "Name, email or phone"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Router /users/students [get]
func (c *UserController) ListStudents(ctx *gin.Context) {
	var q dto.StudentListQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	students, err := c.userService.ListStudents(ctx.Request.Context(), q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students, ""))
}

// GetStudent returns one student profile
// @Summary Get student profile
// @Tags users
// @Security BearerAuth
// @Param id path int true "Student profile ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /users/students/{id} [get]
func (c *UserController) GetStudent(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	student, err := c.userService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// ListMentors returns a page of mentors
// @Summary List mentors
// @Tags users
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size (1-100)"
// @Param technology query string false "Technology name"
// @Param min_years query int false "Minimum years of experience"
// @Param search query string false "Name, email or phone"
// @Success 200 {object} dto.APIResponse{data=[]dto.MentorResponse}
// @Router /users/mentors [get]
func (c *UserController) ListMentors(ctx *gin.Context) {
	var q dto.MentorListQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	mentors, err := c.userService.ListMentors(ctx.Request.Context(), q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(mentors, ""))
}

// GetMentor returns one mentor profile
// @Summary Get mentor profile
// @Tags users
// @Security BearerAuth
// @Param id path int true "Mentor profile ID"
// @Success 200 {object} dto.APIResponse{data=dto.MentorResponse}
// @Failure 404 {object} dto.APIResponse "Mentor not found"
// @Router /users/mentors/{id} [get]
func (c *UserController) GetMentor(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	mentor, err := c.userService.GetMentor(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(mentor, ""))
}

// StudentDetails returns the authenticated user's account
// @Summary Current account
// @Tags student
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Router /student/StudentDetails [get]
func (c *UserController) StudentDetails(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	user, err := c.userService.StudentDetails(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user, ""))
}

func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID").
			WithField("id").
			WithDetails("ID must be a positive number")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

func currentUser(ctx *gin.Context) (int64, bool) {
	id, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
