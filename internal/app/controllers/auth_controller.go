// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/middleware"
)

// Multipart part names used by the registration endpoints
const (
	formFieldData     = "data"
	formFieldPhoto    = "photo"
	formFieldDocument = "document"
	formFieldResume   = "resume"
)

// Forgot-password acknowledgements
const (
	msgResetGenerated = "Reset token generated (dev)"
	msgResetGeneric   = "If the email exists, a reset link has been sent"
	msgResetDone      = "Password reset successful"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService      *services.AuthService
	exposeResetToken bool
	logger           zerolog.Logger
}

// NewAuthController creates a new AuthController. exposeResetToken returns generated reset
// tokens in the forgot-password response and must stay off in production.
func NewAuthController(authService *services.AuthService, exposeResetToken bool, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:      authService,
		exposeResetToken: exposeResetToken,
		logger:           logger,
	}
}

// RegisterStudent handles student self-registration
// @Summary Register a student
// @Description Multipart form: "data" holds the JSON profile, "photo" and "document" are optional files
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param data formData string true "dto.RegisterStudentRequest as JSON"
// @Param photo formData file false "Profile photo"
// @Param document formData file false "Resume"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /auth/register/student [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if !middleware.BindFormJSON(ctx, formFieldData, &req) {
		c.logger.Warn().Msg("Invalid student registration payload")
		return
	}

	photo, ok := optionalFile(ctx, formFieldPhoto)
	if !ok {
		return
	}
	document, ok := optionalFile(ctx, formFieldDocument)
	if !ok {
		return
	}

	user, err := c.authService.RegisterStudent(ctx.Request.Context(), &req, photo, document)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user, "Student registered"))
}

// RegisterMentor handles mentor self-registration
// @Summary Register a mentor
// @Description Multipart form: "data" holds the JSON profile, "resume" is an optional file
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param data formData string true "dto.RegisterMentorRequest as JSON"
// @Param resume formData file false "Resume"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /auth/register/mentor [post]
func (c *AuthController) RegisterMentor(ctx *gin.Context) {
	var req dto.RegisterMentorRequest
	if !middleware.BindFormJSON(ctx, formFieldData, &req) {
		c.logger.Warn().Msg("Invalid mentor registration payload")
		return
	}

	resume, ok := optionalFile(ctx, formFieldResume)
	if !ok {
		return
	}

	user, err := c.authService.RegisterMentor(ctx.Request.Context(), &req, resume)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(user, "Mentor registered"))
}

// Login handles user login
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Failure 403 {object} dto.APIResponse "Account disabled"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	tokenResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tokenResponse, ""))
}

// RefreshToken handles refresh token request
// @Summary Refresh the token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.APIResponse "Invalid refresh token"
// @Router /auth/refresh [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	tokenResponse, err := c.authService.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Refresh token failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tokenResponse, ""))
}

// ForgotPassword starts a password reset. The answer does not reveal whether the email exists.
// @Summary Request a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.APIResponse{data=dto.ForgotPasswordResponse}
// @Router /auth/forgot [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	token, generated, err := c.authService.RequestPasswordReset(ctx.Request.Context(), req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.ForgotPasswordResponse{Message: msgResetGeneric}
	if generated && c.exposeResetToken {
		resp = dto.ForgotPasswordResponse{Message: msgResetGenerated, Token: token}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, resp.Message))
}

// ResetPassword consumes a reset token
// @Summary Reset a password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.APIResponse "Invalid or expired token"
// @Router /auth/reset [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.authService.ResetPassword(ctx.Request.Context(), req.Token, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: msgResetDone}, msgResetDone))
}

// optionalFile returns the uploaded file, or nil when the part is absent
func optionalFile(ctx *gin.Context, field string) (*multipart.FileHeader, bool) {
	fh, err := ctx.FormFile(field)
	if err == nil {
		return fh, true
	}
	if errors.Is(err, http.ErrMissingFile) {
		return nil, true
	}

	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid file upload").
		WithField(field).
		WithDetails(err.Error())
	ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
	return nil, false
}
