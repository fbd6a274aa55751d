package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/lms/internal/app/controllers"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/middleware"
	"github.com/yigit/lms/internal/pkg/metrics"
)

// Pinger reports whether a backing dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Controllers groups the HTTP handlers mounted by SetupRouter
type Controllers struct {
	Auth  *controllers.AuthController
	User  *controllers.UserController
	Admin *controllers.AdminController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	m *metrics.Metrics,
	db Pinger,
) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
	router.GET("/health", healthHandler(db))
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// --- Public Auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/register/student", ctrl.Auth.RegisterStudent)
		auth.POST("/register/mentor", ctrl.Auth.RegisterMentor)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/refresh", ctrl.Auth.RefreshToken)
		auth.POST("/forgot", ctrl.Auth.ForgotPassword)
		auth.POST("/reset", ctrl.Auth.ResetPassword)
	}

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)

	users := router.Group("/users")
	users.Use(authMiddleware.JWTAuth())
	{
		users.GET("/me", ctrl.User.GetMe)
		users.GET("/students", ctrl.User.ListStudents)
		users.GET("/students/:id", ctrl.User.GetStudent)
		users.GET("/mentors", ctrl.User.ListMentors)
		users.GET("/mentors/:id", ctrl.User.GetMentor)
		users.GET("/:id", adminOnly, ctrl.User.GetUserByID)
		users.DELETE("/:id", adminOnly, ctrl.User.DeleteUser)
	}

	student := router.Group("/student")
	student.Use(authMiddleware.JWTAuth())
	{
		student.GET("/StudentDetails", ctrl.User.StudentDetails)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), adminOnly)
	{
		admin.POST("/create-mentor", ctrl.Admin.CreateMentor)
		admin.GET("/dashboard", ctrl.Admin.GetDashboard)
		admin.POST("/batches", ctrl.Admin.CreateBatch)
		admin.PATCH("/batches/:id/status", ctrl.Admin.UpdateBatchStatus)
		admin.POST("/hires", ctrl.Admin.RecordHire)
		admin.PATCH("/users/:id/active", ctrl.Admin.SetUserActive)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found")))
	})
}

func healthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
	}
}
