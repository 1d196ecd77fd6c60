package routes

import (
	adminapi "timetable-app/internal/api/admin"
	authapi "timetable-app/internal/api/auth"
	featuresapi "timetable-app/internal/api/features"
	"timetable-app/internal/api/rooms"
	sessionsapi "timetable-app/internal/api/sessions"
	"timetable-app/internal/app/http/middleware"
	"timetable-app/internal/domain/security"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ✅ Apply input sanitization to public routes only
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", authapi.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)

	public.GET("/auth/sso", authapi.SSOStart)
	public.GET("/auth/sso/callback", authapi.SSOCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/sessions", sessionsapi.ListSessions)
	auth.POST("/sessions/select", sessionsapi.SelectSession)

	auth.GET("/rooms/properties", rooms.GetRoomProperties)
	auth.POST("/rooms/last-department", rooms.SetLastDepartment)

	features := auth.Group("/")
	features.Use(middleware.RequireRight(security.RightRooms))
	features.GET("/features", featuresapi.ListFeatures)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/departments", adminapi.ListDepartments)
	admin.POST("/authorities", adminapi.GrantAuthority)
}
