package routes

import (
	"net/http"
	"time"

	"seminarly/handlers"
	"seminarly/middleware"
	"seminarly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PATCH("/me", hb.UpdateProfileHandler)
	}
}

// RegisterSeminarRoutes registers the seminar catalogue. Reads are public.
func RegisterSeminarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/seminars")
	{
		api.GET("", hb.ListSeminarsHandler)
		api.GET("/:id", hb.GetSeminarHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo), middleware.RequireAdmin())
		admin.POST("", hb.CreateSeminarHandler)
		admin.PATCH("/:id", hb.UpdateSeminarHandler)
		admin.DELETE("/:id", hb.DeleteSeminarHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for seminar reservations.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		bookingGroup.POST("/seminar/:seminarId", hb.CreateBookingHandler)
		bookingGroup.GET("/mine", hb.GetMyBookingsHandler)
		bookingGroup.GET("/:id", hb.GetBookingHandler)

		admin := bookingGroup.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.GET("", hb.ListBookingsHandler)
		admin.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
	}
}

// RegisterStorageRoutes registers file upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/uploads")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/proof", hb.UploadProofHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo), middleware.RequireAdmin())
		adminGroup.GET("/users", hb.AdminHandler.GetAllUsersHandler)
		adminGroup.DELETE("/users/:id", hb.AdminHandler.DeleteUserHandler)
		adminGroup.GET("/analytics", hb.AdminHandler.GetAnalyticsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Hi, I'm Seminarly",
			"mongo":     status.Mongo,
			"redis":     status.Redis,
			"checkedAt": status.CheckedAt,
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterSeminarRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
