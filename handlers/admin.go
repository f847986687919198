package handlers

import (
	"net/http"

	"seminarly/services/analytics"
	"seminarly/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	UserService      user.UserService
	AnalyticsService analytics.AnalyticsService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(us user.UserService, as analytics.AnalyticsService) *AdminHandler {
	return &AdminHandler{
		UserService:      us,
		AnalyticsService: as,
	}
}

// GetAllUsersHandler returns all users (with sensitive fields excluded).
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ah *AdminHandler) DeleteUserHandler(c *gin.Context) {
	if err := ah.UserService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAnalyticsHandler returns booking totals, revenue and per-seminar counts.
func (ah *AdminHandler) GetAnalyticsHandler(c *gin.Context) {
	summary, err := ah.AnalyticsService.Summary(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to build analytics summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build analytics"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
