package middleware

import (
	"net/http"
	"strings"

	userRepo "seminarly/database/repository/user"
	"seminarly/models"
	"seminarly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// JWTAuthUserMiddleware validates the bearer token and loads the caller's
// current role from storage, so demoted or deleted accounts lose access
// before their token expires.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		usr, err := repo.GetByID(c.Request.Context(), claims.Subject)
		if err != nil || usr == nil {
			zap.L().Debug("token subject not found", zap.String("userID", claims.Subject), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
				"code":  0,
			})
			return
		}

		c.Set(ContextUserID, usr.ID)
		c.Set(ContextRole, usr.Role)
		c.Next()
	}
}

// PrincipalFrom returns the authenticated caller set by JWTAuthUserMiddleware.
func PrincipalFrom(c *gin.Context) (models.Principal, bool) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		return models.Principal{}, false
	}
	return models.Principal{UserID: userID, Role: c.GetString(ContextRole)}, true
}
