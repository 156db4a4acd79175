package middlewares

import (
	"gin-bomtracker/constants"
	"gin-bomtracker/models"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoleBasedAccessControl only admits users holding one of allowedRoles.
// Must run after AuthMiddleware.
func RoleBasedAccessControl(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get(constants.ContextUserKey)
		if !exists {
			unauthorized(ctx, constants.ErrNotAuthenticated)
			return
		}

		userModel, ok := user.(*models.User)
		if !ok {
			unauthorized(ctx, constants.ErrNotAuthenticated)
			return
		}

		// role as loaded from the users table by AuthMiddleware, not the token claim
		userRole := strings.TrimSpace(strings.ToLower(userModel.Role))
		for _, allowedRole := range allowedRoles {
			if userRole == strings.TrimSpace(strings.ToLower(allowedRole)) {
				ctx.Next()
				return
			}
		}

		zap.L().Info("Access denied",
			zap.Uint("user_id", userModel.ID),
			zap.String("role", userModel.Role),
			zap.Strings("required_roles", allowedRoles))
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": constants.ErrInsufficientRole})
	}
}

// CurrentUser returns the user stored by AuthMiddleware, if any.
func CurrentUser(ctx *gin.Context) (*models.User, bool) {
	user, exists := ctx.Get(constants.ContextUserKey)
	if !exists {
		return nil, false
	}
	userModel, ok := user.(*models.User)
	return userModel, ok
}
