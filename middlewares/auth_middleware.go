package middlewares

import (
	"errors"
	"gin-bomtracker/constants"
	"gin-bomtracker/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware requires a valid bearer token and stores the user under
// constants.ContextUserKey.
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authenticate(ctx, authService)
	}
}

// AuthGate lets requests through while auth is disabled and behaves like
// AuthMiddleware once it is enabled.
func AuthGate(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		enabled, err := authService.IsAuthEnabled(ctx.Request.Context())
		if err != nil {
			zap.L().Error("Failed to read auth state", zap.Error(err))
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": constants.ErrUnexpected})
			return
		}
		if !enabled {
			ctx.Next()
			return
		}
		authenticate(ctx, authService)
	}
}

func authenticate(ctx *gin.Context, authService services.IAuthService) {
	header := ctx.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		unauthorized(ctx, constants.ErrNotAuthenticated)
		return
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	user, err := authService.GetUserFromToken(ctx.Request.Context(), tokenString)
	if err != nil {
		zap.L().Debug("Rejected bearer token", zap.Error(err))
		unauthorized(ctx, tokenErrorDetail(err))
		return
	}

	ctx.Set(constants.ContextUserKey, user)
	ctx.Set(constants.ContextTokenKey, tokenString)

	ctx.Next()
}

func tokenErrorDetail(err error) string {
	for _, known := range []error{services.ErrTokenRevoked, services.ErrUserInactive} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return constants.ErrInvalidToken
}

func unauthorized(ctx *gin.Context, detail string) {
	ctx.Header("WWW-Authenticate", "Bearer")
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}
