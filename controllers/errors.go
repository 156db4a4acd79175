package controllers

import (
	"errors"
	"fmt"
	"gin-bomtracker/constants"
	"gin-bomtracker/middlewares"
	"gin-bomtracker/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{services.ErrAdminCredentialsRequired, http.StatusBadRequest},
	{services.ErrAuthNotEnabled, http.StatusBadRequest},
	{services.ErrAuthAlreadyConfigured, http.StatusBadRequest},
	{services.ErrUsernameExists, http.StatusBadRequest},
	{services.ErrCannotDeleteSelf, http.StatusBadRequest},
	{services.ErrCannotDemoteSelf, http.StatusBadRequest},
	{services.ErrInvalidUsername, http.StatusBadRequest},
	{services.ErrInvalidQuantity, http.StatusBadRequest},
	{services.ErrInvalidUnitPrice, http.StatusBadRequest},
	{services.ErrReorderMismatch, http.StatusBadRequest},
	{services.ErrIncorrectCredentials, http.StatusUnauthorized},
	{services.ErrUserInactive, http.StatusUnauthorized},
	{services.ErrInvalidToken, http.StatusUnauthorized},
	{services.ErrTokenRevoked, http.StatusUnauthorized},
	{services.ErrUserNotFound, http.StatusNotFound},
	{services.ErrProjectNotFound, http.StatusNotFound},
	{services.ErrBOMItemNotFound, http.StatusNotFound},
	{services.ErrArchiveNotFound, http.StatusNotFound},
}

// respondError writes {"detail": ...} for err. Unknown errors become a
// logged 500 with a generic message.
func respondError(ctx *gin.Context, err error) {
	for _, known := range errorStatuses {
		if errors.Is(err, known.err) {
			ctx.JSON(known.status, gin.H{"detail": known.err.Error()})
			return
		}
	}

	zap.L().Error("Request failed",
		zap.String("request_id", middlewares.GetRequestID(ctx.Request.Context())),
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.FullPath()),
		zap.Error(err))
	ctx.JSON(http.StatusInternalServerError, gin.H{"detail": constants.ErrUnexpected})
}

// respondArchiveReferenceError answers 400 for an archive_id that does not
// exist; the archive routes themselves answer 404.
func respondArchiveReferenceError(ctx *gin.Context, err error) {
	if errors.Is(err, services.ErrArchiveNotFound) {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": services.ErrArchiveNotFound.Error()})
		return
	}
	respondError(ctx, err)
}

// respondBindError reports the first failed field by its json name. Other
// decode errors get a generic message.
func respondBindError(ctx *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag())})
		return
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrInvalidInput})
}

func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": constants.ErrInvalidID})
		return 0, false
	}
	return uint(id), true
}
