package middlewares

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const RequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

// RequestID reuses an incoming X-Request-Id or generates one, and echoes it
// back on the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := strings.TrimSpace(ctx.GetHeader(RequestIDHeader))
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx.Request = ctx.Request.WithContext(context.WithValue(ctx.Request.Context(), requestIDKey{}, rid))
		ctx.Writer.Header().Set(RequestIDHeader, rid)

		ctx.Next()
	}
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// RequestIDFields tags a log entry with the request id set by RequestID.
func RequestIDFields(ctx *gin.Context) []zapcore.Field {
	return []zapcore.Field{zap.String("request_id", GetRequestID(ctx.Request.Context()))}
}
