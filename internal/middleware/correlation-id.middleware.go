package middleware

import (
	"context"

	"github.com/duccv/jotspot/internal/constant"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationIDMiddleware echoes X-Correlation-ID, generating one when the
// caller sent none, and stores it on the request context.
func CorrelationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(constant.CorrelationIDHeader)
		if cid == "" {
			cid = uuid.NewString()
		}
		ctx := context.WithValue(c.Request.Context(), constant.CorrelationIDKey, cid)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(constant.CorrelationIDHeader, cid)
		c.Next()
	}
}

// CorrelationID returns the id stored by CorrelationIDMiddleware, or "".
func CorrelationID(ctx context.Context) string {
	cid, _ := ctx.Value(constant.CorrelationIDKey).(string)
	return cid
}
