package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggingMiddleware provides request logging functionality
type LoggingMiddleware struct {
	config *MiddlewareConfig
}

func NewLoggingMiddleware(config *MiddlewareConfig) *LoggingMiddleware {
	if config == nil {
		config = DefaultMiddlewareConfig()
	}
	return &LoggingMiddleware{
		config: config,
	}
}

// RequestLogger logs every request once it has been handled. Register it
// after CorrelationIDMiddleware so the correlation id is available.
func (l *LoggingMiddleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.config.LoggingEnabled {
			c.Next()
			return
		}

		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		logger := l.createRequestLogger(c, path)

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Int("size", c.Writer.Size()),
			zap.Duration("duration", duration),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.Error("Request failed", fields...)
		case status >= 400:
			logger.Warn("Request rejected", fields...)
		default:
			logger.Info("Request completed", fields...)
		}

		if l.config.SlowRequestTime > 0 && duration > l.config.SlowRequestTime {
			logger.Warn("Slow request detected", zap.Duration("duration", duration))
		}
	}
}

func (l *LoggingMiddleware) createRequestLogger(c *gin.Context, path string) *zap.Logger {
	fields := []zap.Field{
		zap.String("correlationId", CorrelationID(c.Request.Context())),
		zap.String("method", c.Request.Method),
		zap.String("path", path),
	}

	if l.config.LogIPAddress {
		fields = append(fields, zap.String("ip", getClientIP(c)))
	}
	if l.config.LogUserAgent {
		fields = append(fields, zap.String("userAgent", c.GetHeader("User-Agent")))
	}

	if claims, ok := ClaimsFrom(c); ok {
		fields = append(fields, zap.String("sub", claims["sub"]))
	}

	return zap.L().With(fields...)
}
