package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type MiddlewareConfig struct {
	// Logging Configuration
	LoggingEnabled  bool
	LogUserAgent    bool
	LogIPAddress    bool
	SlowRequestTime time.Duration
}

func DefaultMiddlewareConfig() *MiddlewareConfig {
	return &MiddlewareConfig{
		LoggingEnabled:  true,
		LogUserAgent:    true,
		LogIPAddress:    true,
		SlowRequestTime: time.Second,
	}
}

// getClientIP extracts the real client IP address
func getClientIP(c *gin.Context) string {
	if ip := c.GetHeader("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}
	return c.ClientIP()
}
