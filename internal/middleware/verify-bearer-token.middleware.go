package middleware

import (
	"net/http"
	"strings"

	"github.com/duccv/jotspot/internal/constant"
	"github.com/duccv/jotspot/internal/token"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenVerifier is satisfied by *token.Verifier.
type TokenVerifier interface {
	Verify(tokenString string) (token.Claims, error)
}

// VerifyBearerToken rejects the request with 401 and an empty body unless the
// Authorization header carries a bearer token the verifier accepts. On success
// the verified claims are stored under constant.ClaimsKey.
func VerifyBearerToken(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			zap.L().Warn("Authorization header is empty", zap.String("path", c.Request.URL.Path))
			unauthorized(c)
			return
		}

		scheme, raw, ok := strings.Cut(strings.TrimSpace(header), " ")
		raw = strings.TrimSpace(raw)
		if !ok || !strings.EqualFold(scheme, "Bearer") || raw == "" {
			zap.L().Warn("Invalid authorization header format",
				zap.String("scheme", scheme),
				zap.String("path", c.Request.URL.Path))
			unauthorized(c)
			return
		}

		claims, err := verifier.Verify(raw)
		if err != nil {
			zap.L().Warn("Token verification failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", getClientIP(c)))
			unauthorized(c)
			return
		}

		c.Set(constant.ClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by VerifyBearerToken.
func ClaimsFrom(c *gin.Context) (token.Claims, bool) {
	value, exists := c.Get(constant.ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(token.Claims)
	return claims, ok
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatus(http.StatusUnauthorized)
}
