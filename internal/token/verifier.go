package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Verifier struct {
	settings Settings
	now      func() time.Time
}

func NewVerifier(settings Settings) (*Verifier, error) {
	if len(settings.Secret) == 0 {
		return nil, ErrMissingSecret
	}
	return &Verifier{settings: settings, now: time.Now}, nil
}

// Verify checks signature, issuer, audience and the nbf/exp window, and
// returns every claim. All failures wrap ErrInvalidToken.
func (v *Verifier) Verify(tokenString string) (Claims, error) {
	if len(v.settings.Secret) == 0 {
		return nil, ErrMissingSecret
	}

	parsed, err := jwt.Parse(tokenString,
		func(*jwt.Token) (any, error) { return v.settings.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.settings.Issuer),
		jwt.WithAudience(v.settings.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
		jwt.WithJSONNumber(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", classify(err), err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformed
	}

	claims := make(Claims, len(mapClaims))
	for name, value := range mapClaims {
		claims[name] = claimString(value)
	}
	return claims, nil
}

// classify maps library errors to package sentinels, signature problems first.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuerMismatch
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrAudienceMismatch
	default:
		return ErrInvalidToken
	}
}

func claimString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, claimString(item))
		}
		return strings.Join(parts, ",")
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
