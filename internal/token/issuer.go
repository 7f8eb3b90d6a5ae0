package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/duccv/jotspot/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

type Issuer struct {
	settings Settings
	now      func() time.Time
}

// NewIssuer fails with ErrMissingSecret instead of falling back to a default key.
func NewIssuer(settings Settings) (*Issuer, error) {
	if len(settings.Secret) == 0 {
		return nil, ErrMissingSecret
	}
	return &Issuer{settings: settings, now: time.Now}, nil
}

// Issue signs the nine-claim token for identity, valid from now for Lifetime.
func (i *Issuer) Issue(identity model.Identity) (string, error) {
	if len(i.settings.Secret) == 0 {
		return "", ErrMissingSecret
	}

	issuedAt := i.now().UTC()
	claims := jwt.MapClaims{
		ClaimSubject:    strconv.Itoa(identity.ID),
		ClaimLogin:      identity.Login,
		ClaimGivenName:  identity.FirstName,
		ClaimFamilyName: identity.LastName,
		ClaimEmail:      identity.Email,
		ClaimNotBefore:  issuedAt.Unix(),
		ClaimExpiresAt:  issuedAt.Add(Lifetime).Unix(),
		ClaimIssuer:     i.settings.Issuer,
		ClaimAudience:   i.settings.Audience,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.settings.Secret)
	if err != nil {
		return "", fmt.Errorf("token signing failed: %w", err)
	}
	return signed, nil
}
