// Package token issues and verifies the HS256 JWTs shared by the identity and jot services.
package token

import (
	"errors"
	"time"
)

// Lifetime is the distance between nbf and exp of every issued token.
const Lifetime = time.Hour

var (
	ErrMissingSecret = errors.New("token: signing secret is not configured")

	ErrInvalidToken     = errors.New("token: invalid token")
	ErrMalformed        = wrapInvalid("malformed token")
	ErrInvalidSignature = wrapInvalid("invalid signature")
	ErrIssuerMismatch   = wrapInvalid("issuer mismatch")
	ErrAudienceMismatch = wrapInvalid("audience mismatch")
	ErrNotYetValid      = wrapInvalid("token not yet valid")
	ErrExpired          = wrapInvalid("token expired")
)

type invalidError struct{ msg string }

func (e *invalidError) Error() string { return "token: " + e.msg }

func (e *invalidError) Unwrap() error { return ErrInvalidToken }

func wrapInvalid(msg string) error { return &invalidError{msg: msg} }

// Settings are the values both services must agree on.
type Settings struct {
	Secret   []byte
	Issuer   string
	Audience string
}

// Claims is the verified claim set, every value rendered as a string.
type Claims map[string]string

// Claim names carried by every issued token.
const (
	ClaimSubject    = "sub"
	ClaimLogin      = "login"
	ClaimGivenName  = "given_name"
	ClaimFamilyName = "family_name"
	ClaimEmail      = "email"
	ClaimNotBefore  = "nbf"
	ClaimExpiresAt  = "exp"
	ClaimIssuer     = "iss"
	ClaimAudience   = "aud"
)
