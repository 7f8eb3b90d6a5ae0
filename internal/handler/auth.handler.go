package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/duccv/jotspot/internal/credential"
	"github.com/duccv/jotspot/internal/model"
	"github.com/duccv/jotspot/internal/validation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CredentialValidator interface {
	Validate(ctx context.Context, login, password string) (model.Identity, error)
}

type TokenIssuer interface {
	Issue(identity model.Identity) (string, error)
}

type AuthHandler struct {
	credentials CredentialValidator
	issuer      TokenIssuer
}

func NewAuthHandler(credentials CredentialValidator, issuer TokenIssuer) *AuthHandler {
	return &AuthHandler{credentials: credentials, issuer: issuer}
}

// IssueToken godoc
//
//	@Summary		Issue token
//	@Description	Validates the login/password pair and returns a signed HS256 bearer token valid for one hour
//	@Tags			Auth
//	@Accept			json
//	@Produce		plain
//	@Param			request	body		model.TokenRequest	true	"Credentials"
//	@Success		200		{string}	string				"Signed token"
//	@Failure		400		"Malformed login or password"
//	@Failure		401		"Unknown credentials"
//	@Router			/api/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	req := validation.Body[model.TokenRequest](c)

	identity, err := h.credentials.Validate(c.Request.Context(), req.Login, req.Password)
	switch {
	case errors.Is(err, credential.ErrInvalidInput):
		c.Status(http.StatusBadRequest)
		return
	case errors.Is(err, credential.ErrInvalidCredentials):
		zap.L().Info("Token request denied", zap.String("login", req.Login))
		c.Status(http.StatusUnauthorized)
		return
	case err != nil:
		zap.L().Error("Credential lookup failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	signed, err := h.issuer.Issue(identity)
	if err != nil {
		zap.L().Error("Token signing failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	zap.L().Info("Token issued", zap.Int("sub", identity.ID), zap.String("login", identity.Login))
	c.String(http.StatusOK, signed)
}
