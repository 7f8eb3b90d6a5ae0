// Package credential checks login/password pairs against a user directory.
package credential

import (
	"context"
	"errors"
	"fmt"

	"github.com/duccv/jotspot/internal/model"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	// ErrInvalidInput means the login or password is malformed; callers answer 400.
	ErrInvalidInput = errors.New("invalid login or password format")
	// ErrInvalidCredentials means the pair is well formed but unknown; callers answer 401.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Directory resolves credentials to an identity. ok is false when nothing matches.
type Directory interface {
	Lookup(ctx context.Context, login, password string) (identity model.Identity, ok bool, err error)
}

type credentials struct {
	Login    string `validate:"required,min=4,max=20,alphanum"`
	Password string `validate:"required,min=7"`
}

type Validator struct {
	directory Directory
	validate  *validator.Validate
}

func NewValidator(directory Directory) *Validator {
	return &Validator{
		directory: directory,
		validate:  validator.New(),
	}
}

// Validate checks the input shape first and only then consults the directory.
func (v *Validator) Validate(ctx context.Context, login, password string) (model.Identity, error) {
	if err := v.validate.Struct(credentials{Login: login, Password: password}); err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	identity, ok, err := v.directory.Lookup(ctx, login, password)
	if err != nil {
		return model.Identity{}, fmt.Errorf("directory lookup: %w", err)
	}
	if !ok {
		zap.L().Debug("Credential lookup missed", zap.String("login", login))
		return model.Identity{}, ErrInvalidCredentials
	}

	return identity, nil
}
