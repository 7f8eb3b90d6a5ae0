package credential

import (
	"context"
	"crypto/subtle"

	"github.com/duccv/jotspot/internal/model"
)

// StaticDirectory holds a single hardcoded user until a real user directory exists.
type StaticDirectory struct {
	password string
	identity model.Identity
}

func NewStaticDirectory(identity model.Identity, password string) *StaticDirectory {
	return &StaticDirectory{identity: identity, password: password}
}

// DefaultDirectory returns the mock user the services ship with.
func DefaultDirectory() *StaticDirectory {
	return NewStaticDirectory(model.Identity{
		ID:        1,
		Login:     "alex",
		FirstName: "Alex",
		LastName:  "Bohomol",
		Email:     "alex@jotspot.com",
	}, "1234567")
}

func (d *StaticDirectory) Lookup(_ context.Context, login, password string) (model.Identity, bool, error) {
	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(d.identity.Login)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(d.password)) == 1
	if !loginOK || !passwordOK {
		return model.Identity{}, false, nil
	}
	return d.identity, true, nil
}
