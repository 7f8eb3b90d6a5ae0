package credential

import (
	"context"
	"errors"
	"testing"

	"github.com/duccv/jotspot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingDirectory struct{ err error }

func (f failingDirectory) Lookup(context.Context, string, string) (model.Identity, bool, error) {
	return model.Identity{}, false, f.err
}

func TestValidate_Success(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultDirectory())
	identity, err := v.Validate(context.Background(), "alex", "1234567")
	require.NoError(t, err)

	assert.Equal(t, model.Identity{
		ID:        1,
		Login:     "alex",
		FirstName: "Alex",
		LastName:  "Bohomol",
		Email:     "alex@jotspot.com",
	}, identity)
}

func TestValidate_InvalidLogin(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultDirectory())
	for _, login := range []string{"", "u", "us", "usr", "use@", "UserUserUserUserUser1", "al ex"} {
		t.Run(login, func(t *testing.T) {
			_, err := v.Validate(context.Background(), login, "1234567")
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidate_InvalidPassword(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultDirectory())
	for _, password := range []string{"", "p", "pa", "pas", "pass", "passw", "passwo"} {
		t.Run(password, func(t *testing.T) {
			_, err := v.Validate(context.Background(), "alex", password)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidate_WellFormedButUnknown(t *testing.T) {
	t.Parallel()

	v := NewValidator(DefaultDirectory())
	cases := []struct{ login, password string }{
		{"alex", "12345678"},
		{"alex", "wrongpass"},
		{"Alex", "1234567"},
		{"bob1", "1234567"},
		{"UserUserUserUserUser", "abcdefgh"},
	}
	for _, tc := range cases {
		_, err := v.Validate(context.Background(), tc.login, tc.password)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "%s/%s", tc.login, tc.password)
		assert.NotErrorIs(t, err, ErrInvalidInput)
	}
}

func TestValidate_ShapeCheckedBeforeLookup(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	v := NewValidator(failingDirectory{err: boom})

	_, err := v.Validate(context.Background(), "a", "1234567")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = v.Validate(context.Background(), "alex", "1234567")
	assert.ErrorIs(t, err, boom)
}
