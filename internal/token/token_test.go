package token

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/duccv/jotspot/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testSettings = Settings{
		Secret:   []byte("a-very-long-test-signing-secret-value"),
		Issuer:   "https://localhost:7145",
		Audience: "jotspotapi",
	}
	alex = model.Identity{
		ID:        1,
		Login:     "alex",
		FirstName: "Alex",
		LastName:  "Bohomol",
		Email:     "alex@jotspot.com",
	}
)

func newPair(t *testing.T, settings Settings) (*Issuer, *Verifier) {
	t.Helper()
	issuer, err := NewIssuer(settings)
	require.NoError(t, err)
	verifier, err := NewVerifier(settings)
	require.NoError(t, err)
	return issuer, verifier
}

func TestNew_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewIssuer(Settings{Issuer: "i", Audience: "a"})
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewVerifier(Settings{Issuer: "i", Audience: "a"})
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = (&Issuer{now: time.Now}).Issue(alex)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	issuer, verifier := newPair(t, testSettings)
	signed, err := issuer.Issue(alex)
	require.NoError(t, err)
	assert.Len(t, strings.Split(signed, "."), 3)

	claims, err := verifier.Verify(signed)
	require.NoError(t, err)

	require.Len(t, claims, 9)
	nbf, err := strconv.ParseInt(claims[ClaimNotBefore], 10, 64)
	require.NoError(t, err)
	exp, err := strconv.ParseInt(claims[ClaimExpiresAt], 10, 64)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), exp-nbf)
	assert.InDelta(t, time.Now().Unix(), nbf, 1)

	assert.Equal(t, Claims{
		ClaimSubject:    "1",
		ClaimLogin:      "alex",
		ClaimGivenName:  "Alex",
		ClaimFamilyName: "Bohomol",
		ClaimEmail:      "alex@jotspot.com",
		ClaimNotBefore:  strconv.FormatInt(nbf, 10),
		ClaimExpiresAt:  strconv.FormatInt(exp, 10),
		ClaimIssuer:     "https://localhost:7145",
		ClaimAudience:   "jotspotapi",
	}, claims)
}

func TestIssue_UsesHS256AndNoExtraClaims(t *testing.T) {
	t.Parallel()

	issuer, _ := newPair(t, testSettings)
	signed, err := issuer.Issue(alex)
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(signed, jwt.MapClaims{})
	require.NoError(t, err)
	assert.Equal(t, "HS256", parsed.Header["alg"])
	assert.Len(t, parsed.Claims.(jwt.MapClaims), 9)
}

func TestIssue_SuccessiveTokensShareClock(t *testing.T) {
	t.Parallel()

	issuer, verifier := newPair(t, testSettings)
	first, err := issuer.Issue(alex)
	require.NoError(t, err)
	second, err := issuer.Issue(alex)
	require.NoError(t, err)

	c1, err := verifier.Verify(first)
	require.NoError(t, err)
	c2, err := verifier.Verify(second)
	require.NoError(t, err)

	n1, _ := strconv.ParseInt(c1[ClaimNotBefore], 10, 64)
	n2, _ := strconv.ParseInt(c2[ClaimNotBefore], 10, 64)
	assert.LessOrEqual(t, n2-n1, int64(1))
}

func TestVerify_FlippedSignatureByte(t *testing.T) {
	t.Parallel()

	issuer, verifier := newPair(t, testSettings)
	signed, err := issuer.Issue(alex)
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = verifier.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_TamperedClaims(t *testing.T) {
	t.Parallel()

	issuer, verifier := newPair(t, testSettings)
	signed, err := issuer.Issue(alex)
	require.NoError(t, err)

	other, err := issuer.Issue(model.Identity{ID: 2, Login: "mallory"})
	require.NoError(t, err)

	a := strings.Split(signed, ".")
	b := strings.Split(other, ".")
	_, err = verifier.Verify(a[0] + "." + b[1] + "." + a[2])
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer, _ := newPair(t, testSettings)
	other := testSettings
	other.Secret = []byte("another-secret-of-reasonable-length")
	_, verifier := newPair(t, other)

	signed, err := issuer.Issue(alex)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_IssuerAndAudienceMismatch(t *testing.T) {
	t.Parallel()

	issuer, _ := newPair(t, testSettings)
	signed, err := issuer.Issue(alex)
	require.NoError(t, err)

	wrongIssuer := testSettings
	wrongIssuer.Issuer = "https://evil.example"
	_, verifier := newPair(t, wrongIssuer)
	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrIssuerMismatch)

	wrongAudience := testSettings
	wrongAudience.Audience = "someoneelse"
	_, verifier = newPair(t, wrongAudience)
	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrAudienceMismatch)
}

func TestVerify_TimeWindow(t *testing.T) {
	t.Parallel()

	issuer, verifier := newPair(t, testSettings)
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issuedAt }

	signed, err := issuer.Issue(alex)
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
		want error
	}{
		{"before nbf", issuedAt.Add(-time.Minute), ErrNotYetValid},
		{"at nbf", issuedAt, nil},
		{"inside window", issuedAt.Add(59 * time.Minute), nil},
		{"at exp", issuedAt.Add(Lifetime), ErrExpired},
		{"after exp", issuedAt.Add(2 * Lifetime), ErrExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := *verifier
			v.now = func() time.Time { return tt.now }
			_, err := v.Verify(signed)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVerify_MalformedInput(t *testing.T) {
	t.Parallel()

	_, verifier := newPair(t, testSettings)
	for _, input := range []string{
		"",
		"not-a-jwt",
		"a.b",
		"a.b.c.d",
		"!!!.###.$$$",
		"eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.%%%",
	} {
		assert.NotPanics(t, func() {
			_, err := verifier.Verify(input)
			assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
		})
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	_, verifier := newPair(t, testSettings)
	claims := jwt.MapClaims{
		ClaimSubject:   "1",
		ClaimIssuer:    testSettings.Issuer,
		ClaimAudience:  testSettings.Audience,
		ClaimExpiresAt: time.Now().Add(time.Hour).Unix(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSettings.Secret)
	require.NoError(t, err)
	_, err = verifier.Verify(hs512)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RequiresExpiry(t *testing.T) {
	t.Parallel()

	_, verifier := newPair(t, testSettings)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		ClaimSubject:  "1",
		ClaimIssuer:   testSettings.Issuer,
		ClaimAudience: testSettings.Audience,
	}).SignedString(testSettings.Secret)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
