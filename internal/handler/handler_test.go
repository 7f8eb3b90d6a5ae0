package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/duccv/jotspot/internal/credential"
	"github.com/duccv/jotspot/internal/store"
	"github.com/duccv/jotspot/internal/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testSettings = token.Settings{
	Secret:   []byte("a-test-signing-secret-of-decent-length"),
	Issuer:   "https://localhost:7145",
	Audience: "jotspotapi",
}

func newIdentityRouter(t *testing.T) *gin.Engine {
	t.Helper()
	issuer, err := token.NewIssuer(testSettings)
	require.NoError(t, err)

	r := gin.New()
	RegisterIdentityRoutes(r, NewAuthHandler(credential.NewValidator(credential.DefaultDirectory()), issuer))
	return r
}

func newJotSpotRouter(t *testing.T, s store.JotStore) *gin.Engine {
	t.Helper()
	verifier, err := token.NewVerifier(testSettings)
	require.NoError(t, err)

	r := gin.New()
	RegisterJotSpotRoutes(r, verifier, NewJotHandler(s))
	return r
}

func issueToken(t *testing.T) string {
	t.Helper()
	rec := perform(newIdentityRouter(t), http.MethodPost, "/api/auth/token",
		`{"login":"alex","password":"1234567"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func perform(r http.Handler, method, path, body, bearer string) *httptest.ResponseRecorder {
	authorization := ""
	if bearer != "" {
		authorization = "Bearer " + bearer
	}
	return performWithHeader(r, method, path, body, authorization)
}

func performWithHeader(r http.Handler, method, path, body, authorization string) *httptest.ResponseRecorder {
	return serve(r, newRequest(method, path, body, authorization))
}

func newRequest(method, path, body, authorization string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func newRouterWith(auth *AuthHandler) *gin.Engine {
	r := gin.New()
	RegisterIdentityRoutes(r, auth)
	return r
}
