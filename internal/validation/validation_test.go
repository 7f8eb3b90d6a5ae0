package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type noteBody struct {
	Title string `json:"title" validate:"required"`
}

type noteParams struct {
	ID string `uri:"id" validate:"required,uuid"`
}

type pageQuery struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=100"`
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.PUT("/notes/:id", Validate[noteBody, noteParams, pageQuery](), func(c *gin.Context) {
		body := Body[noteBody](c)
		params := Params[noteParams](c)
		query := Query[pageQuery](c)
		c.JSON(http.StatusOK, gin.H{"title": body.Title, "id": params.ID, "limit": query.Limit})
	})
	r.GET("/plain", Validate[any, any, any](), func(c *gin.Context) {
		_, hasBody := c.Get("validatedBody")
		c.JSON(http.StatusOK, gin.H{"hasBody": hasBody})
	})
	return r
}

func TestValidate(t *testing.T) {
	t.Parallel()

	const id = "6f1c2d4e-8a9b-4c3d-9e8f-7a6b5c4d3e2f"
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		want   string
	}{
		{"all valid", "/notes/" + id + "?limit=10", `{"title":"a"}`, http.StatusOK,
			`{"title":"a","id":"` + id + `","limit":10}`},
		{"bad uuid", "/notes/abc", `{"title":"a"}`, http.StatusBadRequest, ""},
		{"query out of range", "/notes/" + id + "?limit=1000", `{"title":"a"}`, http.StatusBadRequest, ""},
		{"query not a number", "/notes/" + id + "?limit=x", `{"title":"a"}`, http.StatusBadRequest, ""},
		{"missing title", "/notes/" + id, `{}`, http.StatusBadRequest, ""},
		{"malformed body", "/notes/" + id, `{"title":`, http.StatusBadRequest, ""},
	}
	r := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.want == "" {
				assert.Empty(t, rec.Body.String())
				return
			}
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestValidate_SkipsAnyParts(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hasBody":false}`, rec.Body.String())
}
