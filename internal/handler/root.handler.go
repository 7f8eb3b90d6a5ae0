package handler

import (
	"net/http"

	"github.com/duccv/jotspot/internal/middleware"
	"github.com/gin-gonic/gin"
)

var secretFiles = []string{"top", "secret", "files"}

// Hello godoc
//
//	@Summary	Greeting
//	@Tags		Root
//	@Produce	plain
//	@Success	200	{string}	string	"Hello World!"
//	@Router		/ [get]
func Hello(c *gin.Context) {
	c.String(http.StatusOK, "Hello World!")
}

// Secret godoc
//
//	@Summary	List secret files
//	@Tags		Secret
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	string
//	@Failure	401	"Missing or invalid bearer token"
//	@Router		/api/secret [get]
func Secret(c *gin.Context) {
	c.JSON(http.StatusOK, secretFiles)
}

// SecretUser echoes the caller's verified claims.
//
//	@Summary	Caller claims
//	@Tags		Secret
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	map[string]string
//	@Failure	401	"Missing or invalid bearer token"
//	@Router		/api/secret/user [get]
func SecretUser(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}
	c.JSON(http.StatusOK, claims)
}
