package handler

import (
	"github.com/duccv/jotspot/internal/middleware"
	"github.com/duccv/jotspot/internal/model"
	"github.com/duccv/jotspot/internal/validation"
	"github.com/gin-gonic/gin"
)

// RegisterIdentityRoutes mounts the identity service API.
func RegisterIdentityRoutes(r gin.IRouter, auth *AuthHandler) {
	api := r.Group("/api")
	api.POST("/auth/token", validation.Validate[model.TokenRequest, any, any](), auth.IssueToken)
}

// RegisterJotSpotRoutes mounts the resource service API. Everything except
// "/" requires a bearer token.
func RegisterJotSpotRoutes(r gin.IRouter, verifier middleware.TokenVerifier, jots *JotHandler) {
	r.GET("/", Hello)

	authorized := r.Group("")
	authorized.Use(middleware.VerifyBearerToken(verifier))

	secret := authorized.Group("/api/secret")
	secret.GET("", Secret)
	secret.GET("/user", SecretUser)

	j := authorized.Group("/jots")
	j.GET("", jots.List)
	j.POST("", validation.Validate[model.JotRequest, any, any](), jots.Create)
	j.GET("/:id", validation.Validate[any, model.JotParams, any](), jots.Get)
	j.PUT("/:id", validation.Validate[model.JotRequest, model.JotParams, any](), jots.Update)
	j.DELETE("/:id", validation.Validate[any, model.JotParams, any](), jots.Delete)
}
