package validation

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/duccv/jotspot/internal/constant"
)

var validate *validator.Validate = validator.New()

func isEmptyInterface[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t == reflect.TypeOf((*any)(nil)).Elem()
}

// Validate binds and validates the JSON body B, the path parameters P and
// the query Q. Pass any for a part the route does not have. A binding or
// validation failure aborts with 400 and an empty body; on success the
// values are available through Body, Params and Query.
func Validate[B any, P any, Q any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		// --- Params ---
		if !isEmptyInterface[P]() {
			var params P
			if err := c.ShouldBindUri(&params); err != nil {
				reject(c, "params", err)
				return
			}
			if err := validate.Struct(params); err != nil {
				reject(c, "params", err)
				return
			}
			c.Set(constant.ValidatedParams, params)
		}

		// --- Query ---
		if !isEmptyInterface[Q]() {
			var query Q
			if err := c.ShouldBindQuery(&query); err != nil {
				reject(c, "query", err)
				return
			}
			if err := validate.Struct(query); err != nil {
				reject(c, "query", err)
				return
			}
			c.Set(constant.ValidatedQuery, query)
		}

		// --- Body ---
		if !isEmptyInterface[B]() {
			var body B
			if err := c.ShouldBindJSON(&body); err != nil {
				reject(c, "body", err)
				return
			}
			if err := validate.Struct(body); err != nil {
				reject(c, "body", err)
				return
			}
			c.Set(constant.ValidatedBody, body)
		}

		c.Next()
	}
}

// Body returns the body stored by Validate.
func Body[B any](c *gin.Context) B {
	body, _ := c.MustGet(constant.ValidatedBody).(B)
	return body
}

// Params returns the path parameters stored by Validate.
func Params[P any](c *gin.Context) P {
	params, _ := c.MustGet(constant.ValidatedParams).(P)
	return params
}

// Query returns the query stored by Validate.
func Query[Q any](c *gin.Context) Q {
	query, _ := c.MustGet(constant.ValidatedQuery).(Q)
	return query
}

func reject(c *gin.Context, part string, err error) {
	zap.L().Debug("Request validation failed",
		zap.String("part", part),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.AbortWithStatus(http.StatusBadRequest)
}
