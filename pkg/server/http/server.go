package http_server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/duccv/jotspot/config"
	"github.com/duccv/jotspot/internal/middleware"
	"github.com/duccv/jotspot/pkg/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Server struct {
	App    *gin.Engine
	notify chan error
	server *http.Server

	address         string
	timeout         time.Duration
	shutdownTimeout time.Duration
	swaggerInstance string
}

// New builds the gin engine shared by both services: recovery, correlation
// id, request logging, optional timeout, metrics and CORS, plus /health and
// the swagger UI.
// Service routes are registered on App afterwards.
func New(env *config.Env, opts ...Option) *Server {
	s := &Server{
		notify:          make(chan error, 1),
		address:         _defaultAddr,
		timeout:         _defaultTimeout,
		shutdownTimeout: _defaultShutdownTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.App = s.initGinServer(env)
	s.server = &http.Server{
		Addr:              s.address,
		Handler:           s.App,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

func timeoutResponse(c *gin.Context) {
	c.String(http.StatusRequestTimeout, "timeout")
}

func timeoutMiddleware(to time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(to),
		timeout.WithResponse(timeoutResponse),
	)
}

func (s *Server) initGinServer(env *config.Env) *gin.Engine {
	pathPrefix := env.AppConfig.PathPrefix
	if pathPrefix == "" {
		pathPrefix = "/api"
	}
	if gin.Mode() != gin.TestMode {
		if env.AppConfig.Environment == "production" {
			gin.SetMode(gin.ReleaseMode)
		} else {
			gin.SetMode(gin.DebugMode)
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CorrelationIDMiddleware())
	r.Use(middleware.NewLoggingMiddleware(middleware.DefaultMiddlewareConfig()).RequestLogger())
	if s.timeout > 0 {
		r.Use(timeoutMiddleware(s.timeout))
	}

	if env.MetricsConfig.Enabled {
		m := metrics.GetMonitor(env.MetricsConfig.Path)
		m.Use(r)
	}

	if env.CORSConfig.Enabled {
		corsConfig := cors.Config{
			AllowOrigins:     env.CORSConfig.AllowedOrigins,
			AllowMethods:     env.CORSConfig.AllowedMethods,
			AllowHeaders:     env.CORSConfig.AllowedHeaders,
			ExposeHeaders:    env.CORSConfig.ExposedHeaders,
			AllowCredentials: env.CORSConfig.AllowCredentials,
			MaxAge:           time.Duration(env.CORSConfig.MaxAge) * time.Second,
		}

		r.Use(cors.New(corsConfig))
	}

	r.GET("/health", healthCheck)

	// Swagger documentation
	if env.SwaggerConfig.Enabled && s.swaggerInstance != "" {
		r.GET(pathPrefix+"/swagger/*any", ginSwagger.WrapHandler(
			swaggerfiles.Handler,
			ginSwagger.InstanceName(s.swaggerInstance),
		))
	}

	return r
}

// HealthCheck godoc
//
//	@Summary		Health Check
//	@Description	Returns status 200 if the service is running
//	@Tags			Health
//	@Produce		plain
//	@Success		200	{string}	string	"Healthy"
//	@Router			/health [get]
func healthCheck(c *gin.Context) {
	c.String(http.StatusOK, "Healthy")
}

// Start serves in the background; the outcome arrives on Notify.
func (s *Server) Start() {
	go func() {
		zap.L().Info("HTTP server listening", zap.String("addr", s.address))
		err := s.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		if err != nil {
			s.notify <- err
		}
		close(s.notify)
	}()
}

// Notify -.
func (s *Server) Notify() <-chan error {
	return s.notify
}

// Shutdown drains in-flight requests for at most the shutdown timeout.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}
