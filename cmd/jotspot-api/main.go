package main

import (
	"context"
	"log"
	"time"

	"github.com/duccv/jotspot/config"
	"github.com/duccv/jotspot/internal/handler"
	"github.com/duccv/jotspot/internal/store"
	"github.com/duccv/jotspot/internal/token"
	"github.com/duccv/jotspot/pkg/logger"
	"github.com/duccv/jotspot/pkg/server"
	http_server "github.com/duccv/jotspot/pkg/server/http"
	"go.uber.org/zap"

	_ "github.com/duccv/jotspot/docs"
)

//	@title			JotSpot APIs
//	@version		1.0
//	@description	Bearer-protected CRUD over jots.
//	@termsOfService	http://swagger.io/terms/
//	@contact.name	DucCV
//	@contact.email	duccv@gviet.vn

// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				JWT authorization header
func main() {
	env, err := config.Load("jotspot")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	config.PrintStartupConfig(env)

	zapLogger := logger.New(env.LoggerConfig)
	zap.ReplaceGlobals(zapLogger)
	defer zapLogger.Sync()

	verifier, err := token.NewVerifier(env.AuthConfig.Settings())
	if err != nil {
		zap.L().Fatal("Token verifier misconfigured", zap.Error(err))
	}

	jots, err := store.New(context.Background(), env.StoreConfig, env.RedisConfig)
	if err != nil {
		zap.L().Fatal("Jot store unavailable", zap.Error(err))
	}
	defer jots.Close()

	srv := http_server.New(env,
		http_server.PortNumber(env.AppConfig.Port),
		http_server.Timeout(time.Duration(env.AppConfig.Timeout)*time.Second),
		http_server.Swagger("jotspot"),
	)
	handler.RegisterJotSpotRoutes(srv.App, verifier, handler.NewJotHandler(jots))

	if err := server.Run(srv); err != nil {
		zap.L().Error("JotSpot service stopped with error", zap.Error(err))
	}
}
