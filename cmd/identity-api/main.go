package main

import (
	"log"
	"time"

	"github.com/duccv/jotspot/config"
	"github.com/duccv/jotspot/internal/credential"
	"github.com/duccv/jotspot/internal/handler"
	"github.com/duccv/jotspot/internal/token"
	"github.com/duccv/jotspot/pkg/logger"
	"github.com/duccv/jotspot/pkg/server"
	http_server "github.com/duccv/jotspot/pkg/server/http"
	"go.uber.org/zap"

	_ "github.com/duccv/jotspot/docs"
)

//	@title			JotSpot Identity APIs
//	@version		1.0
//	@description	Issues bearer tokens for the JotSpot API.
//	@termsOfService	http://swagger.io/terms/
//	@contact.name	DucCV
//	@contact.email	duccv@gviet.vn
func main() {
	env, err := config.Load("identity")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	config.PrintStartupConfig(env)

	zapLogger := logger.New(env.LoggerConfig)
	zap.ReplaceGlobals(zapLogger)
	defer zapLogger.Sync()

	issuer, err := token.NewIssuer(env.AuthConfig.Settings())
	if err != nil {
		zap.L().Fatal("Token issuer misconfigured", zap.Error(err))
	}

	srv := http_server.New(env,
		http_server.PortNumber(env.AppConfig.Port),
		http_server.Timeout(time.Duration(env.AppConfig.Timeout)*time.Second),
		http_server.Swagger("identity"),
	)
	validator := credential.NewValidator(credential.DefaultDirectory())
	handler.RegisterIdentityRoutes(srv.App, handler.NewAuthHandler(validator, issuer))

	if err := server.Run(srv); err != nil {
		zap.L().Error("Identity service stopped with error", zap.Error(err))
	}
}
