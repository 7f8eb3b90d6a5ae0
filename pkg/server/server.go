package server

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	http_server "github.com/duccv/jotspot/pkg/server/http"
	"go.uber.org/zap"
)

// Run starts srv and blocks until SIGINT/SIGTERM or a server error, then
// shuts the server down.
func Run(srv *http_server.Server) error {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	return run(srv, interrupt)
}

func run(srv *http_server.Server, interrupt <-chan os.Signal) error {
	srv.Start()

	var serveErr error
	select {
	case sig := <-interrupt:
		zap.L().Info("Shutdown signal received", zap.String("signal", sig.String()))
	case err, ok := <-srv.Notify():
		if ok {
			serveErr = fmt.Errorf("http server: %w", err)
			zap.L().Error("HTTP server stopped", zap.Error(err))
		}
	}

	if err := srv.Shutdown(); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	zap.L().Info("HTTP server stopped gracefully")
	return serveErr
}
