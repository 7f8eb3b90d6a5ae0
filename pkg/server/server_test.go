package server

import (
	"net"
	"os"
	"strconv"
	"syscall"
	"testing"
	"time"

	"github.com/duccv/jotspot/config"
	http_server "github.com/duccv/jotspot/pkg/server/http"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRun_StopsOnSignal(t *testing.T) {
	srv := http_server.New(&config.Env{}, http_server.Port("0"), http_server.Timeout(0))

	interrupt := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() { done <- run(srv, interrupt) }()

	interrupt <- syscall.SIGTERM
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after the signal")
	}
}

func TestRun_ReportsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	srv := http_server.New(&config.Env{}, http_server.Port(strconv.Itoa(port)), http_server.Timeout(0))

	done := make(chan error, 1)
	go func() { done <- run(srv, make(chan os.Signal)) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after the listen error")
	}
}
