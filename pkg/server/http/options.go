package http_server

import (
	"net"
	"strconv"
	"time"
)

const (
	_defaultAddr            = ":80"
	_defaultTimeout         = 5 * time.Second
	_defaultShutdownTimeout = 3 * time.Second
)

// Option -.
type Option func(*Server)

// Port -.
func Port(port string) Option {
	return func(s *Server) {
		s.address = net.JoinHostPort("", port)
	}
}

// PortNumber sets the listening port from the numeric config value.
func PortNumber(port int) Option {
	return Port(strconv.Itoa(port))
}

// Timeout sets the per-request timeout. Zero disables it.
func Timeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.timeout = timeout
	}
}

// ShutdownTimeout -.
func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = timeout
	}
}

// Swagger names the registered swag instance served under <prefix>/swagger.
func Swagger(instanceName string) Option {
	return func(s *Server) {
		s.swaggerInstance = instanceName
	}
}
