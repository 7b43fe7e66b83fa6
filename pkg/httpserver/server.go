// Package httpserver implements HTTP server.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	appLogger "github.com/gym-network-toolkit/portal/pkg/logger"
)

const (
	_defaultReadTimeout     = 15 * time.Second
	_defaultWriteTimeout    = 15 * time.Second
	_defaultAddr            = ":80"
	_defaultShutdownTimeout = 3 * time.Second
)

// ErrTLSCertKeyMismatch is returned when TLS is enabled with only one of
// certFile/keyFile set.
var ErrTLSCertKeyMismatch = errors.New("tls cert/key mismatch: both certFile and keyFile must be set when TLS is enabled")

// Server -.
type Server struct {
	server          *http.Server
	notify          chan error
	shutdownTimeout time.Duration
	useTLS          bool
	certFile        string
	keyFile         string
	listener        net.Listener
	log             appLogger.Interface
}

// New -.
func New(handler http.Handler, opts ...Option) *Server {
	httpServer := &http.Server{
		Handler:      handler,
		ReadTimeout:  _defaultReadTimeout,
		WriteTimeout: _defaultWriteTimeout,
		Addr:         _defaultAddr,
	}

	s := &Server{
		server:          httpServer,
		notify:          make(chan error, 1),
		shutdownTimeout: _defaultShutdownTimeout,
		log:             appLogger.New("info"),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.start()

	return s
}

func (s *Server) start() {
	go func() {
		s.notify <- s.serve()

		close(s.notify)
	}()
}

func (s *Server) serve() error {
	if s.useTLS {
		return s.serveTLS()
	}

	if s.listener != nil {
		return s.server.Serve(s.listener)
	}

	return s.server.ListenAndServe()
}

func (s *Server) serveTLS() error {
	if s.certFile == "" || s.keyFile == "" {
		return ErrTLSCertKeyMismatch
	}

	if _, err := os.Stat(s.certFile); err != nil {
		return err
	}

	if _, err := os.Stat(s.keyFile); err != nil {
		return err
	}

	if s.listener != nil {
		return s.server.ServeTLS(s.listener, s.certFile, s.keyFile)
	}

	return s.server.ListenAndServeTLS(s.certFile, s.keyFile)
}

// Notify -.
func (s *Server) Notify() <-chan error {
	return s.notify
}

// Shutdown -.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
