// Package a2a exposes the researcher over the Agent-to-Agent protocol.
package a2a

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/netresearcher/internal/researcher"
	"github.com/effective-security/xlog"
	"trpc.group/trpc-go/trpc-a2a-go/server"
	"trpc.group/trpc-go/trpc-a2a-go/taskmanager"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/netresearcher", "a2a")

const shutdownTimeout = 5 * time.Second

// Config binds the server address.
type Config struct {
	Host string
	Port int
}

// Server serves the researcher to other agents.
type Server struct {
	srv  *server.A2AServer
	addr string
}

// NewServer assembles the task manager, the agent card, and the transport.
func NewServer(cfg *Config, res *researcher.Researcher) (*Server, error) {
	tm, err := taskmanager.NewMemoryTaskManager(NewProcessor(res))
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create task manager")
	}
	srv, err := server.NewA2AServer(NewAgentCard(cfg.Host, cfg.Port), tm)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create A2A server")
	}
	return &Server{
		srv:  srv,
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	}, nil
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Start(s.addr)
	}()
	logger.KV(xlog.INFO, "status", "listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.srv.Stop(sctx); err != nil {
			return errors.WithMessage(err, "failed to stop A2A server")
		}
		return nil
	case err := <-errCh:
		if err != nil {
			return errors.WithMessage(err, "A2A server failed")
		}
		return nil
	}
}
