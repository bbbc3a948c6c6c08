// Package health serves the liveness endpoint.
package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/netresearcher", "health")

const shutdownTimeout = time.Second

// Server answers GET /health with 200 OK for process lifetime. It carries no
// agent or tool state.
type Server struct {
	srv *http.Server
}

// New returns a health server bound to the port.
func New(port int) *Server {
	return &Server{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: Handler(),
		},
	}
}

// Handler routes /health; any other path is not found.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return mux
}

// Start serves on a background goroutine until ctx is cancelled. A listen
// failure is logged, not fatal: the process can serve without liveness checks.
func (s *Server) Start(ctx context.Context) {
	go func() {
		logger.KV(xlog.INFO, "status", "listening", "addr", s.srv.Addr)
		err := s.srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.KV(xlog.WARNING, "reason", "health_server", "err", err.Error())
		}
	}()
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = s.srv.Shutdown(sctx)
	}()
}
