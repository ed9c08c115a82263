package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and starts serving. It blocks until the
// listener fails.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("failed to map handlers: %w", err)
	}

	addr := fmt.Sprintf(":%d", srv.port)
	srv.l.Infof(context.Background(), "HTTP server listening on %s (mode=%s env=%s)", addr, srv.mode, srv.environment)

	return srv.gin.Run(addr)
}
