package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsServer exposes Prometheus metrics on a TCP port, separate from the
// Unix-socket policy API.
type MetricsServer struct {
	logger *zap.Logger
	server *http.Server
}

// NewMetricsServer creates a new metrics server
func NewMetricsServer(logger *zap.Logger) *MetricsServer {
	return &MetricsServer{logger: logger}
}

// Start starts the metrics server on the given port
func (m *MetricsServer) Start(port string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	m.server = &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	m.logger.Info("Starting metrics server", zap.String("port", port))
	return m.server.ListenAndServe()
}

// Stop stops the metrics server
func (m *MetricsServer) Stop(ctx context.Context) error {
	if m.server == nil {
		return nil
	}
	return m.server.Shutdown(ctx)
}
