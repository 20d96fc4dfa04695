// Package server wires the HTTP routes and the request middleware around
// the analytics and dataset handlers.
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	analyticshandler "github.com/optistock/optistock-analytics-service/internal/analytics/handler"
	datasethandler "github.com/optistock/optistock-analytics-service/internal/dataset/handler"
	"github.com/optistock/optistock-analytics-service/pkg/logger"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"path", "method", "status"},
	)

	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)
)

type Server struct {
	analytics *analyticshandler.AnalyticsHandler
	datasets  *datasethandler.DatasetHandler
	logger    logger.ZapLogger
}

func New(analytics *analyticshandler.AnalyticsHandler, datasets *datasethandler.DatasetHandler, log logger.ZapLogger) *Server {
	return &Server{
		analytics: analytics,
		datasets:  datasets,
		logger:    log,
	}
}

// Handler builds the route table and wraps it with logging and metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/calculate", s.analytics.Calculate)
	mux.HandleFunc("POST /api/tradeoff", s.analytics.Tradeoff)
	mux.HandleFunc("GET /api/health", s.analytics.Health)

	mux.HandleFunc("GET /api/datasets/sample", s.datasets.Sample)
	mux.HandleFunc("POST /api/datasets", s.datasets.Save)
	mux.HandleFunc("GET /api/datasets", s.datasets.List)
	mux.HandleFunc("GET /api/datasets/{id}", s.datasets.Get)
	mux.HandleFunc("DELETE /api/datasets/{id}", s.datasets.Delete)

	mux.Handle("GET /metrics", promhttp.Handler())

	return s.instrument(mux)
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		status := strconv.Itoa(rec.status)
		requestDuration.WithLabelValues(r.URL.Path, r.Method, status).Observe(elapsed.Seconds())
		requestsTotal.WithLabelValues(r.URL.Path, r.Method, status).Inc()

		s.logger.Debug("request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", elapsed),
		)
	})
}
