package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pedromlchaves/traveltime/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// TravelService is the seam between the HTTP surface and the core pipeline.
// Handlers stay unaware of the concrete service implementation.
type TravelService interface {
	Resolve(ctx context.Context, address string) (*models.ResolvedAddress, error)
	DrivingTime(ctx context.Context, origin, destination, departure string) (*models.RouteResult, error)
}

// Pinger is the database health-check dependency of the /healthz endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler serving the query endpoints alongside health and metrics.
func NewRouter(service TravelService, db Pinger, reg *prometheus.Registry, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	handler := &TravelHandler{Service: service, Log: log}

	mux.HandleFunc("/v1/geocode", handler.Geocode)
	mux.HandleFunc("/v1/driving-time", handler.DrivingTime)

	mux.HandleFunc("/healthz", func(writer http.ResponseWriter, req *http.Request) {
		log.DebugContext(req.Context(), "Performing health checks...")
		status, body := http.StatusOK, "OK"
		if err := db.Ping(req.Context()); err != nil {
			status, body = http.StatusServiceUnavailable, "DB ping failed"
		}
		writer.WriteHeader(status)
		if _, err := writer.Write([]byte(body)); err != nil {
			log.ErrorContext(req.Context(), "failed to write reply", "error", err)
		}
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return mux
}
