package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pedromlchaves/traveltime/internal/geocoding"
	"github.com/pedromlchaves/traveltime/internal/metrics"
	"github.com/pedromlchaves/traveltime/internal/models"
	"github.com/pedromlchaves/traveltime/internal/repository"
	"github.com/pedromlchaves/traveltime/internal/routing"
)

// routesTarget is the metrics label for requests to the routing API.
const routesTarget = "routes"

// Tagged failure kinds for the travel-time pipeline. Callers distinguish the
// cause with errors.Is instead of receiving a bare "no answer" marker.
var (
	// ErrDepartureParse is returned when the departure timestamp cannot be
	// interpreted at all; no remote call is made in that case.
	ErrDepartureParse = errors.New("could not parse departure time")
	// ErrResolutionFailed is returned when geocoding of either endpoint
	// yields no coordinates. It wraps the provider's error.
	ErrResolutionFailed = errors.New("failed to resolve address")
)

// TravelService answers "how long will this drive take at time T" questions.
// It resolves both endpoints through the configured geocoding provider, then
// asks the routing API for a traffic-aware driving duration. It also drains a
// queue of persisted estimate requests with a worker pool.
type TravelService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Interface for the estimate queue repository
	provider     geocoding.Provider   // Geocoding provider for resolving addresses
	providerName string               // Name of the provider for metrics labeling
	router       routing.Router       // Client for the traffic-aware routing API
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	maxAttempts  int                  // Remote calls per operation; 1 means no retry
	numWorkers   int                  // Number of concurrent workers for queue processing
	pollInterval time.Duration        // Interval for polling the estimate queue
	addrPrefix   string               // Address prefix for more accurate geocoding (city, country, etc.)
}

// NewTravelService creates a new instance of TravelService. It takes a logger,
// a repository interface, a geocoding provider with its name for metrics, a
// routing client, metrics for monitoring, the attempt policy for remote calls,
// the number of workers to use, a polling interval for the estimate queue, and
// an optional address prefix. It returns a pointer to the newly created
// TravelService.
func NewTravelService(
	log *slog.Logger,
	repo repository.Interface,
	provider geocoding.Provider,
	providerName string,
	router routing.Router,
	metrics *metrics.Metrics,
	maxAttempts int,
	numWorkers int,
	pollInterval time.Duration,
	addrPrefix string,
) *TravelService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &TravelService{
		log:          log,
		repo:         repo,
		provider:     provider,
		providerName: providerName,
		router:       router,
		metrics:      metrics,
		maxAttempts:  maxAttempts,
		numWorkers:   numWorkers,
		pollInterval: pollInterval,
		addrPrefix:   addrPrefix,
	}
}

// departureLayouts lists the accepted zone-less ISO 8601 forms. Timestamps
// carrying an explicit offset are parsed as RFC 3339 instead.
var departureLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseDeparture interprets value as the departure instant. A timestamp with
// an explicit offset (or "Z") is taken as-is; a zone-less timestamp is
// interpreted in the process-local zone. Either way the returned instant is
// normalized to UTC, which is what the routing API expects.
//
// Treating zone-less input as local time is a deliberate compatibility
// policy; callers that want unambiguous behavior should send RFC 3339 with an
// offset.
func ParseDeparture(value string) (time.Time, error) {
	if instant, err := time.Parse(time.RFC3339, value); err == nil {
		return instant.UTC(), nil
	}

	for _, layout := range departureLayouts {
		if instant, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return instant.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrDepartureParse, value)
}

// Resolve geocodes a single free-text address through the configured
// provider, recording request duration and API errors. The number of attempts
// follows the service's attempt policy (a single call by default).
func (ts *TravelService) Resolve(ctx context.Context, address string) (*models.ResolvedAddress, error) {
	var resolved *models.ResolvedAddress
	var err error

	for attempt := 1; attempt <= ts.maxAttempts; attempt++ {
		startTime := time.Now()
		resolved, err = ts.provider.Geocode(ctx, address)
		ts.metrics.RequestSeconds.WithLabelValues(ts.providerName).Observe(time.Since(startTime).Seconds())
		if err == nil {
			return resolved, nil
		}
		ts.metrics.APIErrors.Inc()
	}

	ts.log.ErrorContext(ctx, "Failed to geocode address", "address", address, "error", err)

	return nil, fmt.Errorf("%w: %w", ErrResolutionFailed, err)
}

// DrivingTime resolves origin and destination and asks the routing API for
// the traffic-aware driving duration at the given departure instant.
//
// The pipeline is strictly sequential and short-circuits on the first
// failure: an unparsable departure aborts before any geocoding call, and an
// origin resolution failure means the destination is never resolved.
func (ts *TravelService) DrivingTime(
	ctx context.Context,
	origin, destination, departure string,
) (*models.RouteResult, error) {
	departAt, err := ParseDeparture(departure)
	if err != nil {
		ts.log.ErrorContext(ctx, "Could not parse departure time", "departure", departure, "error", err)
		return nil, err
	}

	ts.log.InfoContext(ctx, "Resolving route endpoints",
		"origin", origin, "destination", destination, "departure", departAt)

	originAddr, err := ts.Resolve(ctx, origin)
	if err != nil {
		return nil, err
	}

	destinationAddr, err := ts.Resolve(ctx, destination)
	if err != nil {
		return nil, err
	}

	result, err := ts.computeRoute(ctx, originAddr.Location, destinationAddr.Location, departAt)
	if err != nil {
		return nil, err
	}

	ts.log.InfoContext(ctx, "Driving time computed",
		"minutes", result.Minutes(), "duration_text", result.DurationText)

	return result, nil
}

// DrivingDurationMinutes is the minute-granularity form of DrivingTime: the
// routing service's duration in seconds truncated to whole minutes.
func (ts *TravelService) DrivingDurationMinutes(
	ctx context.Context,
	origin, destination, departure string,
) (int64, error) {
	result, err := ts.DrivingTime(ctx, origin, destination, departure)
	if err != nil {
		return 0, err
	}

	return result.Minutes(), nil
}

// computeRoute calls the routing API under the service's attempt policy,
// recording request duration and API errors. ErrNoRouteFound is not retried;
// an empty route set is a definitive answer, not a fault.
func (ts *TravelService) computeRoute(
	ctx context.Context,
	origin, destination models.Coordinates,
	departAt time.Time,
) (*models.RouteResult, error) {
	var result *models.RouteResult
	var err error

	for attempt := 1; attempt <= ts.maxAttempts; attempt++ {
		startTime := time.Now()
		result, err = ts.router.ComputeRoute(ctx, origin, destination, departAt)
		ts.metrics.RequestSeconds.WithLabelValues(routesTarget).Observe(time.Since(startTime).Seconds())
		if err == nil {
			return result, nil
		}
		ts.metrics.APIErrors.Inc()
		if errors.Is(err, routing.ErrNoRouteFound) {
			break
		}
	}

	ts.log.ErrorContext(ctx, "Failed to compute route", "error", err)

	return nil, fmt.Errorf("route computation failed: %w", err)
}

// Run starts the estimate queue worker, which periodically polls for pending
// trip estimates. It listens for a cancellation signal from the context to
// gracefully stop the service.
func (ts *TravelService) Run(ctx context.Context) {
	ticker := time.NewTicker(ts.pollInterval)
	defer ticker.Stop()

	ts.log.InfoContext(ctx, "Travel time service started...")

	for {
		select {
		case <-ctx.Done():
			ts.log.InfoContext(ctx, "Travel time service stopped.")
			return
		case <-ticker.C:
			ts.log.InfoContext(ctx, "Polling for pending trip estimates...")
			ts.processEstimates(ctx)
		}
	}
}

// processEstimates fetches pending estimates from the repository, starts a
// worker pool to process them, and waits for all workers to finish. It logs
// errors if fetching fails and logs the status of estimate processing.
func (ts *TravelService) processEstimates(ctx context.Context) {
	estimateLimit := 100
	estimates, err := ts.repo.FetchPendingEstimates(ctx, estimateLimit)
	if err != nil {
		ts.log.ErrorContext(ctx, "Failed to fetch estimates", "error", err)
		return
	}
	if len(estimates) == 0 {
		ts.log.InfoContext(ctx, "No estimates to process.")
		return
	}

	ts.log.InfoContext(
		ctx,
		"Found estimates to process. Starting worker pool.",
		"jobs",
		len(estimates),
		"num_workers",
		ts.numWorkers,
	)

	jobs := make(chan models.TripEstimate, len(estimates))
	var wgr sync.WaitGroup

	for i := 1; i <= ts.numWorkers; i++ {
		wgr.Add(1)
		go ts.worker(ctx, i, &wgr, jobs)
	}

	for _, estimate := range estimates {
		jobs <- estimate
	}
	close(jobs)

	wgr.Wait()
	ts.log.InfoContext(ctx, "Processing batch finished")
}

// worker processes estimates from the jobs channel. It increments the active
// worker count, runs the full driving-time pipeline for each estimate, and
// either stores the resulting duration or records the failure. The function
// takes a context, an index for the worker, a wait group to signal
// completion, and a channel of estimates to process.
func (ts *TravelService) worker(
	ctx context.Context,
	idx int,
	wg *sync.WaitGroup,
	jobs <-chan models.TripEstimate,
) {
	defer wg.Done()
	for estimate := range jobs {
		ts.metrics.ActiveWorkers.Inc()
		ts.log.DebugContext(ctx, "Processing estimate", "worker", idx, "estimate", estimate.ID)

		origin := ts.addrPrefix + estimate.Origin
		destination := ts.addrPrefix + estimate.Destination

		result, err := ts.DrivingTime(ctx, origin, destination, estimate.Departure)
		if err != nil {
			ts.log.ErrorContext(ctx, "Failed to compute estimate",
				"worker", idx, "estimate", estimate.ID, "error", err)
			ts.metrics.EstimatesProcessed.WithLabelValues("failure").Inc()

			if err = ts.repo.IncrementFailureCount(ctx, estimate.ID, err.Error()); err != nil {
				ts.log.ErrorContext(
					ctx,
					"Could not update failure count for estimate",
					"worker", idx,
					"estimate", estimate.ID,
					"error", err,
				)
			}
			ts.metrics.ActiveWorkers.Dec()
			continue
		}

		ts.metrics.EstimatesProcessed.WithLabelValues("success").Inc()

		if err = ts.repo.UpdateEstimateResult(ctx, estimate.ID, result.Minutes(), result.DurationText); err != nil {
			ts.log.ErrorContext(
				ctx,
				"Failed to update duration for estimate",
				"worker", idx,
				"estimate", estimate.ID,
				"error", err,
			)
		} else {
			ts.log.DebugContext(ctx, "Worker successfully processed the estimate",
				"worker", idx, "estimate", estimate.ID)
		}

		ts.metrics.ActiveWorkers.Dec()
	}
}
