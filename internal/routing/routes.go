package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pedromlchaves/traveltime/internal/models"
	"golang.org/x/time/rate"
)

// RoutesBaseURL -- Google Routes API v2 computeRoutes endpoint.
const RoutesBaseURL = "https://routes.googleapis.com/directions/v2:computeRoutes"

// routesFieldMask limits the response to the route duration and its localized
// text, keeping the payload minimal (no geometry, no alternate routes).
const routesFieldMask = "routes.duration,routes.localizedValues.duration.text"

// Router is an interface that defines a method for requesting a traffic-aware
// driving duration between two geographic points at a departure instant.
type Router interface {
	ComputeRoute(
		ctx context.Context,
		origin, destination models.Coordinates,
		departure time.Time,
	) (*models.RouteResult, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// GoogleRouter implements Router using the Google Routes API.
type GoogleRouter struct {
	client  HTTPClient    // HTTP client for making requests
	baseURL string        // Base URL for the Routes API
	apiKey  string        // API key with Routes API access
	log     *slog.Logger  // Logger for logging operations
	limiter *rate.Limiter // Rate limiter
}

// Common errors for the Routes API client.
var (
	ErrNoRouteFound       = errors.New("routes API returned no routes")
	ErrRoutesUnauthorized = errors.New("routes API unauthorized (invalid API key)")
	ErrInvalidDuration    = errors.New("routes API returned invalid duration")
)

// Wire format of the computeRoutes request (subset used by this service).
type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type waypoint struct {
	Location struct {
		LatLng latLng `json:"latLng"`
	} `json:"location"`
}

type computeRoutesRequest struct {
	Origin            waypoint `json:"origin"`
	Destination       waypoint `json:"destination"`
	TravelMode        string   `json:"travelMode"`
	RoutingPreference string   `json:"routingPreference"`
	DepartureTime     string   `json:"departureTime"`
}

// computeRoutesResponse mirrors the fields requested via the field mask.
type computeRoutesResponse struct {
	Routes []struct {
		Duration        string `json:"duration"` // e.g. "754s"
		LocalizedValues struct {
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"localizedValues"`
	} `json:"routes"`
}

// NewGoogleRouter creates a new Routes API client with its own HTTP client.
func NewGoogleRouter(apiKey string, rateLimit int, log *slog.Logger) *GoogleRouter {
	const timeout = 10

	return &GoogleRouter{
		client: &http.Client{
			Timeout: timeout * time.Second,
		},
		baseURL: RoutesBaseURL,
		apiKey:  apiKey,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
	}
}

// NewGoogleRouterWithClient allows injecting custom HTTP client.
func NewGoogleRouterWithClient(
	client HTTPClient,
	apiKey string,
	limiter *rate.Limiter,
	log *slog.Logger,
) *GoogleRouter {
	return &GoogleRouter{
		client:  client,
		baseURL: RoutesBaseURL,
		apiKey:  apiKey,
		log:     log,
		limiter: limiter,
	}
}

// ComputeRoute asks the Routes API for the driving duration between origin and
// destination when departing at the given instant. The request uses the
// TRAFFIC_AWARE routing preference so the service accounts for predicted
// conditions at the departure time, and the departure instant is always sent
// in UTC. The first returned route's duration is used; the API is asked for
// nothing beyond the duration fields.
func (gr *GoogleRouter) ComputeRoute(
	ctx context.Context,
	origin, destination models.Coordinates,
	departure time.Time,
) (*models.RouteResult, error) {
	// Rate limit
	if err := gr.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	gr.log.DebugContext(ctx, "Computing route using Routes API",
		"origin", origin, "destination", destination, "departure", departure)

	reqBody := computeRoutesRequest{
		TravelMode:        "DRIVE",
		RoutingPreference: "TRAFFIC_AWARE",
		DepartureTime:     departure.UTC().Format(time.RFC3339),
	}
	reqBody.Origin.Location.LatLng = latLng(origin)
	reqBody.Destination.Location.LatLng = latLng(destination)

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode routes request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		gr.baseURL,
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", gr.apiKey)
	req.Header.Set("X-Goog-FieldMask", routesFieldMask)

	resp, err := gr.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute routes request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrRoutesUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		gr.log.ErrorContext(ctx, "Routes API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("routes API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	gr.log.DebugContext(ctx, "Routes API raw response", "body", string(body))

	var result computeRoutesResponse
	if err = json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode routes response: %w", err)
	}

	if len(result.Routes) == 0 {
		gr.log.WarnContext(ctx, "No routes found",
			"origin", origin, "destination", destination)
		return nil, ErrNoRouteFound
	}

	route := result.Routes[0]
	duration, err := time.ParseDuration(route.Duration)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDuration, route.Duration)
	}
	durationText := route.LocalizedValues.Duration.Text

	gr.log.InfoContext(ctx, "Routes API found route",
		"duration_seconds", int64(duration.Seconds()), "duration_text", durationText)

	return &models.RouteResult{
		DurationSeconds: int64(duration.Seconds()),
		DurationText:    durationText,
	}, nil
}
