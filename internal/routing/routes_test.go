package routing_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/pedromlchaves/traveltime/internal/models"
	"github.com/pedromlchaves/traveltime/internal/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// mockHTTPClient is a mock implementation of HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func TestGoogleRouter_ComputeRoute(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()
	apiKey := "test-api-key"
	defaultRL := rate.NewLimiter(rate.Inf, 0)

	origin := models.Coordinates{Latitude: 41.1496, Longitude: -8.6060}
	destination := models.Coordinates{Latitude: 41.2370, Longitude: -8.6700}
	departure := time.Date(2030, 5, 10, 6, 30, 0, 0, time.UTC)

	t.Run("successful route computation", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				// Verify request parameters
				assert.Equal(t, "POST", req.Method)
				assert.Equal(t, routing.RoutesBaseURL, req.URL.String())
				assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
				assert.Equal(t, apiKey, req.Header.Get("X-Goog-Api-Key"))
				assert.Equal(
					t,
					"routes.duration,routes.localizedValues.duration.text",
					req.Header.Get("X-Goog-FieldMask"),
				)

				// Verify request body
				payload, err := io.ReadAll(req.Body)
				require.NoError(t, err)
				var body map[string]any
				require.NoError(t, json.Unmarshal(payload, &body))
				assert.Equal(t, "DRIVE", body["travelMode"])
				assert.Equal(t, "TRAFFIC_AWARE", body["routingPreference"])
				assert.Equal(t, "2030-05-10T06:30:00Z", body["departureTime"])

				// Return mock response
				responseBody := `{"routes":[{"duration":"754s","localizedValues":{"duration":{"text":"13 mins"}}}]}`
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(responseBody)),
				}, nil
			},
		}

		router := routing.NewGoogleRouterWithClient(mockClient, apiKey, defaultRL, logger)
		result, err := router.ComputeRoute(ctx, origin, destination, departure)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(754), result.DurationSeconds)
		assert.Equal(t, "13 mins", result.DurationText)
		assert.Equal(t, int64(12), result.Minutes())
	})

	t.Run("departure instant is normalized to UTC on the wire", func(t *testing.T) {
		lisbon := time.FixedZone("WEST", 1*60*60)
		localDeparture := time.Date(2030, 5, 10, 7, 30, 0, 0, lisbon)

		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				payload, err := io.ReadAll(req.Body)
				require.NoError(t, err)
				var body map[string]any
				require.NoError(t, json.Unmarshal(payload, &body))
				assert.Equal(t, "2030-05-10T06:30:00Z", body["departureTime"])

				responseBody := `{"routes":[{"duration":"60s"}]}`
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(responseBody)),
				}, nil
			},
		}

		router := routing.NewGoogleRouterWithClient(mockClient, apiKey, defaultRL, logger)
		result, err := router.ComputeRoute(ctx, origin, destination, localDeparture)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, int64(60), result.DurationSeconds)
		assert.Empty(t, result.DurationText)
	})

	t.Run("no routes found", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(`{}`)),
				}, nil
			},
		}

		router := routing.NewGoogleRouterWithClient(mockClient, apiKey, defaultRL, logger)
		result, err := router.ComputeRoute(ctx, origin, destination, departure)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, routing.ErrNoRouteFound)
	})

	t.Run("unauthorized", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusForbidden,
					Body:       io.NopCloser(bytes.NewBufferString(`{"error":"forbidden"}`)),
				}, nil
			},
		}

		router := routing.NewGoogleRouterWithClient(mockClient, apiKey, defaultRL, logger)
		result, err := router.ComputeRoute(ctx, origin, destination, departure)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, routing.ErrRoutesUnauthorized)
	})

	t.Run("API error status", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusInternalServerError,
					Body:       io.NopCloser(bytes.NewBufferString(`{"error":"boom"}`)),
				}, nil
			},
		}

		router := routing.NewGoogleRouterWithClient(mockClient, apiKey, defaultRL, logger)
		result, err := router.ComputeRoute(ctx, origin, destination, departure)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "routes API returned status 500")
	})

	t.Run("transport error", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, assert.AnError
			},
		}

		router := routing.NewGoogleRouterWithClient(mockClient, apiKey, defaultRL, logger)
		result, err := router.ComputeRoute(ctx, origin, destination, departure)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to execute routes request")
	})

	t.Run("invalid JSON response", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(`invalid json`)),
				}, nil
			},
		}

		router := routing.NewGoogleRouterWithClient(mockClient, apiKey, defaultRL, logger)
		result, err := router.ComputeRoute(ctx, origin, destination, departure)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to decode routes response")
	})

	t.Run("invalid duration in response", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				responseBody := `{"routes":[{"duration":"soon"}]}`
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(responseBody)),
				}, nil
			},
		}

		router := routing.NewGoogleRouterWithClient(mockClient, apiKey, defaultRL, logger)
		result, err := router.ComputeRoute(ctx, origin, destination, departure)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, routing.ErrInvalidDuration)
	})
}
