package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pedromlchaves/traveltime/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider is a struct that holds the client for Google Maps API
// and a logger for logging purposes. It is used to resolve addresses
// through the Google Maps geocoding service.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// ErrEmptyResponse is returned when the Google Maps API responds with an empty result.
var ErrEmptyResponse = errors.New("get empty response from Google Maps API")

// NewGoogleProvider initializes a new GoogleProvider with the given API client and logger.
// Returns a pointer to the GoogleProvider.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Geocode takes a context and an address string as input, and returns the
// first candidate's formatted address and geographical coordinates from the
// Google Maps Geocoding API. It logs the geocoding request and handles any
// errors that may occur during the process. If the address cannot be geocoded
// or if the response is empty, it returns an appropriate error.
func (gp *GoogleProvider) Geocode(ctx context.Context, address string) (*models.ResolvedAddress, error) {
	gp.log.DebugContext(ctx, "Geocoding using Google Maps", "address", address)

	req := maps.GeocodingRequest{Address: address}
	geocodeResponse, err := gp.client.Geocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}

	if len(geocodeResponse) == 0 {
		return nil, ErrEmptyResponse
	}
	candidate := geocodeResponse[0]
	coords := candidate.Geometry.Location

	gp.log.InfoContext(ctx, "Google Maps found result",
		"formatted_address", candidate.FormattedAddress, "lat", coords.Lat, "lng", coords.Lng)

	return &models.ResolvedAddress{
		FormattedAddress: candidate.FormattedAddress,
		Location:         models.Coordinates{Latitude: coords.Lat, Longitude: coords.Lng},
	}, nil
}
