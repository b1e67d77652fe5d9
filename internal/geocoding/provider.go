package geocoding

import (
	"context"

	"github.com/pedromlchaves/traveltime/internal/models"
)

// Provider is an interface that defines a method for resolving a free-text
// address. The Geocode method takes a context and an address string as input,
// and returns the normalized address together with its coordinates, or an
// error if the address could not be resolved.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.ResolvedAddress, error)
}
