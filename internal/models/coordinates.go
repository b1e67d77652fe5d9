package models

// Coordinates represents a geographical point defined by its latitude and longitude.
type Coordinates struct {
	Latitude  float64 // Latitude of the geographical point.
	Longitude float64 // Longitude of the geographical point.
}

// ResolvedAddress is the outcome of geocoding a free-text address: the
// provider's canonical rendering of the input plus its location.
type ResolvedAddress struct {
	FormattedAddress string      // FormattedAddress is the provider's normalized address text.
	Location         Coordinates // Location is the geographic position of the address.
}
