package models

// TripEstimate represents a queued travel-time request: two free-text
// endpoints and the departure timestamp exactly as the caller submitted it.
// The departure stays unparsed until processing so that the time-zone
// normalization policy is applied at the same point for every code path.
type TripEstimate struct {
	ID          int    // ID is the unique identifier for the estimate request.
	Origin      string // Origin is the free-text starting address.
	Destination string // Destination is the free-text ending address.
	Departure   string // Departure is the requested departure instant, verbatim.
}
