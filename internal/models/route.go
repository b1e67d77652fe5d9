package models

// RouteResult carries the routing service's answer for a single route:
// the predicted driving time and an optional localized rendering of it.
type RouteResult struct {
	DurationSeconds int64  // DurationSeconds is the predicted driving time in seconds.
	DurationText    string // DurationText is the localized duration, e.g. "13 mins". May be empty.
}

// Minutes returns the driving time as whole minutes, truncated.
func (r RouteResult) Minutes() int64 {
	const secondsPerMinute = 60
	return r.DurationSeconds / secondsPerMinute
}
