package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pedromlchaves/traveltime/internal/routing"
	"github.com/pedromlchaves/traveltime/internal/service"
)

// TravelHandler serves the geocoding and driving-time query endpoints for
// higher-level agents and request handlers.
type TravelHandler struct {
	Service TravelService
	Log     *slog.Logger
}

// geocodeResponse is the JSON body returned by /v1/geocode.
type geocodeResponse struct {
	FormattedAddress string  `json:"formatted_address"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

// drivingTimeResponse is the JSON body returned by /v1/driving-time.
type drivingTimeResponse struct {
	Minutes         int64  `json:"minutes"`
	DurationSeconds int64  `json:"duration_seconds"`
	DurationText    string `json:"duration_text,omitempty"`
}

// Geocode resolves a free-text address into a normalized address with
// coordinates. Query parameter: address.
func (h *TravelHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	address := r.URL.Query().Get("address")
	if address == "" {
		h.writeError(w, r, http.StatusBadRequest, "address is required")
		return
	}

	resolved, err := h.Service.Resolve(r.Context(), address)
	if err != nil {
		h.Log.ErrorContext(r.Context(), "geocode request failed", "address", address, "error", err)
		h.writeError(w, r, http.StatusUnprocessableEntity, "could not resolve address")
		return
	}

	h.writeJSON(w, r, http.StatusOK, geocodeResponse{
		FormattedAddress: resolved.FormattedAddress,
		Latitude:         resolved.Location.Latitude,
		Longitude:        resolved.Location.Longitude,
	})
}

// DrivingTime answers how long a drive between two addresses takes when
// departing at a given instant. Query parameters: origin, destination,
// departure.
func (h *TravelHandler) DrivingTime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := r.URL.Query()
	origin := query.Get("origin")
	destination := query.Get("destination")
	departure := query.Get("departure")
	if origin == "" || destination == "" || departure == "" {
		h.writeError(w, r, http.StatusBadRequest, "origin, destination and departure are required")
		return
	}

	result, err := h.Service.DrivingTime(r.Context(), origin, destination, departure)
	if err != nil {
		h.Log.ErrorContext(r.Context(), "driving time request failed",
			"origin", origin, "destination", destination, "error", err)

		switch {
		case errors.Is(err, service.ErrDepartureParse):
			h.writeError(w, r, http.StatusBadRequest, "could not parse departure time")
		case errors.Is(err, service.ErrResolutionFailed):
			h.writeError(w, r, http.StatusUnprocessableEntity, "could not resolve address")
		case errors.Is(err, routing.ErrNoRouteFound):
			h.writeError(w, r, http.StatusNotFound, "no route found")
		default:
			h.writeError(w, r, http.StatusBadGateway, "routing service unavailable")
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, drivingTimeResponse{
		Minutes:         result.Minutes(),
		DurationSeconds: result.DurationSeconds,
		DurationText:    result.DurationText,
	})
}

func (h *TravelHandler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.ErrorContext(r.Context(), "encode failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
	}
}

func (h *TravelHandler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, map[string]string{"error": msg})
}
