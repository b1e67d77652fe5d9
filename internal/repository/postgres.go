package repository

import (
	"context"
	"fmt"

	"github.com/pedromlchaves/traveltime/internal/models"
)

// FetchPendingEstimates retrieves a list of trip estimate requests that still
// need a travel-time answer. It returns rows that have a NULL duration, fewer
// than 5 routing attempts, and non-empty endpoints. The results are ordered by
// creation date and limited to the specified count.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - limit: The maximum number of estimates to retrieve.
//
// Returns:
// - A slice of models.TripEstimate containing the requests that match the criteria.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchPendingEstimates(ctx context.Context, limit int) ([]models.TripEstimate, error) {
	var estimates []models.TripEstimate
	query := `
		SELECT estimate_id, origin, destination, departure
		FROM public.trip_estimates
		WHERE
			duration_minutes IS NULL
			AND routing_attempts < 5
			AND origin <> '' AND destination <> ''
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending estimates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var estimate models.TripEstimate
		if errScan := rows.Scan(
			&estimate.ID, &estimate.Origin, &estimate.Destination, &estimate.Departure,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan pending estimate: %w", errScan)
		}
		r.log.DebugContext(ctx, "A new trip estimate without duration has been received.",
			"ID", estimate.ID, "Origin", estimate.Origin, "Destination", estimate.Destination)
		estimates = append(estimates, estimate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return estimates, nil
}

// UpdateEstimateResult stores the computed driving duration for the estimate
// identified by estimateID. It sets the routing_error field to NULL. It
// returns an error if the update fails.
func (r *Repository) UpdateEstimateResult(
	ctx context.Context,
	estimateID int,
	minutes int64,
	durationText string,
) error {
	query := `
		UPDATE trip_estimates
		SET
			duration_minutes = $1,
			duration_text = $2,
			routing_error = NULL
		WHERE
			estimate_id = $3;
	`

	_, err := r.db.Exec(ctx, query, minutes, durationText, estimateID)
	if err != nil {
		return fmt.Errorf("failed to update estimate result: %w", err)
	}

	return nil
}

// IncrementFailureCount increments the routing attempt count for a specific
// estimate identified by estimateID and updates the associated error message.
// It takes a context for managing request-scoped values, cancellation, and
// deadlines. If the update operation fails, it returns an error with
// additional context.
func (r *Repository) IncrementFailureCount(ctx context.Context, estimateID int, errMsg string) error {
	query := `
		UPDATE trip_estimates
		SET
			routing_attempts = routing_attempts + 1,
			routing_error = $1
		WHERE estimate_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, estimateID)
	if err != nil {
		return fmt.Errorf("failed to update routing error and number of attempts: %w", err)
	}

	return nil
}
