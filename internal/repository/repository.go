package repository

import (
	"context"
	"log/slog"

	"github.com/pedromlchaves/traveltime/internal/models"
)

type Repository struct {
	db  Database
	log *slog.Logger
}

type Interface interface {
	FetchPendingEstimates(ctx context.Context, limit int) ([]models.TripEstimate, error)
	UpdateEstimateResult(ctx context.Context, estimateID int, minutes int64, durationText string) error
	IncrementFailureCount(ctx context.Context, estimateID int, errMsg string) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
