package repository

import (
	"context"

	"bakeryapi/internal/model"
)

// ReviewRepository defines data access for reviews. The collection is
// append-only: there is no update or delete operation.
type ReviewRepository interface {
	// Create inserts a new review row and returns the stored record.
	Create(ctx context.Context, r *model.Review) (*model.Review, error)

	// List returns all reviews ordered newest-first by created_at, with a
	// stable id tie-break for equal timestamps.
	List(ctx context.Context) ([]model.Review, error)
}
