package repository

import (
	"context"

	"bakeryapi/internal/model"
)

// ProductRepository defines data access for products using SQL queries only.
// No business logic here — strictly persistence operations.
type ProductRepository interface {
	// Create inserts a new product row.
	// Returns the stored product (may include values set by the DB).
	Create(ctx context.Context, p *model.Product) (*model.Product, error)

	// FindByID returns a product by its ID.
	FindByID(ctx context.Context, id string) (*model.Product, error)

	// List returns all products ordered newest-first by created_at, with a
	// stable id tie-break for equal timestamps.
	List(ctx context.Context) ([]model.Product, error)

	// Update replaces the mutable fields of the row identified by p.ID and
	// returns the stored result. Returns sql.ErrNoRows if the row is absent.
	Update(ctx context.Context, p *model.Product) (*model.Product, error)

	// Delete removes a product by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
