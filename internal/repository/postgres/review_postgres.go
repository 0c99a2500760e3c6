package postgres

import (
	"context"
	"database/sql"

	"bakeryapi/internal/model"
	"bakeryapi/internal/repository"
)

// ReviewPostgres is a PostgreSQL implementation of repository.ReviewRepository.
type ReviewPostgres struct {
	db *sql.DB
}

// NewReviewPostgres creates a new ReviewPostgres repository.
func NewReviewPostgres(db *sql.DB) *ReviewPostgres {
	return &ReviewPostgres{db: db}
}

var _ repository.ReviewRepository = (*ReviewPostgres)(nil)

// Create inserts a new review row and returns the stored record.
func (r *ReviewPostgres) Create(ctx context.Context, rv *model.Review) (*model.Review, error) {
	const q = `
		INSERT INTO reviews (id, name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, rating, comment, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		rv.ID,
		rv.Name,
		rv.Rating,
		rv.Comment,
		rv.CreatedAt,
	)
	var out model.Review
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Rating,
		&out.Comment,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns every review, newest first, with a stable id tie-break.
func (r *ReviewPostgres) List(ctx context.Context) ([]model.Review, error) {
	const q = `
		SELECT id, name, rating, comment, created_at
		FROM reviews
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Review, 0)
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(
			&rv.ID,
			&rv.Name,
			&rv.Rating,
			&rv.Comment,
			&rv.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
