package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bakeryapi/internal/model"
	"bakeryapi/internal/repository"
)

// ReviewInput carries the fields of a submitted testimonial.
type ReviewInput struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewService defines the use cases for customer reviews. The collection is
// append-only: reviews are immutable once created.
type ReviewService interface {
	// Create validates presence of all fields and persists the review with a
	// server-assigned id and timestamp.
	Create(ctx context.Context, in ReviewInput) (*model.Review, error)

	// List returns all reviews, newest first.
	List(ctx context.Context) ([]model.Review, error)
}

type reviewService struct {
	repo repository.ReviewRepository
}

// NewReviewService constructs a new ReviewService.
func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) Create(ctx context.Context, in ReviewInput) (*model.Review, error) {
	// A zero rating counts as missing. The 1-5 range itself is constrained by
	// the client form and is deliberately not re-checked here.
	switch {
	case in.Name == "":
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	case in.Rating == 0:
		return nil, fmt.Errorf("%w: rating is required", ErrValidation)
	case in.Comment == "":
		return nil, fmt.Errorf("%w: comment is required", ErrValidation)
	}

	rv := &model.Review{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, rv)
	if err != nil {
		return nil, fmt.Errorf("save review: %w", err)
	}
	return stored, nil
}

func (s *reviewService) List(ctx context.Context) ([]model.Review, error) {
	return s.repo.List(ctx)
}
