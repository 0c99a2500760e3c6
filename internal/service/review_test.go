package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"bakeryapi/internal/model"
	repoMocks "bakeryapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      ReviewInput
		setupMocks func(mRepo *repoMocks.MockReviewRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name:  "happy path",
			input: ReviewInput{Name: "Asha", Rating: 5, Comment: "lovely"},
			setupMocks: func(mRepo *repoMocks.MockReviewRepository) {
				before := time.Now().UTC()
				mRepo.On("Create", ctx, mock.MatchedBy(func(rv *model.Review) bool {
					return rv.ID != "" && rv.Name == "Asha" && rv.Rating == 5 && !rv.CreatedAt.Before(before)
				})).Return(&model.Review{ID: "gen-id", Name: "Asha", Rating: 5}, nil)
			},
		},
		{
			name:       "validation - empty name",
			input:      ReviewInput{Rating: 5, Comment: "lovely"},
			setupMocks: func(mRepo *repoMocks.MockReviewRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "validation - zero rating",
			input:      ReviewInput{Name: "Asha", Comment: "lovely"},
			setupMocks: func(mRepo *repoMocks.MockReviewRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "validation - empty comment",
			input:      ReviewInput{Name: "Asha", Rating: 5},
			setupMocks: func(mRepo *repoMocks.MockReviewRepository) {},
			wantErr:    ErrValidation,
		},
		{
			// Range is constrained client-side only; the server stores it as-is.
			name:  "out-of-range rating is accepted",
			input: ReviewInput{Name: "Asha", Rating: 9, Comment: "lovely"},
			setupMocks: func(mRepo *repoMocks.MockReviewRepository) {
				mRepo.On("Create", ctx, mock.Anything).
					Return(&model.Review{ID: "gen-id", Rating: 9}, nil)
			},
		},
		{
			name:  "repository error",
			input: ReviewInput{Name: "Asha", Rating: 5, Comment: "lovely"},
			setupMocks: func(mRepo *repoMocks.MockReviewRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErrMsg: "save review: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockReviewRepository)
			svc := NewReviewService(mRepo)

			tt.setupMocks(mRepo)

			rv, err := svc.Create(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rv)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, rv)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestReviewService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockReviewRepository)
		mRepo.On("List", ctx).Return([]model.Review{{ID: "2"}, {ID: "1"}}, nil)
		svc := NewReviewService(mRepo)

		items, err := svc.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockReviewRepository)
		mRepo.On("List", ctx).Return(nil, errors.New("db fail"))
		svc := NewReviewService(mRepo)

		items, err := svc.List(ctx)

		assert.Error(t, err)
		assert.Nil(t, items)
	})
}
