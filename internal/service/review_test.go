package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
)

func TestSubmitReview(t *testing.T) {
	ctx := context.Background()
	completed := func() *domain.Rental {
		return &domain.Rental{ID: 10, ItemID: 7, RenterID: 3, OwnerID: 4, Status: domain.RentalStatusCompleted}
	}

	t.Run("RenterReviewsHost", func(t *testing.T) {
		store := newMockStore()
		svc := NewReviewService(store)

		store.rentals.On("GetByID", ctx, int32(10)).Return(completed(), nil)
		store.reviews.On("Create", ctx, mock.MatchedBy(func(rv *domain.Review) bool {
			return rv.Type == domain.ReviewTypeRenterToHost && rv.RevieweeID == 4 && rv.Visible
		})).Return(nil)
		store.reviews.On("AggregateForReviewee", ctx, int32(4)).Return(4.5, int32(2), nil)
		store.users.On("UpdateRating", ctx, int32(4), 4.5, int32(2)).Return(nil)

		rv, err := svc.SubmitReview(ctx, 3, 10, 5, "great host")
		require.NoError(t, err)
		assert.Equal(t, int32(4), rv.RevieweeID)
		store.assertExpectations(t)
	})

	t.Run("HostReviewsRenter", func(t *testing.T) {
		store := newMockStore()
		svc := NewReviewService(store)

		store.rentals.On("GetByID", ctx, int32(10)).Return(completed(), nil)
		store.reviews.On("Create", ctx, mock.MatchedBy(func(rv *domain.Review) bool {
			return rv.Type == domain.ReviewTypeHostToRenter && rv.RevieweeID == 3
		})).Return(nil)
		store.reviews.On("AggregateForReviewee", ctx, int32(3)).Return(4.0, int32(1), nil)
		store.users.On("UpdateRating", ctx, int32(3), 4.0, int32(1)).Return(nil)

		rv, err := svc.SubmitReview(ctx, 4, 10, 4, "")
		require.NoError(t, err)
		assert.Equal(t, domain.ReviewTypeHostToRenter, rv.Type)
	})

	t.Run("RatingOutOfScale", func(t *testing.T) {
		store := newMockStore()
		svc := NewReviewService(store)

		_, err := svc.SubmitReview(ctx, 3, 10, 0, "")
		assert.True(t, domain.IsCode(err, domain.CodeValidation))

		_, err = svc.SubmitReview(ctx, 3, 10, 6, "")
		assert.True(t, domain.IsCode(err, domain.CodeValidation))
	})

	t.Run("RentalNotCompleted", func(t *testing.T) {
		store := newMockStore()
		svc := NewReviewService(store)

		ongoing := &domain.Rental{ID: 10, RenterID: 3, OwnerID: 4, Status: domain.RentalStatusOngoing}
		store.rentals.On("GetByID", ctx, int32(10)).Return(ongoing, nil)

		_, err := svc.SubmitReview(ctx, 3, 10, 5, "")
		assert.True(t, domain.IsCode(err, domain.CodeInvalidState))
	})

	t.Run("StrangerForbidden", func(t *testing.T) {
		store := newMockStore()
		svc := NewReviewService(store)

		store.rentals.On("GetByID", ctx, int32(10)).Return(completed(), nil)

		_, err := svc.SubmitReview(ctx, 8, 10, 5, "")
		assert.True(t, domain.IsCode(err, domain.CodeForbidden))
	})

	t.Run("DuplicateReview", func(t *testing.T) {
		store := newMockStore()
		svc := NewReviewService(store)

		store.rentals.On("GetByID", ctx, int32(10)).Return(completed(), nil)
		store.reviews.On("Create", ctx, mock.AnythingOfType("*domain.Review")).
			Return(domain.Errorf(domain.CodeAlreadyReviewed, "rental 10 already reviewed by user 3"))

		_, err := svc.SubmitReview(ctx, 3, 10, 5, "")
		assert.True(t, domain.IsCode(err, domain.CodeAlreadyReviewed))
		store.users.AssertNotCalled(t, "UpdateRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
