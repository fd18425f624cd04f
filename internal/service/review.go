package service

import (
	"context"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/repository"
)

type reviewService struct {
	store repository.Store
}

func NewReviewService(store repository.Store) ReviewService {
	return &reviewService{store: store}
}

func (s *reviewService) SubmitReview(ctx context.Context, reviewerID, rentalID int32, rating int32, comment string) (*domain.Review, error) {
	if !domain.ValidReviewRating(rating) {
		return nil, domain.Errorf(domain.CodeValidation, "rating must be between %d and %d", domain.MinReviewRating, domain.MaxReviewRating)
	}

	rt, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.Status != domain.RentalStatusCompleted {
		return nil, domain.Errorf(domain.CodeInvalidState, "rental %d is %s, reviews require a completed rental", rentalID, rt.Status)
	}

	review := &domain.Review{
		RentalID:   rentalID,
		ReviewerID: reviewerID,
		Rating:     rating,
		Comment:    comment,
		Visible:    true,
	}
	switch reviewerID {
	case rt.RenterID:
		review.Type = domain.ReviewTypeRenterToHost
		review.RevieweeID = rt.OwnerID
	case rt.OwnerID:
		review.Type = domain.ReviewTypeHostToRenter
		review.RevieweeID = rt.RenterID
	default:
		return nil, domain.NewError(domain.CodeForbidden, "only the renter or the owner can review this rental")
	}

	// Insert plus recompute in one transaction. The aggregate always
	// derives from the full visible set so concurrent reviewers of the
	// same reviewee cannot lose updates.
	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		if err := tx.Reviews().Create(ctx, review); err != nil {
			return err
		}
		rating, count, err := tx.Reviews().AggregateForReviewee(ctx, review.RevieweeID)
		if err != nil {
			return err
		}
		return tx.Users().UpdateRating(ctx, review.RevieweeID, rating, count)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListByReviewee(ctx context.Context, revieweeID int32, page, pageSize int32) ([]domain.Review, int32, error) {
	return s.store.Reviews().ListByReviewee(ctx, revieweeID, page, pageSize)
}
