package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/repository"
)

// uniqueViolation is the Postgres error code raised when an insert hits
// a unique constraint.
const uniqueViolation = "23505"

type reviewRepository struct {
	db DBTX
}

func NewReviewRepository(db DBTX) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (rental_id, reviewer_id, reviewee_id, rating, comment, review_type, is_visible, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, rv.RentalID, rv.ReviewerID, rv.RevieweeID,
		rv.Rating, rv.Comment, rv.Type, rv.Visible, time.Now().UTC()).Scan(&rv.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.Errorf(domain.CodeAlreadyReviewed, "rental %d already reviewed by user %d", rv.RentalID, rv.ReviewerID)
		}
		return err
	}
	return nil
}

func (r *reviewRepository) AggregateForReviewee(ctx context.Context, revieweeID int32) (float64, int32, error) {
	var avg sql.NullFloat64
	var count int32
	query := `SELECT AVG(rating), COUNT(*) FROM reviews WHERE reviewee_id = $1 AND is_visible`
	if err := r.db.QueryRowContext(ctx, query, revieweeID).Scan(&avg, &count); err != nil {
		return 0, 0, err
	}
	return avg.Float64, count, nil
}

func (r *reviewRepository) ListByReviewee(ctx context.Context, revieweeID int32, page, pageSize int32) ([]domain.Review, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	countQuery := `SELECT count(*) FROM reviews WHERE reviewee_id = $1 AND is_visible`
	if err := r.db.QueryRowContext(ctx, countQuery, revieweeID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, rental_id, reviewer_id, reviewee_id, rating, comment, review_type, is_visible, created_on
	          FROM reviews WHERE reviewee_id = $1 AND is_visible
	          ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, revieweeID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.RentalID, &rv.ReviewerID, &rv.RevieweeID,
			&rv.Rating, &rv.Comment, &rv.Type, &rv.Visible, &rv.CreatedOn); err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, count, rows.Err()
}
