package domain

import "time"

type ReviewType string

const (
	ReviewTypeRenterToHost ReviewType = "renter_to_host"
	ReviewTypeHostToRenter ReviewType = "host_to_renter"
)

const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

type Review struct {
	ID         int32      `json:"id"`
	RentalID   int32      `json:"rental_id"`
	ReviewerID int32      `json:"reviewer_id"`
	RevieweeID int32      `json:"reviewee_id"`
	Rating     int32      `json:"rating"`
	Comment    string     `json:"comment,omitempty"`
	Type       ReviewType `json:"review_type"`
	Visible    bool       `json:"visible"`
	CreatedOn  time.Time  `json:"created_on"`
}

// ValidReviewRating reports whether a rating is inside the 1..5 scale.
func ValidReviewRating(rating int32) bool {
	return rating >= MinReviewRating && rating <= MaxReviewRating
}
