package domain

import "time"

type RentalBadge string

const (
	RentalBadgeNone        RentalBadge = "none"
	RentalBadgeRecommended RentalBadge = "recommended"
	RentalBadgeElite       RentalBadge = "elite"
)

// DefaultRentalRate is the trust score every host starts from.
const DefaultRentalRate = 85

const (
	MinRentalRate = 0
	MaxRentalRate = 100
)

type User struct {
	ID          int32  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	// RentalRate is the host trust score, clamped to [0, 100]. It moves
	// only through rate adjustments recorded in host_rental_rate_logs.
	RentalRate  int32       `json:"rental_rate"`
	RentalBadge RentalBadge `json:"rental_badge"`
	Rating      float64     `json:"rating"`
	ReviewCount int32       `json:"review_count"`
	CreatedOn   time.Time   `json:"created_on"`
	UpdatedOn   time.Time   `json:"updated_on"`
}

// ProfileComplete reports whether the user may submit booking requests.
func (u *User) ProfileComplete() bool {
	return u.PhoneNumber != "" && u.Address != ""
}

// ClampRate bounds a trust score into [MinRentalRate, MaxRentalRate].
func ClampRate(rate int32) int32 {
	if rate < MinRentalRate {
		return MinRentalRate
	}
	if rate > MaxRentalRate {
		return MaxRentalRate
	}
	return rate
}

// BadgeForRate derives the badge tier shown to renters from a trust score.
func BadgeForRate(rate int32) RentalBadge {
	switch {
	case rate == MaxRentalRate:
		return RentalBadgeElite
	case rate > 95:
		return RentalBadgeRecommended
	default:
		return RentalBadgeNone
	}
}
