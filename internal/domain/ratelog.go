package domain

import "time"

type RateEvent string

const (
	RateEventHostRejected    RateEvent = "host_rejected"
	RateEventRentalCompleted RateEvent = "rental_completed"
)

// RateDelta returns the signed trust-score delta applied for an event.
func RateDelta(event RateEvent) int32 {
	switch event {
	case RateEventHostRejected:
		return -5
	case RateEventRentalCompleted:
		return +2
	default:
		return 0
	}
}

// HostRentalRateLog is an append-only audit record of a single trust
// score adjustment. Rows are never mutated or deleted; they exist so any
// host's current rate can be explained from its history.
type HostRentalRateLog struct {
	ID         int64     `json:"id"`
	HostID     int32     `json:"host_id"`
	RentalID   int32     `json:"rental_id"`
	Event      RateEvent `json:"event"`
	Delta      int32     `json:"delta"`
	RateBefore int32     `json:"rate_before"`
	RateAfter  int32     `json:"rate_after"`
	CreatedOn  time.Time `json:"created_on"`
}
