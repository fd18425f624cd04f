package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "PENDING"
	RentalStatusApproved  RentalStatus = "APPROVED"
	RentalStatusRejected  RentalStatus = "REJECTED"
	RentalStatusOngoing   RentalStatus = "ONGOING"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
	RentalStatusBlocked   RentalStatus = "BLOCKED"
)

// rentalTransitions is the closed transition table for the rental
// lifecycle. A status missing from the map is terminal.
var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusPending:  {RentalStatusApproved, RentalStatusRejected, RentalStatusCancelled},
	RentalStatusApproved: {RentalStatusOngoing, RentalStatusCompleted, RentalStatusCancelled},
	RentalStatusOngoing:  {RentalStatusCompleted, RentalStatusCancelled},
}

// CanTransitionTo reports whether the lifecycle permits moving from s to
// target.
func (s RentalStatus) CanTransitionTo(target RentalStatus) bool {
	for _, t := range rentalTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is permitted from s.
func (s RentalStatus) Terminal() bool {
	return len(rentalTransitions[s]) == 0
}

// Occupying reports whether a rental in this status holds its date range
// exclusively against new bookings. Rejected and cancelled rentals
// release their range.
func (s RentalStatus) Occupying() bool {
	switch s {
	case RentalStatusPending, RentalStatusApproved, RentalStatusOngoing,
		RentalStatusBlocked, RentalStatusCompleted:
		return true
	default:
		return false
	}
}

// CompletableStatuses are the source statuses from which a rental may be
// completed; ONGOING is optional in the lifecycle so both are accepted.
var CompletableStatuses = []RentalStatus{RentalStatusApproved, RentalStatusOngoing}

// CancellableStatuses are every non-terminal status; used for the generic
// admin/system cancel.
var CancellableStatuses = []RentalStatus{RentalStatusPending, RentalStatusApproved, RentalStatusOngoing}

type Rental struct {
	ID       int32 `json:"id"`
	ItemID   int32 `json:"item_id"`
	RenterID int32 `json:"renter_id"`
	// OwnerID is a snapshot of the item's owner at creation time. All
	// lifecycle authorization compares against this copy, not the live
	// item row.
	OwnerID          int32        `json:"owner_id"`
	StartDate        Date         `json:"start_date"`
	EndDate          Date         `json:"end_date"`
	TotalDays        int32        `json:"total_days"`
	TotalAmountCents int32        `json:"total_amount_cents"`
	Status           RentalStatus `json:"status"`
	RejectionReason  string       `json:"rejection_reason,omitempty"`
	CreatedOn        time.Time    `json:"created_on"`
	UpdatedOn        time.Time    `json:"updated_on"`
}

// IsParty reports whether userID is the renter or the owner of the rental.
func (r *Rental) IsParty(userID int32) bool {
	return r.RenterID == userID || r.OwnerID == userID
}

// IsSelfBlock reports whether the rental is an owner-initiated calendar
// block rather than a commercial booking.
func (r *Rental) IsSelfBlock() bool {
	return r.Status == RentalStatusBlocked && r.RenterID == r.OwnerID
}
