package domain

import "time"

type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "ACTIVE"
	ItemStatusInactive ItemStatus = "INACTIVE"
	ItemStatusArchived ItemStatus = "ARCHIVED"
)

// MaxCleaningBufferDays bounds the idle period an owner can demand after
// each rental.
const MaxCleaningBufferDays = 30

type Item struct {
	ID              int32      `json:"id"`
	OwnerID         int32      `json:"owner_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	DailyPriceCents int32      `json:"daily_price_cents"`
	DepositCents    int32      `json:"deposit_cents"`
	Status          ItemStatus `json:"status"`
	// CleaningBufferDays is the mandatory idle period after an occupying
	// rental ends before the item can be booked again. 0 disables it.
	CleaningBufferDays int32     `json:"cleaning_buffer_days"`
	CreatedOn          time.Time `json:"created_on"`
	UpdatedOn          time.Time `json:"updated_on"`
}

// Bookable reports whether the item accepts new booking requests.
func (i *Item) Bookable() bool {
	return i.Status == ItemStatusActive
}
