package repository

import (
	"context"
	"time"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetRateForUpdate reads the host's trust score under a row lock so a
	// concurrent adjustment cannot interleave. Only meaningful inside a
	// transaction.
	GetRateForUpdate(ctx context.Context, id int32) (int32, error)
	UpdateRate(ctx context.Context, id int32, rate int32, badge domain.RentalBadge) error
	UpdateRating(ctx context.Context, id int32, rating float64, reviewCount int32) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int32) (*domain.Item, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	// UpdateStatus performs a conditional transition: the row moves to
	// the target status only if it is still in one of the expected source
	// statuses. Returns false when the guard did not match.
	UpdateStatus(ctx context.Context, id int32, from []domain.RentalStatus, to domain.RentalStatus, rejectionReason string) (bool, error)
	// ListOccupyingByItem returns every rental currently holding a date
	// range on the item.
	ListOccupyingByItem(ctx context.Context, itemID int32) ([]domain.Rental, error)
	// LockItemCalendar takes a transaction-scoped lock on the item's
	// booking calendar so concurrent admission attempts serialize. Only
	// meaningful inside a transaction.
	LockItemCalendar(ctx context.Context, itemID int32) error
	// CancelOverdue transitions every pending rental created before the
	// cutoff to cancelled in one batch and returns the affected rows.
	CancelOverdue(ctx context.Context, cutoff time.Time) ([]domain.Rental, error)
	ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	ListByOwner(ctx context.Context, ownerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
}

type RateLogRepository interface {
	Create(ctx context.Context, log *domain.HostRentalRateLog) error
	ListByHost(ctx context.Context, hostID int32, limit, offset int32) ([]domain.HostRentalRateLog, error)
}

type ReviewRepository interface {
	// Create inserts the review. A duplicate (rental_id, reviewer_id)
	// pair returns a domain error with CodeAlreadyReviewed.
	Create(ctx context.Context, review *domain.Review) error
	// AggregateForReviewee recomputes rating statistics from the full
	// visible review set, never from a running sum.
	AggregateForReviewee(ctx context.Context, revieweeID int32) (float64, int32, error)
	ListByReviewee(ctx context.Context, revieweeID int32, page, pageSize int32) ([]domain.Review, int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

// Store bundles every repository and adds transaction scoping. ExecTx
// hands the callback a Store whose repositories are bound to a single
// database transaction; the transaction commits when the callback
// returns nil and rolls back otherwise.
type Store interface {
	Users() UserRepository
	Items() ItemRepository
	Rentals() RentalRepository
	RateLogs() RateLogRepository
	Reviews() ReviewRepository
	Notifications() NotificationRepository

	ExecTx(ctx context.Context, fn func(Store) error) error
}
