package service

import (
	"context"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
)

type BookingService interface {
	CreateBooking(ctx context.Context, renterID, itemID int32, start, end domain.Date, totalDays, totalAmountCents int32) (*domain.Rental, error)
	ApproveBooking(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error)
	RejectBooking(ctx context.Context, actorID, rentalID int32, reason string) (*domain.Rental, error)
	CompleteBooking(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error)
	// CancelBooking is the generic cancellation used by admins; the
	// sweeper drives the same transition in batch.
	CancelBooking(ctx context.Context, actorID int32, admin bool, rentalID int32) (*domain.Rental, error)
	BlockDates(ctx context.Context, actorID, itemID int32, start, end domain.Date) (*domain.Rental, error)
	SweepOverdue(ctx context.Context) (int, error)
	GetBooking(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error)
	ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	ListByOwner(ctx context.Context, ownerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
}

type AvailabilityService interface {
	ComputeBlockedRanges(ctx context.Context, itemID int32) ([]domain.DateRange, error)
}

type ReviewService interface {
	SubmitReview(ctx context.Context, reviewerID, rentalID int32, rating int32, comment string) (*domain.Review, error)
	ListByReviewee(ctx context.Context, revieweeID int32, page, pageSize int32) ([]domain.Review, int32, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

// EmailService delivers transactional mail. Every send is best-effort:
// failures are logged by callers and never roll back a committed
// transition.
type EmailService interface {
	SendBookingRequestNotification(ctx context.Context, ownerEmail, renterName, itemName string) error
	SendBookingReceivedNotification(ctx context.Context, renterEmail, itemName string) error
	SendBookingApprovalNotification(ctx context.Context, renterEmail, itemName string) error
	SendBookingRejectionNotification(ctx context.Context, renterEmail, itemName, reason string) error
	SendBookingCompletionNotification(ctx context.Context, email, itemName string) error
	SendBookingExpiredNotification(ctx context.Context, renterEmail, itemName string) error
}
