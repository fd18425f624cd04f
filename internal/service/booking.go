package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/logger"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/repository"
)

type bookingService struct {
	store      repository.Store
	emailSvc   EmailService
	sweepAfter time.Duration
}

func NewBookingService(store repository.Store, emailSvc EmailService, sweepAfterDays int) BookingService {
	return &bookingService{
		store:      store,
		emailSvc:   emailSvc,
		sweepAfter: time.Duration(sweepAfterDays) * 24 * time.Hour,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, renterID, itemID int32, start, end domain.Date, totalDays, totalAmountCents int32) (*domain.Rental, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	if days := int32(domain.InclusiveDays(start, end)); totalDays != days {
		return nil, domain.Errorf(domain.CodeValidation, "total_days %d does not match date range (%d days)", totalDays, days)
	}
	if totalAmountCents < 0 {
		return nil, domain.NewError(domain.CodeValidation, "total amount must not be negative")
	}

	renter, err := s.store.Users().GetByID(ctx, renterID)
	if err != nil {
		return nil, err
	}
	if !renter.ProfileComplete() {
		return nil, domain.NewError(domain.CodeProfileIncomplete, "phone number and address are required before booking")
	}

	item, err := s.store.Items().GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Bookable() {
		return nil, domain.Errorf(domain.CodeItemUnavailable, "item %d is not accepting bookings", itemID)
	}
	if item.OwnerID == renterID {
		return nil, domain.NewError(domain.CodeSelfBookingForbidden, "owners cannot book their own items")
	}

	rental := &domain.Rental{
		ItemID:           itemID,
		RenterID:         renterID,
		OwnerID:          item.OwnerID,
		StartDate:        start,
		EndDate:          end,
		TotalDays:        totalDays,
		TotalAmountCents: totalAmountCents,
		Status:           domain.RentalStatusPending,
	}

	// The conflict check and the insert run as one atomic unit: the
	// calendar lock serializes concurrent admissions on the same item, so
	// two overlapping requests can never both pass the check.
	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		if err := tx.Rentals().LockItemCalendar(ctx, itemID); err != nil {
			return err
		}
		if err := checkNoConflict(ctx, tx, item, start, end); err != nil {
			return err
		}
		return tx.Rentals().Create(ctx, rental)
	})
	if err != nil {
		return nil, err
	}

	s.notifyRequestCreated(ctx, rental, item, renter)
	return rental, nil
}

func (s *bookingService) ApproveBooking(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error) {
	rt, err := s.authorizeOwner(ctx, actorID, rentalID)
	if err != nil {
		return nil, err
	}

	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		ok, err := tx.Rentals().UpdateStatus(ctx, rentalID, []domain.RentalStatus{domain.RentalStatusPending}, domain.RentalStatusApproved, "")
		if err != nil {
			return err
		}
		if !ok {
			return s.invalidState(ctx, rentalID, domain.RentalStatusApproved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rt.Status = domain.RentalStatusApproved

	s.notifyRenter(ctx, rt, "Booking Approved",
		func(item *domain.Item, renter *domain.User) error {
			return s.emailSvc.SendBookingApprovalNotification(ctx, renter.Email, item.Name)
		})
	return rt, nil
}

func (s *bookingService) RejectBooking(ctx context.Context, actorID, rentalID int32, reason string) (*domain.Rental, error) {
	rt, err := s.authorizeOwner(ctx, actorID, rentalID)
	if err != nil {
		return nil, err
	}

	// The rejection and its trust adjustment commit or roll back together.
	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		ok, err := tx.Rentals().UpdateStatus(ctx, rentalID, []domain.RentalStatus{domain.RentalStatusPending}, domain.RentalStatusRejected, reason)
		if err != nil {
			return err
		}
		if !ok {
			return s.invalidState(ctx, rentalID, domain.RentalStatusRejected)
		}
		return adjustHostRate(ctx, tx, rt.OwnerID, rt.ID, domain.RateEventHostRejected)
	})
	if err != nil {
		return nil, err
	}
	rt.Status = domain.RentalStatusRejected
	rt.RejectionReason = reason

	s.notifyRenter(ctx, rt, "Booking Rejected",
		func(item *domain.Item, renter *domain.User) error {
			return s.emailSvc.SendBookingRejectionNotification(ctx, renter.Email, item.Name, reason)
		})
	return rt, nil
}

func (s *bookingService) CompleteBooking(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error) {
	rt, err := s.authorizeOwner(ctx, actorID, rentalID)
	if err != nil {
		return nil, err
	}

	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		ok, err := tx.Rentals().UpdateStatus(ctx, rentalID, domain.CompletableStatuses, domain.RentalStatusCompleted, "")
		if err != nil {
			return err
		}
		if !ok {
			return s.invalidState(ctx, rentalID, domain.RentalStatusCompleted)
		}
		return adjustHostRate(ctx, tx, rt.OwnerID, rt.ID, domain.RateEventRentalCompleted)
	})
	if err != nil {
		return nil, err
	}
	rt.Status = domain.RentalStatusCompleted

	s.notifyRenter(ctx, rt, "Booking Completed",
		func(item *domain.Item, renter *domain.User) error {
			return s.emailSvc.SendBookingCompletionNotification(ctx, renter.Email, item.Name)
		})
	return rt, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, actorID int32, admin bool, rentalID int32) (*domain.Rental, error) {
	if !admin {
		return nil, domain.NewError(domain.CodeForbidden, "only admins can cancel bookings")
	}
	rt, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		ok, err := tx.Rentals().UpdateStatus(ctx, rentalID, domain.CancellableStatuses, domain.RentalStatusCancelled, "")
		if err != nil {
			return err
		}
		if !ok {
			return s.invalidState(ctx, rentalID, domain.RentalStatusCancelled)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rt.Status = domain.RentalStatusCancelled

	s.notifyRenter(ctx, rt, "Booking Cancelled",
		func(item *domain.Item, renter *domain.User) error {
			return s.emailSvc.SendBookingExpiredNotification(ctx, renter.Email, item.Name)
		})

	logger.Info("Booking cancelled by admin", "rental_id", rentalID, "admin_id", actorID)
	return rt, nil
}

func (s *bookingService) BlockDates(ctx context.Context, actorID, itemID int32, start, end domain.Date) (*domain.Rental, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	item, err := s.store.Items().GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != actorID {
		return nil, domain.NewError(domain.CodeForbidden, "only the item owner can block dates")
	}

	// A block is a zero-amount self-rental. It holds its dates like any
	// booking but carries no cleaning buffer of its own.
	block := &domain.Rental{
		ItemID:    itemID,
		RenterID:  actorID,
		OwnerID:   actorID,
		StartDate: start,
		EndDate:   end,
		TotalDays: int32(domain.InclusiveDays(start, end)),
		Status:    domain.RentalStatusBlocked,
	}

	err = s.store.ExecTx(ctx, func(tx repository.Store) error {
		if err := tx.Rentals().LockItemCalendar(ctx, itemID); err != nil {
			return err
		}
		if err := checkNoConflict(ctx, tx, item, start, end); err != nil {
			return err
		}
		return tx.Rentals().Create(ctx, block)
	})
	if err != nil {
		return nil, err
	}
	return block, nil
}

// SweepOverdue reclaims every pending rental that received no host
// response within the configured window. The batch update is a single
// statement, so overlapping sweeps are safe: the second run finds
// nothing left to cancel.
func (s *bookingService) SweepOverdue(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-s.sweepAfter)
	cancelled, err := s.store.Rentals().CancelOverdue(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for i := range cancelled {
		rt := &cancelled[i]
		s.notifyRenter(ctx, rt, "Booking Expired",
			func(item *domain.Item, renter *domain.User) error {
				return s.emailSvc.SendBookingExpiredNotification(ctx, renter.Email, item.Name)
			})
	}

	if len(cancelled) > 0 {
		logger.Info("Swept overdue bookings", "count", len(cancelled), "cutoff", cutoff)
	}
	return len(cancelled), nil
}

func (s *bookingService) GetBooking(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error) {
	rt, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !rt.IsParty(actorID) {
		return nil, domain.NewError(domain.CodeForbidden, "not a party to this booking")
	}
	return rt, nil
}

func (s *bookingService) ListByRenter(ctx context.Context, renterID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.store.Rentals().ListByRenter(ctx, renterID, status, page, pageSize)
}

func (s *bookingService) ListByOwner(ctx context.Context, ownerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.store.Rentals().ListByOwner(ctx, ownerID, status, page, pageSize)
}

func validateRange(start, end domain.Date) error {
	if start.IsZero() || end.IsZero() {
		return domain.NewError(domain.CodeValidation, "start and end dates are required")
	}
	if end.Before(start) {
		return domain.NewError(domain.CodeValidation, "end date must not precede start date")
	}
	return nil
}

// checkNoConflict rejects the candidate range when it overlaps any
// blocked range on the item. Must run under the item calendar lock.
func checkNoConflict(ctx context.Context, tx repository.Store, item *domain.Item, start, end domain.Date) error {
	existing, err := tx.Rentals().ListOccupyingByItem(ctx, item.ID)
	if err != nil {
		return err
	}
	if domain.ConflictsAny(start, end, domain.BlockedRanges(existing, item.CleaningBufferDays)) {
		return domain.Errorf(domain.CodeDateConflict, "item %d is not available from %s to %s", item.ID, start, end)
	}
	return nil
}

// authorizeOwner loads the rental and fails closed unless the actor is
// the owner snapshot taken at creation time.
func (s *bookingService) authorizeOwner(ctx context.Context, actorID, rentalID int32) (*domain.Rental, error) {
	rt, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.OwnerID != actorID {
		return nil, domain.NewError(domain.CodeForbidden, "only the item owner can perform this action")
	}
	return rt, nil
}

// invalidState builds the error for a conditional update whose guard did
// not match: the rental either vanished or sits in a status that does
// not permit the transition.
func (s *bookingService) invalidState(ctx context.Context, rentalID int32, target domain.RentalStatus) error {
	current, err := s.store.Rentals().GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	return domain.Errorf(domain.CodeInvalidState, "cannot move rental %d from %s to %s", rentalID, current.Status, target)
}

func (s *bookingService) notifyRequestCreated(ctx context.Context, rt *domain.Rental, item *domain.Item, renter *domain.User) {
	owner, err := s.store.Users().GetByID(ctx, rt.OwnerID)
	if err != nil {
		logger.Warn("Skipping booking request notifications", "rental_id", rt.ID, "error", err)
		return
	}

	if err := s.emailSvc.SendBookingRequestNotification(ctx, owner.Email, renter.Name, item.Name); err != nil {
		logger.Warn("Failed to email owner about booking request", "rental_id", rt.ID, "error", err)
	}
	if err := s.emailSvc.SendBookingReceivedNotification(ctx, renter.Email, item.Name); err != nil {
		logger.Warn("Failed to email renter about booking request", "rental_id", rt.ID, "error", err)
	}

	s.createNotification(ctx, owner.ID, "New Booking Request",
		fmt.Sprintf("%s requested to rent %s from %s to %s", renter.Name, item.Name, rt.StartDate, rt.EndDate), rt.ID)
	s.createNotification(ctx, renter.ID, "Booking Request Sent",
		fmt.Sprintf("Your request for %s is waiting for the owner's response", item.Name), rt.ID)
}

// notifyRenter delivers a lifecycle update to the renter by email and
// in-app notification. Delivery failures are logged and never affect the
// committed transition.
func (s *bookingService) notifyRenter(ctx context.Context, rt *domain.Rental, title string, send func(*domain.Item, *domain.User) error) {
	item, err := s.store.Items().GetByID(ctx, rt.ItemID)
	if err != nil {
		logger.Warn("Skipping booking notification", "rental_id", rt.ID, "error", err)
		return
	}
	renter, err := s.store.Users().GetByID(ctx, rt.RenterID)
	if err != nil {
		logger.Warn("Skipping booking notification", "rental_id", rt.ID, "error", err)
		return
	}

	if err := send(item, renter); err != nil {
		logger.Warn("Failed to send booking email", "rental_id", rt.ID, "title", title, "error", err)
	}
	s.createNotification(ctx, renter.ID, title,
		fmt.Sprintf("%s: %s", title, item.Name), rt.ID)
}

func (s *bookingService) createNotification(ctx context.Context, userID int32, title, message string, rentalID int32) {
	err := s.store.Notifications().Create(ctx, &domain.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Attributes: map[string]string{
			"type":      "BOOKING",
			"rental_id": fmt.Sprintf("%d", rentalID),
		},
	})
	if err != nil {
		logger.Warn("Failed to create notification", "user_id", userID, "rental_id", rentalID, "error", err)
	}
}
