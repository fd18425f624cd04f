package service

import (
	"context"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/repository"
)

type availabilityService struct {
	store repository.Store
}

func NewAvailabilityService(store repository.Store) AvailabilityService {
	return &availabilityService{store: store}
}

// ComputeBlockedRanges returns every date range currently closed to new
// bookings on the item: booked ranges for occupying rentals plus
// cleaning buffers after commercial rentals. Read-only.
func (s *availabilityService) ComputeBlockedRanges(ctx context.Context, itemID int32) ([]domain.DateRange, error) {
	item, err := s.store.Items().GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	rentals, err := s.store.Rentals().ListOccupyingByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return domain.BlockedRanges(rentals, item.CleaningBufferDays), nil
}
