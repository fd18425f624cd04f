package service

import (
	"context"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/domain"
	"github.com/lovemage/rentloop-plateforme-sub000/internal/repository"
)

// adjustHostRate applies one trust score adjustment for a lifecycle
// event: read the current rate under a row lock, clamp the new rate into
// bounds, derive the badge, persist, and append the audit log row. It
// must run on a transaction-bound store together with the transition
// that triggered it, so both commit or both roll back.
func adjustHostRate(ctx context.Context, tx repository.Store, hostID, rentalID int32, event domain.RateEvent) error {
	before, err := tx.Users().GetRateForUpdate(ctx, hostID)
	if err != nil {
		return err
	}

	delta := domain.RateDelta(event)
	after := domain.ClampRate(before + delta)

	if err := tx.Users().UpdateRate(ctx, hostID, after, domain.BadgeForRate(after)); err != nil {
		return err
	}

	return tx.RateLogs().Create(ctx, &domain.HostRentalRateLog{
		HostID:     hostID,
		RentalID:   rentalID,
		Event:      event,
		Delta:      delta,
		RateBefore: before,
		RateAfter:  after,
	})
}
