package jobs

import (
	"context"

	"github.com/lovemage/rentloop-plateforme-sub000/internal/logger"
)

// SweepOverdueBookings cancels pending rentals whose hosts never
// responded within the configured window. Individual notification
// failures inside the sweep are logged by the service and do not abort
// the batch; a failed run leaves the remaining rows eligible for the
// next run.
func (jr *JobRunner) SweepOverdueBookings() {
	jr.runWithRecovery("SweepOverdueBookings", func() {
		ctx := context.Background()

		count, err := jr.services.Booking.SweepOverdue(ctx)
		if err != nil {
			logger.Error("Failed to sweep overdue bookings", "error", err)
			return
		}

		logger.Info("Cancelled overdue bookings", "count", count)
	})
}
