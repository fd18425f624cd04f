package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) Date {
	parsed, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestDateRangeOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        DateRange
		b        DateRange
		expected bool
	}{
		{"Disjoint before", DateRange{Start: d("2024-01-01"), End: d("2024-01-05")}, DateRange{Start: d("2024-01-06"), End: d("2024-01-10")}, false},
		{"Disjoint after", DateRange{Start: d("2024-01-11"), End: d("2024-01-15")}, DateRange{Start: d("2024-01-06"), End: d("2024-01-10")}, false},
		{"Touching endpoints", DateRange{Start: d("2024-01-01"), End: d("2024-01-05")}, DateRange{Start: d("2024-01-05"), End: d("2024-01-10")}, true},
		{"Contained", DateRange{Start: d("2024-01-03"), End: d("2024-01-04")}, DateRange{Start: d("2024-01-01"), End: d("2024-01-10")}, true},
		{"Partial", DateRange{Start: d("2024-01-04"), End: d("2024-01-08")}, DateRange{Start: d("2024-01-06"), End: d("2024-01-10")}, true},
		{"Single day equal", DateRange{Start: d("2024-01-05"), End: d("2024-01-05")}, DateRange{Start: d("2024-01-05"), End: d("2024-01-05")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}

func TestConflictsAny(t *testing.T) {
	blocked := []DateRange{
		{Start: d("2024-01-01"), End: d("2024-01-05"), Kind: RangeKindBooked},
		{Start: d("2024-01-06"), End: d("2024-01-07"), Kind: RangeKindCleaning},
	}

	assert.True(t, ConflictsAny(d("2024-01-06"), d("2024-01-08"), blocked))
	assert.True(t, ConflictsAny(d("2024-01-05"), d("2024-01-05"), blocked))
	assert.False(t, ConflictsAny(d("2024-01-08"), d("2024-01-12"), blocked))
	assert.False(t, ConflictsAny(d("2024-01-08"), d("2024-01-12"), nil))
}

func TestBlockedRanges(t *testing.T) {
	t.Run("CleaningBufferAfterBooking", func(t *testing.T) {
		rentals := []Rental{
			{StartDate: d("2024-01-01"), EndDate: d("2024-01-05"), Status: RentalStatusApproved},
		}

		ranges := BlockedRanges(rentals, 2)
		require.Len(t, ranges, 2)
		assert.Equal(t, DateRange{Start: d("2024-01-01"), End: d("2024-01-05"), Kind: RangeKindBooked}, ranges[0])
		assert.Equal(t, DateRange{Start: d("2024-01-06"), End: d("2024-01-07"), Kind: RangeKindCleaning}, ranges[1])
	})

	t.Run("NoBufferWhenZero", func(t *testing.T) {
		rentals := []Rental{
			{StartDate: d("2024-01-01"), EndDate: d("2024-01-05"), Status: RentalStatusPending},
		}

		ranges := BlockedRanges(rentals, 0)
		require.Len(t, ranges, 1)
		assert.Equal(t, RangeKindBooked, ranges[0].Kind)
	})

	t.Run("SelfBlockEmitsNoCleaningRange", func(t *testing.T) {
		rentals := []Rental{
			{StartDate: d("2024-02-01"), EndDate: d("2024-02-03"), Status: RentalStatusBlocked, RenterID: 7, OwnerID: 7},
		}

		ranges := BlockedRanges(rentals, 5)
		require.Len(t, ranges, 1)
		assert.Equal(t, RangeKindBooked, ranges[0].Kind)
	})

	t.Run("ReleasedStatusesExcluded", func(t *testing.T) {
		rentals := []Rental{
			{StartDate: d("2024-01-01"), EndDate: d("2024-01-05"), Status: RentalStatusRejected},
			{StartDate: d("2024-01-10"), EndDate: d("2024-01-12"), Status: RentalStatusCancelled},
			{StartDate: d("2024-02-01"), EndDate: d("2024-02-02"), Status: RentalStatusCompleted},
		}

		ranges := BlockedRanges(rentals, 0)
		require.Len(t, ranges, 1)
		assert.Equal(t, d("2024-02-01"), ranges[0].Start)
	})
}
