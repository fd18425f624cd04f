package domain

type RangeKind string

const (
	RangeKindBooked   RangeKind = "booked"
	RangeKindCleaning RangeKind = "cleaning"
)

// DateRange is an inclusive calendar-date interval on an item's calendar.
type DateRange struct {
	Start Date      `json:"start"`
	End   Date      `json:"end"`
	Kind  RangeKind `json:"kind"`
}

// Overlaps reports whether two inclusive ranges share at least one day.
// Two ranges conflict unless one entirely precedes the other.
func (r DateRange) Overlaps(other DateRange) bool {
	return !(r.End.Before(other.Start) || r.Start.After(other.End))
}

// ConflictsAny reports whether the candidate [start, end] overlaps any of
// the given ranges.
func ConflictsAny(start, end Date, ranges []DateRange) bool {
	candidate := DateRange{Start: start, End: end}
	for _, r := range ranges {
		if candidate.Overlaps(r) {
			return true
		}
	}
	return false
}

// BlockedRanges computes every range on an item's calendar that is closed
// to new bookings: one booked range per occupying rental, plus a cleaning
// range after each commercial rental when the item carries a cleaning
// buffer. Owner self-blocks hold their dates but never generate cleaning
// time of their own.
func BlockedRanges(rentals []Rental, cleaningBufferDays int32) []DateRange {
	var ranges []DateRange
	for _, rt := range rentals {
		if !rt.Status.Occupying() {
			continue
		}
		ranges = append(ranges, DateRange{
			Start: rt.StartDate,
			End:   rt.EndDate,
			Kind:  RangeKindBooked,
		})
		if cleaningBufferDays > 0 && rt.Status != RentalStatusBlocked {
			ranges = append(ranges, DateRange{
				Start: rt.EndDate.AddDays(1),
				End:   rt.EndDate.AddDays(int(cleaningBufferDays)),
				Kind:  RangeKindCleaning,
			})
		}
	}
	return ranges
}
