package hotel

import (
	"sort"

	"github.com/iliyamo/hotel-california/internal/model"
)

// IsFree reports whether the candidate arrival/departure pair fits a room
// whose existing bookings produced the given date sequence.
//
// The candidate dates are merged with the existing ones and the combined
// sequence is sorted ascending by date. A room with non-overlapping stays
// yields a strictly alternating arrival/departure sequence, so the sorted
// list is walked two entries at a time: any pair with two equal statuses
// means two stays overlap.
//
// On equal dates a departure sorts before an arrival. That tie-break is what
// allows same-day turnover: one guest checks out and the next checks in on
// the same calendar day without the pair walk seeing a collision.
func IsFree(candidate [2]model.BookingDate, existing []model.BookingDate) bool {
	merged := make([]model.BookingDate, 0, len(existing)+2)
	merged = append(merged, existing...)
	merged = append(merged, candidate[:]...)

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Status == model.StatusDeparture && merged[j].Status == model.StatusArrival
		}
		return merged[i].Date.Before(merged[j].Date)
	})

	for i := 0; i+1 < len(merged); i += 2 {
		if merged[i].Status == merged[i+1].Status {
			return false
		}
	}
	return true
}
