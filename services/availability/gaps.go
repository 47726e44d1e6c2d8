package availability

import (
	"sort"

	"padoo/models"
)

// ComputeGaps returns the open spans a technician still has inside the shift
// window, given their bookings for the date. In live mode the anchor moves
// from the window start to now, so gaps entirely in the past disappear and a
// gap in progress is clipped to start at now. Gaps never extend outside the
// window, and zero-length gaps are dropped.
func ComputeGaps(bookings []models.Booking, window models.ShiftWindow, nowMinutes int, live bool) []models.Gap {
	anchor := window.Start
	if live {
		if nowMinutes >= window.End {
			return nil
		}
		if nowMinutes > anchor {
			anchor = nowMinutes
		}
	}

	sorted := make([]models.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var gaps []models.Gap
	cursor := anchor
	for _, b := range sorted {
		start := b.Start
		if start > window.End {
			start = window.End
		}
		if start > cursor {
			gaps = append(gaps, models.Gap{Start: cursor, Duration: start - cursor})
		}
		if b.End > cursor {
			cursor = b.End
		}
	}
	if cursor < window.End {
		gaps = append(gaps, models.Gap{Start: cursor, Duration: window.End - cursor})
	}
	return gaps
}
