package availability

import (
	"testing"

	"padoo/models"

	"github.com/stretchr/testify/assert"
)

func booking(start, end int) models.Booking {
	return models.Booking{Start: start, End: end}
}

func TestComputeGapsHistorical(t *testing.T) {
	window := models.ShiftWindow{Start: 600, End: 1320} // 10:00-22:00

	tests := []struct {
		name     string
		bookings []models.Booking
		want     []models.Gap
	}{
		{
			name:     "empty day is one full gap",
			bookings: nil,
			want:     []models.Gap{{Start: 600, Duration: 720}},
		},
		{
			name:     "single booking splits the window",
			bookings: []models.Booking{booking(720, 780)}, // 12:00-13:00
			want:     []models.Gap{{Start: 600, Duration: 120}, {Start: 780, Duration: 540}},
		},
		{
			name:     "booking at window start leaves only the tail",
			bookings: []models.Booking{booking(600, 660)},
			want:     []models.Gap{{Start: 660, Duration: 660}},
		},
		{
			name:     "back to back bookings leave no middle gap",
			bookings: []models.Booking{booking(600, 720), booking(720, 840)},
			want:     []models.Gap{{Start: 840, Duration: 480}},
		},
		{
			name:     "unsorted input is sorted before walking",
			bookings: []models.Booking{booking(900, 960), booking(660, 720)},
			want: []models.Gap{
				{Start: 600, Duration: 60},
				{Start: 720, Duration: 180},
				{Start: 960, Duration: 360},
			},
		},
		{
			name:     "booking past window end is clipped",
			bookings: []models.Booking{booking(1260, 1400)},
			want:     []models.Gap{{Start: 600, Duration: 660}},
		},
		{
			name:     "fully booked day has no gaps",
			bookings: []models.Booking{booking(600, 1320)},
			want:     nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeGaps(tc.bookings, window, 0, false)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComputeGapsLive(t *testing.T) {
	window := models.ShiftWindow{Start: 600, End: 1320}
	bookings := []models.Booking{booking(720, 780)} // 12:00-13:00

	t.Run("before shift start behaves like historical", func(t *testing.T) {
		got := ComputeGaps(bookings, window, 540, true) // 09:00
		assert.Equal(t, []models.Gap{{Start: 600, Duration: 120}, {Start: 780, Duration: 540}}, got)
	})

	t.Run("gap in progress is clipped to now", func(t *testing.T) {
		got := ComputeGaps(bookings, window, 660, true) // 11:00
		assert.Equal(t, []models.Gap{{Start: 660, Duration: 60}, {Start: 780, Duration: 540}}, got)
	})

	t.Run("gaps entirely in the past disappear", func(t *testing.T) {
		got := ComputeGaps(bookings, window, 800, true) // 13:20
		assert.Equal(t, []models.Gap{{Start: 800, Duration: 520}}, got)
	})

	t.Run("shift over returns nothing", func(t *testing.T) {
		assert.Nil(t, ComputeGaps(bookings, window, 1320, true))
		assert.Nil(t, ComputeGaps(bookings, window, 1400, true))
	})
}
