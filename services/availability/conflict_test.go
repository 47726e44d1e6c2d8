package availability

import (
	"testing"

	"padoo/models"

	"github.com/stretchr/testify/assert"
)

func TestHasConflict(t *testing.T) {
	existing := []models.Booking{
		{TechnicianID: "t1", TechnicianName: "Mei", Start: 600, End: 660},
		{TechnicianName: "Lan", Start: 700, End: 760, IsReservation: true},
	}

	t.Run("overlap on matching id", func(t *testing.T) {
		assert.True(t, HasConflict(existing, "t1", "Mei", 630, 690))
	})

	t.Run("adjacent interval does not conflict", func(t *testing.T) {
		assert.False(t, HasConflict(existing, "t1", "Mei", 660, 700))
	})

	t.Run("other technician ignored", func(t *testing.T) {
		assert.False(t, HasConflict(existing, "t2", "Hua", 600, 700))
	})

	t.Run("reservation without id matches by name", func(t *testing.T) {
		assert.True(t, HasConflict(existing, "t9", "Lan", 730, 790))
	})

	t.Run("buffered end catches a tight turnaround", func(t *testing.T) {
		// Proposed 09:00-10:00; the caller's +10 buffer reaches into the
		// 10:00 booking.
		assert.False(t, HasConflict(existing, "t1", "Mei", 540, 600))
		assert.True(t, HasConflict(existing, "t1", "Mei", 540, 610))
	})
}
