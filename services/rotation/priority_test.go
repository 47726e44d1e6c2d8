package rotation

import (
	"testing"

	"padoo/models"

	"github.com/stretchr/testify/assert"
)

func TestSeedPriority(t *testing.T) {
	intp := func(v int) *int { return &v }
	shiftp := func(s models.Shift) *models.Shift { return &s }

	tests := []struct {
		name       string
		today      models.Shift
		yesterday  *models.Shift
		orderCount *int
		want       int
	}{
		{
			name:       "morning with five orders yesterday",
			today:      models.ShiftMorning,
			yesterday:  shiftp(models.ShiftMorning),
			orderCount: intp(5),
			want:       1050,
		},
		{
			name:      "morning but absent yesterday",
			today:     models.ShiftMorning,
			yesterday: nil,
			want:      500,
		},
		{
			name:      "morning with yesterday off counts as absent",
			today:     models.ShiftMorning,
			yesterday: shiftp(models.ShiftOff),
			want:      500,
		},
		{
			name:       "evening with two orders yesterday",
			today:      models.ShiftEvening,
			yesterday:  shiftp(models.ShiftEvening),
			orderCount: intp(2),
			want:       20,
		},
		{
			name:      "evening absent yesterday goes negative",
			today:     models.ShiftEvening,
			yesterday: shiftp(models.ShiftLeave),
			want:      -500,
		},
		{
			name:      "worked yesterday but no queue entry",
			today:     models.ShiftMorning,
			yesterday: shiftp(models.ShiftEvening),
			want:      1000,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, seedPriority(tc.today, tc.yesterday, tc.orderCount))
		})
	}
}
