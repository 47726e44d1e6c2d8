package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{clock: "00:00", want: 0},
		{clock: "10:00", want: 600},
		{clock: "9:05", want: 545},
		{clock: "23:59", want: 1439},
		{clock: "24:00", wantErr: true},
		{clock: "12:60", wantErr: true},
		{clock: "1200", wantErr: true},
		{clock: "ab:cd", wantErr: true},
		{clock: "", wantErr: true},
		{clock: "-1:30", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.clock, func(t *testing.T) {
			got, err := ToMinutes(tc.clock)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrBadClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "10:00", FormatMinutes(600))
	assert.Equal(t, "09:05", FormatMinutes(545))
	assert.Equal(t, "00:00", FormatMinutes(0))
}

func TestOverlaps(t *testing.T) {
	// Touching endpoints are compatible.
	assert.False(t, Overlaps(10*60, 11*60, 11*60, 12*60))
	assert.False(t, Overlaps(11*60, 12*60, 10*60, 11*60))

	// Partial and full overlap.
	assert.True(t, Overlaps(10*60, 11*60, 10*60+30, 12*60))
	assert.True(t, Overlaps(10*60, 12*60, 10*60+30, 11*60))
	assert.True(t, Overlaps(10*60, 11*60, 10*60, 11*60))

	// Disjoint.
	assert.False(t, Overlaps(10*60, 11*60, 13*60, 14*60))
}
