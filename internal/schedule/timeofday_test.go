package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    MinuteOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"12:30", 750, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"12", 0, true},
		{"12:30:00", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockRoundTrip(t *testing.T) {
	for m := MinuteOfDay(0); m < minutesPerDay; m++ {
		parsed, err := ParseClock(m.Clock())
		require.NoError(t, err)
		require.Equal(t, m, parsed)
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	intervals := [][2]MinuteOfDay{
		{540, 570}, {550, 600}, {600, 630}, {0, 1440}, {570, 570},
	}
	for _, a := range intervals {
		for _, b := range intervals {
			assert.Equal(t,
				overlaps(a[0], a[1], b[0], b[1]),
				overlaps(b[0], b[1], a[0], a[1]),
				"overlaps(%v,%v) must be symmetric", a, b)
		}
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	// Back-to-back intervals do not overlap.
	assert.False(t, overlaps(540, 570, 570, 600))
	assert.True(t, overlaps(540, 571, 570, 600))
}
