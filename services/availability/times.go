package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadClock reports a malformed "HH:MM" string. It only appears for
// external input; minute offsets produced inside the engine are never
// re-parsed.
var ErrBadClock = errors.New("malformed clock time")

// ToMinutes parses a zero-padded "H:MM"/"HH:MM" string into minutes from
// midnight.
func ToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, clock)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, clock)
	}
	return hours*60 + minutes, nil
}

// FormatMinutes renders a minutes-from-midnight offset as "HH:MM".
func FormatMinutes(offset int) string {
	return fmt.Sprintf("%02d:%02d", offset/60, offset%60)
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not conflict: 10:00-11:00 and 11:00-12:00 are compatible.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
