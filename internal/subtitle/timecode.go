package subtitle

import (
	"fmt"
	"time"
)

// point in time as read from a time-range line. Components are kept as
// parsed and may be negative or out of range.
type TimeCode struct {
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

func NewTimeCode(hours, minutes, seconds, millis int) TimeCode {
	return TimeCode{
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		Milliseconds: millis,
	}
}

// builds a normalized time code from a duration, truncating below 1ms
func TimeCodeFromDuration(d time.Duration) TimeCode {
	ms := d.Milliseconds()
	return TimeCode{
		Hours:        int(ms / 3_600_000),
		Minutes:      int(ms / 60_000 % 60),
		Seconds:      int(ms / 1000 % 60),
		Milliseconds: int(ms % 1000),
	}
}

func (t TimeCode) TotalMilliseconds() int64 {
	return int64(t.Hours)*3_600_000 +
		int64(t.Minutes)*60_000 +
		int64(t.Seconds)*1000 +
		int64(t.Milliseconds)
}

func (t TimeCode) Duration() time.Duration {
	return time.Duration(t.TotalMilliseconds()) * time.Millisecond
}

// returns -1, 0 or 1 ordering by total milliseconds
func (t TimeCode) Compare(other TimeCode) int {
	a, b := t.TotalMilliseconds(), other.TotalMilliseconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// formats as HH:MM:SS,mmm from the normalized total
func (t TimeCode) String() string {
	ms := t.TotalMilliseconds()
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	return fmt.Sprintf("%s%02d:%02d:%02d,%03d",
		sign,
		ms/3_600_000,
		ms/60_000%60,
		ms/1000%60,
		ms%1000,
	)
}
