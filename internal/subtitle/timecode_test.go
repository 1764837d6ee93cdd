package subtitle

import (
	"testing"
	"time"
)

func TestTimeCodeString(t *testing.T) {
	tests := []struct {
		tc   TimeCode
		want string
	}{
		{NewTimeCode(0, 0, 0, 0), "00:00:00,000"},
		{NewTimeCode(1, 2, 3, 4), "01:02:03,004"},
		{NewTimeCode(0, 0, 0, 1500), "00:00:01,500"},
		{NewTimeCode(0, 90, 0, 0), "01:30:00,000"},
		{NewTimeCode(123, 0, 0, 0), "123:00:00,000"},
		{NewTimeCode(0, 0, -1, 0), "-00:00:01,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeCodeDuration(t *testing.T) {
	tc := NewTimeCode(1, 1, 1, 1)
	want := time.Hour + time.Minute + time.Second + time.Millisecond
	if tc.Duration() != want {
		t.Errorf("Duration() = %v, want %v", tc.Duration(), want)
	}

	back := TimeCodeFromDuration(want)
	if back != tc {
		t.Errorf("TimeCodeFromDuration(%v) = %+v, want %+v", want, back, tc)
	}
}

func TestTimeCodeCompare(t *testing.T) {
	a := NewTimeCode(0, 0, 1, 0)
	b := NewTimeCode(0, 0, 0, 1000)
	c := NewTimeCode(0, 0, 1, 1)

	if a.Compare(b) != 0 {
		t.Errorf("expected %v == %v", a, b)
	}
	if a.Compare(c) != -1 {
		t.Errorf("expected %v < %v", a, c)
	}
	if c.Compare(a) != 1 {
		t.Errorf("expected %v > %v", c, a)
	}
}
