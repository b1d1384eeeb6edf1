package utils

import (
	"testing"
	"time"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"08:00", 480, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"08:00:30", 480, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClockTime(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClockTime(%q) expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClockTime(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClockTime(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatClockTime(t *testing.T) {
	if got := FormatClockTime(480); got != "08:00" {
		t.Errorf("FormatClockTime(480) = %q, want 08:00", got)
	}
	if got := FormatClockTime(1439); got != "23:59" {
		t.Errorf("FormatClockTime(1439) = %q, want 23:59", got)
	}
}

func TestDayOfWeek(t *testing.T) {
	// 2025-06-01 is a Sunday.
	for offset, want := range []int{0, 1, 2, 3, 4, 5, 6} {
		d := time.Date(2025, 6, 1+offset, 0, 0, 0, 0, time.UTC)
		if got := DayOfWeek(d); got != want {
			t.Errorf("DayOfWeek(%s) = %d, want %d", d.Format("2006-01-02"), got, want)
		}
	}
}
