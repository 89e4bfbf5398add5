package dateutil

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2000, time.February, 29}, // divisible by 400
		{1900, time.February, 28}, // divisible by 100 but not 400
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestFormatKey(t *testing.T) {
	if got := FormatKey(2024, time.January, 5); got != "2024-01-05" {
		t.Errorf("FormatKey = %q, want 2024-01-05", got)
	}
	if got := FormatKey(2024, time.December, 31); got != "2024-12-31" {
		t.Errorf("FormatKey = %q, want 2024-12-31", got)
	}
}

func TestParseKey(t *testing.T) {
	got, err := ParseKey("2024-02-29")
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseKey = %v, want %v", got, want)
	}

	if _, err := ParseKey("not-a-date"); err == nil {
		t.Error("ParseKey accepted malformed key")
	}
	if _, err := ParseKey("2024-13-01"); err == nil {
		t.Error("ParseKey accepted month 13")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "one day apart",
			a:    time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "negative when b is later",
			a:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
			want: -3,
		},
		{
			name: "time of day is stripped",
			a:    time.Date(2024, 1, 17, 23, 59, 59, 0, time.UTC),
			b:    time.Date(2024, 1, 16, 0, 0, 1, 0, time.UTC),
			want: 1,
		},
		{
			name: "across month boundary",
			a:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 2, 28, 22, 0, 0, 0, time.UTC),
			want: 2, // 2024 is a leap year
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMonthPrefix(t *testing.T) {
	if got := MonthPrefix(2024, time.March); got != "2024-03" {
		t.Errorf("MonthPrefix = %q, want 2024-03", got)
	}
}
