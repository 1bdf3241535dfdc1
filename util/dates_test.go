package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []string{
		"2023-01-15",
		"15-01-2023",
		"2023/01/15",
		"15/01/2023",
		"January 15, 2023",
		"15 January 2023",
		"Jan 15, 2023",
		"15 Jan 2023",
		"  2023-01-15  ",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			got, err := ParseDate(input)
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", input, err)
			}
			if !got.Equal(want) {
				t.Errorf("ParseDate(%q) = %v, want %v", input, got, want)
			}
		})
	}
}

func TestParseDateMonthFirst(t *testing.T) {
	// 01-15-2023 cannot be day-month, so the month-first layout applies.
	got, err := ParseDate("01-15-2023")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	want := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
}

func TestParseDateAmbiguousPrefersDayFirst(t *testing.T) {
	got, err := ParseDate("03-04-2023")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	want := time.Date(2023, time.April, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ambiguous date should parse day-first: got %v, want %v", got, want)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "not a date", "2023-13-45"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseDate(input); err == nil {
				t.Errorf("expected error for %q", input)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			"same day",
			time.Date(2023, 1, 15, 9, 0, 0, 0, time.UTC),
			time.Date(2023, 1, 15, 23, 0, 0, 0, time.UTC),
			0,
		},
		{
			"thirty days ahead",
			time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			30,
		},
		{
			"time of day irrelevant",
			time.Date(2023, 1, 1, 23, 59, 0, 0, time.UTC),
			time.Date(2023, 1, 2, 0, 1, 0, 0, time.UTC),
			1,
		},
		{
			"past date is negative",
			time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			-1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetween(tc.from, tc.to); got != tc.want {
				t.Errorf("DaysBetween = %d, want %d", got, tc.want)
			}
		})
	}
}
