package alert

import (
	"reflect"
	"testing"
)

func TestNewSchedule(t *testing.T) {
	s, err := NewSchedule([]int{90, 60, 30, 14, 7})
	if err != nil {
		t.Fatalf("NewSchedule failed: %v", err)
	}
	if want := []int{90, 60, 30, 14, 7}; !reflect.DeepEqual(s.Periods(), want) {
		t.Errorf("Periods() = %v, want %v", s.Periods(), want)
	}
}

func TestNewScheduleRejectsBadInput(t *testing.T) {
	if _, err := NewSchedule(nil); err == nil {
		t.Error("expected error for empty schedule")
	}
	if _, err := NewSchedule([]int{90, 0}); err == nil {
		t.Error("expected error for non-positive period")
	}
}

func TestNewScheduleCopiesInput(t *testing.T) {
	periods := []int{90, 60, 30}
	s, err := NewSchedule(periods)
	if err != nil {
		t.Fatalf("NewSchedule failed: %v", err)
	}
	periods[0] = 1
	if s.Periods()[0] != 90 {
		t.Error("schedule must not alias the caller's slice")
	}
}

func TestScheduleMatch(t *testing.T) {
	s, err := NewSchedule([]int{90, 60, 30, 14, 7})
	if err != nil {
		t.Fatalf("NewSchedule failed: %v", err)
	}

	tests := []struct {
		name       string
		daysUntil  int
		wantPeriod int
		wantMatch  bool
	}{
		{"outside all tiers", 120, 0, false},
		{"exactly at first tier", 90, 90, true},
		{"between tiers matches first", 75, 90, true},
		{"well inside", 10, 90, true},
		{"already expired", -3, 90, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			period, ok := s.Match(tc.daysUntil)
			if ok != tc.wantMatch {
				t.Fatalf("Match(%d) ok = %v, want %v", tc.daysUntil, ok, tc.wantMatch)
			}
			if ok && period != tc.wantPeriod {
				t.Errorf("Match(%d) = %d, want %d", tc.daysUntil, period, tc.wantPeriod)
			}
		})
	}
}

func TestScheduleContains(t *testing.T) {
	s, err := NewSchedule([]int{90, 60, 30})
	if err != nil {
		t.Fatalf("NewSchedule failed: %v", err)
	}
	if !s.Contains(60) {
		t.Error("expected Contains(60) to be true")
	}
	if s.Contains(45) {
		t.Error("expected Contains(45) to be false")
	}
}
