package alert

import "fmt"

// Schedule is an ordered escalation schedule of alert periods, each a count
// of days before expiration. Order is preserved from configuration: the
// first period a contract's remaining days fall within is the one that
// fires, so listing distant tiers first (90,60,30,...) yields exactly one
// alert per contract per cycle.
type Schedule struct {
	periods []int
}

// NewSchedule builds a schedule from alert periods in days. The slice is
// copied; an empty or non-positive period is rejected.
func NewSchedule(periods []int) (Schedule, error) {
	if len(periods) == 0 {
		return Schedule{}, fmt.Errorf("alert schedule needs at least one period")
	}
	out := make([]int, len(periods))
	for i, p := range periods {
		if p <= 0 {
			return Schedule{}, fmt.Errorf("alert period must be positive, got %d", p)
		}
		out[i] = p
	}
	return Schedule{periods: out}, nil
}

// Periods returns a copy of the configured periods in order.
func (s Schedule) Periods() []int {
	out := make([]int, len(s.periods))
	copy(out, s.periods)
	return out
}

// Match returns the first configured period that daysUntil falls within
// (daysUntil <= period), or false when the expiration is still outside
// every tier. Contracts already expired (negative daysUntil) match the
// first tier as well.
func (s Schedule) Match(daysUntil int) (int, bool) {
	for _, p := range s.periods {
		if daysUntil <= p {
			return p, true
		}
	}
	return 0, false
}

// Contains reports whether period is one of the configured tiers.
func (s Schedule) Contains(period int) bool {
	for _, p := range s.periods {
		if p == period {
			return true
		}
	}
	return false
}
