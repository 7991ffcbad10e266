package engine

import "time"

// TimeManager tracks the wall-clock deadline for one move-selection call.
// The deadline is computed once in Start and is read-only afterwards; TimeUp
// latches, so once the deadline has been observed as passed every later check
// within the same call reports true until the next Start.
type TimeManager struct {
	startTime time.Time
	deadline  time.Time
	timeUp    bool
}

// NewTimeManager creates a time manager. Start must be called before use.
func NewTimeManager() *TimeManager {
	return &TimeManager{}
}

// Start resets the manager for a new selection call with the given budget.
func (tm *TimeManager) Start(budget time.Duration) {
	tm.startTime = time.Now()
	tm.deadline = tm.startTime.Add(budget)
	tm.timeUp = false
}

// TimeUp reports whether the deadline has passed. The result latches.
func (tm *TimeManager) TimeUp() bool {
	if tm.timeUp {
		return true
	}
	if time.Now().After(tm.deadline) {
		tm.timeUp = true
	}
	return tm.timeUp
}

// Elapsed returns the time since Start.
func (tm *TimeManager) Elapsed() time.Duration {
	return time.Since(tm.startTime)
}
