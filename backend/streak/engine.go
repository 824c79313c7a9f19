// Package streak implements the day-granularity study streak state machine.
// All transitions are pure: they take the current streak state and a clock
// reading, and return the next state. The caller persists the returned state
// as one atomic write; on a failed write the previous state stays in effect.
package streak

import (
	"time"

	"github.com/ineverydomain/exam-tracker/backend/models"
)

// Result describes the outcome of a check-in.
type Result int

const (
	// Started means a new streak began at 1 (first check-in ever, or a
	// check-in after missed days).
	Started Result = iota
	// Extended means yesterday's streak was continued.
	Extended
	// AlreadyRecorded means an affirmative check-in was already logged
	// today; the state was not changed.
	AlreadyRecorded
	// Cleared means a negative check-in reset the streak to zero.
	Cleared
)

// GapCheck resets a streak that was not maintained: if the last check-in day
// is neither today nor yesterday, Current drops to zero. LastCheckedDate is
// left alone so a check-in later the same day can still start a new streak.
// Safe to run any number of times per day; meant to run once per session
// load.
func GapCheck(s models.StudyStreak, now time.Time) (models.StudyStreak, bool) {
	if s.LastCheckedDate == "" || s.Current <= 0 {
		return s, false
	}
	last, ok := lastDay(s.LastCheckedDate, now.Location())
	if !ok {
		return s, false
	}
	today := dayOf(now)
	if last.Equal(today) || last.Equal(today.AddDate(0, 0, -1)) {
		return s, false
	}
	s.Current = 0
	return s, true
}

// CheckIn records the user's once-a-day answer to "did you study today?".
//
// An affirmative answer extends the streak if yesterday was the last check-in,
// starts it at 1 otherwise, and is a no-op if already logged today. A negative
// answer always resets to zero, even over a same-day affirmative; that
// asymmetry (no always wins, yes is idempotent) is deliberate.
func CheckIn(s models.StudyStreak, studied bool, now time.Time) (models.StudyStreak, Result) {
	if !studied {
		s.Current = 0
		s.LastCheckedDate = now.Format(time.RFC3339)
		return s, Cleared
	}

	today := dayOf(now)
	last, ok := lastDay(s.LastCheckedDate, now.Location())
	if ok && last.Equal(today) {
		return s, AlreadyRecorded
	}

	result := Started
	if ok && last.Equal(today.AddDate(0, 0, -1)) {
		s.Current++
		result = Extended
	} else {
		s.Current = 1
	}
	s.LastCheckedDate = now.Format(time.RFC3339)
	return s, result
}

// dayOf truncates a timestamp to its calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// lastDay parses a stored check-in timestamp down to a calendar day in loc.
// Accepts RFC3339 as written by CheckIn and the bare YYYY-MM-DD form found in
// older documents.
func lastDay(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return dayOf(t.In(loc)), true
	}
	if t, err := time.ParseInLocation("2006-01-02", value, loc); err == nil {
		return dayOf(t), true
	}
	return time.Time{}, false
}
