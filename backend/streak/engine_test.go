package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ineverydomain/exam-tracker/backend/models"
)

var now = time.Date(2025, time.December, 15, 10, 30, 0, 0, time.UTC)

func stamped(daysAgo int) string {
	return now.AddDate(0, 0, -daysAgo).Format(time.RFC3339)
}

func TestGapCheckNoopWhenMaintained(t *testing.T) {
	for _, lastChecked := range []string{stamped(0), stamped(1)} {
		state := models.StudyStreak{Current: 5, LastCheckedDate: lastChecked}
		next, changed := GapCheck(state, now)
		assert.False(t, changed)
		assert.Equal(t, state, next)
	}
}

func TestGapCheckResetsAfterMissedDays(t *testing.T) {
	state := models.StudyStreak{Current: 5, LastCheckedDate: stamped(3)}
	next, changed := GapCheck(state, now)
	assert.True(t, changed)
	assert.Equal(t, 0, next.Current)
	// The check-in date is left alone so a later check-in today can still
	// start a new streak.
	assert.Equal(t, state.LastCheckedDate, next.LastCheckedDate)
}

func TestGapCheckIdempotent(t *testing.T) {
	state := models.StudyStreak{Current: 5, LastCheckedDate: stamped(3)}
	first, _ := GapCheck(state, now)
	second, changed := GapCheck(first, now)
	assert.False(t, changed)
	assert.Equal(t, first, second)
}

func TestGapCheckSkipsEmptyAndZero(t *testing.T) {
	_, changed := GapCheck(models.StudyStreak{Current: 5}, now)
	assert.False(t, changed)

	_, changed = GapCheck(models.StudyStreak{Current: 0, LastCheckedDate: stamped(4)}, now)
	assert.False(t, changed)
}

func TestAffirmativeExtendsFromYesterday(t *testing.T) {
	state := models.StudyStreak{Current: 5, LastCheckedDate: stamped(1)}
	next, result := CheckIn(state, true, now)
	assert.Equal(t, Extended, result)
	assert.Equal(t, 6, next.Current)
	assert.Equal(t, now.Format(time.RFC3339), next.LastCheckedDate)
}

func TestAffirmativeAfterGapStartsAtOne(t *testing.T) {
	state := models.StudyStreak{Current: 5, LastCheckedDate: stamped(3)}
	afterGap, _ := GapCheck(state, now)
	assert.Equal(t, 0, afterGap.Current)

	next, result := CheckIn(afterGap, true, now)
	assert.Equal(t, Started, result)
	assert.Equal(t, 1, next.Current)
	assert.Equal(t, now.Format(time.RFC3339), next.LastCheckedDate)
}

func TestAffirmativeFirstEver(t *testing.T) {
	next, result := CheckIn(models.StudyStreak{}, true, now)
	assert.Equal(t, Started, result)
	assert.Equal(t, 1, next.Current)
}

func TestAffirmativeSameDayIsNoop(t *testing.T) {
	state := models.StudyStreak{Current: 3, LastCheckedDate: stamped(0)}
	next, result := CheckIn(state, true, now)
	assert.Equal(t, AlreadyRecorded, result)
	assert.Equal(t, state, next)
}

func TestNegativeAlwaysResets(t *testing.T) {
	cases := []models.StudyStreak{
		{},
		{Current: 12, LastCheckedDate: stamped(1)},
		{Current: 3, LastCheckedDate: stamped(0)}, // same-day affirmative already recorded
	}
	for _, state := range cases {
		next, result := CheckIn(state, false, now)
		assert.Equal(t, Cleared, result)
		assert.Equal(t, 0, next.Current)
		assert.Equal(t, now.Format(time.RFC3339), next.LastCheckedDate)
	}
}

func TestNegativeThenAffirmativeSameDayIsNoop(t *testing.T) {
	// After a same-day "no", the date is stamped today, so a follow-up "yes"
	// cannot undo it.
	cleared, _ := CheckIn(models.StudyStreak{Current: 4, LastCheckedDate: stamped(1)}, false, now)
	next, result := CheckIn(cleared, true, now)
	assert.Equal(t, AlreadyRecorded, result)
	assert.Equal(t, 0, next.Current)
}

func TestLegacyDateOnlyStamp(t *testing.T) {
	// Older documents stored bare YYYY-MM-DD check-in dates.
	state := models.StudyStreak{Current: 2, LastCheckedDate: "2025-12-14"}
	next, result := CheckIn(state, true, now)
	assert.Equal(t, Extended, result)
	assert.Equal(t, 3, next.Current)

	stale := models.StudyStreak{Current: 2, LastCheckedDate: "2025-12-01"}
	reset, changed := GapCheck(stale, now)
	assert.True(t, changed)
	assert.Equal(t, 0, reset.Current)
}

func TestUnparseableStampIgnored(t *testing.T) {
	state := models.StudyStreak{Current: 2, LastCheckedDate: "not a date"}
	_, changed := GapCheck(state, now)
	assert.False(t, changed)

	next, result := CheckIn(state, true, now)
	assert.Equal(t, Started, result)
	assert.Equal(t, 1, next.Current)
}
