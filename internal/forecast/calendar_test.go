package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCalendar_StartsAtCurrentWeek(t *testing.T) {
	now := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC) // ISO week 10

	weeks := GenerateCalendar(now)
	require.NotEmpty(t, weeks)

	assert.Equal(t, WeekLabel("CW10-2025"), weeks[0])
}

func TestGenerateCalendar_SortedAndDeduplicated(t *testing.T) {
	now := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	weeks := GenerateCalendar(now)
	require.NotEmpty(t, weeks)

	seen := make(map[WeekLabel]struct{})
	for i, w := range weeks {
		_, dup := seen[w]
		assert.False(t, dup, "duplicate week %s", w)
		seen[w] = struct{}{}

		if i > 0 {
			assert.True(t, weeks[i-1].Before(w), "weeks out of order: %s before %s", weeks[i-1], w)
		}
	}
}

func TestGenerateCalendar_ExcludesWeek53(t *testing.T) {
	// 2026 is a 53-week ISO year; a horizon starting in 2026 passes through it.
	now := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)

	for _, w := range GenerateCalendar(now) {
		_, week, ok := w.Parse()
		require.True(t, ok)
		assert.NotEqual(t, 53, week, "week 53 must be excluded, got %s", w)
	}
}

func TestWeekLabel_Parse(t *testing.T) {
	year, week, ok := WeekLabel("CW05-2025").Parse()
	require.True(t, ok)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 5, week)

	for _, bad := range []WeekLabel{"", "CW-2025", "2025-05", "CWxx-2025", "CW99-2025"} {
		_, _, ok := bad.Parse()
		assert.False(t, ok, "expected parse failure for %q", bad)
	}
}

func TestWeekLabel_WeekStart(t *testing.T) {
	start, ok := WeekLabel("CW20-2025").WeekStart()
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Monday, start.Weekday())

	// Week 1 of 2026 starts in the previous calendar year.
	start, ok = WeekLabel("CW01-2026").WeekStart()
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC), start)

	_, ok = WeekLabel("garbage").WeekStart()
	assert.False(t, ok)
}

func TestNextWeeks_RollsIntoNextYear(t *testing.T) {
	now := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC) // ISO week 50

	weeks := NextWeeks(now, 5)
	assert.Equal(t, []WeekLabel{
		"CW50-2025", "CW51-2025", "CW52-2025", "CW01-2026", "CW02-2026",
	}, weeks)
}
