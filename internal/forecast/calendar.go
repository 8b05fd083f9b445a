package forecast

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// WeekLabel identifies one ISO calendar week, formatted "CW05-2025". Labels
// order by (year, week number), not lexically.
type WeekLabel string

// MakeWeekLabel builds the canonical label for an ISO (year, week) pair.
func MakeWeekLabel(year, week int) WeekLabel {
	return WeekLabel(fmt.Sprintf("CW%02d-%04d", week, year))
}

// WeekLabelFor returns the label of the ISO week containing t.
func WeekLabelFor(t time.Time) WeekLabel {
	year, week := t.ISOWeek()
	return MakeWeekLabel(year, week)
}

// Parse extracts the ISO year and week number from the label. ok is false
// for malformed labels; callers are expected to degrade, not fail.
func (w WeekLabel) Parse() (year, week int, ok bool) {
	s := string(w)
	if len(s) < 9 || s[:2] != "CW" {
		return 0, 0, false
	}

	week, err := strconv.Atoi(s[2:4])
	if err != nil {
		return 0, 0, false
	}
	year, err = strconv.Atoi(s[len(s)-4:])
	if err != nil {
		return 0, 0, false
	}
	if week < 1 || week > 53 {
		return 0, 0, false
	}
	return year, week, true
}

// Before reports whether w falls strictly before other in calendar order.
// Unparseable labels sort first.
func (w WeekLabel) Before(other WeekLabel) bool {
	wy, ww, wok := w.Parse()
	oy, ow, ook := other.Parse()
	if !wok || !ook {
		return !wok && ook
	}
	if wy != oy {
		return wy < oy
	}
	return ww < ow
}

// WeekStart returns the Monday of the label's ISO week.
func (w WeekLabel) WeekStart() (time.Time, bool) {
	year, week, ok := w.Parse()
	if !ok {
		return time.Time{}, false
	}

	// January 4 is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := int(jan4.Weekday())
	if offset == 0 {
		offset = 7 // Sunday
	}
	monday := jan4.AddDate(0, 0, 1-offset)
	return monday.AddDate(0, 0, (week-1)*7), true
}

// GenerateCalendar produces the ordered, deduplicated week labels covering
// now through the end of the year two years out. Week 53 is excluded so every
// year contributes exactly one 52-week cycle. The raw 7-day strides can land
// in the same ISO week near year boundaries and yield out-of-order
// (year, week) pairs, hence the dedupe and final sort.
func GenerateCalendar(now time.Time) []WeekLabel {
	end := time.Date(now.Year()+2, time.December, 31, 0, 0, 0, 0, now.Location())

	seen := make(map[WeekLabel]struct{})
	for d := now; !d.After(end); d = d.AddDate(0, 0, 7) {
		year, week := d.ISOWeek()
		if week == 53 {
			continue
		}
		seen[MakeWeekLabel(year, week)] = struct{}{}
	}

	weeks := make([]WeekLabel, 0, len(seen))
	for w := range seen {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })
	return weeks
}

// NextWeeks returns the n week labels starting at the current ISO week of
// now, rolling week numbers past 52 into week 1 of the following year. Used
// for the forward demand rollups.
func NextWeeks(now time.Time, n int) []WeekLabel {
	year, week := now.ISOWeek()

	labels := make([]WeekLabel, 0, n)
	for i := 0; i < n; i++ {
		if week > 52 {
			week = 1
			year++
		}
		labels = append(labels, MakeWeekLabel(year, week))
		week++
	}
	return labels
}
