package weekly

import (
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
)

// WeekBounds returns the week ending on the most recent Sunday on or before
// ref, as Monday start and Sunday end (UTC, midnight). A mid-week ref yields
// the previous completed week.
func WeekBounds(ref time.Time) (start, end time.Time) {
	day := Day(ref)
	end = day.AddDate(0, 0, -int(day.Weekday()))
	start = end.AddDate(0, 0, -6)
	return start, end
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDay renders t as a calendar date.
func FormatDay(t time.Time) string {
	return Day(t).Format(models.DateFormat)
}

// IsPastWeek reports whether the week ending at end closed before the week containing now.
func IsPastWeek(end, now time.Time) bool {
	_, currentEnd := WeekBounds(now)
	return Day(end).Before(currentEnd)
}

// xpForLevel is the cumulative XP needed to reach level.
func xpForLevel(level int) int {
	return 50 * level * (level - 1)
}

// LevelForXP inverts the XP curve: the highest level whose threshold xp reaches.
func LevelForXP(xp int) int {
	level := 1
	for xpForLevel(level+1) <= xp {
		level++
	}
	return level
}
