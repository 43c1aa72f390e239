package models

import "time"

// UsageDayFormat is the calendar-day key layout of the daily usage map.
const UsageDayFormat = "2006-01-02"

// UsageDay converts a point in time into the calendar-day key used by the
// daily usage store ("YYYY-MM-DD" in local time).
func UsageDay(t time.Time) string {
	return t.Format(UsageDayFormat)
}

// DailyUsage maps a calendar day to the accumulated milliseconds of active
// session time on that day. Values only ever grow within a day.
type DailyUsage map[string]int64

// Today returns the accumulated active time for the day containing now.
func (u DailyUsage) Today(now time.Time) time.Duration {
	return time.Duration(u[UsageDay(now)]) * time.Millisecond
}
