package utils

import "time"

// UpcomingWeekdays returns the dates in [from+1 day, from+days] that fall on Monday to Friday.
func UpcomingWeekdays(from time.Time, days int) []time.Time {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	weekdays := make([]time.Time, 0, days)
	for i := 1; i <= days; i++ {
		day := start.AddDate(0, 0, i)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		weekdays = append(weekdays, day)
	}
	return weekdays
}
