package daterange

import "time"

const daysPerWeek = 7

// MonthGrid produces the calendar weeks covering every day of month,
// padded with adjacent-month days so each row starts on weekStartsOn
// (0 Sunday, 1 Monday). Generation stops with the week containing the
// month's last day; no trailing next-month weeks are emitted.
func MonthGrid(month time.Time, weekStartsOn int) [][]time.Time {
	if weekStartsOn != 0 && weekStartsOn != 1 {
		weekStartsOn = 0
	}

	first := MonthStart(month)
	last := first.AddDate(0, 1, -1)

	offset := (int(first.Weekday()) - weekStartsOn + daysPerWeek) % daysPerWeek
	day := first.AddDate(0, 0, -offset)

	var weeks [][]time.Time
	for {
		week := make([]time.Time, 0, daysPerWeek)
		for i := 0; i < daysPerWeek; i++ {
			week = append(week, day)
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)

		if day.After(last) {
			return weeks
		}
	}
}

// WeekdayLabels returns two-letter weekday headers rotated to the
// configured week start.
func WeekdayLabels(weekStartsOn int) []string {
	if weekStartsOn != 0 && weekStartsOn != 1 {
		weekStartsOn = 0
	}

	labels := make([]string, 0, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		weekday := time.Weekday((i + weekStartsOn) % daysPerWeek)
		labels = append(labels, weekday.String()[:2])
	}
	return labels
}
