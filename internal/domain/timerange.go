package domain

import "time"

// DayWindow returns the inclusive bounds of date's calendar day in date's
// location: [00:00:00.000, 23:59:59.999].
func DayWindow(date time.Time) (from, to time.Time) {
	y, m, d := date.Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	to = from.AddDate(0, 0, 1).Add(-time.Millisecond)
	return from, to
}

// WeekWindow returns the inclusive bounds of the Monday-to-Sunday week
// containing date, in date's location. A date falling on Sunday closes the
// week that began the preceding Monday.
func WeekWindow(date time.Time) (from, to time.Time) {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset = 6 // Sunday
	}
	from = day.AddDate(0, 0, -offset)
	to = from.AddDate(0, 0, 7).Add(-time.Millisecond)
	return from, to
}
