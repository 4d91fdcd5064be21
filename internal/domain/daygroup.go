package domain

import "time"

// DayGroup is a display grouping of entries sharing a calendar day.
type DayGroup struct {
	Label   string   `json:"label"`
	Date    string   `json:"date"`
	Entries []*Entry `json:"entries"`
}

// GroupEntriesByDay partitions entries into calendar-day groups in now's
// location. Input is expected ordered by start time descending; groups come
// out most-recent-day first, but within each group entries are flipped to
// chronological order so a day reads top-to-bottom like a timeline.
// Labels are "Today", "Yesterday", the weekday name for days within the
// last week, and a short date beyond that.
func GroupEntriesByDay(entries []*Entry, now time.Time) []DayGroup {
	groups := make([]DayGroup, 0)
	for _, e := range entries {
		day := e.StartTime.In(now.Location())
		key := day.Format("2006-01-02")
		if n := len(groups); n > 0 && groups[n-1].Date == key {
			groups[n-1].Entries = append(groups[n-1].Entries, e)
			continue
		}
		groups = append(groups, DayGroup{
			Label:   dayLabel(day, now),
			Date:    key,
			Entries: []*Entry{e},
		})
	}
	for _, g := range groups {
		for i, j := 0, len(g.Entries)-1; i < j; i, j = i+1, j-1 {
			g.Entries[i], g.Entries[j] = g.Entries[j], g.Entries[i]
		}
	}
	return groups
}

func dayLabel(day, now time.Time) string {
	dayStart, _ := DayWindow(day)
	todayStart, _ := DayWindow(now)
	switch {
	case dayStart.Equal(todayStart):
		return "Today"
	case dayStart.Equal(todayStart.AddDate(0, 0, -1)):
		return "Yesterday"
	case dayStart.After(todayStart.AddDate(0, 0, -7)) && dayStart.Before(todayStart):
		return day.Weekday().String()
	default:
		return day.Format("Jan 2, 2006")
	}
}
