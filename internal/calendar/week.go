// Package calendar computes the weekly windows used by catalog queries.
package calendar

import (
	"time"

	"saisonnalite/internal/models"
)

// Week is an inclusive 7-day window starting on a configured weekday.
type Week struct {
	Start models.Date `json:"start"`
	End   models.Date `json:"end"`
}

// WeekOf returns the week containing ref, where weeks begin on startDay.
// The window always spans exactly 7 consecutive calendar days.
func WeekOf(ref time.Time, startDay time.Weekday) Week {
	day := models.DateOf(ref)
	// Days since the most recent startDay, in [0, 6].
	back := (int(day.Weekday()) - int(startDay) + 7) % 7
	start := day.AddDays(-back)
	return Week{
		Start: start,
		End:   start.AddDays(6),
	}
}

// Days lists the 7 dates of the window in order.
func (w Week) Days() []models.Date {
	days := make([]models.Date, 7)
	for i := range days {
		days[i] = w.Start.AddDays(i)
	}
	return days
}

// Contains reports whether d falls inside the window.
func (w Week) Contains(d models.Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}
