package domain

import (
	"sort"
	"time"
)

// VisibleEvents filters to events the user has not hidden.
func VisibleEvents(events []CalendarEvent) []CalendarEvent {
	out := make([]CalendarEvent, 0, len(events))
	for _, e := range events {
		if e.Visible {
			out = append(out, e)
		}
	}
	return out
}

// EventsInWeek returns the events whose start time falls inside the
// given week, Monday 00:00 through the next Monday exclusive.
func EventsInWeek(events []CalendarEvent, weekStartDate string) ([]CalendarEvent, error) {
	start, err := ParseWeekStart(weekStartDate)
	if err != nil {
		return nil, err
	}
	end := start.AddDate(0, 0, 7)

	out := make([]CalendarEvent, 0, len(events))
	for _, e := range events {
		local := e.StartTime.In(start.Location())
		if !local.Before(start) && local.Before(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

// EventsForDayAndTime buckets a week's events into one day/half-day
// cell, sorted by start time.
func EventsForDayAndTime(events []CalendarEvent, weekStartDate string, day DayOfWeek, timeOfDay TimeOfDay) ([]CalendarEvent, error) {
	weekEvents, err := EventsInWeek(events, weekStartDate)
	if err != nil {
		return nil, err
	}

	out := make([]CalendarEvent, 0, len(weekEvents))
	for _, e := range weekEvents {
		if DayOfWeekFromDate(e.StartTime) != day {
			continue
		}
		if TimeOfDayFromDate(e.StartTime) != timeOfDay {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

// EventInWeek reports whether a single timestamp belongs to the week of
// the reference time.
func EventInWeek(eventStart, reference time.Time) bool {
	return WeekStart(eventStart) == WeekStart(reference)
}
