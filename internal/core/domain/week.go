package domain

import (
	"fmt"
	"sort"
	"time"
)

// weekStartLayout is the ISO date form of a week-start key.
const weekStartLayout = "2006-01-02"

// WeekStart returns the week-start key (Monday) for the week containing t.
// Weeks run Monday 00:00 through the following Monday exclusive.
func WeekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0 ... Sunday = 6
	monday := t.AddDate(0, 0, -offset)
	return monday.Format(weekStartLayout)
}

// ParseWeekStart parses a week-start key and verifies it falls on a Monday.
func ParseWeekStart(weekStartDate string) (time.Time, error) {
	t, err := time.Parse(weekStartLayout, weekStartDate)
	if err != nil {
		return time.Time{}, ErrInvalidWeekStart
	}
	if t.Weekday() != time.Monday {
		return time.Time{}, ErrInvalidWeekStart
	}
	return t, nil
}

// NextWeekStart returns the Monday exactly 7 days after the given one.
func NextWeekStart(weekStartDate string) (string, error) {
	t, err := ParseWeekStart(weekStartDate)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, 7).Format(weekStartLayout), nil
}

// PreviousWeekStart returns the Monday exactly 7 days before the given one.
func PreviousWeekStart(weekStartDate string) (string, error) {
	t, err := ParseWeekStart(weekStartDate)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -7).Format(weekStartLayout), nil
}

// AvailableWeeks derives the distinct, ascending week-start keys present
// in the collection. The template sentinel is excluded.
func AvailableWeeks(tasks []Task) []string {
	seen := make(map[string]struct{})
	for _, t := range tasks {
		if t.WeekStartDate == "" || t.WeekStartDate == WeekTemplate {
			continue
		}
		seen[t.WeekStartDate] = struct{}{}
	}
	weeks := make([]string, 0, len(seen))
	for w := range seen {
		weeks = append(weeks, w)
	}
	sort.Strings(weeks)
	return weeks
}

// WeekRange is a week's bounds plus a display label like "Jan 12th - Jan 18th".
type WeekRange struct {
	Start time.Time
	End   time.Time
	Label string
}

// WeekRangeFrom expands a week-start key into its range. End is the
// Sunday closing the week.
func WeekRangeFrom(weekStartDate string) (WeekRange, error) {
	start, err := ParseWeekStart(weekStartDate)
	if err != nil {
		return WeekRange{}, err
	}
	end := start.AddDate(0, 0, 6)
	return WeekRange{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("%s - %s", formatDayOrdinal(start), formatDayOrdinal(end)),
	}, nil
}

// DateForDay resolves a day-of-week within a given week to its date.
func DateForDay(weekStartDate string, day DayOfWeek) (time.Time, error) {
	start, err := ParseWeekStart(weekStartDate)
	if err != nil {
		return time.Time{}, err
	}
	for i, d := range Days {
		if d == day {
			return start.AddDate(0, 0, i), nil
		}
	}
	return time.Time{}, fmt.Errorf("unknown day of week %q", day)
}

// DayOfWeekFromDate maps a date to its planner day name.
func DayOfWeekFromDate(t time.Time) DayOfWeek {
	return Days[(int(t.Weekday())+6)%7]
}

// TimeOfDayFromDate classifies a timestamp into the am/pm half-day.
func TimeOfDayFromDate(t time.Time) TimeOfDay {
	if t.Hour() < 12 {
		return AM
	}
	return PM
}

// WeeksInYear lists every week-start key whose week touches the year,
// starting with the Monday of the week containing January 1st.
func WeeksInYear(year int) []string {
	current := WeekStart(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	weeks := []string{}
	for {
		start, _ := time.Parse(weekStartLayout, current)
		if start.After(yearEnd) {
			break
		}
		weeks = append(weeks, current)
		current = start.AddDate(0, 0, 7).Format(weekStartLayout)
	}
	return weeks
}

// FormatClock renders a timestamp like "6:00am".
func FormatClock(t time.Time) string {
	return t.Format("3:04pm")
}

func formatDayOrdinal(t time.Time) string {
	return fmt.Sprintf("%s %d%s", t.Format("Jan"), t.Day(), ordinalSuffix(t.Day()))
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
