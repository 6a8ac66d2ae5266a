// Package week resolves the calendar week a generation batch targets.
//
// Menus are generated on Saturdays. The Saturday/Sunday pair is the
// modification window, Monday to Friday is the delivery week.
package week

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Window is the Monday-Sunday week a batch generates menus for.
type Window struct {
	Reference time.Time // the generation Saturday
	Monday    time.Time
	Sunday    time.Time
}

// WeekStart is Monday formatted as YYYY-MM-DD.
func (w Window) WeekStart() string { return w.Monday.Format(DateLayout) }

// WeekEnd is Sunday formatted as YYYY-MM-DD.
func (w Window) WeekEnd() string { return w.Sunday.Format(DateLayout) }

// Date returns the calendar date of a day number (1 = Monday).
func (w Window) Date(dayNumber int) time.Time {
	return w.Monday.AddDate(0, 0, dayNumber-1)
}

// Override carries explicitly requested bounds. Zero values mean "not given".
type Override struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether no bound was given.
func (o Override) IsZero() bool {
	return o.Start.IsZero() && o.End.IsZero()
}

// ParseOverride parses optional YYYY-MM-DD bounds.
func ParseOverride(weekStart, weekEnd string) (Override, error) {
	var o Override
	var err error
	if s := strings.TrimSpace(weekStart); s != "" {
		if o.Start, err = time.Parse(DateLayout, s); err != nil {
			return Override{}, fmt.Errorf("invalid week_start %q: expected YYYY-MM-DD", weekStart)
		}
	}
	if s := strings.TrimSpace(weekEnd); s != "" {
		if o.End, err = time.Parse(DateLayout, s); err != nil {
			return Override{}, fmt.Errorf("invalid week_end %q: expected YYYY-MM-DD", weekEnd)
		}
	}
	if !o.Start.IsZero() && !o.End.IsZero() && o.End.Before(o.Start) {
		return Override{}, fmt.Errorf("week_end %s is before week_start %s", weekEnd, weekStart)
	}
	return o, nil
}

// Resolve computes the target window for "now", honouring an override when present.
func Resolve(now time.Time, override Override) Window {
	if override.IsZero() {
		saturday := NextSaturday(now)
		monday := saturday.AddDate(0, 0, -5)
		return Window{
			Reference: saturday,
			Monday:    monday,
			Sunday:    monday.AddDate(0, 0, 6),
		}
	}

	var monday, sunday time.Time
	switch {
	case !override.Start.IsZero():
		monday = dateOf(override.Start)
		sunday = monday.AddDate(0, 0, 6)
		if !override.End.IsZero() {
			sunday = dateOf(override.End)
		}
	default:
		sunday = dateOf(override.End)
		monday = sunday.AddDate(0, 0, -6)
	}
	return Window{
		Reference: monday.AddDate(0, 0, 5),
		Monday:    monday,
		Sunday:    sunday,
	}
}

// NextSaturday returns the date of the coming Saturday, or today when today is Saturday.
func NextSaturday(now time.Time) time.Time {
	today := dateOf(now)
	offset := (int(time.Saturday) - int(today.Weekday()) + 7) % 7
	return today.AddDate(0, 0, offset)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
