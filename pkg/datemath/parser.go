package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DayLayout is the day key format used by memory and reports.
const DayLayout = "2006-01-02"

var ErrUnrecognized = errors.New("datemath: unrecognized date")

var daysAgoRe = regexp.MustCompile(`^(\d+) (day|days) ago$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Resolver turns operator date input into day keys in one timezone.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for loc. A nil loc means UTC.
func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{location: loc}
}

// Day resolves input relative to now. It accepts a YYYY-MM-DD key, "today",
// "yesterday" (also "hari ini" and "semalam"), "N days ago" and
// "last <weekday>". Empty input resolves to "" so callers keep their default.
func (r *Resolver) Day(input string, now time.Time) (string, error) {
	s := strings.ToLower(strings.Join(strings.Fields(input), " "))
	if s == "" {
		return "", nil
	}
	if t, err := time.ParseInLocation(DayLayout, s, r.location); err == nil {
		return t.Format(DayLayout), nil
	}

	today := r.startOfDay(now)
	switch s {
	case "today", "hari ini":
		return today.Format(DayLayout), nil
	case "yesterday", "semalam":
		return today.AddDate(0, 0, -1).Format(DayLayout), nil
	}

	if m := daysAgoRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrUnrecognized, input)
		}
		return today.AddDate(0, 0, -n).Format(DayLayout), nil
	}

	if name, ok := strings.CutPrefix(s, "last "); ok {
		wd, ok := weekdays[name]
		if !ok {
			return "", fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, name)
		}
		back := int(today.Weekday() - wd)
		if back <= 0 {
			back += 7
		}
		return today.AddDate(0, 0, -back).Format(DayLayout), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnrecognized, input)
}

// startOfDay returns midnight of t's day in the resolver's timezone.
func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}
