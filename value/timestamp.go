package value

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// DefaultHourThreshold is how many hours a day/hour stamp may sit away from
// now before it is assumed to belong to the previous or next month.
const DefaultHourThreshold = 200

// ErrMalformedTimestamp is returned for stamps not in ddhhZ or ddhhmmZ form.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// Timestamp keeps the report text of a time and, when it could be resolved,
// the point in time it refers to. A nil Time means unknown.
type Timestamp struct {
	Repr string     `json:"repr" yaml:"repr"`
	Time *time.Time `json:"time" yaml:"time"`
}

// Resolved reports whether the stamp refers to a known point in time.
func (t Timestamp) Resolved() bool {
	return t.Time != nil
}

// ParseDate resolves a ddhhZ or ddhhmmZ stamp against now. The month and year
// come from now unless the result lands more than hourThreshold hours away,
// in which case the neighbouring month is used.
func ParseDate(date string, now time.Time, hourThreshold int) (time.Time, error) {
	date = strings.Trim(date, "Z")
	if len(date) == 4 {
		date += "00"
	}
	if len(date) != 6 || !isDigits(date) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, date)
	}
	day, _ := strconv.Atoi(date[0:2])
	hour, _ := strconv.Atoi(date[2:4])
	minute, _ := strconv.Atoi(date[4:6])
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: day %d out of range", ErrMalformedTimestamp, day)
	}

	now = now.UTC()
	build := func(monthOffset int) time.Time {
		t := time.Date(now.Year(), now.Month()+time.Month(monthOffset), day, hour%24, minute%60, 0, 0, time.UTC)
		// 24 closes a forecast period: midnight at the end of that day.
		if hour == 24 {
			t = t.AddDate(0, 0, 1)
		}
		return t
	}

	guess := build(0)
	diff := guess.Sub(now).Hours()
	switch {
	case diff > float64(hourThreshold):
		guess = build(-1)
	case diff < -float64(hourThreshold):
		guess = build(1)
	}
	return guess, nil
}

// MakeTimestamp wraps ParseDate; a stamp that cannot be resolved keeps its
// text with a nil Time.
func MakeTimestamp(repr string, now time.Time, hourThreshold int) Timestamp {
	ts := Timestamp{Repr: repr}
	if repr == "" {
		return ts
	}
	t, err := ParseDate(repr, now, hourThreshold)
	if err != nil {
		slog.Debug("unresolved timestamp", "repr", repr, "error", err)
		return ts
	}
	ts.Time = &t
	return ts
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
