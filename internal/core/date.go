package core

import (
	"fmt"
	"time"
)

// InvalidDate is what an unparseable launch date renders as.
const InvalidDate = "Invalid Date"

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

var floatingLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

const dateOnlyLayout = "2006-01-02"

// ParseLaunchDate reads an ISO-8601 timestamp. Date-times without an offset
// are read in loc; bare dates are UTC midnight.
func ParseLaunchDate(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	for _, layout := range floatingLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}

	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized launch date %q", raw)
}

// FormatLaunchDate renders raw as an en-US short date (M/D/YYYY) in loc.
func FormatLaunchDate(raw string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	t, err := ParseLaunchDate(raw, loc)
	if err != nil {
		return InvalidDate
	}

	t = t.In(loc)
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}
