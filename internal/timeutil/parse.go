package timeutil

import (
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/focusquest/internal/apperr"
)

var errParseDate = &apperr.Error{
	Message: "unable to understand the date %q",
}

// FromStr parses a natural-language date such as "7 days ago" or
// "last monday" relative to now. Ambiguous dates resolve to the past.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dps.Past,
	}

	dt, err := dps.Parse(cfg, strings.TrimSpace(s))
	if err != nil || dt.Time.IsZero() {
		return time.Time{}, errParseDate.Fmt(s)
	}

	return dt.Time, nil
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}
