package casedoc

import (
	"fmt"
	"time"
)

var eventTimeLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339Nano,
	time.RFC3339,
}

// ParseEventTime parses the timestamp format the case store emits on events
// and requested-document deadlines.
func ParseEventTime(value string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable event timestamp %q", value)
}

// ParseEventDate parses the date-only fields (due dates, periods, deadlines).
func ParseEventDate(value string) (time.Time, error) {
	ts, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable event date %q", value)
	}
	return ts.UTC(), nil
}
