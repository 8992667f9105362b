package transcript

import (
	"strings"
	"time"
)

// TimestampLayout is the Go layout of a header timestamp, e.g. "3/1/2021, 10:15 AM".
const TimestampLayout = "1/2/2006, 3:04 PM"

// TimestampParser parses raw timestamp tokens in a fixed location.
type TimestampParser struct {
	layout   string
	location *time.Location
}

// NewTimestampParser creates a parser for TimestampLayout. A nil location means UTC.
func NewTimestampParser(loc *time.Location) *TimestampParser {
	if loc == nil {
		loc = time.UTC
	}
	return &TimestampParser{
		layout:   TimestampLayout,
		location: loc,
	}
}

// Parse converts a timestamp token to a time. The AM/PM marker may be in
// any case.
func (p *TimestampParser) Parse(token string) (time.Time, error) {
	return time.ParseInLocation(p.layout, strings.ToUpper(token), p.location)
}
