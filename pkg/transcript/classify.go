package transcript

import "regexp"

// headerPattern matches the date and time prefix of a header line,
// e.g. "3/1/2021, 10:15". The AM/PM marker and sender are not required here.
var headerPattern = regexp.MustCompile(`^(?:1[0-2]|0?[1-9])/(?:3[01]|[12][0-9]|0?[1-9])/(?:\d{4}|\d{2}), \d{1,2}:\d{2}`)

// IsHeaderLine reports whether line starts a new message.
// An empty line is never a header.
func IsHeaderLine(line string) bool {
	if line == "" {
		return false
	}
	return headerPattern.MatchString(line)
}
