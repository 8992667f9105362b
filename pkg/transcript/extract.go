package transcript

import (
	"regexp"
	"strings"
)

const (
	timestampSeparator = " - "
	bodySeparator      = ": "
)

// senderPattern matches the tail of the "AM - " or "PM - " marker, in
// either case, followed by the sender name up to the first colon.
var senderPattern = regexp.MustCompile(`[Mm] - (.*?):`)

// ExtractTimestamp returns the text before the first " - ".
// The second result is false when the separator is absent.
func ExtractTimestamp(line string) (string, bool) {
	before, _, found := strings.Cut(line, timestampSeparator)
	if !found {
		return "", false
	}
	return before, true
}

// ExtractSender returns the text between "M - " (or "m - ") and the following colon.
// System events ("Alice joined using this group's invite link") have no
// sender and return false.
func ExtractSender(line string) (string, bool) {
	matches := senderPattern.FindStringSubmatch(line)
	if len(matches) < 2 {
		return "", false
	}
	return matches[1], true
}

// ExtractBody returns everything after the first ": ".
func ExtractBody(line string) (string, bool) {
	_, after, found := strings.Cut(line, bodySeparator)
	if !found {
		return "", false
	}
	return after, true
}
