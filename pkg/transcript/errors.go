package transcript

import (
	"errors"
	"fmt"
)

var (
	// ErrTimestamp is matched by every *TimestampError.
	ErrTimestamp = errors.New("invalid timestamp")

	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("invalid UTF-8")
)

// TimestampError reports a header whose timestamp does not match TimestampLayout.
// It aborts the whole parse.
type TimestampError struct {
	Source string
	Line   int
	Token  string
	Err    error
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("%s:%d: parsing timestamp %q: %v", e.Source, e.Line, e.Token, e.Err)
}

func (e *TimestampError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrTimestamp) match.
func (e *TimestampError) Is(target error) bool { return target == ErrTimestamp }

// DecodeError reports a line that is not valid UTF-8.
type DecodeError struct {
	Source string
	Line   int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, ErrDecode)
}

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
