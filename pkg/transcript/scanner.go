package transcript

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// maxLineSize bounds a single physical line.
const maxLineSize = 1024 * 1024

const byteOrderMark = "\ufeff"

// scanState is the state of the line-folding machine.
type scanState int

const (
	// expectingHeader: no message body is open; non-header lines are orphans.
	expectingHeader scanState = iota

	// accumulatingBody: a header with ": " was seen; non-header lines extend its body.
	accumulatingBody
)

// lineScanner folds physical lines into records.
type lineScanner struct {
	opts    *options
	state   scanState
	result  *ScanResult
	pending Record
	body    []string
}

// Scan runs the first pass over r: it classifies each line, extracts the
// fields of every header line, and folds continuation lines into message
// bodies. Exactly one Record is produced per header line.
//
// Malformed header lines never fail the scan. Missing fields are left empty
// and counted in Stats. Read and decode errors are returned as-is.
func Scan(ctx context.Context, r io.Reader, opts ...Option) (*ScanResult, error) {
	o := newOptions(opts)
	s := &lineScanner{
		opts:   o,
		result: &ScanResult{Source: o.source},
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s.result.Stats.Lines++
		lineNum := s.result.Stats.Lines

		raw := scanner.Bytes()
		if !utf8.Valid(raw) {
			return nil, &DecodeError{Source: o.source, Line: lineNum}
		}

		line := strings.TrimSuffix(string(raw), "\r")
		if lineNum == 1 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}
		s.feed(lineNum, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", o.source, err)
	}

	// End of input closes any open body.
	s.flush()

	o.logger.Debug("scan complete",
		zap.String("source", o.source),
		zap.Int("lines", s.result.Stats.Lines),
		zap.Int("records", len(s.result.Records)))

	return s.result, nil
}

func (s *lineScanner) feed(lineNum int, line string) {
	stats := &s.result.Stats

	switch {
	case IsHeaderLine(line):
		s.flush()
		s.startRecord(lineNum, line)
	case line == "":
		stats.BlankLines++
	case s.state == accumulatingBody:
		stats.ContinuationLines++
		s.body = append(s.body, line)
	default:
		stats.OrphanLines++
		s.opts.logger.Debug("line outside any message",
			zap.String("source", s.opts.source),
			zap.Int("line", lineNum))
	}
}

// startRecord extracts the fields of a header line. Each missing field
// defaults to the empty string. Without ": " there is no body to extend, so
// the record is emitted immediately and the machine waits for the next header.
func (s *lineScanner) startRecord(lineNum int, line string) {
	stats := &s.result.Stats
	stats.HeaderLines++

	rec := Record{Line: lineNum}

	ts, ok := ExtractTimestamp(line)
	if !ok {
		stats.MissingTimestamp++
		s.opts.logger.Debug("header without timestamp separator",
			zap.String("source", s.opts.source),
			zap.Int("line", lineNum))
	}
	rec.Timestamp = ts

	sender, ok := ExtractSender(line)
	if !ok {
		stats.MissingSender++
	}
	rec.Sender = sender

	body, ok := ExtractBody(line)
	if !ok {
		stats.MissingBody++
		s.opts.logger.Debug("header without message body",
			zap.String("source", s.opts.source),
			zap.Int("line", lineNum))
		s.result.Records = append(s.result.Records, rec)
		s.state = expectingHeader
		return
	}

	s.pending = rec
	s.body = append(s.body[:0], body)
	s.state = accumulatingBody
}

// flush emits the pending record if a body is open.
func (s *lineScanner) flush() {
	if s.state != accumulatingBody {
		return
	}
	s.pending.Message = foldBody(s.body)
	s.result.Records = append(s.result.Records, s.pending)

	s.pending = Record{}
	s.body = s.body[:0]
	s.state = expectingHeader
}

// foldBody joins body lines with single spaces. No newline survives.
func foldBody(lines []string) string {
	return strings.ReplaceAll(strings.Join(lines, " "), "\n", " ")
}
