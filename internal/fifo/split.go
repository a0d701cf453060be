package fifo

import (
	"bytes"
	"log/slog"
	"strings"
)

// splitter reassembles lines from arbitrary read chunks.
type splitter struct {
	logger     *slog.Logger
	pending    []byte
	discarding bool
}

func (s *splitter) feed(chunk []byte) []string {
	var lines []string
	for len(chunk) > 0 {
		i := bytes.IndexByte(chunk, '\n')
		if i < 0 {
			s.append(chunk)
			break
		}
		s.append(chunk[:i])
		chunk = chunk[i+1:]
		if s.discarding {
			s.discarding = false
			continue
		}
		if line := strings.TrimSpace(string(s.pending)); line != "" {
			lines = append(lines, line)
		}
		s.pending = s.pending[:0]
	}
	return lines
}

func (s *splitter) append(b []byte) {
	if s.discarding {
		return
	}
	if len(s.pending)+len(b) > MaxLine {
		if s.logger != nil {
			s.logger.Warn("discarding overlong command", "limit", MaxLine)
		}
		s.pending = s.pending[:0]
		s.discarding = true
		return
	}
	s.pending = append(s.pending, b...)
}

// flush returns the unterminated trailing line, if any.
func (s *splitter) flush() (string, bool) {
	discarding := s.discarding
	line := strings.TrimSpace(string(s.pending))
	s.pending = s.pending[:0]
	s.discarding = false
	if discarding || line == "" {
		return "", false
	}
	return line, true
}
