package fifo

import (
	"strings"
	"testing"
)

func TestSplitterJoinsChunks(t *testing.T) {
	sp := &splitter{}

	if got := sp.feed([]byte("vol-")); len(got) != 0 {
		t.Fatalf("feed = %v, want none", got)
	}
	got := sp.feed([]byte("up\nbrightness-down\nvol"))
	if strings.Join(got, ",") != "vol-up,brightness-down" {
		t.Fatalf("feed = %v", got)
	}
	got = sp.feed([]byte("-down\n"))
	if strings.Join(got, ",") != "vol-down" {
		t.Fatalf("feed = %v", got)
	}
}

func TestSplitterSkipsBlankLinesAndTrims(t *testing.T) {
	sp := &splitter{}

	got := sp.feed([]byte("\n\n  vol-up \r\n\n"))
	if len(got) != 1 || got[0] != "vol-up" {
		t.Fatalf("feed = %q", got)
	}
}

func TestSplitterDiscardsOverlongLine(t *testing.T) {
	sp := &splitter{}

	long := strings.Repeat("x", MaxLine+1)
	if got := sp.feed([]byte(long)); len(got) != 0 {
		t.Fatalf("feed = %v, want none", got)
	}
	got := sp.feed([]byte("tail\nvol-up\n"))
	if len(got) != 1 || got[0] != "vol-up" {
		t.Fatalf("feed = %v", got)
	}
}

func TestSplitterAcceptsLineAtLimit(t *testing.T) {
	sp := &splitter{}

	line := strings.Repeat("y", MaxLine)
	got := sp.feed([]byte(line + "\n"))
	if len(got) != 1 || got[0] != line {
		t.Fatalf("expected line of exactly MaxLine bytes to be accepted")
	}
}

func TestSplitterFlush(t *testing.T) {
	sp := &splitter{}

	sp.feed([]byte("vol-down"))
	line, ok := sp.flush()
	if !ok || line != "vol-down" {
		t.Fatalf("flush = %q %v", line, ok)
	}
	if _, ok := sp.flush(); ok {
		t.Fatalf("second flush should be empty")
	}

	sp.feed([]byte(strings.Repeat("z", MaxLine+5)))
	if _, ok := sp.flush(); ok {
		t.Fatalf("flush after overlong input should be empty")
	}
	got := sp.feed([]byte("ok\n"))
	if len(got) != 1 || got[0] != "ok" {
		t.Fatalf("feed after flush = %v", got)
	}
}
