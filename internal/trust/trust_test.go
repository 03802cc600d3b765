package trust

import (
	"strings"
	"testing"
)

type bufSink struct {
	lines []string
}

func (b *bufSink) WriteString(s string) {
	b.lines = append(b.lines, s)
}

func TestSprintfVerbs(t *testing.T) {
	cases := []struct {
		format string
		args   []interface{}
		want   string
	}{
		{"hello", nil, "hello"},
		{"%s world", []interface{}{"hello"}, "hello world"},
		{"%d items", []interface{}{7}, "7 items"},
		{"%d items", []interface{}{-3}, "-3 items"},
		{"0x%x", []interface{}{uint32(0xDEADBEEF)}, "0xdeadbeef"},
		{"current=%t", []interface{}{true}, "current=true"},
		{"current=%t", []interface{}{false}, "current=false"},
		{"100%%", nil, "100%"},
	}
	for _, c := range cases {
		got := sprintf(c.format, c.args...)
		if got != c.want {
			t.Errorf("sprintf(%q, %v) = %q, want %q", c.format, c.args, got, c.want)
		}
	}
}

func TestLogfRespectsLevelMask(t *testing.T) {
	prev := SetLevel(ErrorMask)
	defer SetLevel(prev)

	sinkPrev := SetSink(nil)
	defer SetSink(sinkPrev)

	buf := &bufSink{}
	SetSink(buf)

	Debugf("should be dropped")
	if len(buf.lines) != 0 {
		t.Fatalf("debug message was not masked: %v", buf.lines)
	}

	Errorf("boom %d", 42)
	if len(buf.lines) != 1 {
		t.Fatalf("expected one error line, got %d", len(buf.lines))
	}
	if !strings.HasPrefix(buf.lines[0], "ERROR: boom 42") {
		t.Errorf("unexpected line: %q", buf.lines[0])
	}
}

func TestScopedLoggerTagsLines(t *testing.T) {
	prev := SetLevel(InfoMask)
	defer SetLevel(prev)
	sinkPrev := SetSink(nil)
	defer SetSink(sinkPrev)

	buf := &bufSink{}
	SetSink(buf)

	log := Scoped("sched")
	log.Infof("yielded")
	if len(buf.lines) != 1 || !strings.HasPrefix(buf.lines[0], "INFO[sched]: yielded") {
		t.Errorf("unexpected line(s): %v", buf.lines)
	}
}

func TestFatalIsNeverMasked(t *testing.T) {
	prev := SetLevel(Nothing)
	defer SetLevel(prev)
	sinkPrev := SetSink(nil)
	defer SetSink(sinkPrev)

	buf := &bufSink{}
	SetSink(buf)

	Fatalf("panic: %s", "oops")
	if len(buf.lines) != 1 {
		t.Fatalf("fatal message was masked: %v", buf.lines)
	}
}
