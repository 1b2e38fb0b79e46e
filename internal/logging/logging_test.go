package logging

import (
	"errors"
	"strings"
	"testing"
)

func TestLoggerEmitsLogfmt(t *testing.T) {
	var buf strings.Builder
	logger := New(&buf, Info)
	logger.Info("note saved", Field{Key: "id", Value: int64(7)}, Field{Key: "page", Value: "archive"})

	line := buf.String()
	if !strings.Contains(line, "level=info") {
		t.Fatalf("missing level: %q", line)
	}
	if !strings.Contains(line, "msg=\"note saved\"") {
		t.Fatalf("missing quoted message: %q", line)
	}
	if !strings.Contains(line, "id=7") || !strings.Contains(line, "page=archive") {
		t.Fatalf("missing fields: %q", line)
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf strings.Builder
	logger := New(&buf, Warn)
	logger.Debug("hidden")
	logger.Info("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}
	logger.Error("shown", Field{Key: "err", Value: errors.New("boom")})
	if !strings.Contains(buf.String(), "err=boom") {
		t.Fatalf("expected error field, got %q", buf.String())
	}
}

func TestWithCarriesFields(t *testing.T) {
	var buf strings.Builder
	logger := New(&buf, Info).With(Field{Key: "page", Value: "trash"})
	logger.Info("reloaded")
	if !strings.Contains(buf.String(), "page=trash") {
		t.Fatalf("expected inherited field, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"INFO":    Info,
		"warn":    Warn,
		"warning": Warn,
		"error":   Error,
		"":        Info,
		"bogus":   Info,
	}
	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}
