package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedNow() time.Time { return time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC) }

func TestStdLogger_TextFormat_SortedKeys(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, App: "healthflow", Output: &buf}).(*StdLogger)
	l.now = fixedNow

	l.Info("chat reply", map[string]any{"source": "fallback"})

	got := strings.TrimSpace(buf.String())
	want := "app=healthflow level=info msg=chat reply source=fallback ts=2024-01-05T10:00:00Z"
	if got != want {
		t.Fatalf("unexpected line:\n got=%q\nwant=%q", got, want)
	}
}

func TestStdLogger_JSONFormat_ErrorsAsStrings(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, Output: &buf})

	l.With(map[string]any{"backend": "anthropic"}).Warn("completion failed", map[string]any{
		"error": errors.New("boom"),
	})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if entry["error"] != "boom" || entry["backend"] != "anthropic" || entry["level"] != "warn" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestStdLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	l.Error("shown", nil)
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Fatalf("expected error line, got %q", buf.String())
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	cases := map[string]Level{"debug": Debug, "": Info, "WARNING": Warn, "error": Error, "nope": Info}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q)=%v want %v", in, got, want)
		}
	}
	if ParseFormat(" JSON ") != FormatJSON || ParseFormat("x") != FormatText {
		t.Fatalf("unexpected ParseFormat result")
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	reqLog := New(Options{Output: &buf}).With(map[string]any{"request_id": "r-1"})

	ctx := WithContext(context.Background(), reqLog)
	FromContext(ctx, Discard()).Info("hello", nil)
	if !strings.Contains(buf.String(), "request_id=r-1") {
		t.Fatalf("expected request logger from context, got %q", buf.String())
	}

	if FromContext(context.Background(), nil) == nil {
		t.Fatalf("expected non-nil fallback logger")
	}
}
