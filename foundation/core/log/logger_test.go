// File: logger_test.go
// Title: Logger Tests
// Description: Tests for levels, formats, context fields, error logging
//              and timers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Logger tests

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/pascal/foundation/core/error"
)

func newTestLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"off", LevelOff, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"console", FormatConsole, false},
		{"text", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn, FormatLogfmt)

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("Expected no output below warn, got %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), `message="shown"`) {
		t.Errorf("Expected warn entry, got %q", buf.String())
	}
}

func TestOffLevelDropsEverything(t *testing.T) {
	logger, buf := newTestLogger(LevelOff, FormatJSON)
	logger.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
	if logger.IsLevelEnabled(LevelError) {
		t.Error("IsLevelEnabled(error) should be false at off")
	}
}

func TestJSONFormatWithFields(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatJSON)
	logger.WithName("calc").
		WithField("component", "calc-parser").
		Debug("parse failed", Fields{"offset": 3})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["level"] != "debug" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["logger"] != "calc" {
		t.Errorf("logger = %v", entry["logger"])
	}
	if entry["component"] != "calc-parser" {
		t.Errorf("component = %v", entry["component"])
	}
	if entry["offset"] != float64(3) {
		t.Errorf("offset = %v", entry["offset"])
	}
}

func TestFieldsMerge(t *testing.T) {
	base := Fields{"component": "repl", "line": 1}
	merged := base.Merge(Fields{"line": 2, "offset": 4})

	if merged["component"] != "repl" || merged["line"] != 2 || merged["offset"] != 4 {
		t.Errorf("Merge() = %v", merged)
	}
	if base["line"] != 1 || len(base) != 2 {
		t.Errorf("Merge() mutated the receiver: %v", base)
	}
	if got := Fields(nil).Merge(nil); got == nil || len(got) != 0 {
		t.Errorf("nil Merge(nil) = %#v, want empty map", got)
	}
}

func TestCallFieldsOverrideContextFields(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo, FormatLogfmt)
	logger.WithFields(Fields{"component": "repl", "line": 1}).
		Info("evaluated", Fields{"line": 2}, Fields{"line": 3})

	out := buf.String()
	if !strings.Contains(out, `component="repl"`) || !strings.Contains(out, "line=3") {
		t.Errorf("unexpected line %q", out)
	}
}

func TestErrorWithErr(t *testing.T) {
	logger, buf := newTestLogger(LevelError, FormatLogfmt)
	logger.ErrorWithErr("input read failed", errors.New("broken pipe"), Fields{"component": "repl"})

	out := buf.String()
	for _, want := range []string{"input read failed", `error="broken pipe"`, `component="repl"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}

	quiet, qbuf := newTestLogger(LevelOff, FormatLogfmt)
	quiet.ErrorWithErr("dropped", errors.New("x"))
	if qbuf.Len() != 0 {
		t.Errorf("off level wrote %q", qbuf.String())
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newTestLogger(LevelInfo, FormatLogfmt)
	_ = parent.WithField("component", "child")

	parent.Info("from parent")
	if strings.Contains(buf.String(), "component") {
		t.Errorf("parent logger gained a child field: %q", buf.String())
	}
}

func TestConsoleFormatSortedFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatConsole, Output: buf})
	logger.formatter = &ConsoleFormatter{TimestampFormat: "15:04:05", DisableColors: true}

	logger.Info("evaluated", Fields{"b": 2, "a": 1})

	line := buf.String()
	if !strings.Contains(line, "[INF] evaluated a=1 b=2") {
		t.Errorf("unexpected console line %q", line)
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatLogfmt)

	logger.LogError(mdwerror.New("Invalid syntax").
		WithCode(mdwerror.CodeSyntaxError).
		WithDetail("offset", 2))

	out := buf.String()
	if !strings.Contains(out, "level=debug") {
		t.Errorf("Expected debug level for a low severity error, got %q", out)
	}
	if !strings.Contains(out, `error_code="SYNTAX_ERROR"`) {
		t.Errorf("Expected error_code field, got %q", out)
	}
	if !strings.Contains(out, "error_offset=2") {
		t.Errorf("Expected offset detail, got %q", out)
	}

	buf.Reset()
	logger.LogError(errors.New("plain failure"))
	if !strings.Contains(buf.String(), "level=error") {
		t.Errorf("Expected error level for plain errors, got %q", buf.String())
	}

	buf.Reset()
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatLogfmt)

	timer := logger.StartTimer("evaluate").WithField("input_length", 5)
	if !timer.IsRunning() {
		t.Fatal("timer should be running")
	}
	timer.Stop()
	if timer.IsRunning() {
		t.Error("timer should be stopped")
	}
	if got := timer.Stop(); got != 0 {
		t.Errorf("second Stop() = %v, want 0", got)
	}

	out := buf.String()
	if !strings.Contains(out, `message="evaluate completed"`) {
		t.Errorf("missing completion entry in %q", out)
	}
	if !strings.Contains(out, "input_length=5") {
		t.Errorf("missing timer field in %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected exactly one entry, got %q", out)
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatLogfmt)

	logger.StartTimer("evaluate").StopWithError(errors.New("Runtime math error"))

	out := buf.String()
	if !strings.Contains(out, `message="evaluate failed"`) {
		t.Errorf("missing failure entry in %q", out)
	}
	if !strings.Contains(out, `error="Runtime math error"`) {
		t.Errorf("missing error in %q", out)
	}
	if !strings.Contains(out, "success=false") {
		t.Errorf("missing success flag in %q", out)
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	replacement := Discard()
	SetDefault(replacement)
	if GetDefault() != replacement {
		t.Error("SetDefault() did not replace the default logger")
	}

	SetDefault(nil)
	if GetDefault() != replacement {
		t.Error("SetDefault(nil) must be ignored")
	}
}
