package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
	SetField("run", "")
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	if got := buf.String(); got != "[DEBUG] test message arg\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")
	Info("test message")
	Warn("test message")
	Section("Test")

	if buf.Len() != 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestLevels(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("info %d", 1)
	Warn("warn %d", 2)

	want := "[INFO] info 1\n[WARN] warn 2\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Resolve")

	if got := buf.String(); got != "\n=== Resolve ===\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestSetField(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	SetField("run", "abc")
	SetField("org", "dev")
	Debug("query")
	SetField("org", "")
	Debug("again")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if lines[0] != "[DEBUG] query org=dev run=abc" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "[DEBUG] again run=abc" {
		t.Errorf("unexpected second line: %q", lines[1])
	}
}
