package log

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(io.Discard) })
	return &buf
}

func TestForComponentMemoizes(t *testing.T) {
	a := ForComponent("memoized")
	b := ForComponent("memoized")
	if a != b {
		t.Error("expected the same logger instance for the same name")
	}
}

func TestForComponentEmptyName(t *testing.T) {
	l := ForComponent("")
	if l.name != "unknown" {
		t.Errorf("empty name mapped to %q, expected unknown", l.name)
	}
}

func TestInfofPrefix(t *testing.T) {
	buf := captureOutput(t)

	ForComponent("prefix-test").Infof("loaded %d entries", 3)

	got := buf.String()
	if !strings.Contains(got, "INFO [prefix-test>] loaded 3 entries") {
		t.Errorf("unexpected log line: %q", got)
	}
}

func TestWarnfAndErrorf(t *testing.T) {
	buf := captureOutput(t)

	l := ForComponent("levels-test")
	l.Warnf("watch out")
	l.Errorf("it broke")

	got := buf.String()
	if !strings.Contains(got, "WARN [levels-test>] watch out") {
		t.Errorf("missing warn line: %q", got)
	}
	if !strings.Contains(got, "ERROR [levels-test>] it broke") {
		t.Errorf("missing error line: %q", got)
	}
}

func TestDebugfGated(t *testing.T) {
	buf := captureOutput(t)

	l := ForComponent("debug-gated")
	l.Debugf("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug line logged without debug enabled")
	}

	SetGlobalDebug(true)
	defer SetGlobalDebug(false)

	l.Debugf("visible")
	if !strings.Contains(buf.String(), "DEBUG [debug-gated>] visible") {
		t.Errorf("debug line missing with global debug on: %q", buf.String())
	}
}

func TestEnableDebugFor(t *testing.T) {
	buf := captureOutput(t)

	EnableDebugFor("debug-one")
	ForComponent("debug-one").Debugf("shown")
	ForComponent("debug-other").Debugf("hidden")

	got := buf.String()
	if !strings.Contains(got, "DEBUG [debug-one>] shown") {
		t.Errorf("per-component debug line missing: %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("debug leaked to another component: %q", got)
	}
}

func TestDebugEnabledFor(t *testing.T) {
	if DebugEnabledFor("never-enabled") {
		t.Error("debug reported enabled for an untouched component")
	}

	EnableDebugFor("enabled-component")
	if !DebugEnabledFor("enabled-component") {
		t.Error("debug not reported enabled after EnableDebugFor")
	}

	SetGlobalDebug(true)
	defer SetGlobalDebug(false)
	if !DebugEnabledFor("never-enabled") {
		t.Error("global debug did not apply to all components")
	}
}

func TestSetOutputRedirectsExistingLoggers(t *testing.T) {
	l := ForComponent("redirect-test")

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(io.Discard)

	l.Infof("after redirect")
	if !strings.Contains(buf.String(), "after redirect") {
		t.Errorf("existing logger did not follow SetOutput: %q", buf.String())
	}
}
