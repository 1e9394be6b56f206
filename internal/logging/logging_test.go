package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Format: "json", Out: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info().Str("k", "v").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"k":"v"`) || !strings.Contains(out, `"message":"hello"`) {
		t.Errorf("JSON output missing fields: %s", out)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "json", Out: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message leaked past warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("New() with unknown level: expected error, got nil")
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Level: "debug", Format: "json", Out: &buf}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	logger := Component("tracker")
	logger.Info().Msg("tagged")

	if !strings.Contains(buf.String(), `"component":"tracker"`) {
		t.Errorf("component tag missing: %s", buf.String())
	}
}
