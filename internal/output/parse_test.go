package output

import (
	"bytes"
	"testing"

	"github.com/atikulmunna/fauxlog/internal/model"
)

func TestParseLine(t *testing.T) {
	var buf bytes.Buffer
	r := plainRenderer(&buf)

	entry := sample
	entry.Host = "aks-agentpool-12457890-vmss00000p" // wider than its column
	entry.Continuation = "↳ details redacted"

	got, err := ParseLine(r.Format(entry))
	if err != nil {
		t.Fatal(err)
	}
	if got.Timestamp != entry.Timestamp {
		t.Errorf("expected timestamp %q, got %q", entry.Timestamp, got.Timestamp)
	}
	if got.Level != entry.Level {
		t.Errorf("expected level %s, got %s", entry.Level, got.Level)
	}
	if got.Host != entry.Host {
		t.Errorf("expected host %q, got %q", entry.Host, got.Host)
	}
	if got.Service != entry.Service {
		t.Errorf("expected service %q, got %q", entry.Service, got.Service)
	}
	if got.Message != entry.Message {
		t.Errorf("expected message %q, got %q", entry.Message, got.Message)
	}
	if got.Continuation != entry.Continuation {
		t.Errorf("expected continuation %q, got %q", entry.Continuation, got.Continuation)
	}
}

func TestParseLineRejects(t *testing.T) {
	tests := []string{
		"",
		"not a log line",
		"2026-02-17 12:00:00.250Z  FATAL     node-07a            auth-gateway          boom",
		"2026-02-17 12:00:00Z  INFO      node-07a            auth-gateway          no millis",
		"2026-02-17 12:00:00.250Z  INFO      node-07a            auth-gateway          ok\n  bad continuation",
	}
	for _, line := range tests {
		if _, err := ParseLine(line); err == nil {
			t.Errorf("expected error for %q", line)
		}
	}
}

func TestParseLineEveryLevel(t *testing.T) {
	var buf bytes.Buffer
	r := plainRenderer(&buf)
	for _, l := range model.Levels {
		entry := sample
		entry.Level = l
		got, err := ParseLine(r.Format(entry))
		if err != nil {
			t.Fatalf("level %s: %v", l, err)
		}
		if got.Level != l {
			t.Errorf("expected %s, got %s", l, got.Level)
		}
	}
}
