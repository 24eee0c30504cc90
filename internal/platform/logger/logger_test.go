package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLoggerMergesFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "pet-care", Output: &buf})

	l.With(map[string]any{"request_id": "abc"}).Info("pet added", map[string]any{"user_id": int64(1)})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "pet added" || entry["app"] != "pet-care" || entry["request_id"] != "abc" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["user_id"].(float64) != 1 {
		t.Fatalf("unexpected user_id: %v", entry["user_id"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn should be written: %q", out)
	}
}

func TestParse(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("nope") != Info {
		t.Fatal("ParseLevel mismatch")
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatal("ParseFormat mismatch")
	}
}
