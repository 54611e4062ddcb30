package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestWithComponentTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Production: true, Writer: &buf, Level: slog.LevelDebug})

	log.WithComponent("StateStore").Warn("Story state decode failed", "user_id", 7)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if record["component"] != "StateStore" {
		t.Fatalf("component = %v", record["component"])
	}
	if record["user_id"] != float64(7) {
		t.Fatalf("user_id = %v", record["user_id"])
	}
}

func TestNopDiscards(t *testing.T) {
	log := NewNop()
	log.Error("nothing to see")
	log.Printf("fx %s", "event")
}
