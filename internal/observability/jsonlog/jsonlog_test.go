package jsonlog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("unmarshal: %v; line=%s", err, buf.String())
	}
	return m
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Info("http_request", map[string]any{"status": 200, "path": "/api/tasks"})

	m := decodeLine(t, &buf)
	if m["level"] != "INFO" || m["msg"] != "http_request" || m["path"] != "/api/tasks" {
		t.Fatalf("entry=%v", m)
	}
	if m["status"].(float64) != 200 {
		t.Fatalf("status=%v", m["status"])
	}
	if _, ok := m["ts"].(string); !ok {
		t.Fatalf("missing ts: %v", m)
	}
}

func TestError_ReservedKeysWin(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Error("boom", map[string]any{"level": "DEBUG", "msg": "other"})

	m := decodeLine(t, &buf)
	if m["level"] != "ERROR" || m["msg"] != "boom" {
		t.Fatalf("entry=%v", m)
	}
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Printf("listening on %s", ":3000")

	m := decodeLine(t, &buf)
	if m["msg"] != "listening on :3000" {
		t.Fatalf("entry=%v", m)
	}
}

func TestUnencodableField(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Info("x", map[string]any{"bad": make(chan int)})

	if !strings.Contains(buf.String(), "log_error") {
		t.Fatalf("line=%s", buf.String())
	}
}
