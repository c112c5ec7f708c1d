package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWithOutputLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"", logrus.InfoLevel},
		{"debug", logrus.DebugLevel},
		{"TRACE", logrus.TraceLevel},
		{"loud", logrus.InfoLevel},
	}
	for _, tc := range tests {
		log := NewWithOutput(&bytes.Buffer{}, tc.in, "")
		if log.GetLevel() != tc.want {
			t.Errorf("level %q: got %v, want %v", tc.in, log.GetLevel(), tc.want)
		}
	}
}

func TestNewWithOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "info", "json")
	log.WithField("step", 3).Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "hello" || entry["step"] != float64(3) {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNewWithOutputText(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "info", "text")
	log.Debug("hidden")
	log.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected text output %q", out)
	}
}
