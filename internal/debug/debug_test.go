package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_Output(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Log("compiled %s in %d steps", "page.ltpl", 3)

	got := buf.String()
	if !strings.HasSuffix(got, "] compiled page.ltpl in 3 steps\n") {
		t.Errorf("log line = %q", got)
	}
	if !strings.HasPrefix(got, "[") {
		t.Errorf("log line %q has no timestamp", got)
	}
}

func TestLog_Disabled(t *testing.T) {
	SetOutput(nil)
	if Enabled() {
		t.Fatal("Enabled() = true after SetOutput(nil)")
	}
	Log("dropped")
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Log("hello")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "] hello\n") {
		t.Errorf("log file = %q", data)
	}
	if Enabled() {
		t.Error("Enabled() = true after Close")
	}
}
