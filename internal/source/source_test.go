package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	type tc struct {
		content string
	}

	tests := map[string]tc{
		"empty":     {content: ""},
		"text":      {content: "hello {{ name }}\n"},
		"multiline": {content: "{% for i = 1, 2 do %}\n{{ i }}\n{% end %}\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "page.ltpl")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			f, err := Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if string(f.Bytes) != tt.content {
				t.Errorf("Bytes = %q, want %q", f.Bytes, tt.content)
			}
			if f.Name != path {
				t.Errorf("Name = %q, want %q", f.Name, path)
			}
			if err := f.Close(); err != nil {
				t.Errorf("Close: %v", err)
			}
			if f.Bytes != nil {
				t.Error("Bytes not cleared by Close")
			}
			if err := f.Close(); err != nil {
				t.Errorf("second Close: %v", err)
			}
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Open(filepath.Join(dir, "missing.ltpl")); err == nil {
		t.Error("Open of missing file returned nil error")
	}
	if _, err := Open(dir); err == nil {
		t.Error("Open of directory returned nil error")
	}
}
