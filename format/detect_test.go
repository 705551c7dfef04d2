package format

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, "PDF"},
		{LayoutJSON, "LayoutJSON"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, ".pdf"},
		{LayoutJSON, ".json"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"document.pdf", PDF},
		{"document.PDF", PDF},
		{"layout.json", LayoutJSON},
		{"/path/to/Layout.JSON", LayoutJSON},
		{"document.docx", Unknown},
		{"document", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf", []byte("%PDF-1.7\n"), PDF},
		{"json", []byte(`{"pages":[]}`), LayoutJSON},
		{"json with whitespace", []byte("\n  {\"pages\":[]}"), LayoutJSON},
		{"json array", []byte(`[1,2]`), Unknown},
		{"zip", []byte{0x50, 0x4B, 0x03, 0x04}, Unknown},
		{"short", []byte("%P"), Unknown},
		{"empty", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestDetectFromReader(t *testing.T) {
	got, err := DetectFromReader(bytes.NewReader([]byte("%PDF-1.4")))
	if err != nil || got != PDF {
		t.Errorf("DetectFromReader() = %v, %v; want PDF, nil", got, err)
	}

	if _, err := DetectFromReader(errReader{}); err == nil {
		t.Error("DetectFromReader() should return read errors")
	}
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name string
		path string
		want Format
	}{
		{"pdf content with json name", write("misnamed.json", "%PDF-1.7"), PDF},
		{"json content without extension", write("layout", `{"pages":[]}`), LayoutJSON},
		{"unrecognised content falls back to extension", write("empty.pdf", ""), PDF},
		{"unknown", write("notes.txt", "hello"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFile(tt.path)
			if err != nil {
				t.Fatalf("DetectFile() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFile() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := DetectFile(filepath.Join(dir, "missing.pdf")); err == nil {
		t.Error("DetectFile() on a missing file should fail")
	}
}
