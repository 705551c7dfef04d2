// Package format provides input format detection for the outline decoders.
package format

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// LayoutJSON indicates a page layout dump in the PyMuPDF "dict" shape.
	LayoutJSON
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case LayoutJSON:
		return "LayoutJSON"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case LayoutJSON:
		return ".json"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	case ".json":
		return LayoutJSON
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// Returns Unknown if the format cannot be determined from the bytes alone.
func DetectFromMagic(data []byte) Format {
	// PDF magic: %PDF
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}

	// A layout dump is a JSON object
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return LayoutJSON
	}

	return Unknown
}

// DetectFromReader reads the first bytes of r to determine format.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, 512)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// DetectFile determines the format of the file at path from its content,
// falling back to the extension when the content is not recognised.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	got, err := DetectFromReader(f)
	if err != nil {
		return Unknown, err
	}
	if got != Unknown {
		return got, nil
	}
	return Detect(path), nil
}
