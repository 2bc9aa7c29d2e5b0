// Package source pulls SVG markup out of uploaded files: standalone SVG,
// fenced blocks in Markdown, and inline <svg> elements in HTML.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Document is one piece of SVG markup found in a file.
type Document struct {
	Name string
	Text string
}

// Extractor finds the SVG documents in a file.
type Extractor interface {
	Extract(r io.Reader, filename string) ([]Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".svg":      true,
	".xml":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".svg", ".xml":
		return &SVGExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

func baseName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
