package source

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestForFile_Dispatch(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"icon.svg", "*source.SVGExtractor"},
		{"ICON.SVG", "*source.SVGExtractor"},
		{"drawing.xml", "*source.SVGExtractor"},
		{"notes.md", "*source.MarkdownExtractor"},
		{"notes.markdown", "*source.MarkdownExtractor"},
		{"page.html", "*source.HTMLExtractor"},
		{"page.htm", "*source.HTMLExtractor"},
	}
	for _, tt := range tests {
		ex, err := ForFile(tt.filename)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.filename, err)
		}
		if got := fmt.Sprintf("%T", ex); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.filename, tt.want, got)
		}
	}
}

func TestForFile_Unsupported(t *testing.T) {
	if _, err := ForFile("report.pdf"); err == nil {
		t.Error("expected error for .pdf")
	}
	if IsSupportedExtension("report.pdf") {
		t.Error("expected .pdf to be unsupported")
	}
	if !IsSupportedExtension("a.SVG") {
		t.Error("expected .SVG to be supported")
	}
}

func TestSVGExtractor_SingleDocument(t *testing.T) {
	ex := &SVGExtractor{}
	docs, err := ex.Extract(strings.NewReader("<svg>\n<rect/>\n</svg>"), "dir/icon.svg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].Name != "icon" {
		t.Errorf("expected name %q, got %q", "icon", docs[0].Name)
	}
	if docs[0].Text != "<svg>\n<rect/>\n</svg>" {
		t.Errorf("unexpected text %q", docs[0].Text)
	}
}

func TestDecodeText_StripsUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("<svg/>")...)
	got, err := DecodeText(data, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<svg/>" {
		t.Errorf("expected %q, got %q", "<svg/>", got)
	}
}

func TestDecodeText_UTF16WithBOM(t *testing.T) {
	// "<g>" as UTF-16LE with a byte order mark.
	data := []byte{0xFF, 0xFE, '<', 0, 'g', 0, '>', 0}
	got, err := DecodeText(data, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<g>" {
		t.Errorf("expected %q, got %q", "<g>", got)
	}
}

func TestDecodeText_PrologEncoding(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="ISO-8859-1"?>` + "\n")
	buf.WriteString(`<text title="caf`)
	buf.WriteByte(0xE9)
	buf.WriteString(`"/>`)

	got, err := DecodeText(buf.Bytes(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `title="café"`) {
		t.Errorf("expected latin-1 to be decoded, got %q", got)
	}
}

func TestDecodeText_ContentTypeWins(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?><a t="` + "\xc3\xa9" + `"/>`)
	got, err := DecodeText(data, "image/svg+xml; charset=utf-8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `t="é"`) {
		t.Errorf("expected utf-8 decoding, got %q", got)
	}
}

func TestDecodeText_UnknownCharset(t *testing.T) {
	if _, err := DecodeText([]byte("<svg/>"), "text/plain; charset=klingon"); err == nil {
		t.Error("expected error for unknown charset")
	}
}

func TestMarkdownExtractor_SVGBlocksOnly(t *testing.T) {
	input := "# Icons\n\n```svg\n<svg>\n<rect width=\"1\"/>\n</svg>\n```\n\n```go\nfmt.Println()\n```\n\n```SVG\n<circle r=\"2\"/>\n```\n"
	ex := &MarkdownExtractor{}
	docs, err := ex.Extract(strings.NewReader(input), "icons.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Name != "block-1" || docs[1].Name != "block-2" {
		t.Errorf("unexpected names %q, %q", docs[0].Name, docs[1].Name)
	}
	if docs[0].Text != "<svg>\n<rect width=\"1\"/>\n</svg>\n" {
		t.Errorf("unexpected first block %q", docs[0].Text)
	}
	if docs[1].Text != "<circle r=\"2\"/>\n" {
		t.Errorf("unexpected second block %q", docs[1].Text)
	}
}

func TestMarkdownExtractor_NoBlocks(t *testing.T) {
	ex := &MarkdownExtractor{}
	docs, err := ex.Extract(strings.NewReader("just text"), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected 0 documents, got %d", len(docs))
	}
}

func TestHTMLExtractor_InlineSVG(t *testing.T) {
	input := `<html><body><p>logo</p><svg viewBox="0 0 10 10"><g id="a"><rect x="1" width="2"></rect><text>hi</text></g></svg>` +
		`<div><svg><circle r="3" title="a&quot;b"/></svg></div></body></html>`
	ex := &HTMLExtractor{}
	docs, err := ex.Extract(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}

	want := strings.Join([]string{
		`<svg viewBox="0 0 10 10">`,
		`  <g id="a">`,
		`    <rect x="1" width="2"/>`,
		`    <text>`,
		`    </text>`,
		`  </g>`,
		`</svg>`,
		``,
	}, "\n")
	if docs[0].Text != want {
		t.Errorf("expected\n%s\ngot\n%s", want, docs[0].Text)
	}
	if docs[1].Name != "svg-2" {
		t.Errorf("expected name %q, got %q", "svg-2", docs[1].Name)
	}
	if !strings.Contains(docs[1].Text, `<circle r="3" title="a&#34;b"/>`) {
		t.Errorf("expected escaped attribute, got %q", docs[1].Text)
	}
}

func TestHTMLExtractor_NoSVG(t *testing.T) {
	ex := &HTMLExtractor{}
	docs, err := ex.Extract(strings.NewReader("<p>nothing</p>"), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected 0 documents, got %d", len(docs))
	}
}
