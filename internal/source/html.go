package source

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/dgallion1/svgpaths/shape"
)

// HTMLExtractor collects inline <svg> elements from an HTML page.
type HTMLExtractor struct {
	ContentType string
}

func (e *HTMLExtractor) Extract(r io.Reader, filename string) ([]Document, error) {
	contentType := e.ContentType
	if contentType == "" {
		contentType = "text/html"
	}
	utf8, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("detect charset: %w", err)
	}
	doc, err := html.Parse(utf8)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var docs []Document
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "svg" {
			var sb strings.Builder
			writeElement(&sb, n, 0)
			docs = append(docs, Document{
				Name: fmt.Sprintf("svg-%d", len(docs)+1),
				Text: sb.String(),
			})
			return // Nested <svg> elements belong to this document.
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return docs, nil
}

// writeElement re-emits n with one tag per line. Primitives are written
// self-closing; every other element gets explicit open and close lines so
// that nesting survives the line-based reader. Text content is dropped.
func writeElement(sb *strings.Builder, n *html.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)
	sb.WriteByte('<')
	sb.WriteString(n.Data)
	for _, a := range n.Attr {
		sb.WriteByte(' ')
		if a.Namespace != "" {
			sb.WriteString(a.Namespace)
			sb.WriteByte(':')
		}
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Val))
		sb.WriteByte('"')
	}
	if _, ok := shape.Lookup(n.Data); ok {
		sb.WriteString("/>\n")
		return
	}
	sb.WriteString(">\n")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			writeElement(sb, c, depth+1)
		}
	}
	sb.WriteString(indent)
	sb.WriteString("</")
	sb.WriteString(n.Data)
	sb.WriteString(">\n")
}
