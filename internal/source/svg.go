package source

import (
	"fmt"
	"io"
	"mime"
	"regexp"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var prologEncodingRe = regexp.MustCompile(`^\s*<\?xml[^>]*encoding=["']([A-Za-z0-9._:-]+)["']`)

// SVGExtractor handles standalone SVG files. The whole file is one document.
type SVGExtractor struct {
	// ContentType, if set, may carry a charset parameter that takes
	// precedence over the XML prolog.
	ContentType string
}

func (e *SVGExtractor) Extract(r io.Reader, filename string) ([]Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text, err := DecodeText(data, e.ContentType)
	if err != nil {
		return nil, err
	}
	return []Document{{Name: baseName(filename), Text: text}}, nil
}

// DecodeText converts raw markup to UTF-8. The encoding comes from the
// content type's charset, then the XML prolog, then defaults to UTF-8. A
// byte order mark overrides all of them and is removed.
func DecodeText(data []byte, contentType string) (string, error) {
	enc, err := detectEncoding(data, contentType)
	if err != nil {
		return "", err
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(out), nil
}

func detectEncoding(data []byte, contentType string) (encoding.Encoding, error) {
	label := ""
	if contentType != "" {
		if _, params, err := mime.ParseMediaType(contentType); err == nil {
			label = params["charset"]
		}
	}
	if label == "" {
		head := data[:min(len(data), 256)]
		if m := prologEncodingRe.FindSubmatch(head); m != nil {
			label = string(m[1])
		}
	}
	if label == "" {
		return unicode.UTF8, nil
	}
	enc, _ := charset.Lookup(label)
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset: %s", label)
	}
	return enc, nil
}
