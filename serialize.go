package svgpaths

import (
	"io"
	"strings"

	"github.com/dgallion1/svgpaths/doctree"
	"github.com/dgallion1/svgpaths/shape"
)

const (
	documentOpen  = `<svg xmlns="http://www.w3.org/2000/svg">` + "\n"
	documentClose = "</svg>\n"
)

// ToPathDocument rewrites doc as a flat SVG document with one <path> element
// per shape, in input order. Container structure is dropped. The output is a
// fixed point: converting it again yields the same text. For that reason a
// "d" attribute left over on a primitive is not written out, since it would
// replace the generated path data when read back. Line length is not limited.
func ToPathDocument(doc string) (string, error) {
	return Convert(stringInput(doc))
}

// Convert is ToPathDocument over a stream. A line longer than
// opts.MaxLineBytes fails with an error wrapping bufio.ErrTooLong.
func Convert(r io.Reader, opts Options) (string, error) {
	var sb strings.Builder
	sb.WriteString(documentOpen)
	err := eachNode(r, opts, func(n shape.Node, _ int) error {
		if n.D == "" {
			return nil
		}
		writePath(&sb, n)
		return nil
	})
	if err != nil {
		return "", err
	}
	sb.WriteString(documentClose)
	return sb.String(), nil
}

func writePath(sb *strings.Builder, n shape.Node) {
	sb.WriteString(`<path d="`)
	sb.WriteString(n.D)
	sb.WriteByte('"')
	for k, v := range n.Attrs.All() {
		// A kept "d" would replace the path data when the output is read back.
		if k == doctree.PathKey {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(v)
		sb.WriteByte('"')
	}
	sb.WriteString("/>\n")
}
