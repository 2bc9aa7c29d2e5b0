// Package svgpaths converts the basic SVG shape elements (rect, circle,
// ellipse, line, polyline, polygon) into path data.
//
// Input is read line by line and grouped into tag fragments (see package
// fragment); it is not validated as XML. ParseDocument keeps the container
// nesting as a doctree.Tree. ToPathDocument flattens everything into a
// document of <path> elements.
package svgpaths

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/svgpaths/fragment"
	"github.com/dgallion1/svgpaths/shape"
)

// ErrStackUnderflow is returned when a closing tag has no open container.
var ErrStackUnderflow = errors.New("closing tag without an open container")

// Options tunes how input is read. The zero value is valid.
type Options struct {
	// MaxLineBytes bounds a single input line; 0 means fragment.DefaultMaxLineBytes.
	MaxLineBytes int
}

// eachNode classifies every fragment of r in order. Errors are prefixed with
// the line where the fragment started.
func eachNode(r io.Reader, opts Options, fn func(n shape.Node, line int) error) error {
	tok := fragment.NewTokenizer(r, opts.MaxLineBytes)
	for tok.Scan() {
		n, err := shape.Classify(tok.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", tok.Line(), err)
		}
		if err := fn(n, tok.Line()); err != nil {
			return err
		}
	}
	return tok.Err()
}

// stringInput reads an in-memory document. The line limit is raised to the
// document's size so no line of doc can exceed it.
func stringInput(doc string) (io.Reader, Options) {
	return strings.NewReader(doc), Options{MaxLineBytes: max(fragment.DefaultMaxLineBytes, len(doc)+1)}
}
