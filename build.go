package svgpaths

import (
	"fmt"
	"io"

	"github.com/dgallion1/svgpaths/doctree"
	"github.com/dgallion1/svgpaths/shape"
)

// ParseDocument builds the container tree of doc. Shapes become leaves of the
// innermost open container; paths with no data are skipped. Containers left
// open at the end are not an error. Line length is not limited.
func ParseDocument(doc string) (*doctree.Tree, error) {
	return Parse(stringInput(doc))
}

// Parse is ParseDocument over a stream, with lines bounded by
// opts.MaxLineBytes.
func Parse(r io.Reader, opts Options) (*doctree.Tree, error) {
	root := doctree.New(nil)
	stack := []*doctree.Tree{root}

	err := eachNode(r, opts, func(n shape.Node, line int) error {
		top := stack[len(stack)-1]
		switch {
		case n.Kind == shape.ContainerOpen:
			stack = append(stack, top.AddContainer(n.Attrs))
		case n.Kind == shape.ContainerClose:
			// Close tags are not matched against the open element's name.
			if len(stack) == 1 {
				return fmt.Errorf("line %d: %w", line, ErrStackUnderflow)
			}
			stack = stack[:len(stack)-1]
		case n.D != "":
			top.AddLeaf(n.D, n.Attrs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}
