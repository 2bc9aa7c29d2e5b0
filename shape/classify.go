// Package shape classifies markup fragments and converts the basic SVG
// primitives into path data.
package shape

import (
	"regexp"

	"github.com/dgallion1/svgpaths/attrs"
)

// Node is a classified fragment. For the primitive kinds D is always set;
// for Path it is the d attribute, possibly empty; structural kinds leave it
// empty. Attrs holds the attributes not consumed by the conversion.
type Node struct {
	Kind  Kind
	D     string
	Attrs *attrs.Attrs
}

type rule struct {
	kind Kind
	re   *regexp.Regexp
}

// Checked in order; the first pattern found anywhere in the fragment wins.
var rules = []rule{
	{Rect, regexp.MustCompile(`(?i)<rect`)},
	{Circle, regexp.MustCompile(`(?i)<circle`)},
	{Ellipse, regexp.MustCompile(`(?i)<ellipse`)},
	{Line, regexp.MustCompile(`(?i)<line`)},
	{Polyline, regexp.MustCompile(`(?i)<polyline`)},
	{Polygon, regexp.MustCompile(`(?i)<polygon`)},
	{Path, regexp.MustCompile(`(?i)<path`)},
}

// A fragment holding a closing tag anywhere closes a container, so
// "<text>Label</text>" on one line is a close, not an open.
var closingTagRe = regexp.MustCompile(`(?i)</\w+>`)

// Classify determines the kind of fragment and, for primitives, synthesizes
// its path data. A geometry attribute that is present but not numeric
// returns a *NumericFieldError.
func Classify(fragment string) (Node, error) {
	for _, r := range rules {
		loc := r.re.FindStringIndex(fragment)
		if loc == nil {
			continue
		}
		return convert(r.kind, attrs.Extract(fragment[loc[1]:]))
	}
	if closingTagRe.MatchString(fragment) {
		return Node{Kind: ContainerClose, Attrs: &attrs.Attrs{}}, nil
	}
	return Node{Kind: ContainerOpen, Attrs: attrs.Extract(fragment)}, nil
}

func convert(kind Kind, a *attrs.Attrs) (Node, error) {
	n := Node{Kind: kind, Attrs: a}
	switch kind {
	case Rect:
		v, err := takeNumbers(kind, a, "x", "y", "width", "height")
		if err != nil {
			return Node{}, err
		}
		n.D = rectPath(v[0], v[1], v[2], v[3])
	case Circle:
		v, err := takeNumbers(kind, a, "cx", "cy", "r")
		if err != nil {
			return Node{}, err
		}
		n.D = ellipsePath(v[0], v[1], v[2], v[2])
	case Ellipse:
		v, err := takeNumbers(kind, a, "cx", "cy", "rx", "ry")
		if err != nil {
			return Node{}, err
		}
		n.D = ellipsePath(v[0], v[1], v[2], v[3])
	case Line:
		v, err := takeNumbers(kind, a, "x1", "y1", "x2", "y2")
		if err != nil {
			return Node{}, err
		}
		n.D = linePath(v[0], v[1], v[2], v[3])
	case Polyline:
		points, _ := a.Take("points")
		n.D = polylinePath(points)
	case Polygon:
		points, _ := a.Take("points")
		n.D = polygonPath(points)
	case Path:
		n.D, _ = a.Take("d")
	}
	return n, nil
}
