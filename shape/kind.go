package shape

import "strings"

// Kind is the classification of a markup fragment.
type Kind int

const (
	ContainerOpen Kind = iota
	ContainerClose
	Rect
	Circle
	Ellipse
	Line
	Polyline
	Polygon
	Path
)

var kindNames = [...]string{
	ContainerOpen:  "open",
	ContainerClose: "close",
	Rect:           "rect",
	Circle:         "circle",
	Ellipse:        "ellipse",
	Line:           "line",
	Polyline:       "polyline",
	Polygon:        "polygon",
	Path:           "path",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Lookup returns the primitive kind for an element name such as "rect".
// Matching is case-insensitive; non-primitive names report false.
func Lookup(tag string) (Kind, bool) {
	for k := Rect; k <= Path; k++ {
		if strings.EqualFold(kindNames[k], tag) {
			return k, true
		}
	}
	return 0, false
}

// IsShape reports whether k is a drawable primitive rather than a structural fragment.
func (k Kind) IsShape() bool {
	return k >= Rect && k <= Path
}
