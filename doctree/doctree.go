// Package doctree holds the nested result of converting a markup document:
// container elements with their attributes, and path leaves.
package doctree

import (
	"bytes"
	"encoding/json"

	"github.com/dgallion1/svgpaths/attrs"
)

// Reserved JSON keys. An attribute with the same name is left out of the
// object it would collide in.
const (
	ChildrenKey = "children"
	PathKey     = "d"
)

// Child is either a *Tree or a *Leaf.
type Child interface {
	isChild()
}

// Tree is a container element. The root of a parsed document is a synthetic
// Tree with no attributes.
type Tree struct {
	Attrs    *attrs.Attrs
	Children []Child
}

// Leaf is a shape reduced to path data plus the attributes it kept.
type Leaf struct {
	D     string
	Attrs *attrs.Attrs
}

func (*Tree) isChild() {}
func (*Leaf) isChild() {}

// New returns an empty container with the given attributes.
func New(a *attrs.Attrs) *Tree {
	if a == nil {
		a = &attrs.Attrs{}
	}
	return &Tree{Attrs: a}
}

// AddContainer appends a new container and returns it.
func (t *Tree) AddContainer(a *attrs.Attrs) *Tree {
	c := New(a)
	t.Children = append(t.Children, c)
	return c
}

// AddLeaf appends a path leaf.
func (t *Tree) AddLeaf(d string, a *attrs.Attrs) *Leaf {
	if a == nil {
		a = &attrs.Attrs{}
	}
	l := &Leaf{D: d, Attrs: a}
	t.Children = append(t.Children, l)
	return l
}

// Walk visits every descendant depth first, in document order. Direct
// children have depth 1. Returning false from fn skips the node's children.
func (t *Tree) Walk(fn func(c Child, depth int) bool) {
	t.walk(fn, 1)
}

func (t *Tree) walk(fn func(Child, int) bool, depth int) {
	for _, c := range t.Children {
		if !fn(c, depth) {
			continue
		}
		if sub, ok := c.(*Tree); ok {
			sub.walk(fn, depth+1)
		}
	}
}

// Counts returns the number of containers and leaves below t.
func (t *Tree) Counts() (containers, leaves int) {
	t.Walk(func(c Child, _ int) bool {
		switch c.(type) {
		case *Tree:
			containers++
		case *Leaf:
			leaves++
		}
		return true
	})
	return containers, leaves
}

// MarshalJSON renders the container as an object holding its attributes in
// order followed by a "children" array.
func (t *Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	n, err := writeAttrs(&buf, t.Attrs, ChildrenKey, 0)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		buf.WriteByte(',')
	}
	buf.WriteString(`"` + ChildrenKey + `":[`)
	for i, c := range t.Children {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteString("]}")
	return buf.Bytes(), nil
}

// MarshalJSON renders the leaf as {"d": ..., attributes...}.
func (l *Leaf) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"` + PathKey + `":`)
	d, err := json.Marshal(l.D)
	if err != nil {
		return nil, err
	}
	buf.Write(d)
	if _, err := writeAttrs(&buf, l.Attrs, PathKey, 1); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeAttrs writes "key":"value" members, skipping reserved. written is the
// number of members already in the object.
func writeAttrs(buf *bytes.Buffer, a *attrs.Attrs, reserved string, written int) (int, error) {
	n := 0
	for k, v := range a.All() {
		if k == reserved {
			continue
		}
		if written+n > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return n, err
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return n, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
		n++
	}
	return n, nil
}
