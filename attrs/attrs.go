// Package attrs extracts key="value" pairs from markup fragments into an
// insertion-ordered map.
package attrs

import (
	"iter"
	"regexp"
	"strings"
)

var attrRe = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9_-]*)="([^"]*)"`)

// Attr is a single key/value pair.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute map. Keys are unique; setting an existing key
// replaces its value without moving it. The zero value is ready to use.
type Attrs struct {
	list  []Attr
	index map[string]int
}

// New returns an Attrs holding pairs in order, with later duplicates
// overwriting earlier ones.
func New(pairs ...Attr) *Attrs {
	a := &Attrs{}
	for _, p := range pairs {
		a.Set(p.Key, p.Value)
	}
	return a
}

// Extract scans s left to right for key="value" pairs. Text that does not
// form a pair is ignored.
func Extract(s string) *Attrs {
	a := &Attrs{}
	for _, m := range attrRe.FindAllStringSubmatch(s, -1) {
		a.Set(m[1], m[2])
	}
	return a
}

// Set inserts key at the end, or updates its value in place.
func (a *Attrs) Set(key, value string) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[key]; ok {
		a.list[i].Value = value
		return
	}
	a.index[key] = len(a.list)
	a.list = append(a.list, Attr{Key: key, Value: value})
}

// Get returns the value for key.
func (a *Attrs) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	i, ok := a.index[key]
	if !ok {
		return "", false
	}
	return a.list[i].Value, true
}

// Take returns the value for key and removes it.
func (a *Attrs) Take(key string) (string, bool) {
	v, ok := a.Get(key)
	if ok {
		a.Delete(key)
	}
	return v, ok
}

// Delete removes key, keeping the order of the remaining pairs.
func (a *Attrs) Delete(key string) {
	if a == nil {
		return
	}
	i, ok := a.index[key]
	if !ok {
		return
	}
	a.list = append(a.list[:i], a.list[i+1:]...)
	delete(a.index, key)
	for j := i; j < len(a.list); j++ {
		a.index[a.list[j].Key] = j
	}
}

// Len returns the number of pairs.
func (a *Attrs) Len() int {
	if a == nil {
		return 0
	}
	return len(a.list)
}

// Keys returns the keys in order.
func (a *Attrs) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, len(a.list))
	for i, p := range a.list {
		keys[i] = p.Key
	}
	return keys
}

// All iterates over the pairs in order.
func (a *Attrs) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if a == nil {
			return
		}
		for _, p := range a.list {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (a *Attrs) Clone() *Attrs {
	c := &Attrs{}
	for k, v := range a.All() {
		c.Set(k, v)
	}
	return c
}

// Equal reports whether a and b hold the same pairs in the same order.
func (a *Attrs) Equal(b *Attrs) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.list[i] != b.list[i] {
			return false
		}
	}
	return true
}

// String renders the pairs as ` key="value"` runs, the form used inside a tag.
func (a *Attrs) String() string {
	var sb strings.Builder
	for k, v := range a.All() {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(v)
		sb.WriteByte('"')
	}
	return sb.String()
}
