// Package fragment groups markup lines into tag-sized fragments.
//
// The grouping is line oriented: lines are concatenated, without a separator,
// until the pending text contains '>' or a closing tag. It is not an XML
// tokenizer; two tags on one line come out as one fragment.
package fragment

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// DefaultMaxLineBytes bounds a single input line.
const DefaultMaxLineBytes = 1024 * 1024

var closingTagRe = regexp.MustCompile(`(?i)</\w+>`)

// Tokenizer reads fragments from a stream. Its use mirrors bufio.Scanner:
// call Scan until it returns false, then check Err.
type Tokenizer struct {
	sc *bufio.Scanner

	pending   strings.Builder
	startLine int
	line      int

	text     string
	fragLine int
}

// NewTokenizer returns a Tokenizer reading from r. maxLine <= 0 selects
// DefaultMaxLineBytes.
func NewTokenizer(r io.Reader, maxLine int) *Tokenizer {
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)
	return &Tokenizer{sc: sc}
}

// Scan advances to the next fragment. Leftover text that never completed a
// fragment is dropped at end of input.
func (t *Tokenizer) Scan() bool {
	for t.sc.Scan() {
		t.line++
		line := strings.TrimSuffix(t.sc.Text(), "\r")
		if t.pending.Len() == 0 {
			t.startLine = t.line
		}
		t.pending.WriteString(line)

		buf := t.pending.String()
		if strings.Contains(buf, ">") || closingTagRe.MatchString(buf) {
			t.text = buf
			t.fragLine = t.startLine
			t.pending.Reset()
			return true
		}
	}
	t.text = ""
	return false
}

// Text returns the most recent fragment.
func (t *Tokenizer) Text() string { return t.text }

// Line returns the 1-based input line on which the most recent fragment began.
func (t *Tokenizer) Line() int { return t.fragLine }

// Err returns the first read error, wrapped with the line it occurred after.
func (t *Tokenizer) Err() error {
	if err := t.sc.Err(); err != nil {
		return fmt.Errorf("line %d: %w", t.line+1, err)
	}
	return nil
}

// Tokenize splits doc into fragments.
func Tokenize(doc string) ([]string, error) {
	tok := NewTokenizer(strings.NewReader(doc), max(DefaultMaxLineBytes, len(doc)+1))
	var out []string
	for tok.Scan() {
		out = append(out, tok.Text())
	}
	if err := tok.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
