package fragment

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeOneTagPerLine(t *testing.T) {
	frags, err := Tokenize("<svg>\n<rect x=\"1\"/>\n</svg>\n")
	require.NoError(t, err)
	assert.Equal(t, []string{`<svg>`, `<rect x="1"/>`, `</svg>`}, frags)
}

func TestTokenizeJoinsWithoutSeparator(t *testing.T) {
	frags, err := Tokenize("<rect x=\"1\"\n   y=\"2\"/>")
	require.NoError(t, err)
	require.Len(t, frags, 1)
	assert.Equal(t, `<rect x="1"   y="2"/>`, frags[0])
}

func TestTokenizeDropsTrailingPartial(t *testing.T) {
	frags, err := Tokenize("<g>\n<rect x=\"1\"")
	require.NoError(t, err)
	assert.Equal(t, []string{"<g>"}, frags)
}

func TestTokenizeTwoTagsOnOneLine(t *testing.T) {
	frags, err := Tokenize(`<g><rect x="1"/></g>`)
	require.NoError(t, err)
	assert.Equal(t, []string{`<g><rect x="1"/></g>`}, frags)
}

func TestTokenizeBlankLinesAccumulate(t *testing.T) {
	frags, err := Tokenize("\n\n<g>\n\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"<g>"}, frags)
}

func TestTokenizeStripsCarriageReturn(t *testing.T) {
	frags, err := Tokenize("<g>\r\n</g>\r\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"<g>", "</g>"}, frags)
}

func TestTokenizeEmpty(t *testing.T) {
	frags, err := Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, frags)
}

func TestTokenizerLineNumbers(t *testing.T) {
	tok := NewTokenizer(strings.NewReader("<svg>\n\n<rect\nx=\"1\"/>\n</svg>"), 0)
	var lines []int
	for tok.Scan() {
		lines = append(lines, tok.Line())
	}
	require.NoError(t, tok.Err())
	assert.Equal(t, []int{1, 3, 5}, lines)
}

func TestTokenizerLineTooLong(t *testing.T) {
	tok := NewTokenizer(strings.NewReader("<g>\n"+strings.Repeat("a", 100)+"\n"), 16)
	require.True(t, tok.Scan())
	assert.False(t, tok.Scan())
	err := tok.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
	assert.Contains(t, err.Error(), "line 2")
}

func TestTokenizeGreaterThanInAttributeValue(t *testing.T) {
	frags, err := Tokenize("<rect title=\"a>b\"\n width=\"2\"/>")
	require.NoError(t, err)
	assert.Equal(t, []string{`<rect title="a>b"`, ` width="2"/>`}, frags)
}

func TestTokenizeJoinsContentWithCloseTag(t *testing.T) {
	frags, err := Tokenize("<text>\nHello\n</text>")
	require.NoError(t, err)
	assert.Equal(t, []string{"<text>", "Hello</text>"}, frags)
}

func TestTokenizeLongLine(t *testing.T) {
	line := "<path d=\"" + strings.Repeat("L1 1 ", DefaultMaxLineBytes/4) + "\"/>"
	frags, err := Tokenize(line)
	require.NoError(t, err)
	require.Len(t, frags, 1)
	assert.Equal(t, line, frags[0])
}
