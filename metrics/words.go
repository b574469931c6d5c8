package metrics

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/augtree/cords"
)

// Span is a byte-range descriptor inside a cord.
//
// Pos is the start byte offset, Len is the span length in bytes.
type Span struct {
	Pos uint64
	Len uint64
}

// Words scans [i,j) of text for words, i.e., runs of non-space runes, and
// returns their spans.
func Words(text cords.Cord, i, j uint64) ([]Span, error) {
	if j < i || j > text.Len() {
		return nil, cords.ErrIndexOutOfBounds
	}
	content, err := text.Report(i, j-i)
	if err != nil {
		return nil, err
	}
	return findWordSpans(content, i), nil
}

// Materialize concatenates the words of text at spans, omitting separators.
// The resulting cord belongs to st.
func Materialize(st *cords.Store, text cords.Cord, spans []Span) (cords.Cord, error) {
	var out cords.Cord
	for _, span := range spans {
		word, err := text.Report(span.Pos, span.Len)
		if err != nil {
			return cords.Cord{}, err
		}
		c, err := st.FromString(word)
		if err != nil {
			return cords.Cord{}, err
		}
		out = cords.Concat(out, c)
	}
	return out, nil
}

func findWordSpans(s string, base uint64) []Span {
	spans := make([]Span, 0, 8)
	for pos := 0; pos < len(s); {
		r, width := utf8.DecodeRuneInString(s[pos:])
		if unicode.IsSpace(r) {
			pos += width
			continue
		}
		start := pos
		pos += width
		for pos < len(s) {
			r, width = utf8.DecodeRuneInString(s[pos:])
			if unicode.IsSpace(r) {
				break
			}
			pos += width
		}
		spans = append(spans, Span{
			Pos: base + uint64(start),
			Len: uint64(pos - start),
		})
	}
	return spans
}
