package extract

import (
	"cmp"
	"slices"
	"strings"
)

var vocabulary = Vocabulary()

// markerIndex holds every maximal marker occurrence of one message.
// Occurrences nested in a longer marker (data: inside esource data:) are dropped.
type markerIndex struct {
	text  string
	lower string
	spans []span
}

func newMarkerIndex(text string) *markerIndex {
	ix := &markerIndex{
		text:  text,
		lower: asciiLower(text),
	}

	var all []span
	for _, m := range vocabulary {
		for off := 0; off < len(ix.lower); {
			i := strings.Index(ix.lower[off:], m)
			if i < 0 {
				break
			}
			start := off + i
			all = append(all, span{start: start, end: start + len(m), marker: m})
			off = start + 1
		}
	}
	ix.spans = maximalSpans(all)
	return ix
}

// index returns the byte offset of the first occurrence of marker.
func (ix *markerIndex) index(marker string) (int, bool) {
	i := strings.Index(ix.lower, marker)
	return i, i >= 0
}

// boundary returns where a value starting at pos ends: the start of the first
// maximal span at or after pos whose marker is in stops, or the end of text.
func (ix *markerIndex) boundary(pos int, stops []string) int {
	if len(stops) == 0 {
		return len(ix.text)
	}
	for _, sp := range ix.spans {
		if sp.start < pos {
			continue
		}
		if slices.Contains(stops, sp.marker) {
			return sp.start
		}
	}
	return len(ix.text)
}

// maximalSpans drops spans nested in a strictly longer one. Sorting by start,
// longest first, lets one pass track the furthest end seen so far. Spans are
// distinct because vocabulary markers are unique.
func maximalSpans(all []span) []span {
	slices.SortFunc(all, func(a, b span) int {
		if c := cmp.Compare(a.start, b.start); c != 0 {
			return c
		}
		return cmp.Compare(b.end, a.end)
	})

	out := make([]span, 0, len(all))
	maxEnd := -1
	for _, sp := range all {
		if sp.end <= maxEnd {
			continue
		}
		out = append(out, sp)
		maxEnd = sp.end
	}
	return out
}

// asciiLower lowercases ASCII letters only so byte offsets stay aligned with
// the original text. Markers are ASCII.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
