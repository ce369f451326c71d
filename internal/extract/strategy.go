package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// chain returns the first non-empty result of strategies.
func chain(strategies ...strategy) strategy {
	return func(ix *markerIndex) (string, bool) {
		for _, s := range strategies {
			if v, ok := s(ix); ok {
				return v, true
			}
		}
		return "", false
	}
}

func chainList(strategies ...listStrategy) listStrategy {
	return func(ix *markerIndex) ([]string, bool) {
		for _, s := range strategies {
			if v, ok := s(ix); ok {
				return v, true
			}
		}
		return nil, false
	}
}

// markerSplit takes the text after the first present marker of f, in marker
// priority order, up to the next marker of a sibling field.
func markerSplit(f field) strategy {
	return func(ix *markerIndex) (string, bool) {
		for _, m := range f.markers {
			i, ok := ix.index(m)
			if !ok {
				continue
			}
			start := i + len(m)
			v := strings.TrimSpace(ix.text[start:ix.boundary(start, f.stops)])
			if v != "" {
				return v, true
			}
		}
		return "", false
	}
}

// labelledBlock locates a label with re and captures the block that follows it.
// The value is cut at the next marker in stops.
func labelledBlock(re *regexp.Regexp, sections []string, stops []string) strategy {
	return func(ix *markerIndex) (string, bool) {
		loc := re.FindStringIndex(ix.text)
		if loc == nil {
			return "", false
		}
		start, end, ok := blockBounds(ix.text, loc[1], sections)
		if !ok {
			return "", false
		}
		if limit := ix.boundary(start, stops); limit < end {
			end = limit
		}
		v := strings.TrimSpace(ix.text[start:end])
		return v, v != ""
	}
}

// wholeMessage always succeeds for non-empty text.
func wholeMessage(ix *markerIndex) (string, bool) {
	v := strings.TrimSpace(ix.text)
	if v == "" {
		v = ix.text
	}
	return v, v != ""
}

// firstLine keeps the first line of the wrapped result with quotes stripped.
func firstLine(s strategy) strategy {
	return func(ix *markerIndex) (string, bool) {
		v, ok := s(ix)
		if !ok {
			return "", false
		}
		if i := strings.IndexAny(v, "\r\n"); i >= 0 {
			v = v[:i]
		}
		v = strings.TrimSpace(strings.Trim(strings.TrimSpace(v), "\"'`,;"))
		return v, v != ""
	}
}

// jsonListAfter parses the first bracketed array after one of f's markers.
func jsonListAfter(f field) listStrategy {
	return func(ix *markerIndex) ([]string, bool) {
		for _, m := range f.markers {
			i, ok := ix.index(m)
			if !ok {
				continue
			}
			start := i + len(m)
			raw := reJSONArray.FindString(ix.text[start:ix.boundary(start, f.stops)])
			if raw == "" {
				continue
			}
			if list, ok := parseList(raw); ok {
				return list, true
			}
		}
		return nil, false
	}
}

// jsonListLabelled parses the array captured by re's first group.
func jsonListLabelled(re *regexp.Regexp) listStrategy {
	return func(ix *markerIndex) ([]string, bool) {
		m := re.FindStringSubmatch(ix.text)
		if len(m) < 2 {
			return nil, false
		}
		return parseList(m[1])
	}
}

// quotedFilenames collects quoted tokens with a known file extension,
// de-duplicated, skipping excluded names.
func quotedFilenames(excluded ...string) listStrategy {
	return func(ix *markerIndex) ([]string, bool) {
		seen := make(map[string]struct{}, len(excluded))
		for _, e := range excluded {
			if e != "" {
				seen[strings.ToLower(e)] = struct{}{}
			}
		}
		var out []string
		for _, m := range reQuotedFilename.FindAllStringSubmatch(ix.text, -1) {
			name := strings.TrimSpace(m[1])
			key := strings.ToLower(name)
			if _, dup := seen[key]; dup || name == "" {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, name)
		}
		return out, len(out) > 0
	}
}

// parseList decodes a JSON array into strings. Non-string scalars are
// formatted, nulls and blanks dropped. Decode errors mean "not found".
func parseList(raw string) ([]string, bool) {
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		switch v := it.(type) {
		case nil:
		case string:
			if s := strings.TrimSpace(v); s != "" {
				out = append(out, s)
			}
		default:
			out = append(out, fmt.Sprint(v))
		}
	}
	return out, len(out) > 0
}

// blockBounds returns the rest of the line at pos, or the next non-blank line
// when the rest is blank, extended by continuation lines. A blank line or a
// line starting one of sections ends the block.
func blockBounds(text string, pos int, sections []string) (int, int, bool) {
	start := pos
	for {
		eol := lineEnd(text, start)
		if strings.TrimSpace(text[start:eol]) != "" {
			break
		}
		if eol >= len(text) {
			return 0, 0, false
		}
		start = eol + 1
	}

	end := lineEnd(text, start)
	for end < len(text) {
		next := end + 1
		eol := lineEnd(text, next)
		line := text[next:eol]
		if strings.TrimSpace(line) == "" || startsSection(line, sections) {
			break
		}
		end = eol
	}
	return start, end, true
}

func lineEnd(text string, from int) int {
	if i := strings.IndexByte(text[from:], '\n'); i >= 0 {
		return from + i
	}
	return len(text)
}

func startsSection(line string, sections []string) bool {
	l := strings.ToLower(strings.TrimLeft(line, " \t"))
	for _, s := range sections {
		if strings.HasPrefix(l, s) {
			return true
		}
	}
	return false
}
