package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

type shapeKind int

const (
	shapeAny shapeKind = iota
	shapeJSONArray
	shapeJSONObject
	shapeMarkdown
)

// shape is the response format a handler asks the oracle for.
type shape struct {
	kind    shapeKind
	keys    []string // required top level keys of a JSON object
	headers []string // required markdown headers, matched case-insensitively
}

var reCodeFence = regexp.MustCompile("(?s)```(?:json|markdown|md)?\\s*(.+?)\\s*```")

// check reports the first way payload deviates from the shape.
func (s shape) check(payload string) error {
	switch s.kind {
	case shapeJSONArray:
		var v []any
		if err := json.Unmarshal([]byte(sanitizeJSONResponse(payload)), &v); err != nil {
			return fmt.Errorf("expected JSON array: %w", err)
		}
	case shapeJSONObject:
		var v map[string]json.RawMessage
		if err := json.Unmarshal([]byte(sanitizeJSONResponse(payload)), &v); err != nil {
			return fmt.Errorf("expected JSON object: %w", err)
		}
		var missing []string
		for _, k := range s.keys {
			if _, ok := v[k]; !ok {
				missing = append(missing, k)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing keys %v", missing)
		}
	case shapeMarkdown:
		lower := strings.ToLower(stripCodeFence(payload))
		var missing []string
		for _, h := range s.headers {
			if !strings.Contains(lower, strings.ToLower(h)) {
				missing = append(missing, h)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing sections %v", missing)
		}
	}
	return nil
}

func stripCodeFence(text string) string {
	if m := reCodeFence.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return text
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := reCodeFence.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
