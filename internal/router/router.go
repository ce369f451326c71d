package router

import (
	"context"
	"strings"
	"unicode/utf8"

	"trial-monitor/internal/model"
)

// Classify returns the request type of text. It never fails: a message no rule
// matches is model.RequestUnknown.
func (r *KeywordRouter) Classify(text string) model.RequestType {
	return r.Explain(text).Type
}

// Explain classifies text and also reports the name of the rule that matched.
func (r *KeywordRouter) Explain(text string) Classification {
	lower := strings.ToLower(text)
	for _, rl := range r.rules {
		if rl.match(text, lower) {
			r.l.Debugf(context.Background(), "%s: matched rule %q -> %s", LogPrefixClassify, rl.name, rl.typ)
			return Classification{Type: rl.typ, Rule: rl.name}
		}
	}
	r.l.Debugf(context.Background(), "%s: no rule matched -> %s", LogPrefixClassify, model.RequestUnknown)
	return Classification{Type: model.RequestUnknown}
}

// Rules returns the classification table in evaluation order.
func (r *KeywordRouter) Rules() []RuleInfo {
	out := make([]RuleInfo, 0, len(r.rules))
	for _, rl := range r.rules {
		out = append(out, RuleInfo{Name: rl.name, Type: rl.typ})
	}
	return out
}

func keywordRule(t model.RequestType, keywords []string) rule {
	return rule{
		name:  string(t),
		typ:   t,
		match: containsAny(keywords),
	}
}

func containsAny(keywords []string) matchFunc {
	return func(_, lower string) bool {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}
}

// isLikelyProtocol treats long pasted documents as protocol text.
func isLikelyProtocol(raw, _ string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}
	if strings.Count(trimmed, "\n")+1 > LongTextMaxLines {
		return true
	}
	return utf8.RuneCountInString(trimmed) > LongTextMaxChars
}
