package router

import "trial-monitor/internal/model"

// matchFunc reports whether a rule applies. lower is the lowercased text.
type matchFunc func(raw, lower string) bool

// rule is one entry of the ordered classification table.
type rule struct {
	name  string
	typ   model.RequestType
	match matchFunc
}

// RuleInfo describes a classification rule without its predicate.
type RuleInfo struct {
	Name string
	Type model.RequestType
}

// Classification is the classifier verdict plus the rule that produced it.
type Classification struct {
	Type model.RequestType
	Rule string // empty when nothing matched
}
