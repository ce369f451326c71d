package router

import (
	"trial-monitor/internal/model"
	pkgLog "trial-monitor/pkg/log"
)

// Router assigns exactly one request type to a message.
type Router interface {
	Classify(text string) model.RequestType
	Explain(text string) Classification
	Rules() []RuleInfo
}

// KeywordRouter classifies messages with an ordered keyword table, first match wins.
type KeywordRouter struct {
	rules []rule
	l     pkgLog.Logger
}

var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter with the default rule table.
func New(l pkgLog.Logger) *KeywordRouter {
	if l == nil {
		l = pkgLog.NewNop()
	}
	return &KeywordRouter{
		rules: defaultRules(),
		l:     l,
	}
}

func defaultRules() []rule {
	return []rule{
		keywordRule(model.RequestFileRanking, KeywordsFileRanking),
		keywordRule(model.RequestDataExtraction, KeywordsDataExtraction),
		keywordRule(model.RequestDataVerification, KeywordsDataVerification),
		keywordRule(model.RequestDataQuality, KeywordsDataQuality),
		keywordRule(model.RequestProtocolCompliance, KeywordsProtocolCompliance),
		keywordRule(model.RequestDataIntegrity, KeywordsDataIntegrity),
		keywordRule(model.RequestComprehensiveReport, KeywordsComprehensiveReport),
		keywordRule(model.RequestClinicalTrialAnalysis, KeywordsClinicalTrialAnalysis),
		// Checked before the monitoring plan keywords on purpose: a pasted
		// protocol that mentions "monitoring plan" is still a protocol.
		{name: RuleLongText, typ: model.RequestClinicalTrialAnalysis, match: isLikelyProtocol},
		keywordRule(model.RequestMonitoringPlan, KeywordsMonitoringPlan),
	}
}
