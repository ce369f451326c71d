package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Long-text heuristic: pasted protocols are routed to protocol analysis.
const (
	LongTextMaxLines = 10
	LongTextMaxChars = 500
)

// Rule names
const (
	RuleLongText = "long_text"
)

// Keyword groups, lowercase. Group order is the classification priority.
var (
	KeywordsFileRanking = []string{
		"file ranking",
		"rank files",
		"crf filename",
		"esource files",
		"rank the",
	}

	KeywordsDataExtraction = []string{
		"extract data points",
		"data point extraction",
		"extract keys",
		"data points keys",
	}

	KeywordsDataVerification = []string{
		"data verification",
		"verify data",
		"crf data",
		"esource data",
		"verification analysis",
	}

	KeywordsDataQuality = []string{
		"data quality",
		"quality review",
		"quality assessment",
		"data completeness",
		"data accuracy",
	}

	KeywordsProtocolCompliance = []string{
		"protocol compliance",
		"compliance review",
		"protocol adherence",
		"protocol requirements",
	}

	KeywordsDataIntegrity = []string{
		"data integrity",
		"integrity review",
		"data integrity analysis",
		"audit trail",
	}

	KeywordsComprehensiveReport = []string{
		"comprehensive review",
		"review report",
		"full review",
		"complete assessment",
	}

	KeywordsClinicalTrialAnalysis = []string{
		"clinical trial analysis",
		"protocol analysis",
		"analyze protocol",
		"trial protocol",
		"clinical trial protocol",
	}

	KeywordsMonitoringPlan = []string{
		"monitoring plan",
		"generate monitoring plan",
		"sdv plan",
		"source data verification plan",
		"remote monitoring plan",
		"comprehensive monitoring",
		"monitoring strategy",
	}
)
