package usecase

import (
	"fmt"

	"trial-monitor/internal/extract"
	"trial-monitor/internal/model"
	"trial-monitor/internal/monitor"
)

const (
	headerProtocolAnalysis = "# Clinical Trial Protocol Analysis\n\n"
	headerMonitoringPlan   = "# Clinical Trial Monitoring Plan\n\n"

	defaultQualityCriteria   = "Standard clinical trial data quality criteria"
	defaultIntegrityCriteria = "Standard clinical trial data integrity criteria"
	defaultReviewParameters  = "Standard comprehensive review parameters"
)

// contract is everything the dispatcher needs to run one request type.
type contract struct {
	label      string // used in format errors, e.g. "file ranking"
	notice     string // progress notice sent before the oracle call
	errContext string // completes "Error <context>: <message>"
	build      func(args extract.Arguments) (string, error)
	shape      shape
	header     string
}

// requestError is a precondition failure. Its message is sent to the sender as is.
type requestError struct {
	kind error
	msg  string
}

func (e *requestError) Error() string { return e.msg }
func (e *requestError) Unwrap() error { return e.kind }

func invalidFormat(label string) error {
	return &requestError{kind: monitor.ErrInvalidFormat, msg: fmt.Sprintf("Error: Invalid %s request format", label)}
}

func missingField(label, field string) error {
	return &requestError{
		kind: monitor.ErrMissingField,
		msg:  fmt.Sprintf("Error: Invalid %s request format (%s not specified)", label, field),
	}
}

// typed rejects arguments of the wrong concrete type before fn sees them.
func typed[A extract.Arguments](label string, fn func(A) (string, error)) func(extract.Arguments) (string, error) {
	return func(args extract.Arguments) (string, error) {
		a, ok := args.(A)
		if !ok {
			return "", invalidFormat(label)
		}
		return fn(a)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func contracts() map[model.RequestType]contract {
	return map[model.RequestType]contract{
		model.RequestFileRanking: {
			label:      "file ranking",
			notice:     "🔬 Analyzing files for ranking...",
			errContext: "ranking files",
			shape:      shape{kind: shapeJSONArray},
			build: typed("file ranking", func(a extract.FileRankingArgs) (string, error) {
				if a.CRFFilename == "" {
					return "", missingField("file ranking", "CRF filename")
				}
				if len(a.ESourceFiles) == 0 {
					return "", missingField("file ranking", "eSource files")
				}
				return fileRankingPrompt(a.CRFFilename, a.ESourceFiles), nil
			}),
		},
		model.RequestDataExtraction: {
			label:      "data extraction",
			notice:     "🔬 Extracting data points...",
			errContext: "extracting data points",
			shape:      shape{kind: shapeJSONArray},
			build: typed("data extraction", func(a extract.DataExtractionArgs) (string, error) {
				if a.FileContent == "" {
					return "", missingField("data extraction", "file content")
				}
				return dataExtractionPrompt(a.FileContent), nil
			}),
		},
		model.RequestDataVerification: {
			label:      "data verification",
			notice:     "🔬 Verifying data...",
			errContext: "verifying data",
			shape: shape{kind: shapeJSONObject, keys: []string{
				"verified", "verified_data_points", "unverified_data_points",
				"missing_data_points", "discrepancy_data_points", "additional_information_needed",
			}},
			build: typed("data verification", func(a extract.DataVerificationArgs) (string, error) {
				switch {
				case a.CRFData == "":
					return "", missingField("data verification", "CRF data")
				case a.ESourceData == "":
					return "", missingField("data verification", "eSource data")
				case len(a.DataPoints) == 0:
					return "", missingField("data verification", "data points")
				}
				return dataVerificationPrompt(a.CRFData, a.ESourceData, a.DataPoints), nil
			}),
		},
		model.RequestDataQuality: {
			label:      "data quality",
			notice:     "🔍 Analyzing data quality...",
			errContext: "reviewing data quality",
			shape: shape{kind: shapeJSONObject, keys: []string{
				"overall_quality_score", "completeness_score", "accuracy_score", "consistency_score",
				"validity_score", "quality_issues", "data_completeness", "data_accuracy", "recommendations",
			}},
			build: typed("data quality", func(a extract.ReviewArgs) (string, error) {
				if a.SourceData == "" {
					return "", missingField("data quality", "source data")
				}
				return dataQualityPrompt(a.SourceData, orDefault(a.Criteria, defaultQualityCriteria)), nil
			}),
		},
		model.RequestProtocolCompliance: {
			label:      "protocol compliance",
			notice:     "📋 Checking protocol compliance...",
			errContext: "reviewing protocol compliance",
			shape: shape{kind: shapeJSONObject, keys: []string{
				"overall_compliance_score", "compliance_status", "protocol_adherence",
				"violations", "missing_requirements", "recommendations",
			}},
			build: typed("protocol compliance", func(a extract.ReviewArgs) (string, error) {
				if a.Criteria == "" {
					return "", &requestError{
						kind: monitor.ErrMissingField,
						msg:  "Error: Protocol requirements not specified for compliance review",
					}
				}
				if a.SourceData == "" {
					return "", missingField("protocol compliance", "source data")
				}
				return protocolCompliancePrompt(a.SourceData, a.Criteria), nil
			}),
		},
		model.RequestDataIntegrity: {
			label:      "data integrity",
			notice:     "🔒 Analyzing data integrity...",
			errContext: "reviewing data integrity",
			shape: shape{kind: shapeJSONObject, keys: []string{
				"overall_integrity_score", "integrity_status", "integrity_issues",
				"audit_trail_analysis", "data_lineage", "recommendations",
			}},
			build: typed("data integrity", func(a extract.ReviewArgs) (string, error) {
				if a.SourceData == "" {
					return "", missingField("data integrity", "source data")
				}
				return dataIntegrityPrompt(a.SourceData, orDefault(a.Criteria, defaultIntegrityCriteria)), nil
			}),
		},
		model.RequestComprehensiveReport: {
			label:      "comprehensive report",
			notice:     "📄 Generating comprehensive review report...",
			errContext: "generating comprehensive report",
			shape: shape{kind: shapeMarkdown, headers: []string{
				"EXECUTIVE SUMMARY", "DATA QUALITY ASSESSMENT", "PROTOCOL COMPLIANCE REVIEW",
				"DATA INTEGRITY ANALYSIS", "RECOMMENDATIONS",
			}},
			build: typed("comprehensive report", func(a extract.ReviewArgs) (string, error) {
				if a.SourceData == "" {
					return "", missingField("comprehensive report", "source data")
				}
				return comprehensiveReportPrompt(a.SourceData, orDefault(a.Criteria, defaultReviewParameters)), nil
			}),
		},
		model.RequestClinicalTrialAnalysis: {
			label:      "clinical trial analysis",
			notice:     "🏥 Analyzing clinical trial protocol...",
			errContext: "analyzing protocol",
			header:     headerProtocolAnalysis,
			shape: shape{kind: shapeMarkdown, headers: []string{
				"Trial Overview", "Primary Objectives and Endpoints", "Eligibility Criteria",
				"Monitoring and SDV Requirements", "Safety Monitoring",
			}},
			build: typed("clinical trial analysis", func(a extract.ProtocolArgs) (string, error) {
				if a.ProtocolText == "" {
					return "", missingField("clinical trial analysis", "protocol text")
				}
				return protocolAnalysisPrompt(a.ProtocolText), nil
			}),
		},
		model.RequestMonitoringPlan: {
			label:      "monitoring plan",
			notice:     "📋 Generating comprehensive monitoring plan...",
			errContext: "generating monitoring plan",
			header:     headerMonitoringPlan,
			shape: shape{kind: shapeMarkdown, headers: []string{
				"MONITORING STRATEGY", "SOURCE DATA VERIFICATION (SDV) PLAN",
				"MONITORING VISIT SCHEDULE", "RISK ASSESSMENT AND MITIGATION",
			}},
			build: typed("monitoring plan", func(a extract.ReviewArgs) (string, error) {
				if a.SourceData == "" {
					return "", missingField("monitoring plan", "protocol context")
				}
				return monitoringPlanPrompt(a.SourceData, a.Criteria), nil
			}),
		},
	}
}
