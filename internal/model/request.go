package model

// RequestType tags what a monitoring message is asking for.
// Exactly one value is assigned to every inbound message.
type RequestType string

const (
	RequestFileRanking           RequestType = "file_ranking"
	RequestDataExtraction        RequestType = "data_extraction"
	RequestDataVerification      RequestType = "data_verification"
	RequestDataQuality           RequestType = "data_quality"
	RequestProtocolCompliance    RequestType = "protocol_compliance"
	RequestDataIntegrity         RequestType = "data_integrity"
	RequestComprehensiveReport   RequestType = "comprehensive_report"
	RequestClinicalTrialAnalysis RequestType = "clinical_trial_analysis"
	RequestMonitoringPlan        RequestType = "monitoring_plan"
	RequestUnknown               RequestType = "unknown"
)

// AllRequestTypes returns the nine routable request types in classification priority order.
func AllRequestTypes() []RequestType {
	return []RequestType{
		RequestFileRanking,
		RequestDataExtraction,
		RequestDataVerification,
		RequestDataQuality,
		RequestProtocolCompliance,
		RequestDataIntegrity,
		RequestComprehensiveReport,
		RequestClinicalTrialAnalysis,
		RequestMonitoringPlan,
	}
}

// IsValid reports whether t is one of the declared request types, unknown included.
func (t RequestType) IsValid() bool {
	if t == RequestUnknown {
		return true
	}
	for _, v := range AllRequestTypes() {
		if v == t {
			return true
		}
	}
	return false
}

func (t RequestType) String() string {
	return string(t)
}

// Message is one inbound chat message. It is never mutated after receipt.
type Message struct {
	Sender string
	Text   string
}

// Role is the author of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)
