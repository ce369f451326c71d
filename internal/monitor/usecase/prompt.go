package usecase

import (
	"encoding/json"
	"strconv"
	"strings"

	"trial-monitor/internal/conversation"
	"trial-monitor/internal/model"
)

const promptPreamble = "You are a specialized TrialMonitor Agent for clinical trials."

const promptTail = "Do not include any other text in the return value."

// capabilityLines are listed, numbered, at the top of every task prompt.
var capabilityLines = []string{
	"**File Ranking Request**: When given a CRF filename and list of eSource filenames, rank the eSource files by likelihood of containing relevant source data.",
	"**Data Point Extraction Request**: When given a CRF filename, extract all the data points' keys (not values) from the CRF file.",
	"**Data Verification Request**: When given CRF data and eSource data, perform detailed verification analysis.",
	"**Data Quality Review**: Comprehensive assessment of data quality, completeness, and accuracy",
	"**Protocol Compliance Review**: Verify data adherence to study protocol requirements",
	"**Data Integrity Review**: Identify potential data integrity issues and inconsistencies",
	"**Comprehensive Review Report**: Generate detailed review reports with findings and recommendations",
	"**Clinical Trial Protocol Analysis**: Analyze clinical trial protocol text and extract structured information about objectives, endpoints, eligibility criteria, monitoring requirements, and more",
	"**Monitoring Plan Generation**: Generate comprehensive monitoring plans including remote source data verification (SDV) plans based on protocol context",
}

// guidanceTypeNames is the short list offered to users who sent something unroutable.
var guidanceTypeNames = []string{
	"File Ranking Request",
	"Data Point Extraction Request",
	"Data Verification Request",
	"Data Quality Review",
	"Protocol Compliance Review",
	"Data Integrity Review",
	"Comprehensive Review Report",
	"Clinical Trial Protocol Analysis",
	"Monitoring Plan Generation",
}

// systemPrompt is the standing instruction for the guidance conversation.
const systemPrompt = `You are a specialized TrialMonitor Agent for clinical trials.

Your expertise includes:
- Source data validation and verification
- Patient data validation and matching
- Data quality assessment and improvement
- Protocol compliance review and monitoring
- Clinical trial data integrity analysis
- File ranking and data extraction
- Regulatory requirement validation
- Comprehensive trial monitoring

You can handle 9 types of requests:

**PATIENT DATA VALIDATION:**
1. **File Ranking Request**: When given a CRF filename and list of eSource filenames, rank the eSource files by likelihood of containing relevant source data.
2. **Data Point Extraction Request**: When given a CRF filename, extract all the data points' keys (not values) from the CRF file.
3. **Data Verification Request**: When given CRF data and eSource data, perform detailed verification analysis.

**SOURCE DATA REVIEW:**
4. **Data Quality Review**: Comprehensive assessment of data quality, completeness, and accuracy
5. **Protocol Compliance Review**: Verify data adherence to study protocol requirements
6. **Data Integrity Review**: Identify potential data integrity issues and inconsistencies
7. **Comprehensive Review Report**: Generate detailed review reports with findings and recommendations

**CLINICAL TRIAL ANALYSIS:**
8. **Clinical Trial Protocol Analysis**: Analyze clinical trial protocol text and extract structured information about objectives, endpoints, eligibility criteria, monitoring requirements, and more
9. **Monitoring Plan Generation**: Generate comprehensive monitoring plans including remote source data verification (SDV) plans based on protocol context

**Response Formats:**
- File Ranking: ["filename1", "filename2", "filename3"]
- Data Point Extraction: ["key1", "key2", "key3"]
- Data Verification: {"verified": true/false, "verified_data_points": [...], "unverified_data_points": [...], "missing_data_points": [...], "discrepancy_data_points": [...], "additional_information_needed": [...]}
- Data Quality Review: {"overall_quality_score": 0-100, "completeness_score": 0-100, "quality_issues": [...], "recommendations": [...]}
- Protocol Compliance: {"overall_compliance_score": 0-100, "compliance_status": "compliant/non_compliant", "violations": [...], "recommendations": [...]}
- Data Integrity: {"overall_integrity_score": 0-100, "integrity_status": "intact/compromised", "integrity_issues": [...], "recommendations": [...]}
- Comprehensive Report: Structured markdown report with executive summary, detailed findings, and recommendations
- Clinical Trial Protocol Analysis: Structured markdown analysis with trial overview, objectives, endpoints, eligibility criteria, monitoring requirements, and more
- Monitoring Plan Generation: Structured markdown monitoring plan with SDV strategy, visit schedules, risk assessment, and implementation guidelines

Do not include any other text in the return value.`

// promptBuilder assembles a task prompt as blank-line separated sections.
type promptBuilder struct {
	sections []string
}

// newTaskPrompt starts a prompt advertising the first n capabilities followed by the task brief.
func newTaskPrompt(n int, task string) *promptBuilder {
	var sb strings.Builder
	sb.WriteString("You can handle ")
	sb.WriteString(strconv.Itoa(n))
	sb.WriteString(" types of requests:")
	for i := 0; i < n && i < len(capabilityLines); i++ {
		sb.WriteString("\n")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(". ")
		sb.WriteString(capabilityLines[i])
	}
	return &promptBuilder{sections: []string{promptPreamble, sb.String(), task}}
}

// inline adds "Label: value" on one line.
func (p *promptBuilder) inline(label, value string) *promptBuilder {
	p.sections = append(p.sections, label+": "+value)
	return p
}

// block adds the label on its own line followed by the value.
func (p *promptBuilder) block(label, value string) *promptBuilder {
	p.sections = append(p.sections, label+":\n"+value)
	return p
}

func (p *promptBuilder) text(s string) *promptBuilder {
	p.sections = append(p.sections, s)
	return p
}

func (p *promptBuilder) String() string {
	return strings.Join(append(p.sections, promptTail), "\n\n")
}

func fileRankingPrompt(crfFilename string, esourceFiles []string) string {
	return newTaskPrompt(7, `For file ranking request:
    - You shall be given a CRF filename and a list of eSource filenames.
    - You shall rank the eSource files by the likelihood of containing relevant data for CRF just based on the filenames.
    - The return value should be ["filename1", "filename2", "filename3"]`).
		inline("CRF Filename", crfFilename).
		inline("eSource Files to Rank", jsonList(esourceFiles)).
		text(`Please rank the eSource files by likelihood of containing relevant data for the CRF file based on filename analysis.
Return the ranking as a JSON array of filenames in order from most likely to least likely.`).
		String()
}

func dataExtractionPrompt(fileContent string) string {
	return newTaskPrompt(7, `Data Point Extraction Request:
    - You shall be given file content.
    - You shall extract all the data points' keys (not values) from the CRF file.
    - The return value should be ["key1", "key2", "key3"]`).
		block("File Content", fileContent).
		text(`Please extract all the data points' keys (not values) from the CRF file.
Return the keys as a JSON array.`).
		String()
}

func dataVerificationPrompt(crfData, esourceData string, dataPoints []string) string {
	return newTaskPrompt(7, `Data Verification Request:
    - You shall be given CRF data, eSource data, and the data points' keys.
    - You shall perform detailed verification analysis.
    - The return value should be a dictionary with the following keys:
        - "verified": True/False
        - "verified_data_points": ["key1", "key2", "key3"]
        - "unverified_data_points": ["key1", "key2", "key3"]
        - "missing_data_points": ["key1", "key2", "key3"]
        - "discrepancy_data_points": ["key1", "key2", "key3"]
        - "additional_information_needed": ["key1", "key2", "key3"]`).
		block("CRF Data", crfData).
		block("eSource Data", esourceData).
		block("Data Points to Verify", jsonList(dataPoints)).
		text("Please perform detailed verification analysis and return the results as a JSON dictionary with the specified keys.").
		String()
}

func dataQualityPrompt(sourceData, criteria string) string {
	return newTaskPrompt(7, `For data quality review:
    - You shall be given source data content and quality criteria
    - You shall assess data completeness, accuracy, consistency, and validity
    - The return value should be a JSON dictionary with quality metrics and issues`).
		block("Source Data", sourceData).
		block("Quality Criteria", criteria).
		text(`Please perform a comprehensive data quality review and return the results as a JSON dictionary with the following structure:
{
    "overall_quality_score": 0-100,
    "completeness_score": 0-100,
    "accuracy_score": 0-100,
    "consistency_score": 0-100,
    "validity_score": 0-100,
    "quality_issues": [
        {
            "issue_type": "missing_data|inconsistent_data|invalid_data|format_issue",
            "severity": "low|medium|high|critical",
            "description": "Detailed description of the issue",
            "field_affected": "Field or section affected",
            "recommendation": "Recommended action to resolve"
        }
    ],
    "data_completeness": {
        "required_fields_present": 0-100,
        "optional_fields_present": 0-100,
        "missing_required_fields": ["field1", "field2"],
        "missing_optional_fields": ["field1", "field2"]
    },
    "data_accuracy": {
        "logical_consistency": 0-100,
        "value_ranges_valid": 0-100,
        "date_consistency": 0-100,
        "cross_field_validation": 0-100
    },
    "recommendations": [
        "Specific recommendation 1",
        "Specific recommendation 2"
    ]
}`).
		String()
}

func protocolCompliancePrompt(sourceData, requirements string) string {
	return newTaskPrompt(7, `For protocol compliance review:
    - You shall be given source data and protocol requirements
    - You shall verify adherence to protocol specifications
    - The return value should be a JSON dictionary with compliance status and violations`).
		block("Source Data", sourceData).
		block("Protocol Requirements", requirements).
		text(`Please perform a protocol compliance review and return the results as a JSON dictionary with the following structure:
{
    "overall_compliance_score": 0-100,
    "compliance_status": "compliant|non_compliant|partially_compliant",
    "protocol_adherence": {
        "inclusion_criteria_met": true/false,
        "exclusion_criteria_violated": true/false,
        "visit_schedule_adherence": 0-100,
        "data_collection_timeliness": 0-100,
        "required_assessments_completed": 0-100
    },
    "violations": [
        {
            "violation_type": "inclusion_criteria|exclusion_criteria|visit_timing|data_collection|assessment_missing",
            "severity": "low|medium|high|critical",
            "description": "Detailed description of the violation",
            "protocol_section": "Relevant protocol section",
            "corrective_action": "Required corrective action"
        }
    ],
    "missing_requirements": [
        {
            "requirement_type": "visit|assessment|data_point|documentation",
            "description": "Missing requirement description",
            "protocol_reference": "Protocol section reference",
            "impact": "Impact on study integrity"
        }
    ],
    "recommendations": [
        "Specific compliance recommendation 1",
        "Specific compliance recommendation 2"
    ]
}`).
		String()
}

func dataIntegrityPrompt(sourceData, criteria string) string {
	return newTaskPrompt(7, `For data integrity review:
    - You shall be given source data and integrity criteria
    - You shall identify potential integrity issues and inconsistencies
    - The return value should be a JSON dictionary with integrity findings`).
		block("Source Data", sourceData).
		block("Integrity Criteria", criteria).
		text(`Please perform a data integrity review and return the results as a JSON dictionary with the following structure:
{
    "overall_integrity_score": 0-100,
    "integrity_status": "intact|compromised|questionable",
    "integrity_issues": [
        {
            "issue_type": "data_manipulation|unauthorized_changes|missing_audit_trail|inconsistent_timestamps|suspicious_patterns",
            "severity": "low|medium|high|critical",
            "description": "Detailed description of the integrity issue",
            "affected_data": "Specific data elements affected",
            "evidence": "Evidence supporting the finding",
            "recommendation": "Recommended investigation or action"
        }
    ],
    "audit_trail_analysis": {
        "timestamps_consistent": true/false,
        "user_actions_logged": true/false,
        "data_modifications_tracked": true/false,
        "suspicious_activity_detected": true/false
    },
    "data_lineage": {
        "source_traceability": 0-100,
        "transformation_integrity": 0-100,
        "version_control": 0-100
    },
    "recommendations": [
        "Specific integrity recommendation 1",
        "Specific integrity recommendation 2"
    ]
}`).
		String()
}

func comprehensiveReportPrompt(sourceData, parameters string) string {
	return newTaskPrompt(7, `For comprehensive review report:
    - You shall be given source data and review parameters
    - You shall generate a detailed report with all findings and recommendations
    - The return value should be a structured report with sections for each review type`).
		block("Source Data", sourceData).
		block("Review Parameters", parameters).
		text(`Please generate a comprehensive review report and return it as a structured report with the following sections:

# TRIAL MONITOR COMPREHENSIVE REVIEW REPORT

## EXECUTIVE SUMMARY
- Overall assessment score: 0-100
- Key findings summary
- Critical issues identified
- Recommendations priority

## DATA QUALITY ASSESSMENT
- Completeness analysis
- Accuracy evaluation
- Consistency review
- Validity assessment
- Quality issues identified

## PROTOCOL COMPLIANCE REVIEW
- Compliance status
- Protocol adherence metrics
- Violations identified
- Missing requirements

## DATA INTEGRITY ANALYSIS
- Integrity status
- Audit trail analysis
- Data lineage review
- Integrity issues found

## PATIENT DATA VALIDATION
- Data verification results
- Patient matching analysis
- Data derivability assessment
- Validation findings

## DETAILED FINDINGS
- Issue-by-issue breakdown
- Severity assessment
- Impact analysis
- Evidence provided

## RECOMMENDATIONS
- Immediate actions required
- Short-term improvements
- Long-term enhancements
- Process improvements

## APPENDICES
- Detailed metrics
- Supporting evidence
- Reference materials`).
		String()
}

func protocolAnalysisPrompt(protocolText string) string {
	return newTaskPrompt(8, `For clinical trial protocol analysis:
    - You shall be given clinical trial protocol text
    - You shall extract structured information about the trial
    - The return value should be a structured markdown analysis`).
		block("Protocol Text", protocolText).
		text(`Please analyze this clinical trial protocol and extract the following structured information:

# Clinical Trial Protocol Analysis

## 1. Trial Overview
- Protocol title/name
- Protocol number
- Study phase
- Trial type (interventional, observational, etc.)

## 2. Primary Objectives and Endpoints
- Primary objectives
- Primary endpoints and how they're measured
- Secondary endpoints

## 3. Trial Design
- Study design description
- Randomization (if applicable)
- Blinding (if applicable)
- Sample size

## 4. Eligibility Criteria
- Inclusion criteria (detailed list)
- Exclusion criteria (detailed list)

## 5. Monitoring and SDV Requirements
- Monitoring schedule and frequency
- Site visit schedule
- Source Data Verification (SDV) requirements
- What data points need verification
- Frequency of monitoring visits

## 6. Key Personnel and Sites
- Principal Investigators
- Study sites
- Sponsor information

## 7. Timeline and Visit Schedule
- Visit schedule
- Key milestones
- Duration of participation

## 8. Safety Monitoring
- Safety endpoints
- Adverse event monitoring
- Data Safety Monitoring Board (DSMB) requirements

## 9. Statistical Analysis Plan
- Statistical methods
- Primary analysis approach

## 10. Other Important Details
- Special procedures or considerations
- Regulatory information

Please provide a comprehensive, structured analysis in clear sections. Be specific and detailed.`).
		String()
}

func monitoringPlanPrompt(protocolContext, requirements string) string {
	p := newTaskPrompt(9, `For monitoring plan generation:
    - You shall be given protocol context and optional monitoring requirements
    - You shall generate a comprehensive monitoring plan
    - The return value should be a structured markdown monitoring plan`).
		block("Protocol Context", protocolContext)
	if requirements != "" {
		p.inline("Monitoring Requirements", requirements)
	}
	return p.text(monitoringPlanOutline).String()
}

const monitoringPlanOutline = `Please generate a comprehensive monitoring plan based on the protocol context. The plan should include:

# CLINICAL TRIAL MONITORING PLAN

## 1. EXECUTIVE SUMMARY
- Study overview and monitoring objectives
- Risk-based monitoring approach
- Key monitoring priorities
- Resource allocation summary

## 2. MONITORING STRATEGY
- Overall monitoring approach (risk-based, traditional, hybrid)
- Remote vs. on-site monitoring ratio
- Centralized monitoring components
- Quality by design principles

## 3. SOURCE DATA VERIFICATION (SDV) PLAN
- SDV strategy and approach
- 100% SDV requirements (critical data points)
- Risk-based SDV for other data
- Remote SDV capabilities and tools
- SDV frequency and timing

## 4. MONITORING VISIT SCHEDULE
- Pre-study visit requirements
- Site initiation visit (SIV) plan
- Routine monitoring visit schedule
- Close-out visit planning
- Remote monitoring activities

## 5. RISK ASSESSMENT AND MITIGATION
- High-risk data points identification
- Site risk stratification
- Patient risk factors
- Protocol complexity assessment
- Mitigation strategies

## 6. DATA QUALITY OVERSIGHT
- Centralized data review processes
- Key risk indicators (KRIs)
- Data quality metrics
- Query management strategy
- Data cleaning procedures

## 7. COMPLIANCE MONITORING
- Protocol adherence verification
- Regulatory compliance checks
- GCP compliance monitoring
- Site performance metrics
- Investigator oversight

## 8. SAFETY MONITORING
- Adverse event monitoring
- Safety data review
- Medical monitoring requirements
- DSMB support activities
- Safety signal detection

## 9. REMOTE MONITORING CAPABILITIES
- Electronic data capture (EDC) utilization
- Remote access protocols
- Digital tools and platforms
- Virtual monitoring procedures
- Data security measures

## 10. MONITORING TEAM STRUCTURE
- Roles and responsibilities
- Central monitoring team
- Site monitoring team
- Data management coordination
- Quality assurance oversight

## 11. IMPLEMENTATION TIMELINE
- Phase 1: Study startup and SIV
- Phase 2: Active monitoring period
- Phase 3: Study close-out
- Key milestones and deliverables
- Resource allocation timeline

## 12. QUALITY METRICS AND KPIs
- Monitoring efficiency metrics
- Data quality indicators
- Site performance measures
- Timeline adherence
- Cost-effectiveness measures

## 13. CONTINGENCY PLANNING
- Risk escalation procedures
- Site performance issues
- Data quality problems
- Regulatory findings
- Emergency response protocols

## 14. TECHNOLOGY AND TOOLS
- EDC system requirements
- Remote monitoring platforms
- Data visualization tools
- Communication systems
- Training requirements

## 15. REGULATORY CONSIDERATIONS
- FDA/EMA requirements
- ICH-GCP guidelines
- Local regulatory compliance
- Audit preparation
- Inspection readiness

Please provide a comprehensive, detailed monitoring plan that addresses all aspects of clinical trial monitoring based on the protocol context provided.`

// guidancePrompt asks the oracle how to help with a message that matched no request type.
// Each context turn is cut to maxTurnRunes.
func guidancePrompt(turns []conversation.Turn, userText string) string {
	var ctxText strings.Builder
	for _, t := range turns {
		role := "User"
		if t.Role == model.RoleModel {
			role = "Assistant"
		}
		ctxText.WriteString(role)
		ctxText.WriteString(": ")
		ctxText.WriteString(truncateRunes(t.Text, maxTurnRunes))
		ctxText.WriteString("\n")
	}

	var sb strings.Builder
	sb.WriteString("You are helping with clinical trial monitoring. ")
	sb.WriteString(ctxText.String())
	sb.WriteString("\n\nUser Input: ")
	sb.WriteString(userText)
	sb.WriteString("\n\nProvide helpful guidance on how to use this TrialMonitor agent. The agent can handle ")
	sb.WriteString(strconv.Itoa(len(guidanceTypeNames)))
	sb.WriteString(" types of requests:")
	for i, name := range guidanceTypeNames {
		sb.WriteString("\n")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(". ")
		sb.WriteString(name)
	}
	sb.WriteString("\n\nPlease provide specific guidance based on the user's input.")
	return sb.String()
}

func jsonList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return strings.Join(items, ", ")
	}
	return string(b)
}
