package extract

import (
	"regexp"
	"slices"
	"strings"

	"trial-monitor/internal/model"
)

// Markers, lowercase. Matching is case-insensitive.
const (
	MarkerCRFFilename  = "crf filename:"
	MarkerESourceFiles = "esource files:"

	MarkerCRFData     = "crf data:"
	MarkerESourceData = "esource data:"
	MarkerDataPoints  = "data points:"

	MarkerSourceData  = "source data:"
	MarkerFileContent = "file content:"
	MarkerCRFContent  = "crf content:"
	MarkerFileData    = "file data:"
	MarkerContent     = "content:"
	MarkerData        = "data:"
	MarkerSource      = "source:"

	MarkerQualityCriteria        = "quality criteria:"
	MarkerProtocolRequirements   = "protocol requirements:"
	MarkerIntegrityCriteria      = "integrity criteria:"
	MarkerReviewParameters       = "review parameters:"
	MarkerMonitoringRequirements = "monitoring requirements:"
)

var (
	// ContentMarkers anchor the file content of a data extraction request.
	ContentMarkers = []string{
		MarkerFileContent,
		MarkerCRFContent,
		MarkerFileData,
		MarkerContent,
		MarkerData,
	}

	// SourceMarkers anchor the source data of the review style requests.
	SourceMarkers = []string{
		MarkerSourceData,
		MarkerFileContent,
		MarkerData,
		MarkerSource,
		MarkerContent,
	}

	// CriteriaMarkers anchor the optional secondary block per review type.
	CriteriaMarkers = map[model.RequestType]string{
		model.RequestDataQuality:         MarkerQualityCriteria,
		model.RequestProtocolCompliance:  MarkerProtocolRequirements,
		model.RequestDataIntegrity:       MarkerIntegrityCriteria,
		model.RequestComprehensiveReport: MarkerReviewParameters,
		model.RequestMonitoringPlan:      MarkerMonitoringRequirements,
	}

	// SharedCriteriaMarkers are accepted by every review type after its own
	// criteria marker.
	SharedCriteriaMarkers = []string{
		MarkerProtocolRequirements,
		MarkerQualityCriteria,
		MarkerIntegrityCriteria,
		MarkerReviewParameters,
	}

	// FileExtensions are accepted by the quoted filename fallback.
	FileExtensions = []string{"docx", "doc", "pdf", "txt", "csv", "xlsx"}
)

// Section prefixes that end a labelled block's continuation lines.
var (
	crfDataSectionPrefixes     = []string{"esource", "data points"}
	esourceDataSectionPrefixes = []string{"data points"}
	sourceSectionPrefixes      = []string{"protocol", "criteria", "requirements"}
)

var (
	reCRFFilenameLabel = regexp.MustCompile(`(?i)crf[^:\n]*filename[^:\n]*:?[ \t]*`)
	reCRFLabel         = regexp.MustCompile(`(?i)crf[^:\n]*:?[ \t]*`)
	reCRFDataLabel     = regexp.MustCompile(`(?i)crf[^:\n]*data[^:\n]*:?[ \t]*`)
	reESourceDataLabel = regexp.MustCompile(`(?i)esource[^:\n]*data[^:\n]*:?[ \t]*`)
	reSourceLabel      = regexp.MustCompile(`(?i)(?:data|source|content)[^:\n]*:?[ \t]*`)

	reESourceFilesList = regexp.MustCompile(`(?is)esource[^:]*files[^:]*:?\s*(\[.*?\])`)
	reDataPointsList   = regexp.MustCompile(`(?is)data[^:]*points[^:]*:?\s*(\[.*?\])`)
	reJSONArray        = regexp.MustCompile(`(?s)\[.*?\]`)
	reQuotedFilename   = regexp.MustCompile(`(?i)["']([^"'\n]+\.(?:` + strings.Join(FileExtensions, "|") + `))["']`)
)

// Vocabulary returns every recognised marker once.
func Vocabulary() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 20)
	add := func(ms ...string) {
		for _, m := range ms {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	add(MarkerCRFFilename, MarkerESourceFiles)
	add(MarkerCRFData, MarkerESourceData, MarkerDataPoints)
	add(ContentMarkers...)
	add(SourceMarkers...)
	for _, t := range model.AllRequestTypes() {
		if m, ok := CriteriaMarkers[t]; ok {
			add(m)
		}
	}
	add(SharedCriteriaMarkers...)
	return out
}

// criteriaMarkersFor lists the criteria markers of t in priority order.
func criteriaMarkersFor(t model.RequestType) []string {
	out := make([]string, 0, len(SharedCriteriaMarkers)+1)
	if m, ok := CriteriaMarkers[t]; ok {
		out = append(out, m)
	}
	for _, m := range SharedCriteriaMarkers {
		if !slices.Contains(out, m) {
			out = append(out, m)
		}
	}
	return out
}
