package extract

import (
	"trial-monitor/internal/model"
)

type extractorFunc func(ix *markerIndex, t model.RequestType) Arguments

var (
	crfFilenameField  = field{markers: []string{MarkerCRFFilename}, stops: []string{MarkerESourceFiles}}
	esourceFilesField = field{markers: []string{MarkerESourceFiles}, stops: []string{MarkerCRFFilename}}

	crfDataField     = field{markers: []string{MarkerCRFData}, stops: []string{MarkerESourceData, MarkerDataPoints}}
	esourceDataField = field{markers: []string{MarkerESourceData}, stops: []string{MarkerCRFData, MarkerDataPoints}}
	dataPointsField  = field{markers: []string{MarkerDataPoints}, stops: []string{MarkerCRFData, MarkerESourceData}}

	contentField = field{markers: ContentMarkers}
)

var extractors = map[model.RequestType]extractorFunc{
	model.RequestFileRanking:           extractFileRanking,
	model.RequestDataExtraction:        extractDataExtraction,
	model.RequestDataVerification:      extractDataVerification,
	model.RequestDataQuality:           extractReview,
	model.RequestProtocolCompliance:    extractReview,
	model.RequestDataIntegrity:         extractReview,
	model.RequestComprehensiveReport:   extractReview,
	model.RequestMonitoringPlan:        extractReview,
	model.RequestClinicalTrialAnalysis: extractProtocol,
	model.RequestUnknown:               extractGuidance,
}

// Extract recovers the arguments the handler for t needs from text.
// It never panics: on an internal fault the whole text becomes the primary
// field and every other field is left empty. Unroutable types are treated as
// unknown.
func Extract(text string, t model.RequestType) (args Arguments) {
	defer func() {
		if r := recover(); r != nil {
			args = fallbackArguments(t, text)
		}
	}()

	fn, ok := extractors[t]
	if !ok {
		return GuidanceArgs{Text: text}
	}
	return fn(newMarkerIndex(text), t)
}

func extractFileRanking(ix *markerIndex, _ model.RequestType) Arguments {
	crf, _ := firstLine(chain(
		markerSplit(crfFilenameField),
		labelledBlock(reCRFFilenameLabel, nil, crfFilenameField.stops),
		labelledBlock(reCRFLabel, nil, crfFilenameField.stops),
	))(ix)

	files, _ := chainList(
		jsonListAfter(esourceFilesField),
		jsonListLabelled(reESourceFilesList),
		quotedFilenames(crf),
	)(ix)

	return FileRankingArgs{
		CRFFilename:  crf,
		ESourceFiles: files,
	}
}

func extractDataExtraction(ix *markerIndex, _ model.RequestType) Arguments {
	content, _ := chain(
		markerSplit(contentField),
		wholeMessage,
	)(ix)
	return DataExtractionArgs{FileContent: content}
}

func extractDataVerification(ix *markerIndex, _ model.RequestType) Arguments {
	crf, _ := chain(
		markerSplit(crfDataField),
		labelledBlock(reCRFDataLabel, crfDataSectionPrefixes, crfDataField.stops),
	)(ix)

	esource, _ := chain(
		markerSplit(esourceDataField),
		labelledBlock(reESourceDataLabel, esourceDataSectionPrefixes, esourceDataField.stops),
	)(ix)

	points, _ := chainList(
		jsonListAfter(dataPointsField),
		jsonListLabelled(reDataPointsList),
	)(ix)

	return DataVerificationArgs{
		CRFData:     crf,
		ESourceData: esource,
		DataPoints:  points,
	}
}

func extractReview(ix *markerIndex, t model.RequestType) Arguments {
	criteriaMarkers := criteriaMarkersFor(t)
	source := field{markers: SourceMarkers, stops: criteriaMarkers}
	criteria := field{
		markers: criteriaMarkers,
		stops:   []string{MarkerSourceData, MarkerFileContent},
	}

	data, _ := chain(
		markerSplit(source),
		labelledBlock(reSourceLabel, sourceSectionPrefixes, source.stops),
		wholeMessage,
	)(ix)

	crit, _ := markerSplit(criteria)(ix)

	return ReviewArgs{
		Type:       t,
		SourceData: data,
		Criteria:   crit,
	}
}

func extractProtocol(ix *markerIndex, _ model.RequestType) Arguments {
	text, _ := wholeMessage(ix)
	return ProtocolArgs{ProtocolText: text}
}

func extractGuidance(ix *markerIndex, _ model.RequestType) Arguments {
	return GuidanceArgs{Text: ix.text}
}

// fallbackArguments puts text in the primary field of t and leaves the rest empty.
func fallbackArguments(t model.RequestType, text string) Arguments {
	switch t {
	case model.RequestFileRanking:
		return FileRankingArgs{CRFFilename: text}
	case model.RequestDataExtraction:
		return DataExtractionArgs{FileContent: text}
	case model.RequestDataVerification:
		return DataVerificationArgs{CRFData: text}
	case model.RequestDataQuality, model.RequestProtocolCompliance, model.RequestDataIntegrity,
		model.RequestComprehensiveReport, model.RequestMonitoringPlan:
		return ReviewArgs{Type: t, SourceData: text}
	case model.RequestClinicalTrialAnalysis:
		return ProtocolArgs{ProtocolText: text}
	default:
		return GuidanceArgs{Text: text}
	}
}
