package extract

import "trial-monitor/internal/model"

// Arguments are the typed inputs one handler needs. The concrete type depends
// on the request type; an empty string or nil slice means "not found".
type Arguments interface {
	RequestType() model.RequestType
}

// FileRankingArgs feeds the file ranking handler.
type FileRankingArgs struct {
	CRFFilename  string   `json:"crf_filename"`
	ESourceFiles []string `json:"esource_files"`
}

func (FileRankingArgs) RequestType() model.RequestType { return model.RequestFileRanking }

// DataExtractionArgs feeds the data point extraction handler.
type DataExtractionArgs struct {
	FileContent string `json:"file_content"`
}

func (DataExtractionArgs) RequestType() model.RequestType { return model.RequestDataExtraction }

// DataVerificationArgs feeds the data verification handler. All three fields are required.
type DataVerificationArgs struct {
	CRFData     string   `json:"crf_data"`
	ESourceData string   `json:"esource_data"`
	DataPoints  []string `json:"data_points"`
}

func (DataVerificationArgs) RequestType() model.RequestType { return model.RequestDataVerification }

// ReviewArgs is shared by the review style handlers: data quality, protocol
// compliance, data integrity, comprehensive report and monitoring plan.
// Criteria holds the optional secondary block (quality criteria, protocol
// requirements, integrity criteria, review parameters or monitoring requirements).
type ReviewArgs struct {
	Type       model.RequestType `json:"type"`
	SourceData string            `json:"source_data"`
	Criteria   string            `json:"criteria,omitempty"`
}

func (a ReviewArgs) RequestType() model.RequestType { return a.Type }

// ProtocolArgs feeds the clinical trial protocol analysis handler.
type ProtocolArgs struct {
	ProtocolText string `json:"protocol_text"`
}

func (ProtocolArgs) RequestType() model.RequestType { return model.RequestClinicalTrialAnalysis }

// GuidanceArgs carries an unclassified message to the guidance handler.
type GuidanceArgs struct {
	Text string `json:"text"`
}

func (GuidanceArgs) RequestType() model.RequestType { return model.RequestUnknown }

// span is one marker occurrence in the text, byte offsets [start, end).
type span struct {
	start  int
	end    int
	marker string
}

// field describes where one argument lives: its anchor markers in priority
// order and the markers of sibling fields that end its value.
type field struct {
	markers []string
	stops   []string
}

type strategy func(ix *markerIndex) (string, bool)

type listStrategy func(ix *markerIndex) ([]string, bool)
