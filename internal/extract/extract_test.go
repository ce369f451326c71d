package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trial-monitor/internal/model"
)

func TestExtract_FileRanking(t *testing.T) {
	tests := []struct {
		name string
		text string
		want FileRankingArgs
	}{
		{
			name: "markers on one line",
			text: `File ranking request: CRF filename: crf_sub_1_Demographics.docx eSource files: ["a.docx","b.docx"]`,
			want: FileRankingArgs{
				CRFFilename:  "crf_sub_1_Demographics.docx",
				ESourceFiles: []string{"a.docx", "b.docx"},
			},
		},
		{
			name: "markers on separate lines with quoted filename",
			text: "Rank files please\nCRF Filename: \"visit_2.pdf\"\neSource Files:\n[\"lab.pdf\", \"notes.txt\"]",
			want: FileRankingArgs{
				CRFFilename:  "visit_2.pdf",
				ESourceFiles: []string{"lab.pdf", "notes.txt"},
			},
		},
		{
			name: "quoted filename fallback excludes crf and duplicates",
			text: "Rank files\nCRF filename: crf.docx\nCandidates: 'a.pdf', \"b.xlsx\", 'a.pdf' and 'crf.docx'",
			want: FileRankingArgs{
				CRFFilename:  "crf.docx",
				ESourceFiles: []string{"a.pdf", "b.xlsx"},
			},
		},
		{
			name: "nothing to find",
			text: "rank files",
			want: FileRankingArgs{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text, model.RequestFileRanking)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtract_FileRanking_CRFFallbackLabel(t *testing.T) {
	text := "File ranking\nCRF form for visit 3\nvisit3_crf.docx\nFiles: \"lab_results.pdf\", \"consent.docx\""

	got, ok := Extract(text, model.RequestFileRanking).(FileRankingArgs)
	require.True(t, ok)
	// The label consumes the whole line, so the value is the next line.
	assert.Equal(t, "visit3_crf.docx", got.CRFFilename)
	assert.Equal(t, []string{"lab_results.pdf", "consent.docx"}, got.ESourceFiles)
}

func TestExtract_DataExtraction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"file content marker", "Extract data points.\nFile content:\nSubject ID | Age\n001 | 45", "Subject ID | Age\n001 | 45"},
		{"content runs to end of text", "Extract keys. CRF content: Visit data: weight, height", "Visit data: weight, height"},
		{"no marker", "  Extract data points from Age, Sex, Weight  ", "Extract data points from Age, Sex, Weight"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text, model.RequestDataExtraction)
			assert.Equal(t, DataExtractionArgs{FileContent: tt.want}, got)
		})
	}
}

func TestExtract_DataVerification(t *testing.T) {
	t.Run("all markers", func(t *testing.T) {
		text := "Data verification request\n" +
			"CRF data: Age 45, Sex M\n" +
			"eSource data: Age 45, Sex F\n" +
			`Data points: ["Age", "Sex"]`

		want := DataVerificationArgs{
			CRFData:     "Age 45, Sex M",
			ESourceData: "Age 45, Sex F",
			DataPoints:  []string{"Age", "Sex"},
		}
		if diff := cmp.Diff(want, Extract(text, model.RequestDataVerification)); diff != "" {
			t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing data points", func(t *testing.T) {
		text := "Data verification: CRF data: weight 70kg eSource data: weight 71kg"

		got, ok := Extract(text, model.RequestDataVerification).(DataVerificationArgs)
		require.True(t, ok)
		assert.Equal(t, "weight 70kg", got.CRFData)
		assert.Equal(t, "weight 71kg", got.ESourceData)
		assert.Nil(t, got.DataPoints)
	})

	t.Run("labelled blocks without colons", func(t *testing.T) {
		text := "Please verify data\n" +
			"CRF data values\n" +
			"Age 45\n" +
			"Sex M\n" +
			"eSource data values\n" +
			"Age 45\n" +
			"data points [\"Age\"]"

		got, ok := Extract(text, model.RequestDataVerification).(DataVerificationArgs)
		require.True(t, ok)
		assert.Equal(t, "Age 45\nSex M", got.CRFData)
		assert.Equal(t, "Age 45", got.ESourceData)
		assert.Equal(t, []string{"Age"}, got.DataPoints)
	})

	t.Run("invalid json list", func(t *testing.T) {
		text := "crf data: a\nesource data: b\ndata points: [Age, Sex]"

		got, ok := Extract(text, model.RequestDataVerification).(DataVerificationArgs)
		require.True(t, ok)
		assert.Nil(t, got.DataPoints)
	})
}

func TestExtract_Review(t *testing.T) {
	tests := []struct {
		name string
		typ  model.RequestType
		text string
		want ReviewArgs
	}{
		{
			name: "source and criteria",
			typ:  model.RequestDataQuality,
			text: "Data quality review\nSource data: Subject 001, Age 45\nQuality criteria: completeness only",
			want: ReviewArgs{Type: model.RequestDataQuality, SourceData: "Subject 001, Age 45", Criteria: "completeness only"},
		},
		{
			name: "criteria before source",
			typ:  model.RequestProtocolCompliance,
			text: "Protocol requirements: visit window 3 days\nSource data: visit on day 5",
			want: ReviewArgs{Type: model.RequestProtocolCompliance, SourceData: "visit on day 5", Criteria: "visit window 3 days"},
		},
		{
			name: "missing protocol requirements",
			typ:  model.RequestProtocolCompliance,
			text: "Protocol compliance review: Source data: X",
			want: ReviewArgs{Type: model.RequestProtocolCompliance, SourceData: "X"},
		},
		{
			name: "shared criteria marker of another type",
			typ:  model.RequestDataIntegrity,
			text: "Data integrity review. Source data: log A Quality criteria: none",
			want: ReviewArgs{Type: model.RequestDataIntegrity, SourceData: "log A", Criteria: "none"},
		},
		{
			name: "protocol requirements on a quality review",
			typ:  model.RequestDataQuality,
			text: "Data quality review. Source data: X Protocol requirements: Y",
			want: ReviewArgs{Type: model.RequestDataQuality, SourceData: "X", Criteria: "Y"},
		},
		{
			name: "own criteria marker wins over shared",
			typ:  model.RequestDataQuality,
			text: "Data quality review. Source data: X Protocol requirements: P Quality criteria: Q",
			want: ReviewArgs{Type: model.RequestDataQuality, SourceData: "X", Criteria: "Q"},
		},
		{
			name: "labelled block fallback",
			typ:  model.RequestComprehensiveReport,
			text: "Full review of the site data\nSubject 001 enrolled\nSubject 002 withdrew\n\nThanks",
			want: ReviewArgs{Type: model.RequestComprehensiveReport, SourceData: "Subject 001 enrolled\nSubject 002 withdrew"},
		},
		{
			name: "whole message",
			typ:  model.RequestMonitoringPlan,
			text: "Generate a monitoring plan",
			want: ReviewArgs{Type: model.RequestMonitoringPlan, SourceData: "Generate a monitoring plan"},
		},
		{
			name: "monitoring requirements",
			typ:  model.RequestMonitoringPlan,
			text: "Monitoring plan. Source: protocol v2 Monitoring requirements: remote only",
			want: ReviewArgs{Type: model.RequestMonitoringPlan, SourceData: "protocol v2", Criteria: "remote only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text, tt.typ)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtract_PrimaryNeverEmpty(t *testing.T) {
	inputs := []string{"x", "data:", "Source data:   ", "content: \n\n", "\t"}
	types := []model.RequestType{
		model.RequestDataExtraction,
		model.RequestDataQuality,
		model.RequestProtocolCompliance,
		model.RequestDataIntegrity,
		model.RequestComprehensiveReport,
		model.RequestMonitoringPlan,
		model.RequestClinicalTrialAnalysis,
		model.RequestUnknown,
	}

	for _, typ := range types {
		for _, in := range inputs {
			args := Extract(in, typ)
			assert.NotEmpty(t, primary(args), "type %s input %q", typ, in)
			assert.Equal(t, typ, args.RequestType())
		}
	}
}

func TestExtract_ProtocolAndGuidance(t *testing.T) {
	assert.Equal(t, ProtocolArgs{ProtocolText: "Protocol ABC"}, Extract("  Protocol ABC\n", model.RequestClinicalTrialAnalysis))
	assert.Equal(t, GuidanceArgs{Text: "hi there "}, Extract("hi there ", model.RequestUnknown))
	assert.Equal(t, GuidanceArgs{Text: "hi"}, Extract("hi", model.RequestType("bogus")))
}

func TestExtract_RecoversToWholeText(t *testing.T) {
	orig := extractors[model.RequestDataVerification]
	extractors[model.RequestDataVerification] = func(*markerIndex, model.RequestType) Arguments {
		panic("boom")
	}
	t.Cleanup(func() { extractors[model.RequestDataVerification] = orig })

	var got Arguments
	require.NotPanics(t, func() {
		got = Extract("crf data: a", model.RequestDataVerification)
	})
	assert.Equal(t, DataVerificationArgs{CRFData: "crf data: a"}, got)
}

func TestExtract_Idempotent(t *testing.T) {
	text := `CRF filename: x.docx eSource files: ["a.pdf"]`
	first := Extract(text, model.RequestFileRanking)
	second := Extract(text, model.RequestFileRanking)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second extraction differs (-first +second):\n%s", diff)
	}
}

func TestMarkerIndex_NestedMarkersAreNotBoundaries(t *testing.T) {
	ix := newMarkerIndex("CRF data: a eSource data: b")

	var markers []string
	for _, sp := range ix.spans {
		markers = append(markers, sp.marker)
	}
	assert.Equal(t, []string{MarkerCRFData, MarkerESourceData}, markers)

	// data: only exists inside longer markers.
	assert.Equal(t, len(ix.text), ix.boundary(0, []string{MarkerData}))
}

func TestMaximalSpans(t *testing.T) {
	got := maximalSpans([]span{
		{start: 7, end: 12, marker: MarkerData},
		{start: 0, end: 12, marker: MarkerSourceData},
		{start: 14, end: 19, marker: MarkerData},
		{start: 20, end: 28, marker: MarkerSource},
		{start: 22, end: 30, marker: "overlap:"},
	})
	assert.Equal(t, []span{
		{start: 0, end: 12, marker: MarkerSourceData},
		{start: 14, end: 19, marker: MarkerData},
		{start: 20, end: 28, marker: MarkerSource},
		{start: 22, end: 30, marker: "overlap:"},
	}, got)
}

func TestExtract_LargeInputScalesLinearly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timing test in short mode")
	}

	run := func(n int) time.Duration {
		text := "Data quality review. " + strings.Repeat("data: ", n)
		start := time.Now()
		Extract(text, model.RequestDataQuality)
		return time.Since(start)
	}

	run(1000)
	small := run(4000)
	large := run(32000)

	// Eight times the input. A quadratic pass costs about 64 times more.
	limit := 24*small + 50*time.Millisecond
	assert.Less(t, large, limit, "small=%s large=%s", small, large)
	assert.Less(t, large, 2*time.Second)
}

func TestVocabulary_Unique(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Vocabulary() {
		require.False(t, seen[m], "duplicate marker %q", m)
		seen[m] = true
	}
	assert.True(t, seen[MarkerMonitoringRequirements])
	assert.True(t, seen[MarkerReviewParameters])
}

func primary(a Arguments) string {
	switch v := a.(type) {
	case DataExtractionArgs:
		return v.FileContent
	case ReviewArgs:
		return v.SourceData
	case ProtocolArgs:
		return v.ProtocolText
	case GuidanceArgs:
		return v.Text
	}
	return ""
}
