package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saaransh/internal/model"
)

func TestFilterComments(t *testing.T) {
	comments := []model.Comment{
		{ID: 1, Submitter: "Apex Law Associates", Stance: model.StanceOpposed, Summary: "Section 185 is restrictive", Keywords: []string{"Startup Financing"}},
		{ID: 2, Submitter: "Good Governance Foundation", Stance: model.StanceSupportive, Summary: "Supports disclosure", Keywords: []string{"Transparency"}},
		{ID: 3, Submitter: "Priya Sharma", Stance: model.StanceConcerned, Summary: "Compliance costs", Keywords: []string{"Small Businesses"}},
	}

	tests := []struct {
		name    string
		stance  string
		term    string
		wantIDs []uint
	}{
		{name: "all no term", stance: "All", wantIDs: []uint{1, 2, 3}},
		{name: "empty stance means all", stance: "", wantIDs: []uint{1, 2, 3}},
		{name: "by stance", stance: "Supportive", wantIDs: []uint{2}},
		{name: "stance without matches", stance: "Alternative Proposal", wantIDs: []uint{}},
		{name: "submitter case-insensitive", stance: "All", term: "APEX", wantIDs: []uint{1}},
		{name: "summary", stance: "All", term: "disclosure", wantIDs: []uint{2}},
		{name: "keyword", stance: "All", term: "small bus", wantIDs: []uint{3}},
		{name: "stance and term", stance: "Opposed", term: "transparency", wantIDs: []uint{}},
		{name: "whitespace term ignored", stance: "All", term: "   ", wantIDs: []uint{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterComments(comments, tt.stance, tt.term)
			ids := make([]uint, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestStanceDistribution(t *testing.T) {
	comments := sampleComments()

	full := StanceDistribution(comments, false)
	require.Len(t, full, len(model.Stances))
	assert.Equal(t, StanceSlice{Name: model.StanceSupportive, Value: 2, Color: "#22c55e"}, full[0])
	assert.Equal(t, 0, full[3].Value)

	nonEmpty := StanceDistribution(comments, true)
	require.Len(t, nonEmpty, 3)
	assert.Equal(t, model.StanceConcerned, nonEmpty[2].Name)

	assert.Empty(t, StanceDistribution(nil, true))
}

func TestCountBands(t *testing.T) {
	comments := []model.Comment{{QualityScore: 4.9}, {QualityScore: 4.5}, {QualityScore: 4.0}, {QualityScore: 3.5}, {QualityScore: 2.0}}

	detail := CountBands(comments, DetailQualityBands, Quality)
	assert.Equal(t, []int{3, 1, 1}, []int{detail[0].Count, detail[1].Count, detail[2].Count})
	assert.Equal(t, 60.0, detail[0].Percent)

	overview := CountBands(comments, OverviewQualityBands, Quality)
	assert.Equal(t, []int{2, 1, 1, 1}, []int{overview[0].Count, overview[1].Count, overview[2].Count, overview[3].Count})

	empty := CountBands([]model.Comment{}, DetailQualityBands, Quality)
	require.Len(t, empty, 3)
	assert.Equal(t, 0.0, empty[0].Percent)
}

func TestSizeWordCloud(t *testing.T) {
	entries := []model.WordCloudEntry{
		{Text: "Transparency", Value: 80},
		{Text: "Accountability", Value: 70},
		{Text: "Director Liability", Value: 95},
		{Text: "Minority Shareholders", Value: 70},
	}

	words := SizeWordCloud(entries)

	require.Len(t, words, 4)
	assert.Equal(t, CloudWord{Text: "Director Liability", Value: 95, Size: 5}, words[0])
	assert.Equal(t, CloudWord{Text: "Transparency", Value: 80, Size: 4}, words[1])
	assert.Equal(t, "Accountability", words[2].Text)
	assert.Equal(t, "Minority Shareholders", words[3].Text)
	assert.Equal(t, 3, words[3].Size)

	assert.Empty(t, SizeWordCloud(nil))
}

func TestPivotTrends(t *testing.T) {
	points := []model.TrendPoint{
		{Period: "2021", Topic: "Privacy", Value: 230},
		{Period: "2021", Topic: "CSR", Value: 400},
		{Period: "2022", Topic: "Privacy", Value: 280},
		{Period: "2022", Topic: "CSR", Value: 350},
		{Period: "2023", Topic: "Privacy", Value: 450},
		{Period: "2023", Topic: "CSR", Value: 250},
	}

	series := PivotTrends(points)

	require.Len(t, series, 2)
	assert.Equal(t, "Privacy", series[0].Topic)
	assert.Equal(t, 960, series[0].Total)
	assert.Equal(t, "2023", series[0].PeakPeriod)
	assert.Equal(t, 220, series[0].Change)
	assert.Equal(t, "2021", series[1].PeakPeriod)
	assert.Equal(t, -150, series[1].Change)
	assert.Len(t, series[1].Points, 3)

	assert.Empty(t, PivotTrends(nil))
}
