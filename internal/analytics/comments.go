package analytics

import (
	"math"
	"strings"

	"saaransh/internal/model"
)

// FilterAll is the stance filter that matches every comment.
const FilterAll = "All"

// FilterComments keeps comments whose stance equals stance (any stance for "" or FilterAll)
// and that match term case-insensitively in the submitter, summary or any keyword.
// An empty term matches everything.
func FilterComments(comments []model.Comment, stance string, term string) []model.Comment {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]model.Comment, 0, len(comments))
	for _, c := range comments {
		if stance != "" && stance != FilterAll && string(c.Stance) != stance {
			continue
		}
		if needle != "" && !matches(c, needle) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(c model.Comment, needle string) bool {
	if strings.Contains(strings.ToLower(c.Submitter), needle) ||
		strings.Contains(strings.ToLower(c.Summary), needle) {
		return true
	}
	for _, k := range c.Keywords {
		if strings.Contains(strings.ToLower(k), needle) {
			return true
		}
	}
	return false
}

// StanceSlice is one segment of a stance distribution chart.
type StanceSlice struct {
	Name  model.Stance `json:"name"`
	Value int          `json:"value"`
	Color string       `json:"color"`
}

// StanceDistribution counts comments per stance in the fixed stance order. With
// dropEmpty, stances without comments are left out.
func StanceDistribution(comments []model.Comment, dropEmpty bool) []StanceSlice {
	tally := CountOver(comments, model.Stances, func(c model.Comment) model.Stance { return c.Stance })
	entries := tally.Entries()
	if dropEmpty {
		entries = tally.NonZero()
	}
	out := make([]StanceSlice, len(entries))
	for i, e := range entries {
		out[i] = StanceSlice{Name: e.Label, Value: e.Count, Color: model.StanceColors[e.Label]}
	}
	return out
}

// Band is a half-open quality range [Min, Max).
type Band struct {
	Label string
	Min   float64
	Max   float64
}

// Contains reports whether v falls inside the band.
func (b Band) Contains(v float64) bool {
	return v >= b.Min && v < b.Max
}

// BandCount is the number of items in one band.
type BandCount struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// DetailQualityBands splits quality scores the way a single consultation is summarised.
var DetailQualityBands = []Band{
	{Label: "High Quality (4.0+)", Min: 4.0, Max: math.Inf(1)},
	{Label: "Medium Quality (3.0-3.9)", Min: 3.0, Max: 4.0},
	{Label: "Low Quality (< 3.0)", Min: math.Inf(-1), Max: 3.0},
}

// OverviewQualityBands splits quality scores for the cross-consultation overview.
var OverviewQualityBands = []Band{
	{Label: "Excellent (4.5-5.0)", Min: 4.5, Max: math.Inf(1)},
	{Label: "Good (4.0-4.4)", Min: 4.0, Max: 4.5},
	{Label: "Average (3.0-3.9)", Min: 3.0, Max: 4.0},
	{Label: "Below Average (< 3.0)", Min: math.Inf(-1), Max: 3.0},
}

// CountBands counts items per band. Bands are reported in the given order.
func CountBands[T any](items []T, bands []Band, value func(T) float64) []BandCount {
	out := make([]BandCount, len(bands))
	for i, b := range bands {
		out[i].Label = b.Label
	}
	for _, item := range items {
		v := value(item)
		for i, b := range bands {
			if b.Contains(v) {
				out[i].Count++
				break
			}
		}
	}
	for i := range out {
		out[i].Percent = Percent(out[i].Count, len(items))
	}
	return out
}

// Quality extracts a comment's quality score.
func Quality(c model.Comment) float64 { return c.QualityScore }

// ByStakeholder keys a comment by its stakeholder type.
func ByStakeholder(c model.Comment) model.StakeholderType { return c.StakeholderType }

// ByStance keys a comment by its stance.
func ByStance(c model.Comment) model.Stance { return c.Stance }

// BySubmitter keys a comment by its submitter.
func BySubmitter(c model.Comment) string { return c.Submitter }
