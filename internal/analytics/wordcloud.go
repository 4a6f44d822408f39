package analytics

import (
	"math"

	"saaransh/internal/model"
)

// CloudSizeClasses is the number of font size classes a word cloud uses.
const CloudSizeClasses = 6

// CloudWord is a word-cloud term with its size class in [0, CloudSizeClasses).
type CloudWord struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
	Size  int    `json:"size"`
}

// SizeWordCloud orders entries by descending value and assigns each a size class
// proportional to its share of the largest value.
func SizeWordCloud(entries []model.WordCloudEntry) []CloudWord {
	maxVal := 1
	if len(entries) > 0 {
		maxVal = entries[0].Value
		for _, e := range entries[1:] {
			maxVal = max(maxVal, e.Value)
		}
		if maxVal <= 0 {
			maxVal = 1
		}
	}

	ranked := Rank(entries, func(e model.WordCloudEntry) float64 { return float64(e.Value) })
	out := make([]CloudWord, len(ranked))
	for i, e := range ranked {
		size := int(math.Floor(float64(e.Value) / float64(maxVal) * (CloudSizeClasses - 1)))
		out[i] = CloudWord{Text: e.Text, Value: e.Value, Size: min(max(size, 0), CloudSizeClasses-1)}
	}
	return out
}
