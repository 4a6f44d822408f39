package analytics

import "saaransh/internal/model"

// SeriesPoint is one period of a trend series.
type SeriesPoint struct {
	Period string `json:"period"`
	Value  int    `json:"value"`
}

// Series is a topic's values over time with summary figures.
type Series struct {
	Topic      string        `json:"topic"`
	Points     []SeriesPoint `json:"points"`
	Total      int           `json:"total"`
	PeakPeriod string        `json:"peakPeriod"`
	PeakValue  int           `json:"peakValue"`
	// Change is last minus first value.
	Change int `json:"change"`
}

// PivotTrends groups trend observations into one series per topic. Topics and periods
// keep the order in which they first appear.
func PivotTrends(points []model.TrendPoint) []Series {
	var topics []string
	byTopic := make(map[string]*Series)
	for _, p := range points {
		s, ok := byTopic[p.Topic]
		if !ok {
			s = &Series{Topic: p.Topic}
			byTopic[p.Topic] = s
			topics = append(topics, p.Topic)
		}
		s.Points = append(s.Points, SeriesPoint{Period: p.Period, Value: p.Value})
		s.Total += p.Value
		if len(s.Points) == 1 || p.Value > s.PeakValue {
			s.PeakPeriod, s.PeakValue = p.Period, p.Value
		}
	}

	out := make([]Series, len(topics))
	for i, t := range topics {
		s := byTopic[t]
		s.Change = s.Points[len(s.Points)-1].Value - s.Points[0].Value
		out[i] = *s
	}
	return out
}
