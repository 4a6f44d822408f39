package analytics

import "fmt"

// EmptyAverage selects how an average over zero samples is rendered.
type EmptyAverage string

const (
	// EmptyAverageZero renders empty averages as 0.
	EmptyAverageZero EmptyAverage = "zero"
	// EmptyAverageNull renders empty averages as JSON null.
	EmptyAverageNull EmptyAverage = "null"
	// EmptyAverageNoData renders empty averages as NoDataMarker.
	EmptyAverageNoData EmptyAverage = "nodata"
)

// NoDataMarker is the value rendered for empty averages under EmptyAverageNoData.
const NoDataMarker = "no data"

// ParseEmptyAverage validates a configured policy name. The empty string selects zero.
func ParseEmptyAverage(s string) (EmptyAverage, error) {
	switch EmptyAverage(s) {
	case "", EmptyAverageZero:
		return EmptyAverageZero, nil
	case EmptyAverageNull:
		return EmptyAverageNull, nil
	case EmptyAverageNoData:
		return EmptyAverageNoData, nil
	}
	return "", fmt.Errorf("unknown empty average policy %q (want zero, null or nodata)", s)
}

// Render returns the display value of a mean computed over count samples: the mean
// rounded to one decimal, or the policy's placeholder when count is 0.
func (p EmptyAverage) Render(mean float64, count int) any {
	if count > 0 {
		return Round1(mean)
	}
	switch p {
	case EmptyAverageNull:
		return nil
	case EmptyAverageNoData:
		return NoDataMarker
	default:
		return 0.0
	}
}
