package airquality

import "math"

// Band is the qualitative classification of the composite index.
type Band string

const (
	BandVeryLow  Band = "very_low"
	BandLow      Band = "low"
	BandMedium   Band = "medium"
	BandHigh     Band = "high"
	BandVeryHigh Band = "very_high"
)

// indexPollutants are the four pollutants averaged into the index.
var indexPollutants = []Pollutant{
	PollutantNO2,
	PollutantPM10,
	PollutantO3,
	PollutantPM25,
}

// Index is the composite air-quality index. Value is NaN when any of the
// four contributing readings is missing, in which case Band is empty.
type Index struct {
	Value float64
	Band  Band
}

// ComputeIndex averages the NO2, PM10, O3 and PM2.5 readings. A missing
// value among the four propagates as NaN rather than being guarded against.
func ComputeIndex(readings []Reading) Index {
	byPollutant := make(map[Pollutant]*float64, len(readings))
	for _, r := range readings {
		byPollutant[r.Pollutant] = r.Value
	}

	var sum float64
	for _, p := range indexPollutants {
		v := byPollutant[p]
		if v == nil {
			sum = math.NaN()
			break
		}
		sum += *v
	}

	value := sum / float64(len(indexPollutants))
	return Index{Value: value, Band: Classify(value)}
}

// Classify maps an index value to its qualitative band. NaN matches no
// range and yields the empty band.
func Classify(value float64) Band {
	switch {
	case value >= 100:
		return BandVeryHigh
	case value >= 75:
		return BandHigh
	case value >= 50:
		return BandMedium
	case value >= 25:
		return BandLow
	case value < 25:
		return BandVeryLow
	default:
		return ""
	}
}
