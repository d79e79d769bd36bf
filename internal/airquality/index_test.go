package airquality_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enjikaka/cams/internal/airquality"
)

func reading(p airquality.Pollutant, v float64) airquality.Reading {
	unit := "µg/m³"
	return airquality.Reading{Pollutant: p, Value: &v, Unit: &unit}
}

func TestComputeIndex(t *testing.T) {
	readings := []airquality.Reading{
		reading(airquality.PollutantNO2, 40),
		reading(airquality.PollutantPM10, 20),
		reading(airquality.PollutantO3, 60),
		reading(airquality.PollutantPM25, 10),
		// Pollutants outside the four must not affect the mean.
		reading(airquality.PollutantSO2, 900),
		reading(airquality.PollutantCO, 9000),
	}

	idx := airquality.ComputeIndex(readings)

	assert.Equal(t, 32.5, idx.Value)
	assert.Equal(t, airquality.BandMedium, idx.Band)
}

func TestComputeIndex_MissingValueIsNaN(t *testing.T) {
	readings := []airquality.Reading{
		reading(airquality.PollutantNO2, 40),
		reading(airquality.PollutantPM10, 20),
		{Pollutant: airquality.PollutantO3}, // parse failure upstream
		reading(airquality.PollutantPM25, 10),
	}

	idx := airquality.ComputeIndex(readings)

	assert.True(t, math.IsNaN(idx.Value))
	assert.Empty(t, idx.Band)
}

func TestComputeIndex_AbsentPollutantIsNaN(t *testing.T) {
	readings := []airquality.Reading{
		reading(airquality.PollutantNO2, 40),
	}

	idx := airquality.ComputeIndex(readings)

	assert.True(t, math.IsNaN(idx.Value))
	assert.Empty(t, idx.Band)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		value float64
		want  airquality.Band
	}{
		{0, airquality.BandVeryLow},
		{24.99, airquality.BandVeryLow},
		{25, airquality.BandLow},
		{49.99, airquality.BandLow},
		{50, airquality.BandMedium},
		{74.99, airquality.BandMedium},
		{75, airquality.BandHigh},
		{99.99, airquality.BandHigh},
		{100, airquality.BandVeryHigh},
		{250, airquality.BandVeryHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, airquality.Classify(tt.value), "value %v", tt.value)
	}
}

func TestClassify_NaN(t *testing.T) {
	assert.Empty(t, airquality.Classify(math.NaN()))
}

func TestCatalogsShareKeySet(t *testing.T) {
	assert.Len(t, airquality.AllPollutants, 12)
	assert.Len(t, airquality.LayerCatalog, 12)
	assert.Len(t, airquality.ModerateLimits, 12)

	for _, p := range airquality.AllPollutants {
		assert.Contains(t, airquality.LayerCatalog, p)
		assert.Contains(t, airquality.ModerateLimits, p)
	}
}
