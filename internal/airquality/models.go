// Package airquality provides the pollutant catalog and index aggregation.
package airquality

import "errors"

// Provider errors.
var (
	ErrUnknownPollutant = errors.New("pollutant not in layer catalog")
	ErrFetchFailed      = errors.New("could not fetch pollutant data")
)

// Pollutant represents an air quality pollutant type.
type Pollutant string

const (
	PollutantCO          Pollutant = "CO"
	PollutantNH3         Pollutant = "NH3"
	PollutantNMVOC       Pollutant = "NMVOC"
	PollutantNO          Pollutant = "NO"
	PollutantNO2         Pollutant = "NO2"
	PollutantO3          Pollutant = "O3"
	PollutantPANS        Pollutant = "PANS"
	PollutantPM10        Pollutant = "PM10"
	PollutantPM25        Pollutant = "PM2.5"
	PollutantSO2         Pollutant = "SO2"
	PollutantBirchPollen Pollutant = "BIRCH_POLLEN"
	PollutantGrassPollen Pollutant = "GRASS_POLLEN"
)

// AllPollutants lists every pollutant in stable enumeration order.
// Fetch results and response payloads follow this order.
var AllPollutants = []Pollutant{
	PollutantCO,
	PollutantNH3,
	PollutantNMVOC,
	PollutantNO,
	PollutantNO2,
	PollutantO3,
	PollutantPANS,
	PollutantPM10,
	PollutantPM25,
	PollutantSO2,
	PollutantBirchPollen,
	PollutantGrassPollen,
}

// LayerCatalog maps each pollutant to its CAMS European forecast layer.
var LayerCatalog = map[Pollutant]string{
	PollutantCO:          "composition_europe_co_forecast_surface",
	PollutantNH3:         "composition_europe_nh3_forecast_surface",
	PollutantNMVOC:       "composition_europe_nmvoc_forecast_surface",
	PollutantNO:          "composition_europe_no_forecast_surface",
	PollutantNO2:         "composition_europe_no2_forecast_surface",
	PollutantO3:          "composition_europe_o3_forecast_surface",
	PollutantPANS:        "composition_europe_pans_forecast_surface",
	PollutantPM10:        "composition_europe_pm10_forecast_surface",
	PollutantPM25:        "composition_europe_pm2p5_forecast_surface",
	PollutantSO2:         "composition_europe_so2_forecast_surface",
	PollutantBirchPollen: "composition_europe_birch_pollen_forecast_surface",
	PollutantGrassPollen: "composition_europe_grass_pollen_forecast_surface",
}

// ModerateLimits holds the regulatory "moderate" threshold per pollutant in
// µg/m³, nil where no threshold is defined. Reference data only; the index
// does not consume it. Key set matches LayerCatalog.
var ModerateLimits = map[Pollutant]*float64{
	PollutantCO:          limit(10000),
	PollutantNH3:         nil,
	PollutantNMVOC:       nil,
	PollutantNO:          nil,
	PollutantNO2:         limit(100),
	PollutantO3:          limit(130),
	PollutantPANS:        nil,
	PollutantPM10:        limit(50),
	PollutantPM25:        limit(25),
	PollutantSO2:         limit(350),
	PollutantBirchPollen: nil,
	PollutantGrassPollen: nil,
}

func limit(v float64) *float64 { return &v }

// Reading is a single pollutant value sampled at the probe pixel.
// A nil Value/Unit records a per-layer parse failure; transport failures
// never produce a Reading.
type Reading struct {
	Pollutant Pollutant
	Value     *float64
	Unit      *string
}
