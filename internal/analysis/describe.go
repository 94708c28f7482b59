package analysis

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Summary equivale a una columna de describe(): conteo, media, desvío,
// mínimo, percentiles 25/50/75 y máximo.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	P25   float64 `json:"p25"`
	P50   float64 `json:"p50"`
	P75   float64 `json:"p75"`
	Max   float64 `json:"max"`
}

// Describe resume los valores presentes; los NaN se ignoran.
func Describe(values []float64) (Summary, error) {
	values = DropNaN(values)
	if len(values) == 0 {
		return Summary{}, ErrNoData
	}
	desc, err := stats.Describe(values, false, &[]float64{25, 50, 75})
	if err != nil {
		return Summary{}, err
	}
	s := Summary{
		Count: desc.Count,
		Mean:  desc.Mean,
		Std:   desc.Std,
		Min:   desc.Min,
		Max:   desc.Max,
		// percentiles sin rango suficiente quedan en el mínimo
		P25: desc.Min,
		P50: desc.Min,
		P75: desc.Min,
	}
	for _, p := range desc.DescriptionPercentiles {
		if math.IsNaN(p.Value) {
			continue
		}
		switch p.Percentile {
		case 25:
			s.P25 = p.Value
		case 50:
			s.P50 = p.Value
		case 75:
			s.P75 = p.Value
		}
	}
	return s, nil
}
