package plan

import "math"

// IntensityDistribution is the percentage split of training time across
// easy, moderate, and hard effort. The three values sum to 100 within ±1
// (rounding slack).
type IntensityDistribution struct {
	Easy     float64 `json:"easy" yaml:"easy"`
	Moderate float64 `json:"moderate" yaml:"moderate"`
	Hard     float64 `json:"hard" yaml:"hard"`
}

// Sum returns easy+moderate+hard.
func (d IntensityDistribution) Sum() float64 {
	return d.Easy + d.Moderate + d.Hard
}

// IsComplete reports whether the three shares sum to 100 within ±1.
func (d IntensityDistribution) IsComplete() bool {
	return math.Abs(d.Sum()-100) <= 1
}

// Round returns the distribution with each share rounded to one decimal.
func (d IntensityDistribution) Round() IntensityDistribution {
	return IntensityDistribution{
		Easy:     math.Round(d.Easy*10) / 10,
		Moderate: math.Round(d.Moderate*10) / 10,
		Hard:     math.Round(d.Hard*10) / 10,
	}
}
