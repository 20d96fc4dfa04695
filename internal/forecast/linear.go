// Package forecast fits a single-feature linear demand model by ordinary
// least squares: annual usage regressed on past demand.
package forecast

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// MinTrainingItems is the smallest batch a regression can be fitted on.
// Below it the caller skips training and uses annual usage as the forecast.
const MinTrainingItems = 2

// Model is the fitted line: usage ≈ Slope·pastDemand + Intercept.
type Model struct {
	Intercept float64
	Slope     float64
}

// Fit runs ordinary least squares on the paired observations.
func Fit(pastDemand, annualUsage []float64) (*Model, error) {
	if len(pastDemand) != len(annualUsage) {
		return nil, fmt.Errorf("feature and target lengths differ: %d vs %d", len(pastDemand), len(annualUsage))
	}
	if len(pastDemand) < MinTrainingItems {
		return nil, fmt.Errorf("forecaster training requires at least %d observations, got %d", MinTrainingItems, len(pastDemand))
	}
	intercept, slope := stat.LinearRegression(pastDemand, annualUsage, nil, false)
	return &Model{Intercept: intercept, Slope: slope}, nil
}

// Predict returns the forecast annual usage per observation, rounded to the
// nearest unit and never negative.
func (m *Model) Predict(pastDemand []float64) []float64 {
	out := make([]float64, len(pastDemand))
	for i, x := range pastDemand {
		y := math.Round(m.Intercept + m.Slope*x)
		if y < 0 {
			y = 0
		}
		out[i] = y
	}
	return out
}
