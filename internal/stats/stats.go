// Package stats holds the pure inventory formulas: the inverse-normal
// quantile, safety stock, and holding cost. Nothing in here keeps state.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/optistock/optistock-analytics-service/internal/apperrors"
)

// demandVariabilityRatio fixes the demand standard deviation at 10% of the
// predicted demand. This is a deliberate modeling simplification standing in
// for a true demand-variance estimate.
const demandVariabilityRatio = 0.10

// QuantileForServiceLevel returns the z-score at which a standard normal
// variable has cumulative probability p.
func QuantileForServiceLevel(p float64) (float64, error) {
	if p <= 0 || p >= 1 {
		return 0, apperrors.NewDomain("service level must be in (0,1), got %g", p)
	}
	return distuv.UnitNormal.Quantile(p), nil
}

// SafetyStock computes z · (0.10·predictedDemand) · √leadTime for the given
// service level. A service level below 0.5 yields a negative z; no buffer is
// held rather than a negative one.
func SafetyStock(predictedDemand, leadTime, serviceLevel float64) (float64, error) {
	z, err := QuantileForServiceLevel(serviceLevel)
	if err != nil {
		return 0, err
	}
	if leadTime < 0 {
		return 0, apperrors.NewDomain("lead time must be non-negative, got %g", leadTime)
	}
	ss := z * demandVariabilityRatio * predictedDemand * math.Sqrt(leadTime)
	if ss < 0 {
		ss = 0
	}
	return ss, nil
}

// HoldingCost returns the annualized cost of carrying the given safety
// stock. The rate is a fraction, e.g. 0.2 for 20% annual carrying cost.
func HoldingCost(safetyStock, unitCost, holdingCostRate float64) float64 {
	return safetyStock * unitCost * holdingCostRate
}
