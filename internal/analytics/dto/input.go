package dto

import "github.com/optistock/optistock-analytics-service/internal/model"

type CalculateInput struct {
	Items           []model.Item
	ServiceLevel    float64
	HoldingCostRate float64
}

type TradeoffInput struct {
	// Items are the enriched records of a previous Calculate run; the sweep
	// reuses their PredictedDemand, LeadTime, and UnitCost as-is.
	Items           []model.EnrichedItem
	SelectedItemIDs []string
	ServiceLevelMin float64 // fraction in (0,1)
	ServiceLevelMax float64 // fraction in (0,1)
	Step            float64 // 0 means the default of 0.01
	HoldingCostRate float64
}
