package dto

import (
	"github.com/optistock/optistock-analytics-service/internal/classify"
	"github.com/optistock/optistock-analytics-service/internal/forecast"
	"github.com/optistock/optistock-analytics-service/internal/model"
)

// CalculateResult carries the enriched batch together with the models
// trained on it. Models are scoped to this run and nil when training was
// skipped for lack of samples.
type CalculateResult struct {
	Items      []model.EnrichedItem
	Classifier *classify.TreeModel
	Forecaster *forecast.Model
	Summary    Summary
}

// Summary aggregates the headline figures of one batch.
type Summary struct {
	ItemCount        int            `json:"item_count"`
	TotalAnnualValue float64        `json:"total_annual_value"`
	CategoryCounts   map[string]int `json:"category_counts"`
	TotalSafetyStock float64        `json:"total_safety_stock"`
	TotalHoldingCost float64        `json:"total_holding_cost"`
}

// TradeoffCurve holds the parallel sweep sequences for one item. Service
// levels are reported as percentages.
type TradeoffCurve struct {
	ServiceLevels []float64 `json:"service_levels"`
	SafetyStocks  []float64 `json:"safety_stocks"`
	HoldingCosts  []float64 `json:"holding_costs"`
}

// ItemPayload is the wire form of an input row. Field names follow the
// established client contract.
type ItemPayload struct {
	Item        string  `json:"Item"`
	AnnualUsage float64 `json:"Annual_Usage"`
	UnitCost    float64 `json:"Unit_Cost"`
	LeadTime    float64 `json:"Lead_Time"`
	PastDemand  float64 `json:"Past_Demand"`
}

func (p ItemPayload) ToModel() model.Item {
	return model.Item{
		ItemID:      p.Item,
		AnnualUsage: p.AnnualUsage,
		UnitCost:    p.UnitCost,
		LeadTime:    p.LeadTime,
		PastDemand:  p.PastDemand,
	}
}

// EnrichedItemPayload is the wire form of one processed row.
type EnrichedItemPayload struct {
	ItemPayload
	AnnualValue        float64 `json:"Annual_Value"`
	CumulativeValuePct float64 `json:"Cumulative%"`
	ABCCategory        string  `json:"ABC_Category"`
	PredictedABC       string  `json:"Predicted_ABC"`
	PredictedDemand    float64 `json:"Predicted_Demand"`
	SafetyStock        float64 `json:"Safety_Stock"`
	HoldingCost        float64 `json:"Holding_Cost"`
}

func (p EnrichedItemPayload) ToModel() model.EnrichedItem {
	return model.EnrichedItem{
		Item:               p.ItemPayload.ToModel(),
		AnnualValue:        p.AnnualValue,
		CumulativeValuePct: p.CumulativeValuePct,
		ABCCategory:        p.ABCCategory,
		PredictedABC:       p.PredictedABC,
		PredictedDemand:    p.PredictedDemand,
		SafetyStock:        p.SafetyStock,
		HoldingCost:        p.HoldingCost,
	}
}

func FromEnriched(it model.EnrichedItem) EnrichedItemPayload {
	return EnrichedItemPayload{
		ItemPayload: ItemPayload{
			Item:        it.ItemID,
			AnnualUsage: it.AnnualUsage,
			UnitCost:    it.UnitCost,
			LeadTime:    it.LeadTime,
			PastDemand:  it.PastDemand,
		},
		AnnualValue:        it.AnnualValue,
		CumulativeValuePct: it.CumulativeValuePct,
		ABCCategory:        it.ABCCategory,
		PredictedABC:       it.PredictedABC,
		PredictedDemand:    it.PredictedDemand,
		SafetyStock:        it.SafetyStock,
		HoldingCost:        it.HoldingCost,
	}
}
