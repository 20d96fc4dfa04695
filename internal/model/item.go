package model

import (
	"errors"
	"strings"
)

// ABC value-contribution tiers.
const (
	CategoryA = "A"
	CategoryB = "B"
	CategoryC = "C"
)

// Item is one SKU row submitted for analysis.
type Item struct {
	ItemID      string
	AnnualUsage float64
	UnitCost    float64
	LeadTime    float64
	PastDemand  float64
}

// Validate checks the positivity constraints every submitted row must meet.
func (it Item) Validate() error {
	if strings.TrimSpace(it.ItemID) == "" {
		return errors.New("item id is required")
	}
	if it.AnnualUsage <= 0 {
		return errors.New("annual usage must be positive")
	}
	if it.UnitCost <= 0 {
		return errors.New("unit cost must be positive")
	}
	if it.LeadTime <= 0 {
		return errors.New("lead time must be positive")
	}
	if it.PastDemand <= 0 {
		return errors.New("past demand must be positive")
	}
	return nil
}

// EnrichedItem is an Item plus every figure derived by one pipeline run.
// All derived fields are recomputed from scratch on each run.
type EnrichedItem struct {
	Item
	AnnualValue        float64
	CumulativeValuePct float64
	ABCCategory        string
	PredictedABC       string
	PredictedDemand    float64
	SafetyStock        float64
	HoldingCost        float64
}
