// Package classify ranks items by value contribution (ABC analysis) and
// fits a decision tree that predicts the ABC label from item attributes.
package classify

import (
	"sort"

	"github.com/optistock/optistock-analytics-service/internal/model"
)

// Cumulative-percentage thresholds for the ABC tiers. Both boundaries are
// inclusive: exactly 70% is still an A, exactly 90% still a B.
const (
	categoryAThreshold = 70.0
	categoryBThreshold = 90.0
)

// RankAndLabel sorts items descending by annual value, computes each item's
// running share of the total value, and assigns the ABC category from it.
// The sort is stable, so equal annual values keep their input order and the
// ranking is reproducible.
func RankAndLabel(items []model.Item) []model.EnrichedItem {
	enriched := make([]model.EnrichedItem, len(items))
	var total float64
	for i, it := range items {
		enriched[i] = model.EnrichedItem{
			Item:        it,
			AnnualValue: it.AnnualUsage * it.UnitCost,
		}
		total += enriched[i].AnnualValue
	}
	if total == 0 {
		return enriched
	}

	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[i].AnnualValue > enriched[j].AnnualValue
	})

	var running float64
	for i := range enriched {
		running += enriched[i].AnnualValue
		pct := running / total * 100
		enriched[i].CumulativeValuePct = pct
		switch {
		case pct <= categoryAThreshold:
			enriched[i].ABCCategory = model.CategoryA
		case pct <= categoryBThreshold:
			enriched[i].ABCCategory = model.CategoryB
		default:
			enriched[i].ABCCategory = model.CategoryC
		}
	}
	return enriched
}
