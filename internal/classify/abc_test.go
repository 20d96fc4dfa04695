package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optistock/optistock-analytics-service/internal/model"
)

func TestRankAndLabel_ThreeItemScenario(t *testing.T) {
	items := []model.Item{
		{ItemID: "A3", AnnualUsage: 600, UnitCost: 8, LeadTime: 2, PastDemand: 610},
		{ItemID: "A1", AnnualUsage: 1000, UnitCost: 10, LeadTime: 2, PastDemand: 950},
		{ItemID: "A2", AnnualUsage: 800, UnitCost: 12, LeadTime: 2, PastDemand: 820},
	}

	enriched := RankAndLabel(items)
	require.Len(t, enriched, 3)

	// Sorted descending by annual value regardless of input order.
	assert.Equal(t, "A1", enriched[0].ItemID)
	assert.Equal(t, "A2", enriched[1].ItemID)
	assert.Equal(t, "A3", enriched[2].ItemID)

	assert.InDelta(t, 10000, enriched[0].AnnualValue, 1e-9)
	assert.InDelta(t, 9600, enriched[1].AnnualValue, 1e-9)
	assert.InDelta(t, 4800, enriched[2].AnnualValue, 1e-9)

	assert.InDelta(t, 40.98, enriched[0].CumulativeValuePct, 0.01)
	assert.InDelta(t, 80.33, enriched[1].CumulativeValuePct, 0.01)
	assert.InDelta(t, 100, enriched[2].CumulativeValuePct, 1e-6)

	// 40.98 <= 70 -> A; 80.33 <= 90 -> B; else C.
	assert.Equal(t, model.CategoryA, enriched[0].ABCCategory)
	assert.Equal(t, model.CategoryB, enriched[1].ABCCategory)
	assert.Equal(t, model.CategoryC, enriched[2].ABCCategory)
}

func TestRankAndLabel_InclusiveBoundaries(t *testing.T) {
	// Values 70, 20, 10 of a 100 total put the running percentage exactly
	// on both thresholds.
	items := []model.Item{
		{ItemID: "x", AnnualUsage: 70, UnitCost: 1, LeadTime: 1, PastDemand: 1},
		{ItemID: "y", AnnualUsage: 20, UnitCost: 1, LeadTime: 1, PastDemand: 1},
		{ItemID: "z", AnnualUsage: 10, UnitCost: 1, LeadTime: 1, PastDemand: 1},
	}

	enriched := RankAndLabel(items)
	assert.Equal(t, model.CategoryA, enriched[0].ABCCategory, "exactly 70%% is still an A")
	assert.Equal(t, model.CategoryB, enriched[1].ABCCategory, "exactly 90%% is still a B")
	assert.Equal(t, model.CategoryC, enriched[2].ABCCategory)
}

func TestRankAndLabel_TiesKeepInputOrder(t *testing.T) {
	items := []model.Item{
		{ItemID: "first", AnnualUsage: 100, UnitCost: 2, LeadTime: 1, PastDemand: 1},
		{ItemID: "second", AnnualUsage: 200, UnitCost: 1, LeadTime: 1, PastDemand: 1},
	}

	for i := 0; i < 5; i++ {
		enriched := RankAndLabel(items)
		require.Equal(t, "first", enriched[0].ItemID)
		require.Equal(t, "second", enriched[1].ItemID)
	}
}

func TestRankAndLabel_Properties(t *testing.T) {
	items := []model.Item{
		{ItemID: "p1", AnnualUsage: 1000, UnitCost: 10, LeadTime: 2, PastDemand: 950},
		{ItemID: "p2", AnnualUsage: 800, UnitCost: 12, LeadTime: 2, PastDemand: 820},
		{ItemID: "p3", AnnualUsage: 600, UnitCost: 8, LeadTime: 2, PastDemand: 610},
		{ItemID: "p4", AnnualUsage: 400, UnitCost: 5, LeadTime: 3, PastDemand: 390},
		{ItemID: "p5", AnnualUsage: 300, UnitCost: 6, LeadTime: 3, PastDemand: 310},
		{ItemID: "p6", AnnualUsage: 100, UnitCost: 2, LeadTime: 4, PastDemand: 120},
		{ItemID: "p7", AnnualUsage: 50, UnitCost: 1, LeadTime: 4, PastDemand: 60},
	}

	enriched := RankAndLabel(items)
	require.Len(t, enriched, len(items))

	// Cumulative percentage is non-decreasing and ends at exactly 100.
	prev := 0.0
	for _, it := range enriched {
		assert.GreaterOrEqual(t, it.CumulativeValuePct, prev)
		prev = it.CumulativeValuePct
	}
	assert.InDelta(t, 100, enriched[len(enriched)-1].CumulativeValuePct, 1e-6)

	// Categories partition the sorted sequence as an A prefix, B middle,
	// C suffix, never interleaved.
	rank := map[string]int{model.CategoryA: 0, model.CategoryB: 1, model.CategoryC: 2}
	counts := map[string]int{}
	prevRank := 0
	for _, it := range enriched {
		r, ok := rank[it.ABCCategory]
		require.True(t, ok, "unexpected category %q", it.ABCCategory)
		assert.GreaterOrEqual(t, r, prevRank)
		prevRank = r
		counts[it.ABCCategory]++
	}
	assert.Equal(t, len(items), counts["A"]+counts["B"]+counts["C"])
}
