package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optistock/optistock-analytics-service/internal/model"
)

func trainingBatch() []model.EnrichedItem {
	items := []model.Item{
		{ItemID: "A1", AnnualUsage: 1000, UnitCost: 10, LeadTime: 2, PastDemand: 950},
		{ItemID: "A2", AnnualUsage: 800, UnitCost: 12, LeadTime: 2, PastDemand: 820},
		{ItemID: "B1", AnnualUsage: 400, UnitCost: 5, LeadTime: 3, PastDemand: 390},
		{ItemID: "B2", AnnualUsage: 300, UnitCost: 6, LeadTime: 3, PastDemand: 310},
		{ItemID: "C1", AnnualUsage: 100, UnitCost: 2, LeadTime: 4, PastDemand: 120},
		{ItemID: "C2", AnnualUsage: 50, UnitCost: 1, LeadTime: 4, PastDemand: 60},
	}
	return RankAndLabel(items)
}

func TestFit_ReproducesTrainingLabels(t *testing.T) {
	enriched := trainingBatch()

	m, err := Fit(enriched)
	require.NoError(t, err)

	items := make([]model.Item, len(enriched))
	for i, it := range enriched {
		items[i] = it.Item
	}
	labels := m.Predict(items)
	require.Len(t, labels, len(enriched))

	// Distinct feature vectors grow to pure leaves, so the in-sample
	// prediction matches the true label exactly.
	for i, it := range enriched {
		assert.Equal(t, it.ABCCategory, labels[i], "item %s", it.ItemID)
	}
}

func TestFit_Deterministic(t *testing.T) {
	enriched := trainingBatch()
	items := make([]model.Item, len(enriched))
	for i, it := range enriched {
		items[i] = it.Item
	}

	m1, err := Fit(enriched)
	require.NoError(t, err)
	m2, err := Fit(enriched)
	require.NoError(t, err)

	probes := append([]model.Item{}, items...)
	probes = append(probes,
		model.Item{ItemID: "probe1", AnnualUsage: 700, UnitCost: 9, LeadTime: 2, PastDemand: 650},
		model.Item{ItemID: "probe2", AnnualUsage: 150, UnitCost: 3, LeadTime: 4, PastDemand: 140},
	)
	assert.Equal(t, m1.Predict(probes), m2.Predict(probes))
}

func TestFit_RequiresMinimumItems(t *testing.T) {
	enriched := trainingBatch()[:2]
	_, err := Fit(enriched)
	require.Error(t, err)
}

func TestPredict_UnseenItems(t *testing.T) {
	m, err := Fit(trainingBatch())
	require.NoError(t, err)

	labels := m.Predict([]model.Item{
		{ItemID: "big", AnnualUsage: 950, UnitCost: 11, LeadTime: 2, PastDemand: 900},
		{ItemID: "small", AnnualUsage: 60, UnitCost: 1, LeadTime: 4, PastDemand: 70},
	})
	require.Len(t, labels, 2)
	assert.Equal(t, model.CategoryA, labels[0])
	assert.Equal(t, model.CategoryC, labels[1])
}

func TestMajorityLabel_TieBreaksInCategoryOrder(t *testing.T) {
	samples := []sample{
		{label: model.CategoryC},
		{label: model.CategoryB},
	}
	assert.Equal(t, model.CategoryB, majorityLabel(samples))
}
