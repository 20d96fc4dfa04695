package usecase

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/optistock/optistock-analytics-service/internal/analytics"
	"github.com/optistock/optistock-analytics-service/internal/analytics/dto"
	"github.com/optistock/optistock-analytics-service/internal/apperrors"
	"github.com/optistock/optistock-analytics-service/internal/classify"
	"github.com/optistock/optistock-analytics-service/internal/forecast"
	"github.com/optistock/optistock-analytics-service/internal/model"
	"github.com/optistock/optistock-analytics-service/internal/stats"
	"github.com/optistock/optistock-analytics-service/pkg/logger"
)

const defaultSweepStep = 0.01

type analyticsUseCase struct {
	logger logger.ZapLogger
}

func NewAnalyticsUseCase(log logger.ZapLogger) analytics.UseCase {
	return &analyticsUseCase{logger: log}
}

func (uc *analyticsUseCase) Calculate(ctx context.Context, input *dto.CalculateInput) (*dto.CalculateResult, error) {
	if len(input.Items) == 0 {
		return nil, apperrors.NewValidation("no items provided")
	}
	if input.ServiceLevel <= 0 || input.ServiceLevel >= 1 {
		return nil, apperrors.NewValidation("service level must be in (0,1)")
	}
	if input.HoldingCostRate <= 0 {
		return nil, apperrors.NewValidation("holding cost rate must be positive")
	}
	if err := validateItems(input.Items); err != nil {
		return nil, err
	}

	// Step 1+2: annual value, descending sort, cumulative %, ABC label.
	enriched := classify.RankAndLabel(input.Items)

	// Step 3: classifier, trained on this batch and applied to this batch.
	// Predicting in-sample is intentional: the output is a consistency view
	// of the labeling, not a generalization benchmark.
	var classifier *classify.TreeModel
	if len(enriched) >= classify.MinTrainingItems {
		m, err := classify.Fit(enriched)
		if err != nil {
			return nil, err
		}
		labels := m.Predict(itemsOf(enriched))
		for i := range enriched {
			enriched[i].PredictedABC = labels[i]
		}
		classifier = m
	} else {
		// Too few rows to learn from; the true label stands in.
		for i := range enriched {
			enriched[i].PredictedABC = enriched[i].ABCCategory
		}
	}

	// Step 4: demand forecast.
	var forecaster *forecast.Model
	if len(enriched) >= forecast.MinTrainingItems {
		past := make([]float64, len(enriched))
		usage := make([]float64, len(enriched))
		for i, it := range enriched {
			past[i] = it.PastDemand
			usage[i] = it.AnnualUsage
		}
		m, err := forecast.Fit(past, usage)
		if err != nil {
			return nil, err
		}
		predictions := m.Predict(past)
		for i := range enriched {
			enriched[i].PredictedDemand = predictions[i]
		}
		forecaster = m
	} else {
		for i := range enriched {
			enriched[i].PredictedDemand = enriched[i].AnnualUsage
		}
	}

	// Steps 5+6: safety stock (whole units) and holding cost (cents).
	for i := range enriched {
		ss, err := stats.SafetyStock(enriched[i].PredictedDemand, enriched[i].LeadTime, input.ServiceLevel)
		if err != nil {
			return nil, err
		}
		enriched[i].SafetyStock = math.Round(ss)
		enriched[i].HoldingCost = round2(stats.HoldingCost(enriched[i].SafetyStock, enriched[i].UnitCost, input.HoldingCostRate))
	}

	summary := summarize(enriched)

	uc.logger.Info("inventory batch processed",
		zap.Int("items", summary.ItemCount),
		zap.Bool("classifier_trained", classifier != nil),
		zap.Bool("forecaster_trained", forecaster != nil),
	)

	return &dto.CalculateResult{
		Items:      enriched,
		Classifier: classifier,
		Forecaster: forecaster,
		Summary:    summary,
	}, nil
}

func (uc *analyticsUseCase) Tradeoff(ctx context.Context, input *dto.TradeoffInput) (map[string]*dto.TradeoffCurve, error) {
	step := input.Step
	if step <= 0 {
		step = defaultSweepStep
	}
	if input.ServiceLevelMin <= 0 || input.ServiceLevelMax >= 1 {
		return nil, apperrors.NewValidation("service level bounds must be inside (0,1)")
	}
	if input.ServiceLevelMin >= input.ServiceLevelMax {
		return nil, apperrors.NewValidation("service level min must be below max")
	}
	if len(input.SelectedItemIDs) == 0 {
		return nil, apperrors.NewValidation("no items selected")
	}
	if input.HoldingCostRate <= 0 {
		return nil, apperrors.NewValidation("holding cost rate must be positive")
	}

	index := make(map[string]model.EnrichedItem, len(input.Items))
	for _, it := range input.Items {
		index[it.ItemID] = it
	}

	curves := make(map[string]*dto.TradeoffCurve, len(input.SelectedItemIDs))
	for _, id := range input.SelectedItemIDs {
		it, ok := index[id]
		if !ok {
			return nil, &apperrors.NotFoundError{Resource: "item", ID: id}
		}

		curve := &dto.TradeoffCurve{}
		// Inclusive of both bounds; the epsilon absorbs float accumulation
		// so an aligned max is not dropped.
		for k := 0; ; k++ {
			sl := input.ServiceLevelMin + float64(k)*step
			if sl > input.ServiceLevelMax+1e-9 {
				break
			}
			ss, err := stats.SafetyStock(it.PredictedDemand, it.LeadTime, sl)
			if err != nil {
				return nil, err
			}
			curve.ServiceLevels = append(curve.ServiceLevels, sl*100)
			curve.SafetyStocks = append(curve.SafetyStocks, ss)
			curve.HoldingCosts = append(curve.HoldingCosts, stats.HoldingCost(ss, it.UnitCost, input.HoldingCostRate))
		}
		curves[id] = curve
	}

	uc.logger.Debug("tradeoff sweep computed",
		zap.Int("items", len(curves)),
		zap.Float64("min", input.ServiceLevelMin),
		zap.Float64("max", input.ServiceLevelMax),
	)
	return curves, nil
}

// validateItems rejects the whole batch when any row breaks the positivity
// constraints or reuses an item id, naming every offending row.
func validateItems(items []model.Item) error {
	var bad []string
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			bad = append(bad, it.ItemID)
			continue
		}
		if seen[it.ItemID] {
			bad = append(bad, it.ItemID)
			continue
		}
		seen[it.ItemID] = true
	}
	if len(bad) > 0 {
		return apperrors.NewValidation("invalid items", bad...)
	}
	return nil
}

func itemsOf(enriched []model.EnrichedItem) []model.Item {
	items := make([]model.Item, len(enriched))
	for i, it := range enriched {
		items[i] = it.Item
	}
	return items
}

func summarize(enriched []model.EnrichedItem) dto.Summary {
	s := dto.Summary{
		ItemCount:      len(enriched),
		CategoryCounts: map[string]int{},
	}
	for _, it := range enriched {
		s.TotalAnnualValue += it.AnnualValue
		s.CategoryCounts[it.ABCCategory]++
		s.TotalSafetyStock += it.SafetyStock
		s.TotalHoldingCost += it.HoldingCost
	}
	s.TotalHoldingCost = round2(s.TotalHoldingCost)
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
