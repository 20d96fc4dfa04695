package analytics

import (
	"context"

	"github.com/optistock/optistock-analytics-service/internal/analytics/dto"
)

type UseCase interface {
	// Calculate runs the full pipeline over one batch: ABC ranking,
	// classifier training and prediction, demand forecasting, safety stock
	// and holding cost. The returned models belong to this run only.
	Calculate(ctx context.Context, input *dto.CalculateInput) (*dto.CalculateResult, error)

	// Tradeoff sweeps a service-level range for the selected items,
	// producing per-item safety-stock and holding-cost curves.
	Tradeoff(ctx context.Context, input *dto.TradeoffInput) (map[string]*dto.TradeoffCurve, error)
}
