package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/optistock/optistock-analytics-service/internal/apperrors"
	"github.com/optistock/optistock-analytics-service/internal/dataset"
	"github.com/optistock/optistock-analytics-service/internal/dataset/dto"
	"github.com/optistock/optistock-analytics-service/internal/model"
	"github.com/optistock/optistock-analytics-service/pkg/logger"
)

type datasetUseCase struct {
	repo   dataset.Repository
	logger logger.ZapLogger
}

func NewDatasetUseCase(repo dataset.Repository, log logger.ZapLogger) dataset.UseCase {
	return &datasetUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *datasetUseCase) SaveDataset(ctx context.Context, input *dto.SaveDatasetInput) (*model.Dataset, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidation("dataset name is required")
	}
	if len(input.Items) == 0 {
		return nil, apperrors.NewValidation("no items provided")
	}

	var bad []string
	seen := make(map[string]bool, len(input.Items))
	for _, it := range input.Items {
		if err := it.Validate(); err != nil || seen[it.ItemID] {
			bad = append(bad, it.ItemID)
			continue
		}
		seen[it.ItemID] = true
	}
	if len(bad) > 0 {
		return nil, apperrors.NewValidation("invalid items", bad...)
	}

	ds := &model.Dataset{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(input.Name),
		ItemCount: len(input.Items),
		CreatedAt: time.Now(),
	}

	rows := make([]model.DatasetItem, len(input.Items))
	for i, it := range input.Items {
		rows[i] = model.DatasetItem{
			ID:          uuid.New().String(),
			DatasetID:   ds.ID,
			ItemID:      it.ItemID,
			AnnualUsage: it.AnnualUsage,
			UnitCost:    it.UnitCost,
			LeadTime:    it.LeadTime,
			PastDemand:  it.PastDemand,
			Position:    i,
		}
	}

	if err := uc.repo.Create(ctx, ds, rows); err != nil {
		return nil, err
	}

	uc.logger.Info("dataset saved", zap.String("id", ds.ID), zap.String("name", ds.Name), zap.Int("items", ds.ItemCount))
	return ds, nil
}

func (uc *datasetUseCase) ListDatasets(ctx context.Context) ([]model.Dataset, error) {
	return uc.repo.List(ctx)
}

func (uc *datasetUseCase) GetDataset(ctx context.Context, id string) (*model.Dataset, []model.Item, error) {
	ds, rows, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if ds == nil {
		return nil, nil, &apperrors.NotFoundError{Resource: "dataset", ID: id}
	}

	items := make([]model.Item, len(rows))
	for i, row := range rows {
		items[i] = row.ToItem()
	}
	return ds, items, nil
}

func (uc *datasetUseCase) DeleteDataset(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &apperrors.NotFoundError{Resource: "dataset", ID: id}
	}
	uc.logger.Info("dataset deleted", zap.String("id", id))
	return nil
}

// SampleItems is the demo batch: three high-value, two mid-value, and two
// low-value SKUs, sized so every ABC tier shows up after ranking.
func (uc *datasetUseCase) SampleItems() []model.Item {
	return []model.Item{
		{ItemID: "A1", AnnualUsage: 1000, UnitCost: 10, LeadTime: 2, PastDemand: 950},
		{ItemID: "A2", AnnualUsage: 800, UnitCost: 12, LeadTime: 2, PastDemand: 820},
		{ItemID: "A3", AnnualUsage: 600, UnitCost: 8, LeadTime: 2, PastDemand: 610},
		{ItemID: "B1", AnnualUsage: 400, UnitCost: 5, LeadTime: 3, PastDemand: 390},
		{ItemID: "B2", AnnualUsage: 300, UnitCost: 6, LeadTime: 3, PastDemand: 310},
		{ItemID: "C1", AnnualUsage: 100, UnitCost: 2, LeadTime: 4, PastDemand: 120},
		{ItemID: "C2", AnnualUsage: 50, UnitCost: 1, LeadTime: 4, PastDemand: 60},
	}
}
