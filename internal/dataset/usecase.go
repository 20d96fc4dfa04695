package dataset

import (
	"context"

	"github.com/optistock/optistock-analytics-service/internal/dataset/dto"
	"github.com/optistock/optistock-analytics-service/internal/model"
)

type UseCase interface {
	SaveDataset(ctx context.Context, input *dto.SaveDatasetInput) (*model.Dataset, error)
	ListDatasets(ctx context.Context) ([]model.Dataset, error)
	GetDataset(ctx context.Context, id string) (*model.Dataset, []model.Item, error)
	DeleteDataset(ctx context.Context, id string) error
	// SampleItems returns the built-in demo batch clients can seed an
	// editor with. No storage involved.
	SampleItems() []model.Item
}
