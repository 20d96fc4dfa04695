package dataset

import (
	"context"

	"github.com/optistock/optistock-analytics-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, ds *model.Dataset, items []model.DatasetItem) error
	List(ctx context.Context) ([]model.Dataset, error)
	// GetByID returns nil when no dataset has the id (caller decides how to
	// report absence).
	GetByID(ctx context.Context, id string) (*model.Dataset, []model.DatasetItem, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
}
