package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optistock/optistock-analytics-service/internal/apperrors"
	"github.com/optistock/optistock-analytics-service/internal/dataset/dto"
	"github.com/optistock/optistock-analytics-service/internal/model"
	"github.com/optistock/optistock-analytics-service/pkg/logger"
)

// fakeRepository keeps datasets in memory for usecase tests.
type fakeRepository struct {
	datasets map[string]*model.Dataset
	items    map[string][]model.DatasetItem
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		datasets: map[string]*model.Dataset{},
		items:    map[string][]model.DatasetItem{},
	}
}

func (r *fakeRepository) Create(_ context.Context, ds *model.Dataset, items []model.DatasetItem) error {
	copied := *ds
	r.datasets[ds.ID] = &copied
	r.items[ds.ID] = append([]model.DatasetItem{}, items...)
	return nil
}

func (r *fakeRepository) List(_ context.Context) ([]model.Dataset, error) {
	out := make([]model.Dataset, 0, len(r.datasets))
	for _, ds := range r.datasets {
		out = append(out, *ds)
	}
	return out, nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*model.Dataset, []model.DatasetItem, error) {
	ds, ok := r.datasets[id]
	if !ok {
		return nil, nil, nil
	}
	return ds, r.items[id], nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.datasets[id]; !ok {
		return false, nil
	}
	delete(r.datasets, id)
	delete(r.items, id)
	return true, nil
}

func validItems() []model.Item {
	return []model.Item{
		{ItemID: "A1", AnnualUsage: 1000, UnitCost: 10, LeadTime: 2, PastDemand: 950},
		{ItemID: "A2", AnnualUsage: 800, UnitCost: 12, LeadTime: 2, PastDemand: 820},
	}
}

func TestSaveDataset_RoundTrip(t *testing.T) {
	repo := newFakeRepository()
	uc := NewDatasetUseCase(repo, logger.NewNop())

	ds, err := uc.SaveDataset(context.Background(), &dto.SaveDatasetInput{
		Name:  "  march batch  ",
		Items: validItems(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ds.ID)
	assert.Equal(t, "march batch", ds.Name)
	assert.Equal(t, 2, ds.ItemCount)

	got, items, err := uc.GetDataset(context.Background(), ds.ID)
	require.NoError(t, err)
	assert.Equal(t, ds.ID, got.ID)
	assert.Equal(t, validItems(), items)
}

func TestSaveDataset_Validation(t *testing.T) {
	uc := NewDatasetUseCase(newFakeRepository(), logger.NewNop())

	_, err := uc.SaveDataset(context.Background(), &dto.SaveDatasetInput{Name: "", Items: validItems()})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = uc.SaveDataset(context.Background(), &dto.SaveDatasetInput{Name: "empty", Items: nil})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	bad := validItems()
	bad[1].AnnualUsage = -5
	_, err = uc.SaveDataset(context.Background(), &dto.SaveDatasetInput{Name: "bad rows", Items: bad})
	require.Error(t, err)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"A2"}, ve.ItemIDs)
}

func TestGetDataset_NotFound(t *testing.T) {
	uc := NewDatasetUseCase(newFakeRepository(), logger.NewNop())

	_, _, err := uc.GetDataset(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteDataset(t *testing.T) {
	repo := newFakeRepository()
	uc := NewDatasetUseCase(repo, logger.NewNop())

	ds, err := uc.SaveDataset(context.Background(), &dto.SaveDatasetInput{Name: "temp", Items: validItems()})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteDataset(context.Background(), ds.ID))

	err = uc.DeleteDataset(context.Background(), ds.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSampleItems(t *testing.T) {
	uc := NewDatasetUseCase(newFakeRepository(), logger.NewNop())

	items := uc.SampleItems()
	require.Len(t, items, 7)
	for _, it := range items {
		assert.NoError(t, it.Validate(), "item %s", it.ItemID)
	}
}
