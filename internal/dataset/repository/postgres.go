package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/optistock/optistock-analytics-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, ds *model.Dataset, items []model.DatasetItem) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO datasets (id, name, created_at) VALUES ($1, $2, $3)`,
		ds.ID, ds.Name, ds.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert dataset: %w", err)
	}

	_, err = tx.NamedExecContext(ctx, `
        INSERT INTO dataset_items
            (id, dataset_id, item_id, annual_usage, unit_cost, lead_time, past_demand, position)
        VALUES
            (:id, :dataset_id, :item_id, :annual_usage, :unit_cost, :lead_time, :past_demand, :position)
    `, items)
	if err != nil {
		return fmt.Errorf("insert dataset items: %w", err)
	}

	return tx.Commit()
}

func (r *PGRepository) List(ctx context.Context) ([]model.Dataset, error) {
	var datasets []model.Dataset
	err := r.DB.SelectContext(ctx, &datasets, `
        SELECT d.id, d.name, d.created_at, COUNT(i.id) AS item_count
        FROM datasets d
        LEFT JOIN dataset_items i ON i.dataset_id = d.id
        GROUP BY d.id, d.name, d.created_at
        ORDER BY d.created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	return datasets, nil
}

func (r *PGRepository) GetByID(ctx context.Context, id string) (*model.Dataset, []model.DatasetItem, error) {
	var ds model.Dataset
	err := r.DB.GetContext(ctx, &ds, `
        SELECT d.id, d.name, d.created_at, COUNT(i.id) AS item_count
        FROM datasets d
        LEFT JOIN dataset_items i ON i.dataset_id = d.id
        WHERE d.id = $1
        GROUP BY d.id, d.name, d.created_at
    `, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var items []model.DatasetItem
	err = r.DB.SelectContext(ctx, &items, `
        SELECT * FROM dataset_items WHERE dataset_id = $1 ORDER BY position
    `, id)
	if err != nil {
		return nil, nil, err
	}
	return &ds, items, nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) (bool, error) {
	// dataset_items rows go with the dataset via ON DELETE CASCADE.
	res, err := r.DB.ExecContext(ctx, `DELETE FROM datasets WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
