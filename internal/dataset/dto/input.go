package dto

import "github.com/optistock/optistock-analytics-service/internal/model"

type SaveDatasetInput struct {
	Name  string
	Items []model.Item
}
