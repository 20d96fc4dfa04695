package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	analyticsdto "github.com/optistock/optistock-analytics-service/internal/analytics/dto"
	"github.com/optistock/optistock-analytics-service/internal/apperrors"
	"github.com/optistock/optistock-analytics-service/internal/dataset"
	"github.com/optistock/optistock-analytics-service/internal/dataset/dto"
	"github.com/optistock/optistock-analytics-service/internal/model"
	"github.com/optistock/optistock-analytics-service/pkg/logger"
)

type DatasetHandler struct {
	uc     dataset.UseCase
	logger logger.ZapLogger
}

func NewDatasetHandler(uc dataset.UseCase, log logger.ZapLogger) *DatasetHandler {
	return &DatasetHandler{
		uc:     uc,
		logger: log,
	}
}

type saveDatasetRequest struct {
	Name  string                     `json:"name"`
	Items []analyticsdto.ItemPayload `json:"items"`
}

type datasetPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"item_count"`
	CreatedAt string `json:"created_at"`
}

type datasetResponse struct {
	Success bool           `json:"success"`
	Data    datasetPayload `json:"data"`
}

func (h *DatasetHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveDatasetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	items := make([]model.Item, len(req.Items))
	for i, p := range req.Items {
		items[i] = p.ToModel()
	}

	ds, err := h.uc.SaveDataset(r.Context(), &dto.SaveDatasetInput{Name: req.Name, Items: items})
	if err != nil {
		h.respondUseCaseError(w, "save dataset", err)
		return
	}

	h.respondJSON(w, http.StatusCreated, datasetResponse{Success: true, Data: toPayload(ds)})
}

func (h *DatasetHandler) List(w http.ResponseWriter, r *http.Request) {
	datasets, err := h.uc.ListDatasets(r.Context())
	if err != nil {
		h.respondUseCaseError(w, "list datasets", err)
		return
	}

	payloads := make([]datasetPayload, len(datasets))
	for i := range datasets {
		payloads[i] = toPayload(&datasets[i])
	}
	h.respondJSON(w, http.StatusOK, struct {
		Success bool             `json:"success"`
		Data    []datasetPayload `json:"data"`
	}{Success: true, Data: payloads})
}

type datasetItemsResponse struct {
	Success bool                       `json:"success"`
	Dataset datasetPayload             `json:"dataset"`
	Data    []analyticsdto.ItemPayload `json:"data"`
}

func (h *DatasetHandler) Get(w http.ResponseWriter, r *http.Request) {
	ds, items, err := h.uc.GetDataset(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondUseCaseError(w, "get dataset", err)
		return
	}

	h.respondJSON(w, http.StatusOK, datasetItemsResponse{
		Success: true,
		Dataset: toPayload(ds),
		Data:    toItemPayloads(items),
	})
}

func (h *DatasetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteDataset(r.Context(), r.PathValue("id")); err != nil {
		h.respondUseCaseError(w, "delete dataset", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DatasetHandler) Sample(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, struct {
		Success bool                       `json:"success"`
		Data    []analyticsdto.ItemPayload `json:"data"`
	}{Success: true, Data: toItemPayloads(h.uc.SampleItems())})
}

func toPayload(ds *model.Dataset) datasetPayload {
	return datasetPayload{
		ID:        ds.ID,
		Name:      ds.Name,
		ItemCount: ds.ItemCount,
		CreatedAt: ds.CreatedAt.Format(time.RFC3339),
	}
}

func toItemPayloads(items []model.Item) []analyticsdto.ItemPayload {
	payloads := make([]analyticsdto.ItemPayload, len(items))
	for i, it := range items {
		payloads[i] = analyticsdto.ItemPayload{
			Item:        it.ItemID,
			AnnualUsage: it.AnnualUsage,
			UnitCost:    it.UnitCost,
			LeadTime:    it.LeadTime,
			PastDemand:  it.PastDemand,
		}
	}
	return payloads
}

func (h *DatasetHandler) respondUseCaseError(w http.ResponseWriter, op string, err error) {
	switch {
	case apperrors.IsValidation(err):
		h.logger.Warn("rejected request", zap.String("op", op), zap.Error(err))
		h.respondError(w, http.StatusBadRequest, err.Error())
	case apperrors.IsNotFound(err):
		h.logger.Warn("rejected request", zap.String("op", op), zap.Error(err))
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("request failed", zap.String("op", op), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *DatasetHandler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}

func (h *DatasetHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
