package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/optistock/optistock-analytics-service/internal/analytics"
	"github.com/optistock/optistock-analytics-service/internal/analytics/dto"
	"github.com/optistock/optistock-analytics-service/internal/apperrors"
	"github.com/optistock/optistock-analytics-service/internal/model"
	"github.com/optistock/optistock-analytics-service/pkg/logger"
)

// Request-level defaults, applied when the client omits the field.
const (
	defaultServiceLevel    = 0.95
	defaultHoldingCostRate = 0.2
	defaultSweepMinPct     = 80
	defaultSweepMaxPct     = 99
)

type AnalyticsHandler struct {
	uc     analytics.UseCase
	logger logger.ZapLogger
}

func NewAnalyticsHandler(uc analytics.UseCase, log logger.ZapLogger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:     uc,
		logger: log,
	}
}

type calculateRequest struct {
	Items           []dto.ItemPayload `json:"items"`
	ServiceLevel    *float64          `json:"service_level"`
	HoldingCostRate *float64          `json:"holding_cost_rate"`
}

type calculateResponse struct {
	Success bool                      `json:"success"`
	Data    []dto.EnrichedItemPayload `json:"data"`
	Summary dto.Summary               `json:"summary"`
}

func (h *AnalyticsHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	items := make([]model.Item, len(req.Items))
	for i, p := range req.Items {
		items[i] = p.ToModel()
	}

	input := &dto.CalculateInput{
		Items:           items,
		ServiceLevel:    defaultServiceLevel,
		HoldingCostRate: defaultHoldingCostRate,
	}
	if req.ServiceLevel != nil {
		input.ServiceLevel = *req.ServiceLevel
	}
	if req.HoldingCostRate != nil {
		input.HoldingCostRate = *req.HoldingCostRate
	}

	result, err := h.uc.Calculate(r.Context(), input)
	if err != nil {
		h.respondUseCaseError(w, "calculate", err)
		return
	}

	data := make([]dto.EnrichedItemPayload, len(result.Items))
	for i, it := range result.Items {
		data[i] = dto.FromEnriched(it)
	}
	h.respondJSON(w, http.StatusOK, calculateResponse{
		Success: true,
		Data:    data,
		Summary: result.Summary,
	})
}

type tradeoffRequest struct {
	Items           []dto.EnrichedItemPayload `json:"items"`
	SelectedItems   []string                  `json:"selected_items"`
	ServiceLevelMin *float64                  `json:"service_level_min"` // percent 0-100
	ServiceLevelMax *float64                  `json:"service_level_max"` // percent 0-100
	HoldingCostRate *float64                  `json:"holding_cost_rate"`
}

type tradeoffResponse struct {
	Success bool                          `json:"success"`
	Data    map[string]*dto.TradeoffCurve `json:"data"`
}

func (h *AnalyticsHandler) Tradeoff(w http.ResponseWriter, r *http.Request) {
	var req tradeoffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	items := make([]model.EnrichedItem, len(req.Items))
	for i, p := range req.Items {
		items[i] = p.ToModel()
	}

	input := &dto.TradeoffInput{
		Items:           items,
		SelectedItemIDs: req.SelectedItems,
		ServiceLevelMin: defaultSweepMinPct / 100.0,
		ServiceLevelMax: defaultSweepMaxPct / 100.0,
		HoldingCostRate: defaultHoldingCostRate,
	}
	if req.ServiceLevelMin != nil {
		input.ServiceLevelMin = *req.ServiceLevelMin / 100
	}
	if req.ServiceLevelMax != nil {
		input.ServiceLevelMax = *req.ServiceLevelMax / 100
	}
	if req.HoldingCostRate != nil {
		input.HoldingCostRate = *req.HoldingCostRate
	}

	curves, err := h.uc.Tradeoff(r.Context(), input)
	if err != nil {
		h.respondUseCaseError(w, "tradeoff", err)
		return
	}

	h.respondJSON(w, http.StatusOK, tradeoffResponse{Success: true, Data: curves})
}

func (h *AnalyticsHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// respondUseCaseError translates the core error taxonomy into status codes.
func (h *AnalyticsHandler) respondUseCaseError(w http.ResponseWriter, op string, err error) {
	switch {
	case apperrors.IsValidation(err), apperrors.IsDomain(err):
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

func (h *AnalyticsHandler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}

func (h *AnalyticsHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
