package handler

import (
	"math"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-manager-api/infrastructure/repository"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/forecasting"
	"github.com/vfg2006/inventory-manager-api/pkg/apiErrors"
)

// forecastRequest é o corpo das operações de previsão. O método vazio cai no
// ensemble e periods vazio usa o horizonte padrão do motor.
type forecastRequest struct {
	ProductID   int64  `json:"product_id"`
	WarehouseID int64  `json:"warehouse_id"`
	Periods     int    `json:"periods"`
	Method      string `json:"method"`
}

// GenerateForecast gera e persiste uma previsão de demanda para um par
// produto/armazém
func GenerateForecast(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req forecastRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.ProductID == 0 || req.WarehouseID == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing product_id or warehouse_id", nil)
			return
		}

		method, err := domain.ParseForecastMethod(req.Method)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidMethod, err.Error(), nil)
			return
		}

		records, message, err := service.GenerateForecast(req.ProductID, req.WarehouseID, req.Periods, method)
		if err != nil {
			logrus.Error("Erro ao gerar previsão:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar previsão", nil)
			return
		}
		if records == nil {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientData, message, nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: records, Message: message})
	}
}

// Teto reportado para o MAPE quando um mês de teste sem vendas torna o
// percentual de erro indefinido
const maxReportableMAPE = 9999.99

// sanitizeAccuracyMetrics substitui valores não finitos antes da codificação.
// O codificador JSON não representa Inf nem NaN, e o MAPE diverge quando a
// série de teste contém meses com vendas zeradas.
func sanitizeAccuracyMetrics(metrics *domain.AccuracyMetrics) {
	if math.IsInf(metrics.MAPE, 0) || math.IsNaN(metrics.MAPE) {
		metrics.MAPE = maxReportableMAPE
	}
}

// EvaluateForecast faz o back-test da previsão contra a série histórica e
// retorna as métricas de erro
func EvaluateForecast(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req forecastRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.ProductID == 0 || req.WarehouseID == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing product_id or warehouse_id", nil)
			return
		}

		method, err := domain.ParseForecastMethod(req.Method)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidMethod, err.Error(), nil)
			return
		}

		metrics, message, err := service.EvaluateForecastAccuracy(req.ProductID, req.WarehouseID, method)
		if err != nil {
			logrus.Error("Erro ao avaliar previsão:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao avaliar previsão", nil)
			return
		}
		if metrics == nil {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientData, message, nil)
			return
		}

		sanitizeAccuracyMetrics(metrics)

		respondJSON(w, http.StatusOK, envelope{Data: metrics, Message: message})
	}
}

// ForecastHistory retorna as previsões já geradas para um par
// produto/armazém, das mais recentes para as mais antigas
func ForecastHistory(repo repository.ForecastRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := queryInt64Ptr(r, "product_id")
		warehouseID := queryInt64Ptr(r, "warehouse_id")
		if productID == nil || warehouseID == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing product_id or warehouse_id", nil)
			return
		}

		limit := queryInt(r, "limit", 50)
		if limit <= 0 {
			limit = 50
		}

		records, err := repo.GetHistory(*productID, *warehouseID, uint64(limit))
		if err != nil {
			logrus.Error("Erro ao listar histórico de previsões:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar histórico de previsões", nil)
			return
		}

		respondJSON(w, http.StatusOK, envelope{Data: records})
	}
}
