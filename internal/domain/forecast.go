package domain

import (
	"fmt"
	"time"
)

// ForecastMethod é o conjunto fechado de métodos de previsão suportados
type ForecastMethod string

const (
	ForecastMethodMovingAverage        ForecastMethod = "moving_average"
	ForecastMethodExponentialSmoothing ForecastMethod = "exponential_smoothing"
	ForecastMethodTrendAnalysis        ForecastMethod = "trend_analysis"
	ForecastMethodSeasonal             ForecastMethod = "seasonal"
	ForecastMethodEnsemble             ForecastMethod = "ensemble"
)

// ParseForecastMethod valida o método recebido na borda da API. Valores
// desconhecidos são rejeitados em vez de cair no ensemble por omissão.
func ParseForecastMethod(s string) (ForecastMethod, error) {
	switch ForecastMethod(s) {
	case ForecastMethodMovingAverage,
		ForecastMethodExponentialSmoothing,
		ForecastMethodTrendAnalysis,
		ForecastMethodSeasonal,
		ForecastMethodEnsemble:
		return ForecastMethod(s), nil
	case "":
		return ForecastMethodEnsemble, nil
	}
	return "", fmt.Errorf("método de previsão desconhecido: %q", s)
}

// MonthlySales é um ponto da série histórica de vendas, agregado por mês
type MonthlySales struct {
	Month         string  `json:"month"` // formato YYYY-MM
	TotalQuantity float64 `json:"total_quantity"`
}

// Forecast representa um registro de previsão de demanda para um passo do
// horizonte. Registros são imutáveis depois de gerados (append-only).
type Forecast struct {
	ID              int64          `json:"forecast_id,omitempty"`
	ProductID       int64          `json:"product_id"`
	WarehouseID     int64          `json:"warehouse_id"`
	PeriodStart     time.Time      `json:"period_start"`
	PeriodEnd       time.Time      `json:"period_end"`
	PredictedDemand int            `json:"predicted_demand"`
	Method          ForecastMethod `json:"forecast_method"`
	ConfidenceLevel float64        `json:"confidence_level"`
}

// AccuracyMetrics contém as métricas de erro do back-test de previsão.
// São efêmeras: calculadas e retornadas, nunca persistidas.
type AccuracyMetrics struct {
	MAE           float64 `json:"mae"`
	MSE           float64 `json:"mse"`
	RMSE          float64 `json:"rmse"`
	MAPE          float64 `json:"mape"`
	AccuracyScore float64 `json:"accuracy_score"`
}
