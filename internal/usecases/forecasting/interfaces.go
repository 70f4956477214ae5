package forecasting

import (
	"github.com/vfg2006/inventory-manager-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// SalesHistoryStore define a interface de leitura da série histórica de vendas
type SalesHistoryStore interface {
	// GetSalesHistory retorna a série mensal de vendas de um par
	// produto/armazém, do mês mais antigo para o mais recente
	GetSalesHistory(productID, warehouseID int64, months int) ([]domain.MonthlySales, error)
}

// ForecastStore define a interface de persistência dos registros de previsão
type ForecastStore interface {
	// SaveForecast persiste um registro de previsão (append-only)
	SaveForecast(forecast *domain.Forecast) error
}

// Forecaster é a interface exposta à camada de rotas
type Forecaster interface {
	// GenerateForecast gera e persiste uma previsão de demanda. Retorna os
	// registros gerados e uma mensagem legível; registros nulos indicam
	// falha de negócio (dados insuficientes, método não aplicável) e um
	// erro não nulo indica falha de colaborador (banco de dados)
	GenerateForecast(productID, warehouseID int64, periods int, method domain.ForecastMethod) ([]*domain.Forecast, string, error)

	// EvaluateForecastAccuracy faz o back-test da previsão contra os últimos
	// meses da série histórica e retorna as métricas de erro
	EvaluateForecastAccuracy(productID, warehouseID int64, method domain.ForecastMethod) (*domain.AccuracyMetrics, string, error)
}
