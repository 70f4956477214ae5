package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/inventory-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
)

// ProductWarehousePair identifica uma combinação produto/armazém com
// histórico de vendas
type ProductWarehousePair struct {
	ProductID   int64
	WarehouseID int64
}

type ForecastRepository interface {
	SaveForecast(forecast *domain.Forecast) error
	GetHistory(productID, warehouseID int64, limit uint64) ([]*domain.Forecast, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
	ListActivePairs() ([]ProductWarehousePair, error)
}

type forecastRepository struct {
	conn *postgres.Connection
}

func NewForecastRepository(conn *postgres.Connection) ForecastRepository {
	return &forecastRepository{
		conn: conn,
	}
}

func (r *forecastRepository) SaveForecast(forecast *domain.Forecast) error {
	query, args, err := squirrel.
		Insert("forecasting_data").
		Columns("product_id", "warehouse_id", "period_start", "period_end", "predicted_demand", "forecast_method", "confidence_level").
		Values(
			forecast.ProductID,
			forecast.WarehouseID,
			forecast.PeriodStart,
			forecast.PeriodEnd,
			forecast.PredictedDemand,
			forecast.Method,
			forecast.ConfidenceLevel,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir previsão: %w", err)
	}

	return nil
}

// GetHistory retorna as previsões já geradas para o par produto/armazém,
// das mais recentes para as mais antigas
func (r *forecastRepository) GetHistory(productID, warehouseID int64, limit uint64) ([]*domain.Forecast, error) {
	builder := squirrel.
		Select("forecast_id", "product_id", "warehouse_id", "period_start", "period_end", "predicted_demand", "forecast_method", "confidence_level").
		From("forecasting_data").
		Where(squirrel.Eq{"product_id": productID, "warehouse_id": warehouseID}).
		OrderBy("created_at DESC", "period_start")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	forecasts := make([]*domain.Forecast, 0)
	for rows.Next() {
		forecast := &domain.Forecast{}
		err := rows.Scan(
			&forecast.ID,
			&forecast.ProductID,
			&forecast.WarehouseID,
			&forecast.PeriodStart,
			&forecast.PeriodEnd,
			&forecast.PredictedDemand,
			&forecast.Method,
			&forecast.ConfidenceLevel,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear previsão: %w", err)
		}
		forecasts = append(forecasts, forecast)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return forecasts, nil
}

// DeleteOlderThan remove previsões geradas antes da data de corte e retorna
// quantas linhas foram removidas
func (r *forecastRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete("forecasting_data").
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

// ListActivePairs retorna as combinações produto/armazém com vendas
// registradas, usadas pela atualização periódica de previsões
func (r *forecastRepository) ListActivePairs() ([]ProductWarehousePair, error) {
	query, args, err := squirrel.
		Select("DISTINCT product_id", "warehouse_id").
		From("sales_history").
		OrderBy("product_id", "warehouse_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	pairs := make([]ProductWarehousePair, 0)
	for rows.Next() {
		var pair ProductWarehousePair
		if err := rows.Scan(&pair.ProductID, &pair.WarehouseID); err != nil {
			return nil, fmt.Errorf("erro ao escanear par produto/armazém: %w", err)
		}
		pairs = append(pairs, pair)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return pairs, nil
}
