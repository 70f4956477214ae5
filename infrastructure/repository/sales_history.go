package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/inventory-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/forecasting"
)

type salesHistoryRepository struct {
	conn *postgres.Connection
}

func NewSalesHistoryRepository(conn *postgres.Connection) forecasting.SalesHistoryStore {
	return &salesHistoryRepository{
		conn: conn,
	}
}

// GetSalesHistory agrega as vendas de um produto em um armazém por mês,
// dentro da janela informada, do mês mais antigo para o mais recente
func (r *salesHistoryRepository) GetSalesHistory(productID, warehouseID int64, months int) ([]domain.MonthlySales, error) {
	query, args, err := squirrel.
		Select(
			"TO_CHAR(sale_date, 'YYYY-MM') AS month",
			"SUM(quantity_sold) AS total_quantity",
		).
		From("sales_history").
		Where(squirrel.Eq{"product_id": productID, "warehouse_id": warehouseID}).
		Where(squirrel.Expr("sale_date >= NOW() - (? || ' months')::INTERVAL", months)).
		GroupBy("TO_CHAR(sale_date, 'YYYY-MM')").
		OrderBy("month").
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

	history := make([]domain.MonthlySales, 0)
	for rows.Next() {
		var sales domain.MonthlySales
		if err := rows.Scan(&sales.Month, &sales.TotalQuantity); err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico de vendas: %w", err)
		}
		history = append(history, sales)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return history, nil
}
