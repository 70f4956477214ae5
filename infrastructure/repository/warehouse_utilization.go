package repository

import (
	"fmt"

	"github.com/vfg2006/inventory-manager-api/infrastructure/database/postgres"
)

// refreshWarehouseUtilization recalcula a ocupação do armazém a partir das
// posições de estoque. Chamada após qualquer movimentação de estoque.
func refreshWarehouseUtilization(q postgres.Queryer, warehouseID int64) error {
	query := `
		UPDATE warehouses w
		SET current_utilization = (
			SELECT COALESCE(SUM(sl.current_stock), 0)
			FROM stock_levels sl
			WHERE sl.warehouse_id = w.warehouse_id
		), updated_at = NOW()
		WHERE w.warehouse_id = $1`

	if _, err := q.Exec(query, warehouseID); err != nil {
		return fmt.Errorf("erro ao atualizar ocupação do armazém: %w", err)
	}

	return nil
}
