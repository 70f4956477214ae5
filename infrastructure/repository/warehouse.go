package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/inventory-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
)

type WarehouseRepository interface {
	ListWithUtilization() ([]*domain.WarehouseWithUtilization, error)
	GetByID(warehouseID int64) (*domain.Warehouse, error)
	Create(warehouse *domain.Warehouse) (int64, error)
	Update(warehouseID int64, warehouse *domain.Warehouse) (bool, error)
	Delete(warehouseID int64) (bool, error)
}

type warehouseRepository struct {
	conn *postgres.Connection
}

func NewWarehouseRepository(conn *postgres.Connection) WarehouseRepository {
	return &warehouseRepository{
		conn: conn,
	}
}

// ListWithUtilization retorna os armazéns com o resumo de estoque e o
// percentual de ocupação da capacidade
func (r *warehouseRepository) ListWithUtilization() ([]*domain.WarehouseWithUtilization, error) {
	query, args, err := squirrel.
		Select(
			"w.warehouse_id, w.name, w.location, w.capacity, w.current_utilization, w.created_at, w.updated_at",
			"COUNT(DISTINCT sl.product_id) AS unique_products",
			"COALESCE(SUM(sl.current_stock), 0) AS total_stock",
			"COALESCE(ROUND(w.current_utilization * 100.0 / NULLIF(w.capacity, 0), 2), 0) AS utilization_percentage",
		).
		From("warehouses w").
		LeftJoin("stock_levels sl ON w.warehouse_id = sl.warehouse_id").
		GroupBy("w.warehouse_id").
		OrderBy("w.name").
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

	warehouses := make([]*domain.WarehouseWithUtilization, 0)
	for rows.Next() {
		warehouse := &domain.WarehouseWithUtilization{}
		err := rows.Scan(
			&warehouse.ID,
			&warehouse.Name,
			&warehouse.Location,
			&warehouse.Capacity,
			&warehouse.CurrentUtilization,
			&warehouse.CreatedAt,
			&warehouse.UpdatedAt,
			&warehouse.UniqueProducts,
			&warehouse.TotalStock,
			&warehouse.UtilizationPercentage,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear armazém: %w", err)
		}
		warehouses = append(warehouses, warehouse)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return warehouses, nil
}

func (r *warehouseRepository) GetByID(warehouseID int64) (*domain.Warehouse, error) {
	query, args, err := squirrel.
		Select("warehouse_id", "name", "location", "capacity", "current_utilization", "created_at", "updated_at").
		From("warehouses").
		Where(squirrel.Eq{"warehouse_id": warehouseID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	warehouse := &domain.Warehouse{}
	err = r.conn.QueryRow(query, args...).Scan(
		&warehouse.ID,
		&warehouse.Name,
		&warehouse.Location,
		&warehouse.Capacity,
		&warehouse.CurrentUtilization,
		&warehouse.CreatedAt,
		&warehouse.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear armazém: %w", err)
	}

	return warehouse, nil
}

func (r *warehouseRepository) Create(warehouse *domain.Warehouse) (int64, error) {
	query, args, err := squirrel.
		Insert("warehouses").
		Columns("name", "location", "capacity", "current_utilization").
		Values(warehouse.Name, warehouse.Location, warehouse.Capacity, warehouse.CurrentUtilization).
		Suffix("RETURNING warehouse_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var warehouseID int64
	if err := r.conn.QueryRow(query, args...).Scan(&warehouseID); err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return warehouseID, nil
}

func (r *warehouseRepository) Update(warehouseID int64, warehouse *domain.Warehouse) (bool, error) {
	query, args, err := squirrel.
		Update("warehouses").
		Set("name", warehouse.Name).
		Set("location", warehouse.Location).
		Set("capacity", warehouse.Capacity).
		Set("current_utilization", warehouse.CurrentUtilization).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"warehouse_id": warehouseID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *warehouseRepository) Delete(warehouseID int64) (bool, error) {
	query, args, err := squirrel.
		Delete("warehouses").
		Where(squirrel.Eq{"warehouse_id": warehouseID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}
