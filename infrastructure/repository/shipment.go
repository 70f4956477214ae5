package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/inventory-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
)

type ShipmentRepository interface {
	List(shipmentType domain.ShipmentType, status string) ([]*domain.ShipmentWithDetails, error)
	GetByID(shipmentID int64) (*domain.ShipmentWithDetails, error)
	GetItems(shipmentID int64) ([]*domain.ShipmentItem, error)
	CreateWithItems(ctx context.Context, shipment *domain.Shipment, items []*domain.ShipmentItem) (int64, error)
	UpdateStatus(shipmentID int64, status string, actualDelivery *string) (bool, error)
}

type shipmentRepository struct {
	conn *postgres.Connection
}

func NewShipmentRepository(conn *postgres.Connection) ShipmentRepository {
	return &shipmentRepository{
		conn: conn,
	}
}

func (r *shipmentRepository) List(shipmentType domain.ShipmentType, status string) ([]*domain.ShipmentWithDetails, error) {
	builder := squirrel.
		Select(
			"s.shipment_id, s.type, s.status, s.warehouse_id, s.vendor_id, s.carrier, s.tracking_number",
			"s.shipment_date, s.expected_delivery, s.actual_delivery, s.created_at",
			"w.name AS warehouse_name",
			"v.name AS vendor_name",
			"COUNT(si.item_id) AS item_count",
			"COALESCE(SUM(si.total_price), 0) AS total_value",
		).
		From("shipments s").
		LeftJoin("warehouses w ON s.warehouse_id = w.warehouse_id").
		LeftJoin("vendors v ON s.vendor_id = v.vendor_id").
		LeftJoin("shipment_items si ON s.shipment_id = si.shipment_id")

	if shipmentType != "" {
		builder = builder.Where(squirrel.Eq{"s.type": shipmentType})
	}

	if status != "" {
		builder = builder.Where(squirrel.Eq{"s.status": status})
	}

	query, args, err := builder.
		GroupBy("s.shipment_id", "w.name", "v.name").
		OrderBy("s.shipment_date DESC").
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

	shipments := make([]*domain.ShipmentWithDetails, 0)
	for rows.Next() {
		shipment := &domain.ShipmentWithDetails{}
		err := rows.Scan(
			&shipment.ID,
			&shipment.Type,
			&shipment.Status,
			&shipment.WarehouseID,
			&shipment.VendorID,
			&shipment.Carrier,
			&shipment.TrackingNumber,
			&shipment.ShipmentDate,
			&shipment.ExpectedDelivery,
			&shipment.ActualDelivery,
			&shipment.CreatedAt,
			&shipment.WarehouseName,
			&shipment.VendorName,
			&shipment.ItemCount,
			&shipment.TotalValue,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear remessa: %w", err)
		}
		shipments = append(shipments, shipment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return shipments, nil
}

func (r *shipmentRepository) GetByID(shipmentID int64) (*domain.ShipmentWithDetails, error) {
	query, args, err := squirrel.
		Select(
			"s.shipment_id, s.type, s.status, s.warehouse_id, s.vendor_id, s.carrier, s.tracking_number",
			"s.shipment_date, s.expected_delivery, s.actual_delivery, s.created_at",
			"w.name AS warehouse_name",
			"v.name AS vendor_name",
			"COUNT(si.item_id) AS item_count",
			"COALESCE(SUM(si.total_price), 0) AS total_value",
		).
		From("shipments s").
		LeftJoin("warehouses w ON s.warehouse_id = w.warehouse_id").
		LeftJoin("vendors v ON s.vendor_id = v.vendor_id").
		LeftJoin("shipment_items si ON s.shipment_id = si.shipment_id").
		Where(squirrel.Eq{"s.shipment_id": shipmentID}).
		GroupBy("s.shipment_id", "w.name", "v.name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	shipment := &domain.ShipmentWithDetails{}
	err = r.conn.QueryRow(query, args...).Scan(
		&shipment.ID,
		&shipment.Type,
		&shipment.Status,
		&shipment.WarehouseID,
		&shipment.VendorID,
		&shipment.Carrier,
		&shipment.TrackingNumber,
		&shipment.ShipmentDate,
		&shipment.ExpectedDelivery,
		&shipment.ActualDelivery,
		&shipment.CreatedAt,
		&shipment.WarehouseName,
		&shipment.VendorName,
		&shipment.ItemCount,
		&shipment.TotalValue,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear remessa: %w", err)
	}

	return shipment, nil
}

func (r *shipmentRepository) GetItems(shipmentID int64) ([]*domain.ShipmentItem, error) {
	query, args, err := squirrel.
		Select(
			"si.item_id, si.shipment_id, si.product_id, si.quantity, si.unit_price, si.total_price",
			"p.name AS product_name",
			"p.sku",
		).
		From("shipment_items si").
		LeftJoin("products p ON si.product_id = p.product_id").
		Where(squirrel.Eq{"si.shipment_id": shipmentID}).
		OrderBy("si.item_id").
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

	items := make([]*domain.ShipmentItem, 0)
	for rows.Next() {
		item := &domain.ShipmentItem{}
		err := rows.Scan(
			&item.ID,
			&item.ShipmentID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
			&item.ProductName,
			&item.ProductSKU,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item da remessa: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

// CreateWithItems grava a remessa e seus itens na mesma transação. Remessas
// de entrada incrementam o estoque do armazém de destino
func (r *shipmentRepository) CreateWithItems(ctx context.Context, shipment *domain.Shipment, items []*domain.ShipmentItem) (int64, error) {
	var shipmentID int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert("shipments").
			Columns("type", "status", "warehouse_id", "vendor_id", "carrier", "tracking_number", "shipment_date", "expected_delivery").
			Values(
				shipment.Type,
				shipment.Status,
				shipment.WarehouseID,
				shipment.VendorID,
				shipment.Carrier,
				shipment.TrackingNumber,
				shipment.ShipmentDate,
				shipment.ExpectedDelivery,
			).
			Suffix("RETURNING shipment_id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := tx.QueryRow(query, args...).Scan(&shipmentID); err != nil {
			return fmt.Errorf("erro ao inserir remessa: %w", err)
		}

		for _, item := range items {
			query, args, err := squirrel.
				Insert("shipment_items").
				Columns("shipment_id", "product_id", "quantity", "unit_price", "total_price").
				Values(shipmentID, item.ProductID, item.Quantity, item.UnitPrice, float64(item.Quantity)*item.UnitPrice).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("erro ao inserir item da remessa: %w", err)
			}

			if shipment.Type == domain.ShipmentTypeInbound {
				query, args, err := squirrel.
					Insert("stock_levels").
					Columns("product_id", "warehouse_id", "current_stock").
					Values(item.ProductID, shipment.WarehouseID, item.Quantity).
					Suffix(
						`ON CONFLICT (product_id, warehouse_id)
						DO UPDATE SET current_stock = stock_levels.current_stock + ?, last_updated = NOW()`,
						item.Quantity,
					).
					PlaceholderFormat(squirrel.Dollar).
					ToSql()
				if err != nil {
					return fmt.Errorf("erro ao construir a query: %w", err)
				}

				if _, err := tx.Exec(query, args...); err != nil {
					return fmt.Errorf("erro ao atualizar estoque da remessa: %w", err)
				}
			}
		}

		if shipment.Type == domain.ShipmentTypeInbound {
			if err := refreshWarehouseUtilization(tx, shipment.WarehouseID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return shipmentID, nil
}

func (r *shipmentRepository) UpdateStatus(shipmentID int64, status string, actualDelivery *string) (bool, error) {
	builder := squirrel.
		Update("shipments").
		Set("status", status)

	if actualDelivery != nil {
		builder = builder.Set("actual_delivery", *actualDelivery)
	}

	query, args, err := builder.
		Where(squirrel.Eq{"shipment_id": shipmentID}).
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
