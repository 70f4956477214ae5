package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/inventory-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
)

type OrderRepository interface {
	List(status domain.OrderStatus, vendorID *int64) ([]*domain.OrderWithDetails, error)
	GetByID(orderID int64) (*domain.OrderWithDetails, error)
	GetItems(orderID int64) ([]*domain.OrderItem, error)
	CreateWithItems(ctx context.Context, order *domain.Order, items []*domain.OrderItem) (int64, error)
	UpdateStatus(orderID int64, status domain.OrderStatus, actualDelivery *string) (bool, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) List(status domain.OrderStatus, vendorID *int64) ([]*domain.OrderWithDetails, error) {
	builder := squirrel.
		Select(
			"o.order_id, o.vendor_id, o.order_type, o.status, o.order_date",
			"o.expected_delivery, o.actual_delivery, o.total_amount, o.created_at",
			"v.name AS vendor_name",
			"COUNT(oi.item_id) AS item_count",
			"COALESCE(SUM(oi.total_price), 0) AS calculated_total",
		).
		From("orders o").
		LeftJoin("vendors v ON o.vendor_id = v.vendor_id").
		LeftJoin("order_items oi ON o.order_id = oi.order_id")

	if status != "" {
		builder = builder.Where(squirrel.Eq{"o.status": status})
	}

	if vendorID != nil {
		builder = builder.Where(squirrel.Eq{"o.vendor_id": *vendorID})
	}

	query, args, err := builder.
		GroupBy("o.order_id", "v.name").
		OrderBy("o.order_date DESC").
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

	orders := make([]*domain.OrderWithDetails, 0)
	for rows.Next() {
		order := &domain.OrderWithDetails{}
		err := rows.Scan(
			&order.ID,
			&order.VendorID,
			&order.OrderType,
			&order.Status,
			&order.OrderDate,
			&order.ExpectedDelivery,
			&order.ActualDelivery,
			&order.TotalAmount,
			&order.CreatedAt,
			&order.VendorName,
			&order.ItemCount,
			&order.CalculatedTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) GetByID(orderID int64) (*domain.OrderWithDetails, error) {
	query, args, err := squirrel.
		Select(
			"o.order_id, o.vendor_id, o.order_type, o.status, o.order_date",
			"o.expected_delivery, o.actual_delivery, o.total_amount, o.created_at",
			"v.name AS vendor_name",
			"COUNT(oi.item_id) AS item_count",
			"COALESCE(SUM(oi.total_price), 0) AS calculated_total",
		).
		From("orders o").
		LeftJoin("vendors v ON o.vendor_id = v.vendor_id").
		LeftJoin("order_items oi ON o.order_id = oi.order_id").
		Where(squirrel.Eq{"o.order_id": orderID}).
		GroupBy("o.order_id", "v.name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	order := &domain.OrderWithDetails{}
	err = r.conn.QueryRow(query, args...).Scan(
		&order.ID,
		&order.VendorID,
		&order.OrderType,
		&order.Status,
		&order.OrderDate,
		&order.ExpectedDelivery,
		&order.ActualDelivery,
		&order.TotalAmount,
		&order.CreatedAt,
		&order.VendorName,
		&order.ItemCount,
		&order.CalculatedTotal,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
	}

	return order, nil
}

func (r *orderRepository) GetItems(orderID int64) ([]*domain.OrderItem, error) {
	query, args, err := squirrel.
		Select(
			"oi.item_id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price, oi.total_price",
			"p.name AS product_name",
			"p.sku",
		).
		From("order_items oi").
		LeftJoin("products p ON oi.product_id = p.product_id").
		Where(squirrel.Eq{"oi.order_id": orderID}).
		OrderBy("oi.item_id").
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

	items := make([]*domain.OrderItem, 0)
	for rows.Next() {
		item := &domain.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
			&item.ProductName,
			&item.ProductSKU,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do pedido: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

// CreateWithItems grava o pedido, seus itens e o total recalculado a partir
// dos itens, tudo na mesma transação
func (r *orderRepository) CreateWithItems(ctx context.Context, order *domain.Order, items []*domain.OrderItem) (int64, error) {
	var orderID int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert("orders").
			Columns("vendor_id", "order_type", "status", "order_date", "expected_delivery", "total_amount").
			Values(order.VendorID, order.OrderType, order.Status, order.OrderDate, order.ExpectedDelivery, 0).
			Suffix("RETURNING order_id").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := tx.QueryRow(query, args...).Scan(&orderID); err != nil {
			return fmt.Errorf("erro ao inserir pedido: %w", err)
		}

		var totalAmount float64
		for _, item := range items {
			totalPrice := float64(item.Quantity) * item.UnitPrice
			totalAmount += totalPrice

			query, args, err := squirrel.
				Insert("order_items").
				Columns("order_id", "product_id", "quantity", "unit_price", "total_price").
				Values(orderID, item.ProductID, item.Quantity, item.UnitPrice, totalPrice).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("erro ao inserir item do pedido: %w", err)
			}
		}

		query, args, err = squirrel.
			Update("orders").
			Set("total_amount", totalAmount).
			Where(squirrel.Eq{"order_id": orderID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao atualizar total do pedido: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return orderID, nil
}

func (r *orderRepository) UpdateStatus(orderID int64, status domain.OrderStatus, actualDelivery *string) (bool, error) {
	builder := squirrel.
		Update("orders").
		Set("status", status)

	if actualDelivery != nil {
		builder = builder.Set("actual_delivery", *actualDelivery)
	}

	query, args, err := builder.
		Where(squirrel.Eq{"order_id": orderID}).
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
