package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/inventory-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
)

type ProductRepository interface {
	ListWithStock(category string, warehouseID *int64) ([]*domain.ProductWithStock, error)
	GetByID(productID int64) (*domain.Product, error)
	Create(product *domain.Product) (int64, error)
	Update(productID int64, product *domain.Product) (bool, error)
	Delete(productID int64) (bool, error)
	GetStockLevel(productID, warehouseID int64) (*domain.StockLevel, error)
	UpsertStock(productID, warehouseID int64, quantity int, operation domain.StockOperation) (*domain.StockLevel, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

// ListWithStock retorna os produtos com o nome do fornecedor e o estoque
// consolidado por armazém, com filtros opcionais de categoria e armazém
func (r *productRepository) ListWithStock(category string, warehouseID *int64) ([]*domain.ProductWithStock, error) {
	builder := squirrel.
		Select(
			"p.product_id, p.name, p.category, p.sku, p.unit_price, p.reorder_point, p.vendor_id, p.created_at, p.updated_at",
			"v.name AS vendor_name",
			"STRING_AGG(DISTINCT w.name || ': ' || sl.current_stock, ', ') AS stock_by_warehouse",
		).
		From("products p").
		LeftJoin("vendors v ON p.vendor_id = v.vendor_id").
		LeftJoin("stock_levels sl ON p.product_id = sl.product_id").
		LeftJoin("warehouses w ON sl.warehouse_id = w.warehouse_id")

	if category != "" {
		builder = builder.Where(squirrel.Eq{"p.category": category})
	}

	if warehouseID != nil {
		builder = builder.Where(squirrel.Eq{"sl.warehouse_id": *warehouseID})
	}

	query, args, err := builder.
		GroupBy("p.product_id", "v.name").
		OrderBy("p.name").
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

	products := make([]*domain.ProductWithStock, 0)
	for rows.Next() {
		product := &domain.ProductWithStock{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.SKU,
			&product.UnitPrice,
			&product.ReorderPoint,
			&product.VendorID,
			&product.CreatedAt,
			&product.UpdatedAt,
			&product.VendorName,
			&product.StockByWarehouse,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetByID(productID int64) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("product_id", "name", "category", "sku", "unit_price", "reorder_point", "vendor_id", "created_at", "updated_at").
		From("products").
		Where(squirrel.Eq{"product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product := &domain.Product{}
	err = r.conn.QueryRow(query, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.SKU,
		&product.UnitPrice,
		&product.ReorderPoint,
		&product.VendorID,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) Create(product *domain.Product) (int64, error) {
	query, args, err := squirrel.
		Insert("products").
		Columns("name", "category", "sku", "unit_price", "reorder_point", "vendor_id").
		Values(product.Name, product.Category, product.SKU, product.UnitPrice, product.ReorderPoint, product.VendorID).
		Suffix("RETURNING product_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var productID int64
	if err := r.conn.QueryRow(query, args...).Scan(&productID); err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return productID, nil
}

func (r *productRepository) Update(productID int64, product *domain.Product) (bool, error) {
	query, args, err := squirrel.
		Update("products").
		Set("name", product.Name).
		Set("category", product.Category).
		Set("sku", product.SKU).
		Set("unit_price", product.UnitPrice).
		Set("reorder_point", product.ReorderPoint).
		Set("vendor_id", product.VendorID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"product_id": productID}).
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

func (r *productRepository) Delete(productID int64) (bool, error) {
	query, args, err := squirrel.
		Delete("products").
		Where(squirrel.Eq{"product_id": productID}).
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

func (r *productRepository) GetStockLevel(productID, warehouseID int64) (*domain.StockLevel, error) {
	query, args, err := squirrel.
		Select("product_id", "warehouse_id", "current_stock").
		From("stock_levels").
		Where(squirrel.Eq{"product_id": productID, "warehouse_id": warehouseID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	level := &domain.StockLevel{}
	err = r.conn.QueryRow(query, args...).Scan(&level.ProductID, &level.WarehouseID, &level.CurrentStock)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear nível de estoque: %w", err)
	}

	return level, nil
}

// UpsertStock aplica uma movimentação de estoque criando a posição quando
// necessário. Subtrações nunca deixam o estoque negativo
func (r *productRepository) UpsertStock(productID, warehouseID int64, quantity int, operation domain.StockOperation) (*domain.StockLevel, error) {
	delta := quantity
	if operation == domain.StockOperationSubtract {
		delta = -quantity
	}

	initial := delta
	if initial < 0 {
		initial = 0
	}

	query, args, err := squirrel.
		Insert("stock_levels").
		Columns("product_id", "warehouse_id", "current_stock").
		Values(productID, warehouseID, initial).
		Suffix(
			`ON CONFLICT (product_id, warehouse_id)
			DO UPDATE SET current_stock = GREATEST(stock_levels.current_stock + ?, 0), last_updated = NOW()
			RETURNING product_id, warehouse_id, current_stock`,
			delta,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	level := &domain.StockLevel{}
	err = r.conn.QueryRow(query, args...).Scan(&level.ProductID, &level.WarehouseID, &level.CurrentStock)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	if err := refreshWarehouseUtilization(r.conn, warehouseID); err != nil {
		return nil, err
	}

	return level, nil
}
