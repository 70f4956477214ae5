package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/inventory-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
)

const vendorsTable = "vendors v"

type VendorRepository interface {
	ListWithStats() ([]*domain.VendorWithStats, error)
	GetByID(vendorID int64) (*domain.Vendor, error)
	GetPerformance(vendorID int64) (*domain.VendorPerformance, error)
	Create(vendor *domain.Vendor) (int64, error)
	Update(vendorID int64, vendor *domain.Vendor) (bool, error)
	Delete(vendorID int64) (bool, error)
}

type vendorRepository struct {
	conn *postgres.Connection
}

func NewVendorRepository(conn *postgres.Connection) VendorRepository {
	return &vendorRepository{
		conn: conn,
	}
}

// ListWithStats retorna os fornecedores com contagem de produtos, pedidos e
// total de vendas agregados
func (r *vendorRepository) ListWithStats() ([]*domain.VendorWithStats, error) {
	query, args, err := squirrel.
		Select(
			"v.vendor_id, v.name, v.contact_person, v.email, v.phone, v.address, v.rating, v.created_at, v.updated_at",
			"COUNT(DISTINCT p.product_id) AS product_count",
			"COUNT(DISTINCT o.order_id) AS order_count",
			"COALESCE(SUM(o.total_amount), 0) AS total_sales",
		).
		From(vendorsTable).
		LeftJoin("products p ON v.vendor_id = p.vendor_id").
		LeftJoin("orders o ON v.vendor_id = o.vendor_id").
		GroupBy("v.vendor_id").
		OrderBy("v.name").
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

	vendors := make([]*domain.VendorWithStats, 0)
	for rows.Next() {
		vendor := &domain.VendorWithStats{}
		err := rows.Scan(
			&vendor.ID,
			&vendor.Name,
			&vendor.ContactPerson,
			&vendor.Email,
			&vendor.Phone,
			&vendor.Address,
			&vendor.Rating,
			&vendor.CreatedAt,
			&vendor.UpdatedAt,
			&vendor.ProductCount,
			&vendor.OrderCount,
			&vendor.TotalSales,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fornecedor: %w", err)
		}
		vendors = append(vendors, vendor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return vendors, nil
}

func (r *vendorRepository) GetByID(vendorID int64) (*domain.Vendor, error) {
	query, args, err := squirrel.
		Select("v.vendor_id, v.name, v.contact_person, v.email, v.phone, v.address, v.rating, v.created_at, v.updated_at").
		From(vendorsTable).
		Where(squirrel.Eq{"v.vendor_id": vendorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	vendor := &domain.Vendor{}
	err = r.conn.QueryRow(query, args...).Scan(
		&vendor.ID,
		&vendor.Name,
		&vendor.ContactPerson,
		&vendor.Email,
		&vendor.Phone,
		&vendor.Address,
		&vendor.Rating,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear fornecedor: %w", err)
	}

	return vendor, nil
}

// GetPerformance calcula as métricas de desempenho de um fornecedor a partir
// dos pedidos associados
func (r *vendorRepository) GetPerformance(vendorID int64) (*domain.VendorPerformance, error) {
	query, args, err := squirrel.
		Select(
			"v.name",
			"COUNT(DISTINCT o.order_id) AS total_orders",
			"COALESCE(SUM(o.total_amount), 0) AS total_sales",
			"COALESCE(AVG(o.total_amount), 0) AS avg_order_value",
			"COUNT(DISTINCT CASE WHEN o.status = 'delivered' THEN o.order_id END) AS delivered_orders",
			`COALESCE(ROUND(COUNT(DISTINCT CASE WHEN o.status = 'delivered' THEN o.order_id END) * 100.0 /
				NULLIF(COUNT(DISTINCT o.order_id), 0), 2), 0) AS delivery_rate`,
		).
		From(vendorsTable).
		LeftJoin("orders o ON v.vendor_id = o.vendor_id").
		Where(squirrel.Eq{"v.vendor_id": vendorID}).
		GroupBy("v.vendor_id", "v.name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	performance := &domain.VendorPerformance{}
	err = r.conn.QueryRow(query, args...).Scan(
		&performance.Name,
		&performance.TotalOrders,
		&performance.TotalSales,
		&performance.AvgOrderValue,
		&performance.DeliveredOrders,
		&performance.DeliveryRate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear desempenho do fornecedor: %w", err)
	}

	return performance, nil
}

func (r *vendorRepository) Create(vendor *domain.Vendor) (int64, error) {
	query, args, err := squirrel.
		Insert("vendors").
		Columns("name", "contact_person", "email", "phone", "address", "rating").
		Values(vendor.Name, vendor.ContactPerson, vendor.Email, vendor.Phone, vendor.Address, vendor.Rating).
		Suffix("RETURNING vendor_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var vendorID int64
	if err := r.conn.QueryRow(query, args...).Scan(&vendorID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return vendorID, nil
}

func (r *vendorRepository) Update(vendorID int64, vendor *domain.Vendor) (bool, error) {
	query, args, err := squirrel.
		Update("vendors").
		Set("name", vendor.Name).
		Set("contact_person", vendor.ContactPerson).
		Set("email", vendor.Email).
		Set("phone", vendor.Phone).
		Set("address", vendor.Address).
		Set("rating", vendor.Rating).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"vendor_id": vendorID}).
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

func (r *vendorRepository) Delete(vendorID int64) (bool, error) {
	query, args, err := squirrel.
		Delete("vendors").
		Where(squirrel.Eq{"vendor_id": vendorID}).
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
