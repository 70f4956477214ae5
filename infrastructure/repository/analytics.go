package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/inventory-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
)

type AnalyticsRepository interface {
	GetLowStockAlerts() ([]*domain.LowStockAlert, error)
	GetVendorPerformance(months int) ([]*domain.VendorPerformanceReport, error)
	GetWarehouseUtilization() ([]*domain.WarehouseUtilizationReport, error)
	GetDemandVsSupply(months int) ([]*domain.DemandSupplyReport, error)
	GetSalesTrends(months int) ([]*domain.SalesTrendReport, error)
	GetTopProducts(months int, limit uint64) ([]*domain.TopProductReport, error)
	GetInventoryTurnover(months int) ([]*domain.InventoryTurnoverReport, error)
	GetCostAnalysis(months int) ([]*domain.CostAnalysisReport, error)
	GetShipmentPerformance(months int) ([]*domain.ShipmentPerformanceReport, error)
}

type analyticsRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsRepository(conn *postgres.Connection) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

// GetLowStockAlerts retorna as posições de estoque abaixo do ponto de
// ressuprimento, das mais críticas para as menos críticas
func (r *analyticsRepository) GetLowStockAlerts() ([]*domain.LowStockAlert, error) {
	query, args, err := squirrel.
		Select(
			"p.product_id",
			"p.name AS product_name",
			"p.category",
			"p.sku",
			"p.reorder_point",
			"sl.current_stock",
			"sl.warehouse_id",
			"w.name AS warehouse_name",
			"v.name AS vendor_name",
			"v.email AS vendor_email",
			"v.phone AS vendor_phone",
			`CASE
				WHEN sl.current_stock = 0 THEN 'Out of Stock'
				WHEN sl.current_stock <= p.reorder_point * 0.5 THEN 'Critical'
				WHEN sl.current_stock <= p.reorder_point THEN 'Low'
				ELSE 'Normal'
			END AS alert_level`,
			"ROUND((sl.current_stock::NUMERIC / NULLIF(p.reorder_point, 0)) * 100, 2) AS stock_percentage",
		).
		From("products p").
		Join("stock_levels sl ON p.product_id = sl.product_id").
		Join("warehouses w ON sl.warehouse_id = w.warehouse_id").
		LeftJoin("vendors v ON p.vendor_id = v.vendor_id").
		Where(squirrel.Expr("sl.current_stock <= p.reorder_point")).
		OrderBy("(sl.current_stock - p.reorder_point) ASC", "p.name").
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

	alerts := make([]*domain.LowStockAlert, 0)
	for rows.Next() {
		alert := &domain.LowStockAlert{}
		err := rows.Scan(
			&alert.ProductID,
			&alert.ProductName,
			&alert.Category,
			&alert.SKU,
			&alert.ReorderPoint,
			&alert.CurrentStock,
			&alert.WarehouseID,
			&alert.WarehouseName,
			&alert.VendorName,
			&alert.VendorEmail,
			&alert.VendorPhone,
			&alert.AlertLevel,
			&alert.StockPercentage,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear alerta de estoque: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return alerts, nil
}

func (r *analyticsRepository) GetVendorPerformance(months int) ([]*domain.VendorPerformanceReport, error) {
	query, args, err := squirrel.
		Select(
			"v.vendor_id",
			"v.name AS vendor_name",
			"v.rating",
			"COUNT(DISTINCT o.order_id) AS total_orders",
			"COALESCE(SUM(o.total_amount), 0) AS total_sales",
			"COALESCE(AVG(o.total_amount), 0) AS avg_order_value",
			"COUNT(DISTINCT CASE WHEN o.status = 'delivered' THEN o.order_id END) AS delivered_orders",
			"COUNT(DISTINCT CASE WHEN o.status = 'cancelled' THEN o.order_id END) AS cancelled_orders",
			`ROUND(COUNT(DISTINCT CASE WHEN o.status = 'delivered' THEN o.order_id END) * 100.0 /
				NULLIF(COUNT(DISTINCT o.order_id), 0), 2) AS delivery_rate`,
			`ROUND(COUNT(DISTINCT CASE WHEN o.status = 'cancelled' THEN o.order_id END) * 100.0 /
				NULLIF(COUNT(DISTINCT o.order_id), 0), 2) AS cancellation_rate`,
			"COUNT(DISTINCT p.product_id) AS product_count",
			"COALESCE(AVG(EXTRACT(EPOCH FROM (o.actual_delivery - o.order_date)) / 86400.0), 0) AS avg_delivery_days",
		).
		From("vendors v").
		LeftJoin("orders o ON v.vendor_id = o.vendor_id AND o.order_date >= CURRENT_DATE - make_interval(months => ?)", months).
		LeftJoin("products p ON v.vendor_id = p.vendor_id").
		GroupBy("v.vendor_id", "v.name", "v.rating").
		OrderBy("total_sales DESC").
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

	reports := make([]*domain.VendorPerformanceReport, 0)
	for rows.Next() {
		report := &domain.VendorPerformanceReport{}
		err := rows.Scan(
			&report.VendorID,
			&report.VendorName,
			&report.Rating,
			&report.TotalOrders,
			&report.TotalSales,
			&report.AvgOrderValue,
			&report.DeliveredOrders,
			&report.CancelledOrders,
			&report.DeliveryRate,
			&report.CancellationRate,
			&report.ProductCount,
			&report.AvgDeliveryDays,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear desempenho do fornecedor: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *analyticsRepository) GetWarehouseUtilization() ([]*domain.WarehouseUtilizationReport, error) {
	query, args, err := squirrel.
		Select(
			"w.warehouse_id",
			"w.name AS warehouse_name",
			"w.location",
			"w.capacity",
			"w.current_utilization",
			"ROUND((w.current_utilization::NUMERIC / NULLIF(w.capacity, 0)) * 100, 2) AS utilization_percentage",
			"COUNT(DISTINCT sl.product_id) AS unique_products",
			"COALESCE(SUM(sl.current_stock), 0) AS total_stock",
			"COALESCE(AVG(sl.current_stock), 0) AS avg_stock_per_product",
			`CASE
				WHEN (w.current_utilization::NUMERIC / NULLIF(w.capacity, 0)) > 0.9 THEN 'Critical'
				WHEN (w.current_utilization::NUMERIC / NULLIF(w.capacity, 0)) > 0.8 THEN 'High'
				WHEN (w.current_utilization::NUMERIC / NULLIF(w.capacity, 0)) > 0.6 THEN 'Medium'
				ELSE 'Low'
			END AS utilization_status`,
		).
		From("warehouses w").
		LeftJoin("stock_levels sl ON w.warehouse_id = sl.warehouse_id").
		GroupBy("w.warehouse_id", "w.name", "w.location", "w.capacity", "w.current_utilization").
		OrderBy("utilization_percentage DESC").
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

	reports := make([]*domain.WarehouseUtilizationReport, 0)
	for rows.Next() {
		report := &domain.WarehouseUtilizationReport{}
		err := rows.Scan(
			&report.WarehouseID,
			&report.WarehouseName,
			&report.Location,
			&report.Capacity,
			&report.CurrentUtilization,
			&report.UtilizationPercentage,
			&report.UniqueProducts,
			&report.TotalStock,
			&report.AvgStockPerProduct,
			&report.UtilizationStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear utilização do armazém: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *analyticsRepository) GetDemandVsSupply(months int) ([]*domain.DemandSupplyReport, error) {
	query, args, err := squirrel.
		Select(
			"p.product_id",
			"p.name AS product_name",
			"p.category",
			"COALESCE(SUM(sl.current_stock), 0) AS total_current_stock",
			"COALESCE(SUM(p.reorder_point), 0) AS total_reorder_point",
			"COALESCE(SUM(sh.quantity_sold), 0) AS total_demand",
			"COALESCE(AVG(sh.quantity_sold), 0) AS avg_monthly_demand",
			"COALESCE(SUM(si.quantity), 0) AS total_supply",
			`CASE
				WHEN COALESCE(SUM(sh.quantity_sold), 0) = 0 THEN 0
				ELSE ROUND((COALESCE(SUM(si.quantity), 0)::NUMERIC / SUM(sh.quantity_sold)) * 100, 2)
			END AS supply_demand_ratio`,
			`CASE
				WHEN COALESCE(SUM(sl.current_stock), 0) = 0 THEN 'Out of Stock'
				WHEN COALESCE(SUM(sl.current_stock), 0) < COALESCE(AVG(sh.quantity_sold), 0) THEN 'Understocked'
				WHEN COALESCE(SUM(sl.current_stock), 0) > COALESCE(AVG(sh.quantity_sold), 0) * 2 THEN 'Overstocked'
				ELSE 'Balanced'
			END AS stock_status`,
		).
		From("products p").
		LeftJoin("stock_levels sl ON p.product_id = sl.product_id").
		LeftJoin("sales_history sh ON p.product_id = sh.product_id AND sh.sale_date >= CURRENT_DATE - make_interval(months => ?)", months).
		LeftJoin("shipment_items si ON p.product_id = si.product_id").
		LeftJoin("shipments s ON si.shipment_id = s.shipment_id AND s.type = 'inbound' AND s.shipment_date >= CURRENT_DATE - make_interval(months => ?)", months).
		GroupBy("p.product_id", "p.name", "p.category").
		Having("COALESCE(SUM(sl.current_stock), 0) > 0 OR COALESCE(SUM(sh.quantity_sold), 0) > 0").
		OrderBy("total_demand DESC").
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

	reports := make([]*domain.DemandSupplyReport, 0)
	for rows.Next() {
		report := &domain.DemandSupplyReport{}
		err := rows.Scan(
			&report.ProductID,
			&report.ProductName,
			&report.Category,
			&report.TotalCurrentStock,
			&report.TotalReorderPoint,
			&report.TotalDemand,
			&report.AvgMonthlyDemand,
			&report.TotalSupply,
			&report.SupplyDemandRatio,
			&report.StockStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear demanda versus oferta: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *analyticsRepository) GetSalesTrends(months int) ([]*domain.SalesTrendReport, error) {
	query, args, err := squirrel.
		Select(
			"TO_CHAR(sh.sale_date, 'YYYY-MM') AS month",
			"p.category",
			"COUNT(DISTINCT sh.product_id) AS products_sold",
			"SUM(sh.quantity_sold) AS total_quantity",
			"SUM(sh.total_revenue) AS total_revenue",
			"AVG(sh.quantity_sold) AS avg_quantity_per_sale",
			"AVG(sh.unit_price) AS avg_unit_price",
		).
		From("sales_history sh").
		Join("products p ON sh.product_id = p.product_id").
		Where(squirrel.Expr("sh.sale_date >= CURRENT_DATE - make_interval(months => ?)", months)).
		GroupBy("TO_CHAR(sh.sale_date, 'YYYY-MM')", "p.category").
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

	reports := make([]*domain.SalesTrendReport, 0)
	for rows.Next() {
		report := &domain.SalesTrendReport{}
		err := rows.Scan(
			&report.Month,
			&report.Category,
			&report.ProductsSold,
			&report.TotalQuantity,
			&report.TotalRevenue,
			&report.AvgQuantityPerSale,
			&report.AvgUnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear tendência de vendas: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *analyticsRepository) GetTopProducts(months int, limit uint64) ([]*domain.TopProductReport, error) {
	query, args, err := squirrel.
		Select(
			"p.product_id",
			"p.name AS product_name",
			"p.category",
			"p.sku",
			"COALESCE(SUM(sh.quantity_sold), 0) AS total_quantity_sold",
			"COALESCE(SUM(sh.total_revenue), 0) AS total_revenue",
			"COALESCE(AVG(sh.unit_price), 0) AS avg_unit_price",
			"COUNT(DISTINCT sh.sale_date) AS days_sold",
			"COALESCE(ROUND(SUM(sh.quantity_sold) / NULLIF(COUNT(DISTINCT sh.sale_date), 0), 2), 0) AS avg_daily_sales",
			"COALESCE(SUM(sl.current_stock), 0) AS current_stock",
			"p.reorder_point",
		).
		From("products p").
		LeftJoin("sales_history sh ON p.product_id = sh.product_id AND sh.sale_date >= CURRENT_DATE - make_interval(months => ?)", months).
		LeftJoin("stock_levels sl ON p.product_id = sl.product_id").
		GroupBy("p.product_id", "p.name", "p.category", "p.sku", "p.reorder_point").
		Having("COALESCE(SUM(sh.quantity_sold), 0) > 0").
		OrderBy("total_revenue DESC").
		Limit(limit).
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

	reports := make([]*domain.TopProductReport, 0)
	for rows.Next() {
		report := &domain.TopProductReport{}
		err := rows.Scan(
			&report.ProductID,
			&report.ProductName,
			&report.Category,
			&report.SKU,
			&report.TotalQuantitySold,
			&report.TotalRevenue,
			&report.AvgUnitPrice,
			&report.DaysSold,
			&report.AvgDailySales,
			&report.CurrentStock,
			&report.ReorderPoint,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ranking de produtos: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *analyticsRepository) GetInventoryTurnover(months int) ([]*domain.InventoryTurnoverReport, error) {
	query, args, err := squirrel.
		Select(
			"p.product_id",
			"p.name AS product_name",
			"p.category",
			"COALESCE(SUM(sh.quantity_sold), 0) AS total_sales",
			"COALESCE(AVG(sl.current_stock), 0) AS avg_inventory",
			`CASE
				WHEN COALESCE(AVG(sl.current_stock), 0) = 0 THEN 0
				ELSE ROUND(COALESCE(SUM(sh.quantity_sold), 0)::NUMERIC / AVG(sl.current_stock), 2)
			END AS turnover_rate`,
			`CASE
				WHEN COALESCE(SUM(sh.quantity_sold), 0) = 0 OR COALESCE(AVG(sl.current_stock), 0) = 0 THEN 0
				ELSE ROUND(365 / (COALESCE(SUM(sh.quantity_sold), 0)::NUMERIC / AVG(sl.current_stock)), 0)
			END AS days_in_inventory`,
		).
		From("products p").
		LeftJoin("sales_history sh ON p.product_id = sh.product_id AND sh.sale_date >= CURRENT_DATE - make_interval(months => ?)", months).
		LeftJoin("stock_levels sl ON p.product_id = sl.product_id").
		GroupBy("p.product_id", "p.name", "p.category").
		Having("COALESCE(SUM(sh.quantity_sold), 0) > 0").
		OrderBy("turnover_rate DESC").
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

	reports := make([]*domain.InventoryTurnoverReport, 0)
	for rows.Next() {
		report := &domain.InventoryTurnoverReport{}
		err := rows.Scan(
			&report.ProductID,
			&report.ProductName,
			&report.Category,
			&report.TotalSales,
			&report.AvgInventory,
			&report.TurnoverRate,
			&report.DaysInInventory,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear giro de estoque: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *analyticsRepository) GetCostAnalysis(months int) ([]*domain.CostAnalysisReport, error) {
	query, args, err := squirrel.
		Select(
			"p.product_id",
			"p.name AS product_name",
			"p.category",
			"p.unit_price",
			"COALESCE(SUM(sl.current_stock), 0) AS total_stock",
			"COALESCE(SUM(sl.current_stock * p.unit_price), 0) AS total_value",
			"COALESCE(AVG(sh.unit_price), 0) AS avg_selling_price",
			"COALESCE(AVG(sh.unit_price) - p.unit_price, 0) AS avg_profit_per_unit",
			"COALESCE((AVG(sh.unit_price) - p.unit_price) / NULLIF(p.unit_price, 0) * 100, 0) AS profit_margin_percent",
		).
		From("products p").
		LeftJoin("stock_levels sl ON p.product_id = sl.product_id").
		LeftJoin("sales_history sh ON p.product_id = sh.product_id AND sh.sale_date >= CURRENT_DATE - make_interval(months => ?)", months).
		GroupBy("p.product_id", "p.name", "p.category", "p.unit_price").
		Having("COALESCE(SUM(sl.current_stock), 0) > 0").
		OrderBy("total_value DESC").
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

	reports := make([]*domain.CostAnalysisReport, 0)
	for rows.Next() {
		report := &domain.CostAnalysisReport{}
		err := rows.Scan(
			&report.ProductID,
			&report.ProductName,
			&report.Category,
			&report.UnitPrice,
			&report.TotalStock,
			&report.TotalValue,
			&report.AvgSellingPrice,
			&report.AvgProfitPerUnit,
			&report.ProfitMarginPercent,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear análise de custos: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *analyticsRepository) GetShipmentPerformance(months int) ([]*domain.ShipmentPerformanceReport, error) {
	query, args, err := squirrel.
		Select(
			"s.shipment_id",
			"s.type",
			"s.status",
			"w.name AS warehouse_name",
			"v.name AS vendor_name",
			"s.shipment_date",
			"s.expected_delivery",
			"s.actual_delivery",
			`CASE
				WHEN s.actual_delivery IS NOT NULL AND s.expected_delivery IS NOT NULL THEN
					ROUND(EXTRACT(EPOCH FROM (s.actual_delivery - s.expected_delivery)) / 86400.0)
				ELSE NULL
			END AS delivery_delay_days`,
			"COUNT(si.item_id) AS item_count",
			"COALESCE(SUM(si.total_price), 0) AS total_value",
			"s.carrier",
		).
		From("shipments s").
		LeftJoin("warehouses w ON s.warehouse_id = w.warehouse_id").
		LeftJoin("vendors v ON s.vendor_id = v.vendor_id").
		LeftJoin("shipment_items si ON s.shipment_id = si.shipment_id").
		Where(squirrel.Expr("s.shipment_date >= CURRENT_DATE - make_interval(months => ?)", months)).
		GroupBy("s.shipment_id", "s.type", "s.status", "w.name", "v.name", "s.shipment_date", "s.expected_delivery", "s.actual_delivery", "s.carrier").
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

	reports := make([]*domain.ShipmentPerformanceReport, 0)
	for rows.Next() {
		report := &domain.ShipmentPerformanceReport{}
		err := rows.Scan(
			&report.ShipmentID,
			&report.Type,
			&report.Status,
			&report.WarehouseName,
			&report.VendorName,
			&report.ShipmentDate,
			&report.ExpectedDelivery,
			&report.ActualDelivery,
			&report.DeliveryDelayDays,
			&report.ItemCount,
			&report.TotalValue,
			&report.Carrier,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear desempenho de remessas: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}
