package domain

import "time"

// LowStockAlert é uma linha do relatório de alertas de estoque baixo
type LowStockAlert struct {
	ProductID       int64    `json:"product_id"`
	ProductName     string   `json:"product_name"`
	Category        string   `json:"category"`
	SKU             string   `json:"sku"`
	ReorderPoint    int      `json:"reorder_point"`
	CurrentStock    int      `json:"current_stock"`
	WarehouseID     int64    `json:"warehouse_id"`
	WarehouseName   string   `json:"warehouse_name"`
	VendorName      *string  `json:"vendor_name,omitempty"`
	VendorEmail     *string  `json:"vendor_email,omitempty"`
	VendorPhone     *string  `json:"vendor_phone,omitempty"`
	AlertLevel      string   `json:"alert_level"`
	StockPercentage *float64 `json:"stock_percentage,omitempty"`
}

// VendorPerformanceReport é uma linha da análise de desempenho de fornecedores
type VendorPerformanceReport struct {
	VendorID         int64    `json:"vendor_id"`
	VendorName       string   `json:"vendor_name"`
	Rating           *float64 `json:"rating,omitempty"`
	TotalOrders      int      `json:"total_orders"`
	TotalSales       float64  `json:"total_sales"`
	AvgOrderValue    float64  `json:"avg_order_value"`
	DeliveredOrders  int      `json:"delivered_orders"`
	CancelledOrders  int      `json:"cancelled_orders"`
	DeliveryRate     *float64 `json:"delivery_rate,omitempty"`
	CancellationRate *float64 `json:"cancellation_rate,omitempty"`
	ProductCount     int      `json:"product_count"`
	AvgDeliveryDays  float64  `json:"avg_delivery_days"`
}

// WarehouseUtilizationReport é uma linha da análise de utilização de armazéns
type WarehouseUtilizationReport struct {
	WarehouseID           int64    `json:"warehouse_id"`
	WarehouseName         string   `json:"warehouse_name"`
	Location              string   `json:"location"`
	Capacity              int      `json:"capacity"`
	CurrentUtilization    int      `json:"current_utilization"`
	UtilizationPercentage *float64 `json:"utilization_percentage,omitempty"`
	UniqueProducts        int      `json:"unique_products"`
	TotalStock            int      `json:"total_stock"`
	AvgStockPerProduct    float64  `json:"avg_stock_per_product"`
	UtilizationStatus     string   `json:"utilization_status"`
}

// DemandSupplyReport é uma linha da análise de demanda versus oferta
type DemandSupplyReport struct {
	ProductID         int64   `json:"product_id"`
	ProductName       string  `json:"product_name"`
	Category          string  `json:"category"`
	TotalCurrentStock int     `json:"total_current_stock"`
	TotalReorderPoint int     `json:"total_reorder_point"`
	TotalDemand       float64 `json:"total_demand"`
	AvgMonthlyDemand  float64 `json:"avg_monthly_demand"`
	TotalSupply       float64 `json:"total_supply"`
	SupplyDemandRatio float64 `json:"supply_demand_ratio"`
	StockStatus       string  `json:"stock_status"`
}

// SalesTrendReport é uma linha da análise de tendência de vendas por categoria
type SalesTrendReport struct {
	Month              string  `json:"month"`
	Category           string  `json:"category"`
	ProductsSold       int     `json:"products_sold"`
	TotalQuantity      float64 `json:"total_quantity"`
	TotalRevenue       float64 `json:"total_revenue"`
	AvgQuantityPerSale float64 `json:"avg_quantity_per_sale"`
	AvgUnitPrice       float64 `json:"avg_unit_price"`
}

// TopProductReport é uma linha do ranking de produtos por receita
type TopProductReport struct {
	ProductID         int64   `json:"product_id"`
	ProductName       string  `json:"product_name"`
	Category          string  `json:"category"`
	SKU               string  `json:"sku"`
	TotalQuantitySold float64 `json:"total_quantity_sold"`
	TotalRevenue      float64 `json:"total_revenue"`
	AvgUnitPrice      float64 `json:"avg_unit_price"`
	DaysSold          int     `json:"days_sold"`
	AvgDailySales     float64 `json:"avg_daily_sales"`
	CurrentStock      int     `json:"current_stock"`
	ReorderPoint      int     `json:"reorder_point"`
}

// InventoryTurnoverReport é uma linha da análise de giro de estoque
type InventoryTurnoverReport struct {
	ProductID       int64   `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Category        string  `json:"category"`
	TotalSales      float64 `json:"total_sales"`
	AvgInventory    float64 `json:"avg_inventory"`
	TurnoverRate    float64 `json:"turnover_rate"`
	DaysInInventory float64 `json:"days_in_inventory"`
}

// CostAnalysisReport é uma linha da análise de custos e valorização
type CostAnalysisReport struct {
	ProductID           int64   `json:"product_id"`
	ProductName         string  `json:"product_name"`
	Category            string  `json:"category"`
	UnitPrice           float64 `json:"unit_price"`
	TotalStock          int     `json:"total_stock"`
	TotalValue          float64 `json:"total_value"`
	AvgSellingPrice     float64 `json:"avg_selling_price"`
	AvgProfitPerUnit    float64 `json:"avg_profit_per_unit"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
}

// ShipmentPerformanceReport é uma linha da análise de desempenho de remessas
type ShipmentPerformanceReport struct {
	ShipmentID        int64      `json:"shipment_id"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	WarehouseName     *string    `json:"warehouse_name,omitempty"`
	VendorName        *string    `json:"vendor_name,omitempty"`
	ShipmentDate      time.Time  `json:"shipment_date"`
	ExpectedDelivery  *time.Time `json:"expected_delivery,omitempty"`
	ActualDelivery    *time.Time `json:"actual_delivery,omitempty"`
	DeliveryDelayDays *float64   `json:"delivery_delay_days,omitempty"`
	ItemCount         int        `json:"item_count"`
	TotalValue        float64    `json:"total_value"`
	Carrier           *string    `json:"carrier,omitempty"`
}

// DashboardSummary resume as métricas-chave do painel executivo
type DashboardSummary struct {
	TotalInventoryValue     float64 `json:"total_inventory_value"`
	LowStockCount           int     `json:"low_stock_count"`
	AvgWarehouseUtilization float64 `json:"avg_warehouse_utilization"`
	TotalProducts           int     `json:"total_products"`
	CriticalWarehouses      int     `json:"critical_warehouses"`
	AvgVendorRating         float64 `json:"avg_vendor_rating"`
}

// DashboardData agrega todos os relatórios do painel executivo
type DashboardData struct {
	LowStockAlerts       []*LowStockAlert              `json:"low_stock_alerts"`
	VendorPerformance    []*VendorPerformanceReport    `json:"vendor_performance"`
	WarehouseUtilization []*WarehouseUtilizationReport `json:"warehouse_utilization"`
	TopProducts          []*TopProductReport           `json:"top_products"`
	InventoryTurnover    []*InventoryTurnoverReport    `json:"inventory_turnover"`
	CostAnalysis         []*CostAnalysisReport         `json:"cost_analysis"`
	ShipmentPerformance  []*ShipmentPerformanceReport  `json:"shipment_performance"`
	SummaryMetrics       *DashboardSummary             `json:"summary_metrics"`
}
