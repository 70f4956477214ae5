package handler

import (
	"net/http"

	"github.com/vfg2006/inventory-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-manager-api/infrastructure/repository"
	"github.com/vfg2006/inventory-manager-api/internal/api/handler/router"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/forecasting"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/inventorying"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/ordering"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/reporting"
)

func Healthcheck(conn postgres.Conn) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn),
		},
	}
}

func Vendors(service inventorying.Inventorier) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/vendors",
			Method:  http.MethodGet,
			Handler: ListVendors(service),
		},
		{
			Path:    "/v1/vendors",
			Method:  http.MethodPost,
			Handler: CreateVendor(service),
		},
		{
			Path:    "/v1/vendors/:id",
			Method:  http.MethodGet,
			Handler: GetVendor(service),
		},
		{
			Path:    "/v1/vendors/:id",
			Method:  http.MethodPut,
			Handler: UpdateVendor(service),
		},
		{
			Path:    "/v1/vendors/:id",
			Method:  http.MethodDelete,
			Handler: DeleteVendor(service),
		},
		{
			Path:    "/v1/vendors/:id/performance",
			Method:  http.MethodGet,
			Handler: GetVendorPerformance(service),
		},
	}
}

func Warehouses(service inventorying.Inventorier) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/warehouses",
			Method:  http.MethodGet,
			Handler: ListWarehouses(service),
		},
		{
			Path:    "/v1/warehouses",
			Method:  http.MethodPost,
			Handler: CreateWarehouse(service),
		},
		{
			Path:    "/v1/warehouses/:id",
			Method:  http.MethodGet,
			Handler: GetWarehouse(service),
		},
		{
			Path:    "/v1/warehouses/:id",
			Method:  http.MethodPut,
			Handler: UpdateWarehouse(service),
		},
		{
			Path:    "/v1/warehouses/:id",
			Method:  http.MethodDelete,
			Handler: DeleteWarehouse(service),
		},
	}
}

func Products(service inventorying.Inventorier) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodGet,
			Handler: GetProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(service),
		},
		{
			Path:    "/v1/products/:id/stock",
			Method:  http.MethodPost,
			Handler: UpdateProductStock(service),
		},
	}
}

func Shipments(service ordering.Orderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/shipments",
			Method:  http.MethodGet,
			Handler: ListShipments(service),
		},
		{
			Path:    "/v1/shipments",
			Method:  http.MethodPost,
			Handler: CreateShipment(service),
		},
		{
			Path:    "/v1/shipments/:id",
			Method:  http.MethodGet,
			Handler: GetShipment(service),
		},
		{
			Path:    "/v1/shipments/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateShipmentStatus(service),
		},
	}
}

func Orders(service ordering.Orderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/orders",
			Method:  http.MethodGet,
			Handler: ListOrders(service),
		},
		{
			Path:    "/v1/orders",
			Method:  http.MethodPost,
			Handler: CreateOrder(service),
		},
		{
			Path:    "/v1/orders/:id",
			Method:  http.MethodGet,
			Handler: GetOrder(service),
		},
		{
			Path:    "/v1/orders/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateOrderStatus(service),
		},
	}
}

func Forecast(service forecasting.Forecaster, repo repository.ForecastRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/forecast/generate",
			Method:  http.MethodPost,
			Handler: GenerateForecast(service),
		},
		{
			Path:    "/v1/forecast/evaluate",
			Method:  http.MethodPost,
			Handler: EvaluateForecast(service),
		},
		{
			Path:    "/v1/forecast/history",
			Method:  http.MethodGet,
			Handler: ForecastHistory(repo),
		},
	}
}

func Analytics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/dashboard",
			Method:  http.MethodGet,
			Handler: ExecutiveDashboard(service),
		},
		{
			Path:    "/v1/analytics/low-stock",
			Method:  http.MethodGet,
			Handler: LowStockAlerts(service),
		},
		{
			Path:    "/v1/analytics/vendor-performance",
			Method:  http.MethodGet,
			Handler: VendorPerformanceReport(service),
		},
		{
			Path:    "/v1/analytics/warehouse-utilization",
			Method:  http.MethodGet,
			Handler: WarehouseUtilizationReport(service),
		},
		{
			Path:    "/v1/analytics/demand-supply",
			Method:  http.MethodGet,
			Handler: DemandSupplyReport(service),
		},
		{
			Path:    "/v1/analytics/sales-trends",
			Method:  http.MethodGet,
			Handler: SalesTrendsReport(service),
		},
		{
			Path:    "/v1/analytics/top-products",
			Method:  http.MethodGet,
			Handler: TopProductsReport(service),
		},
		{
			Path:    "/v1/analytics/inventory-turnover",
			Method:  http.MethodGet,
			Handler: InventoryTurnoverReport(service),
		},
		{
			Path:    "/v1/analytics/cost-analysis",
			Method:  http.MethodGet,
			Handler: CostAnalysisReport(service),
		},
		{
			Path:    "/v1/analytics/shipment-performance",
			Method:  http.MethodGet,
			Handler: ShipmentPerformanceReport(service),
		},
	}
}
