package reporting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-manager-api/infrastructure/repository"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"github.com/vfg2006/inventory-manager-api/pkg/utils"
)

// Janelas padrão dos relatórios, em meses
const (
	defaultVendorWindow    = 12
	defaultDemandWindow    = 6
	defaultTrendWindow     = 12
	defaultTopWindow       = 6
	defaultTurnoverWindow  = 12
	defaultCostWindow      = 6
	defaultShipmentWindow  = 6
	defaultTopLimit        = 20
	dashboardVendorWindow  = 6
	dashboardTopLimit      = 10
)

// Reporter expõe os relatórios analíticos e o painel executivo
type Reporter interface {
	LowStockAlerts() ([]*domain.LowStockAlert, error)
	VendorPerformance(months int) ([]*domain.VendorPerformanceReport, error)
	WarehouseUtilization() ([]*domain.WarehouseUtilizationReport, error)
	DemandVsSupply(months int) ([]*domain.DemandSupplyReport, error)
	SalesTrends(months int) ([]*domain.SalesTrendReport, error)
	TopProducts(months int, limit uint64) ([]*domain.TopProductReport, error)
	InventoryTurnover(months int) ([]*domain.InventoryTurnoverReport, error)
	CostAnalysis(months int) ([]*domain.CostAnalysisReport, error)
	ShipmentPerformance(months int) ([]*domain.ShipmentPerformanceReport, error)
	ExecutiveDashboard() (*domain.DashboardData, error)
}

type Service struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewService(analyticsRepo repository.AnalyticsRepository) Reporter {
	return &Service{
		analyticsRepo: analyticsRepo,
	}
}

func (s *Service) LowStockAlerts() ([]*domain.LowStockAlert, error) {
	return s.analyticsRepo.GetLowStockAlerts()
}

func (s *Service) VendorPerformance(months int) ([]*domain.VendorPerformanceReport, error) {
	if months <= 0 {
		months = defaultVendorWindow
	}
	return s.analyticsRepo.GetVendorPerformance(months)
}

func (s *Service) WarehouseUtilization() ([]*domain.WarehouseUtilizationReport, error) {
	return s.analyticsRepo.GetWarehouseUtilization()
}

func (s *Service) DemandVsSupply(months int) ([]*domain.DemandSupplyReport, error) {
	if months <= 0 {
		months = defaultDemandWindow
	}
	return s.analyticsRepo.GetDemandVsSupply(months)
}

func (s *Service) SalesTrends(months int) ([]*domain.SalesTrendReport, error) {
	if months <= 0 {
		months = defaultTrendWindow
	}
	return s.analyticsRepo.GetSalesTrends(months)
}

func (s *Service) TopProducts(months int, limit uint64) ([]*domain.TopProductReport, error) {
	if months <= 0 {
		months = defaultTopWindow
	}
	if limit == 0 {
		limit = defaultTopLimit
	}
	return s.analyticsRepo.GetTopProducts(months, limit)
}

func (s *Service) InventoryTurnover(months int) ([]*domain.InventoryTurnoverReport, error) {
	if months <= 0 {
		months = defaultTurnoverWindow
	}
	return s.analyticsRepo.GetInventoryTurnover(months)
}

func (s *Service) CostAnalysis(months int) ([]*domain.CostAnalysisReport, error) {
	if months <= 0 {
		months = defaultCostWindow
	}
	return s.analyticsRepo.GetCostAnalysis(months)
}

func (s *Service) ShipmentPerformance(months int) ([]*domain.ShipmentPerformanceReport, error) {
	if months <= 0 {
		months = defaultShipmentWindow
	}
	return s.analyticsRepo.GetShipmentPerformance(months)
}

// ExecutiveDashboard monta o painel executivo reunindo todos os relatórios
// e calculando as métricas de resumo
func (s *Service) ExecutiveDashboard() (*domain.DashboardData, error) {
	lowStock, err := s.analyticsRepo.GetLowStockAlerts()
	if err != nil {
		return nil, err
	}

	vendorPerformance, err := s.analyticsRepo.GetVendorPerformance(dashboardVendorWindow)
	if err != nil {
		return nil, err
	}

	warehouseUtilization, err := s.analyticsRepo.GetWarehouseUtilization()
	if err != nil {
		return nil, err
	}

	topProducts, err := s.analyticsRepo.GetTopProducts(defaultTopWindow, dashboardTopLimit)
	if err != nil {
		return nil, err
	}

	turnover, err := s.analyticsRepo.GetInventoryTurnover(defaultTurnoverWindow)
	if err != nil {
		return nil, err
	}

	costAnalysis, err := s.analyticsRepo.GetCostAnalysis(defaultCostWindow)
	if err != nil {
		return nil, err
	}

	shipmentPerformance, err := s.analyticsRepo.GetShipmentPerformance(defaultShipmentWindow)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.DashboardData{
		LowStockAlerts:       lowStock,
		VendorPerformance:    vendorPerformance,
		WarehouseUtilization: warehouseUtilization,
		TopProducts:          topProducts,
		InventoryTurnover:    turnover,
		CostAnalysis:         costAnalysis,
		ShipmentPerformance:  shipmentPerformance,
	}
	dashboard.SummaryMetrics = summarize(dashboard)

	logrus.WithFields(logrus.Fields{
		"low_stock_count": dashboard.SummaryMetrics.LowStockCount,
		"total_products":  dashboard.SummaryMetrics.TotalProducts,
	}).Info("Painel executivo gerado")

	return dashboard, nil
}

// summarize condensa os relatórios nas métricas-chave do painel
func summarize(dashboard *domain.DashboardData) *domain.DashboardSummary {
	summary := &domain.DashboardSummary{
		LowStockCount: len(dashboard.LowStockAlerts),
		TotalProducts: len(dashboard.CostAnalysis),
	}

	for _, item := range dashboard.CostAnalysis {
		summary.TotalInventoryValue += item.TotalValue
	}
	summary.TotalInventoryValue = utils.RoundWithTwoDecimalPlace(summary.TotalInventoryValue)

	var utilizationSum float64
	var utilizationCount int
	for _, warehouse := range dashboard.WarehouseUtilization {
		if warehouse.UtilizationPercentage == nil {
			continue
		}
		utilizationSum += *warehouse.UtilizationPercentage
		utilizationCount++
		if *warehouse.UtilizationPercentage > 90 {
			summary.CriticalWarehouses++
		}
	}
	if utilizationCount > 0 {
		summary.AvgWarehouseUtilization = utils.RoundWithTwoDecimalPlace(utilizationSum / float64(utilizationCount))
	}

	var ratingSum float64
	var ratingCount int
	for _, vendor := range dashboard.VendorPerformance {
		if vendor.Rating == nil {
			continue
		}
		ratingSum += *vendor.Rating
		ratingCount++
	}
	if ratingCount > 0 {
		summary.AvgVendorRating = utils.RoundWithTwoDecimalPlace(ratingSum / float64(ratingCount))
	}

	return summary
}
