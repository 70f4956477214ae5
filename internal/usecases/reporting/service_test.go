package reporting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func float64Ptr(f float64) *float64 { return &f }

func TestExecutiveDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(mockRepo)

	lowStock := []*domain.LowStockAlert{
		{ProductID: 1, ProductName: "Parafuso M4", AlertLevel: "Critical"},
		{ProductID: 2, ProductName: "Porca M4", AlertLevel: "Low"},
	}
	vendors := []*domain.VendorPerformanceReport{
		{VendorID: 1, VendorName: "Fornecedor A", Rating: float64Ptr(4.0)},
		{VendorID: 2, VendorName: "Fornecedor B", Rating: float64Ptr(3.0)},
		{VendorID: 3, VendorName: "Fornecedor C", Rating: nil},
	}
	warehouses := []*domain.WarehouseUtilizationReport{
		{WarehouseID: 1, UtilizationPercentage: float64Ptr(95.0)},
		{WarehouseID: 2, UtilizationPercentage: float64Ptr(45.0)},
		{WarehouseID: 3, UtilizationPercentage: nil},
	}
	costs := []*domain.CostAnalysisReport{
		{ProductID: 1, TotalValue: 1000.555},
		{ProductID: 2, TotalValue: 2000},
	}

	mockRepo.EXPECT().GetLowStockAlerts().Return(lowStock, nil)
	mockRepo.EXPECT().GetVendorPerformance(6).Return(vendors, nil)
	mockRepo.EXPECT().GetWarehouseUtilization().Return(warehouses, nil)
	mockRepo.EXPECT().GetTopProducts(6, uint64(10)).Return([]*domain.TopProductReport{}, nil)
	mockRepo.EXPECT().GetInventoryTurnover(12).Return([]*domain.InventoryTurnoverReport{}, nil)
	mockRepo.EXPECT().GetCostAnalysis(6).Return(costs, nil)
	mockRepo.EXPECT().GetShipmentPerformance(6).Return([]*domain.ShipmentPerformanceReport{}, nil)

	dashboard, err := service.ExecutiveDashboard()
	require.NoError(t, err)
	require.NotNil(t, dashboard)
	require.NotNil(t, dashboard.SummaryMetrics)

	summary := dashboard.SummaryMetrics
	assert.Equal(t, 2, summary.LowStockCount)
	assert.Equal(t, 2, summary.TotalProducts)
	assert.InDelta(t, 3000.56, summary.TotalInventoryValue, 0.001)
	// Apenas armazéns com percentual conhecido entram na média
	assert.InDelta(t, 70.0, summary.AvgWarehouseUtilization, 0.001)
	assert.Equal(t, 1, summary.CriticalWarehouses)
	// Fornecedores sem avaliação ficam fora da média
	assert.InDelta(t, 3.5, summary.AvgVendorRating, 0.001)
}

func TestExecutiveDashboard_ErroNoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(mockRepo)

	repoErr := errors.New("connection refused")
	mockRepo.EXPECT().GetLowStockAlerts().Return(nil, repoErr)

	dashboard, err := service.ExecutiveDashboard()
	assert.Nil(t, dashboard)
	assert.ErrorIs(t, err, repoErr)
}

func TestReportes_JanelasPadrao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(mockRepo)

	// Janelas não informadas caem nos valores padrão de cada relatório
	mockRepo.EXPECT().GetVendorPerformance(12).Return([]*domain.VendorPerformanceReport{}, nil)
	mockRepo.EXPECT().GetDemandVsSupply(6).Return([]*domain.DemandSupplyReport{}, nil)
	mockRepo.EXPECT().GetSalesTrends(12).Return([]*domain.SalesTrendReport{}, nil)
	mockRepo.EXPECT().GetTopProducts(6, uint64(20)).Return([]*domain.TopProductReport{}, nil)
	mockRepo.EXPECT().GetInventoryTurnover(12).Return([]*domain.InventoryTurnoverReport{}, nil)
	mockRepo.EXPECT().GetCostAnalysis(6).Return([]*domain.CostAnalysisReport{}, nil)
	mockRepo.EXPECT().GetShipmentPerformance(6).Return([]*domain.ShipmentPerformanceReport{}, nil)

	_, err := service.VendorPerformance(0)
	assert.NoError(t, err)
	_, err = service.DemandVsSupply(0)
	assert.NoError(t, err)
	_, err = service.SalesTrends(0)
	assert.NoError(t, err)
	_, err = service.TopProducts(0, 0)
	assert.NoError(t, err)
	_, err = service.InventoryTurnover(0)
	assert.NoError(t, err)
	_, err = service.CostAnalysis(0)
	assert.NoError(t, err)
	_, err = service.ShipmentPerformance(0)
	assert.NoError(t, err)
}

func TestReportes_JanelaInformada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().GetSalesTrends(3).Return([]*domain.SalesTrendReport{
		{Month: "2024-01", Category: "Ferramentas", TotalQuantity: 42},
	}, nil)

	trends, err := service.SalesTrends(3)
	require.NoError(t, err)
	require.Len(t, trends, 1)
	assert.Equal(t, "2024-01", trends[0].Month)
}
