package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/inventory-manager-api/infrastructure/repository"
	"github.com/vfg2006/inventory-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/inventory-manager-api/internal/config"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	forecastmocks "github.com/vfg2006/inventory-manager-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

func TestForecastRefreshService_processPairs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockForecastRepo := mocks.NewMockForecastRepository(ctrl)
	mockForecaster := forecastmocks.NewMockForecaster(ctrl)

	service := &ForecastRefreshService{
		config:       config.ForecastRefresh{},
		forecastRepo: mockForecastRepo,
		forecaster:   mockForecaster,
	}

	pairs := []repository.ProductWarehousePair{
		{ProductID: 1, WarehouseID: 1},
		{ProductID: 2, WarehouseID: 1},
		{ProductID: 3, WarehouseID: 2},
	}

	records := []*domain.Forecast{{ProductID: 1, WarehouseID: 1, PredictedDemand: 10}}

	// Par 1 gera previsão, par 2 não tem dados, par 3 falha
	mockForecaster.EXPECT().
		GenerateForecast(int64(1), int64(1), 0, domain.ForecastMethodEnsemble).
		Return(records, "Forecast generated successfully", nil)
	mockForecaster.EXPECT().
		GenerateForecast(int64(2), int64(1), 0, domain.ForecastMethodEnsemble).
		Return(nil, "Insufficient data for forecasting", nil)
	mockForecaster.EXPECT().
		GenerateForecast(int64(3), int64(2), 0, domain.ForecastMethodEnsemble).
		Return(nil, "", errors.New("connection refused"))

	generated, skipped := service.processPairs(pairs)
	assert.Equal(t, 1, generated)
	assert.Equal(t, 2, skipped)
}

func TestForecastRefreshService_refreshAllForecasts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockForecastRepo := mocks.NewMockForecastRepository(ctrl)
	mockForecaster := forecastmocks.NewMockForecaster(ctrl)

	service := &ForecastRefreshService{
		config:       config.ForecastRefresh{},
		forecastRepo: mockForecastRepo,
		forecaster:   mockForecaster,
	}

	mockForecastRepo.EXPECT().ListActivePairs().Return([]repository.ProductWarehousePair{
		{ProductID: 1, WarehouseID: 1},
	}, nil)
	mockForecaster.EXPECT().
		GenerateForecast(int64(1), int64(1), 0, domain.ForecastMethodEnsemble).
		Return([]*domain.Forecast{{ProductID: 1}}, "Forecast generated successfully", nil)

	service.refreshAllForecasts()

	assert.False(t, service.refreshRunning)
	assert.False(t, service.lastRunCompletedAt.IsZero())
}

func TestForecastRefreshService_refreshAllForecasts_ErroAoListar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockForecastRepo := mocks.NewMockForecastRepository(ctrl)
	mockForecaster := forecastmocks.NewMockForecaster(ctrl)

	service := &ForecastRefreshService{
		forecastRepo: mockForecastRepo,
		forecaster:   mockForecaster,
	}

	mockForecastRepo.EXPECT().ListActivePairs().Return(nil, errors.New("connection refused"))

	// O erro é apenas registrado; nenhuma previsão é gerada
	service.refreshAllForecasts()
	assert.False(t, service.refreshRunning)
}

func TestForecastRetentionService_cleanupOldForecasts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockForecastRepo := mocks.NewMockForecastRepository(ctrl)

	fixedNow := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	service := &ForecastRetentionService{
		config:       config.ForecastRetention{RetentionDays: 365},
		forecastRepo: mockForecastRepo,
		now:          func() time.Time { return fixedNow },
	}

	expectedCutoff := fixedNow.AddDate(0, 0, -365)
	mockForecastRepo.EXPECT().DeleteOlderThan(expectedCutoff).Return(int64(42), nil)

	service.cleanupOldForecasts()
	assert.False(t, service.cleanupRunning)
}

func TestForecastRetentionService_cleanupOldForecasts_Erro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockForecastRepo := mocks.NewMockForecastRepository(ctrl)

	service := &ForecastRetentionService{
		config:       config.ForecastRetention{RetentionDays: 30},
		forecastRepo: mockForecastRepo,
		now:          time.Now,
	}

	mockForecastRepo.EXPECT().DeleteOlderThan(gomock.Any()).Return(int64(0), errors.New("connection refused"))

	service.cleanupOldForecasts()
	assert.False(t, service.cleanupRunning)
}
