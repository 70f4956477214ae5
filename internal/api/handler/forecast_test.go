package handler

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

type evaluateResponse struct {
	Success bool                    `json:"success"`
	Data    *domain.AccuracyMetrics `json:"data"`
	Message string                  `json:"message"`
}

func evaluateRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/v1/forecast/evaluate", strings.NewReader(body))
}

func TestEvaluateForecast(t *testing.T) {
	t.Run("retorna métricas finitas inalteradas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		forecaster := mocks.NewMockForecaster(ctrl)

		forecaster.EXPECT().
			EvaluateForecastAccuracy(int64(1), int64(2), domain.ForecastMethodEnsemble).
			Return(&domain.AccuracyMetrics{
				MAE:           4.5,
				MSE:           30.25,
				RMSE:          5.5,
				MAPE:          12.5,
				AccuracyScore: 87.5,
			}, "Evaluation completed", nil)

		rec := httptest.NewRecorder()
		EvaluateForecast(forecaster)(rec, evaluateRequest(`{"product_id":1,"warehouse_id":2}`))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp evaluateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Data)
		assert.Equal(t, 12.5, resp.Data.MAPE)
		assert.Equal(t, 87.5, resp.Data.AccuracyScore)
		assert.Equal(t, "Evaluation completed", resp.Message)
	})

	t.Run("mantém o corpo JSON válido com MAPE infinito", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		forecaster := mocks.NewMockForecaster(ctrl)

		// Um mês de teste sem vendas leva o MAPE ao infinito no motor
		forecaster.EXPECT().
			EvaluateForecastAccuracy(int64(1), int64(2), domain.ForecastMethodMovingAverage).
			Return(&domain.AccuracyMetrics{
				MAE:           10,
				MSE:           100,
				RMSE:          10,
				MAPE:          math.Inf(1),
				AccuracyScore: 0,
			}, "Evaluation completed", nil)

		rec := httptest.NewRecorder()
		EvaluateForecast(forecaster)(rec, evaluateRequest(`{"product_id":1,"warehouse_id":2,"method":"moving_average"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotEmpty(t, rec.Body.Bytes())

		var resp evaluateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Data)
		assert.Equal(t, maxReportableMAPE, resp.Data.MAPE)
		assert.Equal(t, 0.0, resp.Data.AccuracyScore)
		assert.Equal(t, "Evaluation completed", resp.Message)
	})

	t.Run("retorna 400 sem dados suficientes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		forecaster := mocks.NewMockForecaster(ctrl)

		forecaster.EXPECT().
			EvaluateForecastAccuracy(int64(1), int64(2), domain.ForecastMethodEnsemble).
			Return(nil, "Insufficient data for evaluation", nil)

		rec := httptest.NewRecorder()
		EvaluateForecast(forecaster)(rec, evaluateRequest(`{"product_id":1,"warehouse_id":2}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Success bool   `json:"success"`
			Code    string `json:"code"`
			Error   string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "RES_002", resp.Code)
		assert.Equal(t, "Insufficient data for evaluation", resp.Error)
	})

	t.Run("rejeita requisição sem identificadores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		forecaster := mocks.NewMockForecaster(ctrl)

		rec := httptest.NewRecorder()
		EvaluateForecast(forecaster)(rec, evaluateRequest(`{"product_id":1}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSanitizeAccuracyMetrics(t *testing.T) {
	tests := []struct {
		name     string
		mape     float64
		expected float64
	}{
		{"MAPE finito permanece", 42.75, 42.75},
		{"MAPE infinito positivo vira o teto", math.Inf(1), maxReportableMAPE},
		{"MAPE infinito negativo vira o teto", math.Inf(-1), maxReportableMAPE},
		{"MAPE NaN vira o teto", math.NaN(), maxReportableMAPE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := &domain.AccuracyMetrics{MAPE: tt.mape}
			sanitizeAccuracyMetrics(metrics)
			assert.Equal(t, tt.expected, metrics.MAPE)
		})
	}
}
