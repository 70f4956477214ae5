package forecasting

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestEngine(t *testing.T) (*Engine, *mocks.MockSalesHistoryStore, *mocks.MockForecastStore) {
	ctrl := gomock.NewController(t)
	history := mocks.NewMockSalesHistoryStore(ctrl)
	forecasts := mocks.NewMockForecastStore(ctrl)

	engine := testEngine()
	engine.history = history
	engine.forecasts = forecasts
	engine.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}

	return engine, history, forecasts
}

func monthlySeries(quantities ...float64) []domain.MonthlySales {
	series := make([]domain.MonthlySales, len(quantities))
	base := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, q := range quantities {
		series[i] = domain.MonthlySales{
			Month:         base.AddDate(0, i, 0).Format("2006-01"),
			TotalQuantity: q,
		}
	}
	return series
}

func constantSeries(n int, value float64) []domain.MonthlySales {
	quantities := make([]float64, n)
	for i := range quantities {
		quantities[i] = value
	}
	return monthlySeries(quantities...)
}

func TestGenerateForecast(t *testing.T) {
	t.Run("sem histórico de vendas", func(t *testing.T) {
		engine, history, _ := newTestEngine(t)

		history.EXPECT().
			GetSalesHistory(int64(1), int64(2), 24).
			Return([]domain.MonthlySales{}, nil)

		records, message, err := engine.GenerateForecast(1, 2, 12, domain.ForecastMethodEnsemble)
		assert.NoError(t, err)
		assert.Nil(t, records)
		assert.Equal(t, MsgNoSalesHistory, message)
	})

	t.Run("histórico menor que três observações", func(t *testing.T) {
		engine, history, _ := newTestEngine(t)

		history.EXPECT().
			GetSalesHistory(int64(1), int64(2), 24).
			Return(monthlySeries(10, 12), nil)

		records, message, err := engine.GenerateForecast(1, 2, 12, domain.ForecastMethodEnsemble)
		assert.NoError(t, err)
		assert.Nil(t, records)
		assert.Equal(t, MsgInsufficientData, message)
	})

	t.Run("método não aplicável ao tamanho da série", func(t *testing.T) {
		engine, history, _ := newTestEngine(t)

		// Sazonal exige dois ciclos completos; 6 meses não bastam
		history.EXPECT().
			GetSalesHistory(int64(1), int64(2), 24).
			Return(constantSeries(6, 10), nil)

		records, message, err := engine.GenerateForecast(1, 2, 12, domain.ForecastMethodSeasonal)
		assert.NoError(t, err)
		assert.Nil(t, records)
		assert.Equal(t, MsgForecastingFailed, message)
	})

	t.Run("erro do repositório de histórico propaga para a rota", func(t *testing.T) {
		engine, history, _ := newTestEngine(t)

		dbErr := errors.New("connection refused")
		history.EXPECT().
			GetSalesHistory(int64(1), int64(2), 24).
			Return(nil, dbErr)

		records, message, err := engine.GenerateForecast(1, 2, 12, domain.ForecastMethodEnsemble)
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, records)
		assert.Contains(t, message, "Error generating forecast")
	})

	t.Run("gera e persiste um registro por passo do horizonte", func(t *testing.T) {
		engine, history, forecasts := newTestEngine(t)

		history.EXPECT().
			GetSalesHistory(int64(7), int64(3), 24).
			Return(constantSeries(24, 40), nil)

		saved := make([]*domain.Forecast, 0, 6)
		forecasts.EXPECT().
			SaveForecast(gomock.Any()).
			DoAndReturn(func(f *domain.Forecast) error {
				saved = append(saved, f)
				return nil
			}).
			Times(6)

		records, message, err := engine.GenerateForecast(7, 3, 6, domain.ForecastMethodMovingAverage)
		require.NoError(t, err)
		require.Len(t, records, 6)
		assert.Equal(t, MsgForecastGenerated, message)
		assert.Equal(t, records, saved)

		monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		for i, record := range records {
			assert.Equal(t, int64(7), record.ProductID)
			assert.Equal(t, int64(3), record.WarehouseID)
			assert.Equal(t, domain.ForecastMethodMovingAverage, record.Method)
			assert.Equal(t, 40, record.PredictedDemand)
			assert.Equal(t, 100.0, record.ConfidenceLevel)

			// Mês sintético: início avança 30 dias por passo e cada
			// período cobre exatamente 30 dias
			assert.Equal(t, monthStart.AddDate(0, 0, 30*i), record.PeriodStart)
			assert.Equal(t, record.PeriodStart.AddDate(0, 0, 29), record.PeriodEnd)
			if i > 0 {
				assert.Equal(t, 30*24*time.Hour, record.PeriodStart.Sub(records[i-1].PeriodStart))
			}
		}
	})

	t.Run("demanda prevista é arredondada para inteiro", func(t *testing.T) {
		engine, history, forecasts := newTestEngine(t)

		// Última janela [10, 11, 11]: média móvel 32/3 ≈ 10.67
		history.EXPECT().
			GetSalesHistory(int64(1), int64(1), 24).
			Return(monthlySeries(10, 10, 10, 10, 11, 11), nil)

		forecasts.EXPECT().SaveForecast(gomock.Any()).Return(nil).Times(2)

		records, _, err := engine.GenerateForecast(1, 1, 2, domain.ForecastMethodMovingAverage)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 11, records[0].PredictedDemand)
	})

	t.Run("erro de persistência interrompe a geração", func(t *testing.T) {
		engine, history, forecasts := newTestEngine(t)

		history.EXPECT().
			GetSalesHistory(int64(1), int64(1), 24).
			Return(constantSeries(12, 5), nil)

		dbErr := errors.New("disk full")
		forecasts.EXPECT().SaveForecast(gomock.Any()).Return(dbErr)

		records, message, err := engine.GenerateForecast(1, 1, 3, domain.ForecastMethodMovingAverage)
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, records)
		assert.Contains(t, message, "Error generating forecast")
	})

	t.Run("horizonte não positivo usa o padrão de configuração", func(t *testing.T) {
		engine, history, forecasts := newTestEngine(t)

		history.EXPECT().
			GetSalesHistory(int64(1), int64(1), 24).
			Return(constantSeries(12, 5), nil)

		forecasts.EXPECT().SaveForecast(gomock.Any()).Return(nil).Times(12)

		records, _, err := engine.GenerateForecast(1, 1, 0, domain.ForecastMethodEnsemble)
		require.NoError(t, err)
		assert.Len(t, records, 12)
	})
}

func TestEvaluateForecastAccuracy(t *testing.T) {
	t.Run("menos de doze observações falha para qualquer método", func(t *testing.T) {
		for _, method := range []domain.ForecastMethod{
			domain.ForecastMethodMovingAverage,
			domain.ForecastMethodExponentialSmoothing,
			domain.ForecastMethodTrendAnalysis,
			domain.ForecastMethodSeasonal,
			domain.ForecastMethodEnsemble,
		} {
			t.Run(string(method), func(t *testing.T) {
				engine, history, _ := newTestEngine(t)

				history.EXPECT().
					GetSalesHistory(int64(1), int64(2), 36).
					Return(constantSeries(11, 10), nil)

				metrics, message, err := engine.EvaluateForecastAccuracy(1, 2, method)
				assert.NoError(t, err)
				assert.Nil(t, metrics)
				assert.Equal(t, MsgInsufficientEvalData, message)
			})
		}
	})

	t.Run("previsão perfeita zera as métricas de erro", func(t *testing.T) {
		engine, history, _ := newTestEngine(t)

		// Janela de avaliação e janela do gerador retornam a mesma série
		// constante: a média móvel acerta os doze meses de teste
		history.EXPECT().
			GetSalesHistory(int64(1), int64(2), 36).
			Return(constantSeries(36, 20), nil)
		history.EXPECT().
			GetSalesHistory(int64(1), int64(2), 24).
			Return(constantSeries(24, 20), nil)

		metrics, message, err := engine.EvaluateForecastAccuracy(1, 2, domain.ForecastMethodMovingAverage)
		require.NoError(t, err)
		require.NotNil(t, metrics)
		assert.Equal(t, MsgEvaluationCompleted, message)

		assert.Zero(t, metrics.MAE)
		assert.Zero(t, metrics.MSE)
		assert.Zero(t, metrics.RMSE)
		assert.Zero(t, metrics.MAPE)
		assert.Equal(t, 100.0, metrics.AccuracyScore)
	})

	t.Run("erro constante produz métricas consistentes", func(t *testing.T) {
		engine, history, _ := newTestEngine(t)

		// Teste com vendas 25 enquanto o gerador prevê 20: erro fixo de 5
		history.EXPECT().
			GetSalesHistory(int64(1), int64(2), 36).
			Return(constantSeries(36, 25), nil)
		history.EXPECT().
			GetSalesHistory(int64(1), int64(2), 24).
			Return(constantSeries(24, 20), nil)

		metrics, _, err := engine.EvaluateForecastAccuracy(1, 2, domain.ForecastMethodMovingAverage)
		require.NoError(t, err)
		require.NotNil(t, metrics)

		assert.InDelta(t, 5.0, metrics.MAE, 1e-9)
		assert.InDelta(t, 25.0, metrics.MSE, 1e-9)
		assert.InDelta(t, 5.0, metrics.RMSE, 1e-9)
		assert.InDelta(t, 20.0, metrics.MAPE, 1e-9)
		assert.InDelta(t, 80.0, metrics.AccuracyScore, 1e-9)
	})

	t.Run("mês de teste com vendas zero propaga MAPE infinito", func(t *testing.T) {
		engine, history, _ := newTestEngine(t)

		quantities := make([]float64, 36)
		for i := range quantities {
			quantities[i] = 10
		}
		quantities[30] = 0 // dentro da janela de teste

		history.EXPECT().
			GetSalesHistory(int64(1), int64(2), 36).
			Return(monthlySeries(quantities...), nil)
		history.EXPECT().
			GetSalesHistory(int64(1), int64(2), 24).
			Return(constantSeries(24, 10), nil)

		metrics, _, err := engine.EvaluateForecastAccuracy(1, 2, domain.ForecastMethodMovingAverage)
		require.NoError(t, err)
		require.NotNil(t, metrics)

		assert.True(t, math.IsInf(metrics.MAPE, 1))
		assert.Zero(t, metrics.AccuracyScore)
	})

	t.Run("falha do gerador vira falha de avaliação", func(t *testing.T) {
		engine, history, _ := newTestEngine(t)

		// Avaliação tem 12 meses mas o gerador enxerga só 2
		history.EXPECT().
			GetSalesHistory(int64(1), int64(2), 36).
			Return(constantSeries(12, 10), nil)
		history.EXPECT().
			GetSalesHistory(int64(1), int64(2), 24).
			Return(constantSeries(2, 10), nil)

		metrics, message, err := engine.EvaluateForecastAccuracy(1, 2, domain.ForecastMethodMovingAverage)
		assert.NoError(t, err)
		assert.Nil(t, metrics)
		assert.Equal(t, MsgEvalForecastFailed, message)
	})
}

func TestParseForecastMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.ForecastMethod
		wantErr bool
	}{
		{input: "moving_average", want: domain.ForecastMethodMovingAverage},
		{input: "exponential_smoothing", want: domain.ForecastMethodExponentialSmoothing},
		{input: "trend_analysis", want: domain.ForecastMethodTrendAnalysis},
		{input: "seasonal", want: domain.ForecastMethodSeasonal},
		{input: "ensemble", want: domain.ForecastMethodEnsemble},
		{input: "", want: domain.ForecastMethodEnsemble},
		{input: "arima", wantErr: true},
		{input: "ENSEMBLE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			method, err := domain.ParseForecastMethod(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, method)
		})
	}
}
