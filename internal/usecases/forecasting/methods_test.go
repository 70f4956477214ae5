package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/inventory-manager-api/internal/config"
)

func testEngine() *Engine {
	return &Engine{
		cfg: config.Forecasting{
			MovingAverageWindow: 3,
			SmoothingAlpha:      0.3,
			SeasonLength:        12,
			DefaultPeriods:      12,
			LookbackMonths:      24,
			EvalLookbackMonths:  36,
			EvalTestMonths:      12,
		},
	}
}

func TestMovingAverageForecast(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name           string
		data           []float64
		periods        int
		wantOK         bool
		wantForecast   []float64
		wantConfidence float64
	}{
		{
			name:   "série menor que a janela não é aplicável",
			data:   []float64{10, 20},
			wantOK: false,
		},
		{
			name:           "série constante repete a média com confiança máxima",
			data:           []float64{10, 10, 10, 10, 10},
			periods:        3,
			wantOK:         true,
			wantForecast:   []float64{10, 10, 10},
			wantConfidence: 100,
		},
		{
			name:           "apenas a última janela importa",
			data:           []float64{100, 200, 3, 3, 3},
			periods:        2,
			wantOK:         true,
			wantForecast:   []float64{3, 3},
			wantConfidence: 100,
		},
		{
			name:           "janela de média zero degrada para confiança zero",
			data:           []float64{0, 0, 0},
			periods:        1,
			wantOK:         true,
			wantForecast:   []float64{0},
			wantConfidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecast, confidence, ok := e.movingAverageForecast(tt.data, tt.periods)

			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, forecast)
				assert.Zero(t, confidence)
				return
			}
			assert.Equal(t, tt.wantForecast, forecast)
			assert.InDelta(t, tt.wantConfidence, confidence, 1e-9)
		})
	}
}

func TestExponentialSmoothingForecast(t *testing.T) {
	e := testEngine()

	t.Run("série com menos de dois pontos não é aplicável", func(t *testing.T) {
		forecast, confidence, ok := e.exponentialSmoothingForecast([]float64{5}, 3)
		assert.False(t, ok)
		assert.Nil(t, forecast)
		assert.Zero(t, confidence)
	})

	t.Run("repete o último valor suavizado no horizonte", func(t *testing.T) {
		// S = [1, 1.3, 1.81] com alpha 0.3
		forecast, confidence, ok := e.exponentialSmoothingForecast([]float64{1, 2, 3}, 2)
		assert.True(t, ok)
		assert.Len(t, forecast, 2)
		assert.InDelta(t, 1.81, forecast[0], 1e-9)
		assert.InDelta(t, 1.81, forecast[1], 1e-9)

		// estabilidade = 1 - |1| / (2 + 1e-6)
		assert.InDelta(t, 50.0, confidence, 1e-3)
	})

	t.Run("série estável tem confiança próxima do máximo", func(t *testing.T) {
		_, confidence, ok := e.exponentialSmoothingForecast([]float64{10, 10, 10, 10}, 1)
		assert.True(t, ok)
		assert.InDelta(t, 100.0, confidence, 1e-3)
	})
}

func TestTrendAnalysisForecast(t *testing.T) {
	e := testEngine()

	t.Run("série com menos de três pontos não é aplicável", func(t *testing.T) {
		_, _, ok := e.trendAnalysisForecast([]float64{1, 2}, 1)
		assert.False(t, ok)
	})

	t.Run("reta perfeita extrapola com confiança máxima", func(t *testing.T) {
		forecast, confidence, ok := e.trendAnalysisForecast([]float64{1, 2, 3, 4}, 2)
		assert.True(t, ok)
		assert.Len(t, forecast, 2)
		assert.InDelta(t, 5.0, forecast[0], 1e-9)
		assert.InDelta(t, 6.0, forecast[1], 1e-9)
		assert.InDelta(t, 100.0, confidence, 1e-9)
	})

	t.Run("tendência de queda tem piso em zero", func(t *testing.T) {
		forecast, _, ok := e.trendAnalysisForecast([]float64{30, 20, 10}, 4)
		assert.True(t, ok)
		for _, v := range forecast {
			assert.GreaterOrEqual(t, v, 0.0)
		}
		assert.Zero(t, forecast[3])
	})

	t.Run("série constante tem variância total nula e confiança zero", func(t *testing.T) {
		forecast, confidence, ok := e.trendAnalysisForecast([]float64{7, 7, 7}, 1)
		assert.True(t, ok)
		assert.InDelta(t, 7.0, forecast[0], 1e-9)
		assert.Zero(t, confidence)
	})
}

func TestSeasonalForecast(t *testing.T) {
	e := testEngine()

	t.Run("menos de dois ciclos completos não é aplicável", func(t *testing.T) {
		data := make([]float64, 23)
		_, _, ok := e.seasonalForecast(data, 1)
		assert.False(t, ok)
	})

	t.Run("duas estações idênticas reproduzem o padrão", func(t *testing.T) {
		data := make([]float64, 24)
		for i := range data {
			data[i] = float64(i%12 + 1)
		}

		forecast, confidence, ok := e.seasonalForecast(data, 12)
		assert.True(t, ok)
		assert.Len(t, forecast, 12)
		// base = média da última estação = média do padrão, logo o fator
		// devolve exatamente o valor do padrão em cada posição
		for i, v := range forecast {
			assert.InDelta(t, float64(i+1), v, 1e-9)
		}
		assert.Greater(t, confidence, 0.0)
		assert.LessOrEqual(t, confidence, 100.0)
	})

	t.Run("padrão de média zero usa fator neutro", func(t *testing.T) {
		data := make([]float64, 24)
		forecast, confidence, ok := e.seasonalForecast(data, 3)
		assert.True(t, ok)
		assert.Equal(t, []float64{0, 0, 0}, forecast)
		assert.LessOrEqual(t, confidence, 100.0)
	})
}

func TestEnsembleForecast(t *testing.T) {
	e := testEngine()

	t.Run("série curta demais para qualquer método não é aplicável", func(t *testing.T) {
		_, _, ok := e.ensembleForecast([]float64{5}, 1)
		assert.False(t, ok)
	})

	t.Run("confiança é a média simples dos participantes", func(t *testing.T) {
		// Com 5 pontos constantes participam média móvel (100),
		// suavização exponencial (~100) e tendência (0); sazonal fica fora
		forecast, confidence, ok := e.ensembleForecast([]float64{10, 10, 10, 10, 10}, 3)
		assert.True(t, ok)
		assert.Len(t, forecast, 3)
		for _, v := range forecast {
			assert.InDelta(t, 10.0, v, 1e-6)
		}
		assert.InDelta(t, 200.0/3.0, confidence, 1e-3)
		assert.GreaterOrEqual(t, confidence, 0.0)
		assert.LessOrEqual(t, confidence, 100.0)
	})

	t.Run("soma de confianças zero não é aplicável mesmo com previsões", func(t *testing.T) {
		// Com dois pontos só a suavização exponencial participa, e a queda
		// abrupta zera a estabilidade: peso total zero
		forecast, confidence, ok := e.ensembleForecast([]float64{100, 0}, 2)
		assert.False(t, ok)
		assert.Nil(t, forecast)
		assert.Zero(t, confidence)
	})
}

func TestForecastIdempotence(t *testing.T) {
	e := testEngine()
	data := []float64{12, 9, 14, 11, 16, 13, 18, 15, 20, 17, 22, 19}

	first, firstConf, ok := e.ensembleForecast(data, 6)
	assert.True(t, ok)

	second, secondConf, ok := e.ensembleForecast(data, 6)
	assert.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, firstConf, secondConf)
}
