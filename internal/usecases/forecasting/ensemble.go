package forecasting

import "github.com/vfg2006/inventory-manager-api/internal/domain"

type methodResult struct {
	method     domain.ForecastMethod
	forecast   []float64
	confidence float64
}

// ensembleForecast combina os quatro métodos por média ponderada pela
// confiança de cada um. Métodos não aplicáveis ficam fora da combinação por
// completo; se nenhum participar, ou se a soma das confianças for zero, o
// ensemble também não é aplicável.
func (e *Engine) ensembleForecast(data []float64, periods int) ([]float64, float64, bool) {
	results := make([]methodResult, 0, 4)

	if forecast, confidence, ok := e.movingAverageForecast(data, periods); ok {
		results = append(results, methodResult{domain.ForecastMethodMovingAverage, forecast, confidence})
	}
	if forecast, confidence, ok := e.exponentialSmoothingForecast(data, periods); ok {
		results = append(results, methodResult{domain.ForecastMethodExponentialSmoothing, forecast, confidence})
	}
	if forecast, confidence, ok := e.trendAnalysisForecast(data, periods); ok {
		results = append(results, methodResult{domain.ForecastMethodTrendAnalysis, forecast, confidence})
	}
	if forecast, confidence, ok := e.seasonalForecast(data, periods); ok {
		results = append(results, methodResult{domain.ForecastMethodSeasonal, forecast, confidence})
	}

	if len(results) == 0 {
		return nil, 0, false
	}

	totalWeight := 0.0
	for _, r := range results {
		totalWeight += r.confidence
	}
	if totalWeight == 0 {
		return nil, 0, false
	}

	combined := make([]float64, periods)
	for i := 0; i < periods; i++ {
		weightedSum := 0.0
		for _, r := range results {
			weight := r.confidence / totalWeight
			weightedSum += r.forecast[i] * weight
		}
		combined[i] = weightedSum
	}

	// A confiança do ensemble é a média simples das confianças participantes
	avgConfidence := 0.0
	for _, r := range results {
		avgConfidence += r.confidence
	}
	avgConfidence /= float64(len(results))

	return combined, avgConfidence, true
}
