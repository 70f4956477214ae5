package forecasting

import "math"

// Cada método recebe a série de observações e o horizonte e devolve a
// sequência prevista com um escore heurístico de confiança em [0,100].
// Quando a série é curta demais para o método, ok é false e nenhuma
// previsão é produzida (nunca um erro).

const epsilon = 1e-6

func clampConfidence(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// variance é a variância populacional
func variance(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	m := mean(data)
	sum := 0.0
	for _, v := range data {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(data))
}

func stdDev(data []float64) float64 {
	return math.Sqrt(variance(data))
}

// movingAverageForecast repete a última média móvel para todo o horizonte.
// As médias das janelas anteriores são calculadas mas apenas a última entra
// na projeção.
func (e *Engine) movingAverageForecast(data []float64, periods int) ([]float64, float64, bool) {
	window := e.cfg.MovingAverageWindow
	if len(data) < window {
		return nil, 0, false
	}

	maValues := make([]float64, 0, len(data)-window+1)
	for i := window - 1; i < len(data); i++ {
		maValues = append(maValues, mean(data[i-window+1:i+1]))
	}

	lastMA := maValues[len(maValues)-1]
	forecasts := make([]float64, periods)
	for i := range forecasts {
		forecasts[i] = lastMA
	}

	// Confiança derivada do coeficiente de variação da última janela.
	// Janela de média zero produziria divisão por zero; degradamos para
	// confiança zero em vez de propagar NaN para o ensemble.
	recent := data[len(data)-window:]
	recentMean := mean(recent)
	confidence := 0.0
	if recentMean != 0 {
		confidence = clampConfidence(100 - (variance(recent)/recentMean)*50)
	}

	return forecasts, confidence, true
}

// exponentialSmoothingForecast repete o último valor suavizado para todo o
// horizonte, com alpha fixo de configuração.
func (e *Engine) exponentialSmoothingForecast(data []float64, periods int) ([]float64, float64, bool) {
	if len(data) < 2 {
		return nil, 0, false
	}

	alpha := e.cfg.SmoothingAlpha
	smoothed := make([]float64, len(data))
	smoothed[0] = data[0]
	for i := 1; i < len(data); i++ {
		smoothed[i] = alpha*data[i] + (1-alpha)*smoothed[i-1]
	}

	lastSmoothed := smoothed[len(smoothed)-1]
	forecasts := make([]float64, periods)
	for i := range forecasts {
		forecasts[i] = lastSmoothed
	}

	// Confiança derivada da estabilidade da tendência recente
	n := len(data)
	recentLen := 6
	if n < recentLen {
		recentLen = n
	}
	recent := data[n-recentLen:]

	diffs := make([]float64, 0, len(recent)-1)
	for i := 1; i < len(recent); i++ {
		diffs = append(diffs, recent[i]-recent[i-1])
	}

	stability := 1 - math.Abs(mean(diffs))/(mean(recent)+epsilon)
	confidence := clampConfidence(stability * 100)

	return forecasts, confidence, true
}

// trendAnalysisForecast ajusta uma reta por mínimos quadrados sobre os índices
// da série e extrapola o horizonte, com piso em zero.
func (e *Engine) trendAnalysisForecast(data []float64, periods int) ([]float64, float64, bool) {
	if len(data) < 3 {
		return nil, 0, false
	}

	n := float64(len(data))
	sumX, sumY, sumXY, sumX2 := 0.0, 0.0, 0.0, 0.0
	for i, y := range data {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumX2 - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	forecasts := make([]float64, periods)
	for i := 1; i <= periods; i++ {
		futureX := float64(len(data) + i - 1)
		forecasts[i-1] = math.Max(0, slope*futureX+intercept)
	}

	// R² como confiança; variância total nula implica R² zero
	yMean := mean(data)
	ssRes, ssTot := 0.0, 0.0
	for i, y := range data {
		pred := slope*float64(i) + intercept
		ssRes += (y - pred) * (y - pred)
		ssTot += (y - yMean) * (y - yMean)
	}

	rSquared := 0.0
	if ssTot != 0 {
		rSquared = 1 - ssRes/ssTot
	}
	confidence := clampConfidence(rSquared * 100)

	return forecasts, confidence, true
}

// seasonalForecast projeta a média da última estação modulada pelo padrão
// sazonal médio de cada posição do ciclo.
func (e *Engine) seasonalForecast(data []float64, periods int) ([]float64, float64, bool) {
	seasonLength := e.cfg.SeasonLength
	if seasonLength <= 0 || len(data) < seasonLength*2 {
		return nil, 0, false
	}

	// Média por posição do ciclo, amostrando a cada seasonLength elementos
	pattern := make([]float64, 0, seasonLength)
	for slot := 0; slot < seasonLength; slot++ {
		slotData := make([]float64, 0, len(data)/seasonLength+1)
		for i := slot; i < len(data); i += seasonLength {
			slotData = append(slotData, data[i])
		}
		if len(slotData) > 0 {
			pattern = append(pattern, mean(slotData))
		}
	}
	if len(pattern) == 0 {
		return nil, 0, false
	}

	base := mean(data)
	if len(data) >= seasonLength {
		base = mean(data[len(data)-seasonLength:])
	}

	patternMean := mean(pattern)
	forecasts := make([]float64, periods)
	for i := 0; i < periods; i++ {
		slot := (len(data) + i) % seasonLength
		factor := 1.0
		if patternMean > 0 && slot < len(pattern) {
			factor = pattern[slot] / patternMean
		}
		forecasts[i] = base * factor
	}

	// Confiança pela consistência do padrão sazonal
	consistency := 1 - stdDev(pattern)/(patternMean+epsilon)
	confidence := clampConfidence(consistency * 100)

	return forecasts, confidence, true
}
