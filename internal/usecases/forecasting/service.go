package forecasting

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-manager-api/internal/config"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"github.com/vfg2006/inventory-manager-api/pkg/utils"
)

// Mensagens retornadas à camada de rotas
const (
	MsgNoSalesHistory       = "No sales history available"
	MsgInsufficientData     = "Insufficient data for forecasting"
	MsgForecastingFailed    = "Forecasting failed"
	MsgForecastGenerated    = "Forecast generated successfully"
	MsgInsufficientEvalData = "Insufficient data for evaluation"
	MsgEvalForecastFailed   = "Could not generate forecast for evaluation"
	MsgEvaluationCompleted  = "Evaluation completed"
)

// Engine implementa o motor de previsão de demanda. É um serviço sem estado:
// toda invocação opera sobre a série retornada pelo repositório, sem memória
// entre chamadas.
type Engine struct {
	cfg       config.Forecasting
	history   SalesHistoryStore
	forecasts ForecastStore
	now       func() time.Time
}

// NewEngine cria o motor de previsão com os repositórios injetados
func NewEngine(cfg config.Forecasting, history SalesHistoryStore, forecasts ForecastStore) Forecaster {
	return &Engine{
		cfg:       cfg,
		history:   history,
		forecasts: forecasts,
		now:       time.Now,
	}
}

// dispatch seleciona o método de previsão. Valores desconhecidos são
// rejeitados na borda da API; aqui o switch é exaustivo por construção.
func (e *Engine) dispatch(method domain.ForecastMethod, data []float64, periods int) ([]float64, float64, bool) {
	switch method {
	case domain.ForecastMethodMovingAverage:
		return e.movingAverageForecast(data, periods)
	case domain.ForecastMethodExponentialSmoothing:
		return e.exponentialSmoothingForecast(data, periods)
	case domain.ForecastMethodTrendAnalysis:
		return e.trendAnalysisForecast(data, periods)
	case domain.ForecastMethodSeasonal:
		return e.seasonalForecast(data, periods)
	case domain.ForecastMethodEnsemble:
		return e.ensembleForecast(data, periods)
	}
	return nil, 0, false
}

// buildForecast busca a série histórica, executa o método selecionado e
// materializa os registros de previsão, sem persistir nada. É reutilizado
// pelo back-test de acurácia.
func (e *Engine) buildForecast(productID, warehouseID int64, periods int, method domain.ForecastMethod) ([]*domain.Forecast, string, error) {
	salesData, err := e.history.GetSalesHistory(productID, warehouseID, e.cfg.LookbackMonths)
	if err != nil {
		return nil, fmt.Sprintf("Error generating forecast: %v", err), err
	}

	if len(salesData) == 0 {
		return nil, MsgNoSalesHistory, nil
	}

	quantities := make([]float64, len(salesData))
	for i, record := range salesData {
		quantities[i] = record.TotalQuantity
	}

	if len(quantities) < 3 {
		return nil, MsgInsufficientData, nil
	}

	forecast, confidence, ok := e.dispatch(method, quantities, periods)
	if !ok {
		return nil, MsgForecastingFailed, nil
	}

	// Mês sintético fixo: cada passo avança 30 dias e cobre 30 dias
	now := e.now()
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	records := make([]*domain.Forecast, 0, len(forecast))
	for i, value := range forecast {
		periodStart := startDate.AddDate(0, 0, 30*i)
		periodEnd := periodStart.AddDate(0, 0, 29)

		records = append(records, &domain.Forecast{
			ProductID:       productID,
			WarehouseID:     warehouseID,
			PeriodStart:     periodStart,
			PeriodEnd:       periodEnd,
			PredictedDemand: int(math.Round(value)),
			Method:          method,
			ConfidenceLevel: utils.RoundWithTwoDecimalPlace(confidence),
		})
	}

	return records, MsgForecastGenerated, nil
}

// GenerateForecast gera a previsão e persiste um registro por passo do
// horizonte. Falhas de negócio retornam registros nulos com a mensagem;
// falhas do banco também carregam o erro para a camada de rotas mapear.
func (e *Engine) GenerateForecast(productID, warehouseID int64, periods int, method domain.ForecastMethod) ([]*domain.Forecast, string, error) {
	if periods < 1 {
		periods = e.cfg.DefaultPeriods
	}

	records, message, err := e.buildForecast(productID, warehouseID, periods, method)
	if records == nil {
		return nil, message, err
	}

	for _, record := range records {
		if err := e.forecasts.SaveForecast(record); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"product_id":   productID,
				"warehouse_id": warehouseID,
			}).Error("Erro ao persistir registro de previsão")
			return nil, fmt.Sprintf("Error generating forecast: %v", err), err
		}
	}

	return records, message, nil
}

// EvaluateForecastAccuracy divide a série em treino/teste, regenera a
// previsão sobre o horizonte de teste e calcula as métricas de erro.
func (e *Engine) EvaluateForecastAccuracy(productID, warehouseID int64, method domain.ForecastMethod) (*domain.AccuracyMetrics, string, error) {
	salesData, err := e.history.GetSalesHistory(productID, warehouseID, e.cfg.EvalLookbackMonths)
	if err != nil {
		return nil, fmt.Sprintf("Error evaluating forecast: %v", err), err
	}

	testMonths := e.cfg.EvalTestMonths
	if len(salesData) < testMonths {
		return nil, MsgInsufficientEvalData, nil
	}

	// Teste: os últimos meses da série. A previsão comparada é regenerada
	// pelo gerador com a janela de busca dele, não a partir da fatia de
	// treino.
	testData := make([]float64, testMonths)
	for i, record := range salesData[len(salesData)-testMonths:] {
		testData[i] = record.TotalQuantity
	}

	records, _, err := e.buildForecast(productID, warehouseID, testMonths, method)
	if records == nil {
		return nil, MsgEvalForecastFailed, err
	}

	predicted := make([]float64, len(records))
	for i, record := range records {
		predicted[i] = float64(record.PredictedDemand)
	}

	var sumAbs, sumSq, sumPct float64
	for i := range testData {
		diff := testData[i] - predicted[i]
		sumAbs += math.Abs(diff)
		sumSq += diff * diff
		// Divisão pelo valor real bruto: um mês de teste com vendas zero
		// propaga Inf até o escore, que o max() final zera
		sumPct += math.Abs(diff) / testData[i]
	}

	n := float64(len(testData))
	mae := sumAbs / n
	mse := sumSq / n
	rmse := math.Sqrt(mse)
	mape := (sumPct / n) * 100

	metrics := &domain.AccuracyMetrics{
		MAE:           utils.RoundWithTwoDecimalPlace(mae),
		MSE:           utils.RoundWithTwoDecimalPlace(mse),
		RMSE:          utils.RoundWithTwoDecimalPlace(rmse),
		MAPE:          utils.RoundWithTwoDecimalPlace(mape),
		AccuracyScore: math.Max(0, 100-mape),
	}

	return metrics, MsgEvaluationCompleted, nil
}
