package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-manager-api/infrastructure/repository"
	"github.com/vfg2006/inventory-manager-api/internal/config"
	"github.com/vfg2006/inventory-manager-api/internal/domain"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/forecasting"
)

// ForecastRefreshService agenda a regeneração periódica de previsões para
// todas as combinações produto/armazém com histórico de vendas
type ForecastRefreshService struct {
	scheduler           *gocron.Scheduler
	config              config.ForecastRefresh
	forecastRepo        repository.ForecastRepository
	forecaster          forecasting.Forecaster
	refreshRunning      bool
	refreshMutex        sync.Mutex
	lastRunStartedAt    time.Time
	lastRunCompletedAt  time.Time
}

// NewForecastRefreshService cria uma nova instância do serviço de atualização de previsões
func NewForecastRefreshService(
	forecastRepo repository.ForecastRepository,
	forecaster forecasting.Forecaster,
	appConfig *config.Config,
) *ForecastRefreshService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":         appConfig.ForecastRefresh.CronSchedule,
		"request_delay_seconds": appConfig.ForecastRefresh.RequestDelaySeconds,
		"enabled":               appConfig.ForecastRefresh.Enabled,
	}).Info("Configuração do agendador de previsões carregada")

	return &ForecastRefreshService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       appConfig.ForecastRefresh,
		forecastRepo: forecastRepo,
		forecaster:   forecaster,
	}
}

// Start inicia o agendador
func (s *ForecastRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização periódica de previsões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de previsões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAllForecasts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de previsões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de previsões")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshAllForecasts regenera as previsões de todos os pares com histórico.
// Execuções concorrentes são descartadas
func (s *ForecastRefreshService) refreshAllForecasts() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização de previsões já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.lastRunStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRunCompletedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	pairs, err := s.forecastRepo.ListActivePairs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar pares produto/armazém para previsão")
		return
	}

	generated, skipped := s.processPairs(pairs)

	logrus.WithFields(logrus.Fields{
		"pairs":     len(pairs),
		"generated": generated,
		"skipped":   skipped,
		"duration":  time.Since(s.lastRunStartedAt).String(),
	}).Info("Atualização de previsões concluída")
}

// processPairs gera a previsão ensemble de cada par, contabilizando sucessos
// e pares sem dados suficientes
func (s *ForecastRefreshService) processPairs(pairs []repository.ProductWarehousePair) (generated, skipped int) {
	for _, pair := range pairs {
		records, message, err := s.forecaster.GenerateForecast(pair.ProductID, pair.WarehouseID, 0, domain.ForecastMethodEnsemble)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"product_id":   pair.ProductID,
				"warehouse_id": pair.WarehouseID,
			}).Error("Erro ao gerar previsão agendada")
			skipped++
			continue
		}

		if records == nil {
			logrus.WithFields(logrus.Fields{
				"product_id":   pair.ProductID,
				"warehouse_id": pair.WarehouseID,
				"message":      message,
			}).Debug("Par sem dados suficientes para previsão")
			skipped++
			continue
		}

		generated++

		if s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	return generated, skipped
}
