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
)

// ForecastRetentionService remove periodicamente previsões antigas, mantendo
// a tabela de previsões dentro da janela de retenção configurada
type ForecastRetentionService struct {
	scheduler       *gocron.Scheduler
	config          config.ForecastRetention
	forecastRepo    repository.ForecastRepository
	cleanupRunning  bool
	cleanupMutex    sync.Mutex
	now             func() time.Time
}

// NewForecastRetentionService cria uma nova instância do serviço de retenção de previsões
func NewForecastRetentionService(
	forecastRepo repository.ForecastRepository,
	appConfig *config.Config,
) *ForecastRetentionService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":  appConfig.ForecastRetention.CronSchedule,
		"retention_days": appConfig.ForecastRetention.RetentionDays,
		"enabled":        appConfig.ForecastRetention.Enabled,
	}).Info("Configuração do agendador de retenção de previsões carregada")

	return &ForecastRetentionService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       appConfig.ForecastRetention,
		forecastRepo: forecastRepo,
		now:          time.Now,
	}
}

// Start inicia o agendador
func (s *ForecastRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Retenção de previsões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de previsões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupOldForecasts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de previsões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de previsões")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ForecastRetentionService) cleanupOldForecasts() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de previsões já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	cutoff := s.now().AddDate(0, 0, -s.config.RetentionDays)

	removed, err := s.forecastRepo.DeleteOlderThan(cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover previsões antigas")
		return
	}

	logrus.WithFields(logrus.Fields{
		"cutoff":  cutoff.Format("2006-01-02"),
		"removed": removed,
	}).Info("Limpeza de previsões concluída")
}
