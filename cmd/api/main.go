package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-manager-api/infrastructure/repository"
	"github.com/vfg2006/inventory-manager-api/internal/api"
	"github.com/vfg2006/inventory-manager-api/internal/config"
	"github.com/vfg2006/inventory-manager-api/internal/scheduler"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/forecasting"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/inventorying"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/ordering"
	"github.com/vfg2006/inventory-manager-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	vendorRepo := repository.NewVendorRepository(pgConn)
	warehouseRepo := repository.NewWarehouseRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	shipmentRepo := repository.NewShipmentRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	forecastRepo := repository.NewForecastRepository(pgConn)
	analyticsRepo := repository.NewAnalyticsRepository(pgConn)
	salesHistoryStore := repository.NewSalesHistoryRepository(pgConn)

	inventoryService := inventorying.NewService(vendorRepo, warehouseRepo, productRepo)
	orderService := ordering.NewService(shipmentRepo, orderRepo)
	reportService := reporting.NewService(analyticsRepo)
	forecastService := forecasting.NewEngine(cfg.Forecasting, salesHistoryStore, forecastRepo)

	// Inicializa os agendadores de previsão em background
	forecastRefreshService := scheduler.NewForecastRefreshService(forecastRepo, forecastService, cfg)
	forecastRetentionService := scheduler.NewForecastRetentionService(forecastRepo, cfg)

	if err := forecastRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de previsões")
	} else {
		logrus.Info("Agendador de atualização de previsões iniciado com sucesso")
	}

	if err := forecastRetentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de previsões")
	} else {
		logrus.Info("Agendador de limpeza de previsões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		inventoryService,
		orderService,
		reportService,
		forecastService,
		forecastRepo,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
