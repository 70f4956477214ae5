package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Forecasting       Forecasting       `mapstructure:",squash"`
	ForecastRefresh   ForecastRefresh   `mapstructure:",squash"`
	ForecastRetention ForecastRetention `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Forecasting concentra os parâmetros do motor de previsão, com valores
// padrão definidos em SetDefaults.
type Forecasting struct {
	MovingAverageWindow int     `mapstructure:"forecast_moving_average_window"`
	SmoothingAlpha      float64 `mapstructure:"forecast_smoothing_alpha"`
	SeasonLength        int     `mapstructure:"forecast_season_length"`
	DefaultPeriods      int     `mapstructure:"forecast_default_periods"`
	LookbackMonths      int     `mapstructure:"forecast_lookback_months"`
	EvalLookbackMonths  int     `mapstructure:"forecast_eval_lookback_months"`
	EvalTestMonths      int     `mapstructure:"forecast_eval_test_months"`
}

type ForecastRefresh struct {
	CronSchedule        string `mapstructure:"forecast_refresh_cron"`
	RequestDelaySeconds int    `mapstructure:"forecast_refresh_request_delay_seconds"`
	Enabled             bool   `mapstructure:"forecast_refresh_enabled"`
}

type ForecastRetention struct {
	CronSchedule  string `mapstructure:"forecast_retention_cron"`
	RetentionDays int    `mapstructure:"forecast_retention_days"`
	Enabled       bool   `mapstructure:"forecast_retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/inventory")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Parâmetros do motor de previsão
	viper.SetDefault("FORECAST_MOVING_AVERAGE_WINDOW", 3)
	viper.SetDefault("FORECAST_SMOOTHING_ALPHA", 0.3)
	viper.SetDefault("FORECAST_SEASON_LENGTH", 12)
	viper.SetDefault("FORECAST_DEFAULT_PERIODS", 12)
	viper.SetDefault("FORECAST_LOOKBACK_MONTHS", 24)
	viper.SetDefault("FORECAST_EVAL_LOOKBACK_MONTHS", 36)
	viper.SetDefault("FORECAST_EVAL_TEST_MONTHS", 12)

	// Defaults para a atualização noturna de previsões
	viper.SetDefault("FORECAST_REFRESH_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("FORECAST_REFRESH_REQUEST_DELAY_SECONDS", 0)
	viper.SetDefault("FORECAST_REFRESH_ENABLED", false)

	// Defaults para a limpeza de previsões antigas
	viper.SetDefault("FORECAST_RETENTION_CRON", "0 5 * * 0") // Domingos às 5h da manhã
	viper.SetDefault("FORECAST_RETENTION_DAYS", 365)
	viper.SetDefault("FORECAST_RETENTION_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
