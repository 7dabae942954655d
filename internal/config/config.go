package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	State              State              `mapstructure:",squash"`
	StartPost          StartPost          `mapstructure:",squash"`
	DailyOrchestration DailyOrchestration `mapstructure:",squash"`
	AnalyticsSync      AnalyticsSync      `mapstructure:",squash"`
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

// State define onde o estado durável do agente é persistido. O driver
// "file" grava documentos JSON em StateDir; "postgres" usa a tabela
// client_state do banco configurado.
type State struct {
	Driver string `mapstructure:"state_driver"`
	Dir    string `mapstructure:"state_dir"`
}

// StartPost aponta para o backend remoto de geração e orquestração
type StartPost struct {
	BaseURL               string        `mapstructure:"startpost_api_url"`
	RequestTimeoutSeconds int           `mapstructure:"startpost_request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`
	BrandName             string        `mapstructure:"startpost_brand_name"`
}

type DailyOrchestration struct {
	CronSchedule string `mapstructure:"daily_orchestration_cron"`
	DryRun       bool   `mapstructure:"daily_orchestration_dry_run"`
	Enabled      bool   `mapstructure:"daily_orchestration_enabled"`
}

type AnalyticsSync struct {
	CronSchedule string `mapstructure:"analytics_sync_cron"`
	Enabled      bool   `mapstructure:"analytics_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 4000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/startpost")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("STATE_DRIVER", "file")
	viper.SetDefault("STATE_DIR", ".startpost-state")

	viper.SetDefault("STARTPOST_API_URL", "http://localhost:8000")
	viper.SetDefault("STARTPOST_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("STARTPOST_BRAND_NAME", "")

	// Defaults da automação diária
	viper.SetDefault("DAILY_ORCHESTRATION_CRON", "0 9 * * *") // Todos os dias às 9h
	viper.SetDefault("DAILY_ORCHESTRATION_DRY_RUN", true)     // Simular por padrão
	viper.SetDefault("DAILY_ORCHESTRATION_ENABLED", false)

	viper.SetDefault("ANALYTICS_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h
	viper.SetDefault("ANALYTICS_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.StartPost.RequestTimeout = time.Duration(config.StartPost.RequestTimeoutSeconds) * time.Second

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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
