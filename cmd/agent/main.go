package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/startpost/agent/infrastructure/database/postgres"
	"github.com/startpost/agent/infrastructure/integrator/startpost/startpostclient"
	"github.com/startpost/agent/infrastructure/repository"
	"github.com/startpost/agent/internal/api"
	"github.com/startpost/agent/internal/config"
	"github.com/startpost/agent/internal/scheduler"
	"github.com/startpost/agent/internal/store"
	"github.com/startpost/agent/internal/usecases/analyzing"
	"github.com/startpost/agent/internal/usecases/onboarding"
	"github.com/startpost/agent/internal/usecases/orchestrating"
	"github.com/startpost/agent/internal/usecases/planning"
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

	stateRepo := stateRepository(ctx, cfg)

	preferenceStore, err := store.NewPreferenceStore(ctx, stateRepo, themeApplier())
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao reidratar as preferências")
	}

	integrationStore, err := store.NewIntegrationStore(ctx, stateRepo)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao reidratar as integrações")
	}

	projectStore, err := store.NewProjectStore(ctx, stateRepo)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao reidratar o perfil do projeto")
	}

	strategyStore, err := store.NewStrategyStore(ctx, stateRepo)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao reidratar o cache de estratégias")
	}

	contentStore, err := store.NewContentStore(ctx, stateRepo)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao reidratar os overrides de conteúdo")
	}

	client := startpostclient.NewClient(cfg)

	planningService := planning.NewService(cfg, client, strategyStore, projectStore, contentStore)
	analyzingService := analyzing.NewService(client)
	orchestratingService := orchestrating.NewService(cfg, client)
	onboardingService := onboarding.NewService(client, projectStore)

	dailyOrchestrationService := scheduler.NewDailyOrchestrationService(orchestratingService, cfg)
	analyticsSyncService := scheduler.NewAnalyticsSyncService(analyzingService, cfg)

	// Inicia os agendadores em background
	if err := dailyOrchestrationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de orquestração diária")
	} else {
		logrus.Info("Agendador de orquestração diária iniciado com sucesso")
	}

	if err := analyticsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de métricas")
	} else {
		logrus.Info("Agendador de sincronização de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		client,
		preferenceStore,
		integrationStore,
		projectStore,
		planningService,
		analyzingService,
		orchestratingService,
		onboardingService,
		dailyOrchestrationService,
		analyticsSyncService,
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

// themeApplier loga a mudança de tema para que o dashboard possa acompanhar
// o estado aplicado na reidratação e em cada mutação
func themeApplier() store.ThemeApplier {
	return func(darkMode bool) {
		logrus.WithField("dark_mode", darkMode).Info("Tema aplicado")
	}
}

// stateRepository escolhe o driver de persistência do estado do agente
func stateRepository(ctx context.Context, cfg *config.Config) repository.StateRepository {
	if cfg.State.Driver == "postgres" {
		conn := pgconn(ctx, cfg.Database)
		return repository.NewPostgresStateRepository(conn)
	}

	repo, err := repository.NewFileStateRepository(cfg.State.Dir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o diretório de estado")
	}

	logrus.WithField("dir", cfg.State.Dir).Info("Estado durável em arquivos JSON")
	return repo
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
