package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/startpost/agent/infrastructure/integrator/startpost/startpostclient"
	"github.com/startpost/agent/internal/api/handler"
	"github.com/startpost/agent/internal/api/handler/router"
	"github.com/startpost/agent/internal/config"
	"github.com/startpost/agent/internal/scheduler"
	"github.com/startpost/agent/internal/store"
	"github.com/startpost/agent/internal/usecases/analyzing"
	"github.com/startpost/agent/internal/usecases/onboarding"
	"github.com/startpost/agent/internal/usecases/orchestrating"
	"github.com/startpost/agent/internal/usecases/planning"
	"github.com/startpost/agent/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	client startpostclient.Client,
	preferenceStore *store.PreferenceStore,
	integrationStore *store.IntegrationStore,
	projectStore *store.ProjectStore,
	planningService planning.Planner,
	analyzingService analyzing.Analyzer,
	orchestratingService orchestrating.Orchestrator,
	onboardingService onboarding.Onboarder,
	dailyOrchestrationService *scheduler.DailyOrchestrationService,
	analyticsSyncService *scheduler.AnalyticsSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		DailyOrchestrationService: dailyOrchestrationService,
		AnalyticsSyncService:      analyticsSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(client)...),
		router.WithRoutes(handler.Preferences(preferenceStore)...),
		router.WithRoutes(handler.Integrations(integrationStore)...),
		router.WithRoutes(handler.Project(projectStore, integrationStore)...),
		router.WithRoutes(handler.Strategy(planningService)...),
		router.WithRoutes(handler.Orchestration(orchestratingService)...),
		router.WithRoutes(handler.Analytics(analyzingService)...),
		router.WithRoutes(handler.Onboarding(onboardingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
