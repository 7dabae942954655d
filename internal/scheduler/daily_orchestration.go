// Package scheduler agenda as rotinas recorrentes do agente: a orquestração
// diária de publicação e a sincronização de métricas.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/startpost/agent/internal/config"
	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/internal/usecases/orchestrating"
)

// DailyOrchestrationConfig representa a configuração do agendador de orquestração diária
type DailyOrchestrationConfig struct {
	CronSchedule string
	DryRun       bool
	Enabled      bool
}

// DailyOrchestrationService gerencia o agendamento e execução da publicação diária
type DailyOrchestrationService struct {
	scheduler       *gocron.Scheduler
	config          DailyOrchestrationConfig
	appConfig       *config.Config
	orchestrator    orchestrating.Orchestrator
	running         bool
	runMutex        sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastResults     []domain.PostingResult
	lastError       error
}

// NewDailyOrchestrationService cria uma nova instância do agendador de orquestração diária
func NewDailyOrchestrationService(
	orchestrator orchestrating.Orchestrator,
	appConfig *config.Config,
) *DailyOrchestrationService {
	orchestrationConfig := DailyOrchestrationConfig{
		CronSchedule: appConfig.DailyOrchestration.CronSchedule,
		DryRun:       appConfig.DailyOrchestration.DryRun,
		Enabled:      appConfig.DailyOrchestration.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": orchestrationConfig.CronSchedule,
		"dry_run":       orchestrationConfig.DryRun,
		"enabled":       orchestrationConfig.Enabled,
	}).Info("Configuração do agendador de orquestração diária carregada")

	return &DailyOrchestrationService{
		scheduler:    scheduler,
		config:       orchestrationConfig,
		appConfig:    appConfig,
		orchestrator: orchestrator,
		running:      false,
	}
}

// Start inicia o agendador
func (s *DailyOrchestrationService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Orquestração diária desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de orquestração diária")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDaily(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a orquestração diária: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de orquestração diária")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara uma execução imediata, fora do horário agendado
func (s *DailyOrchestrationService) RunNow(ctx context.Context) ([]domain.PostingResult, error) {
	return s.runDaily(ctx)
}

func (s *DailyOrchestrationService) runDaily(ctx context.Context) ([]domain.PostingResult, error) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Orquestração diária já em andamento, ignorando")
		return nil, fmt.Errorf("orquestração diária já em andamento")
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	results, err := s.orchestrator.ExecuteDaily(ctx, domain.OrchestratorRequest{
		DryRun: s.config.DryRun,
	})

	s.runMutex.Lock()
	s.lastResults = results
	s.lastError = err
	s.runMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro na execução agendada da orquestração diária")
		return nil, err
	}

	logrus.WithField("results", len(results)).Info("Execução agendada da orquestração diária concluída")

	return results, nil
}

// Status retorna o estado corrente do agendador
func (s *DailyOrchestrationService) Status() map[string]interface{} {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]interface{}{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"dry_run":       s.config.DryRun,
		"running":       s.running,
	}

	if !s.lastStartedAt.IsZero() {
		status["last_started_at"] = s.lastStartedAt.Format(time.RFC3339)
	}
	if !s.lastCompletedAt.IsZero() {
		status["last_completed_at"] = s.lastCompletedAt.Format(time.RFC3339)
		status["last_results"] = len(s.lastResults)
	}
	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}

	return status
}
