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
	"github.com/startpost/agent/internal/usecases/analyzing"
)

// AnalyticsSyncConfig representa a configuração do agendador de sincronização de métricas
type AnalyticsSyncConfig struct {
	CronSchedule string
	BrandName    string
	Enabled      bool
}

// AnalyticsSyncService busca diariamente o desempenho do dia anterior para
// aquecer o dashboard antes do primeiro acesso do usuário
type AnalyticsSyncService struct {
	scheduler       *gocron.Scheduler
	config          AnalyticsSyncConfig
	analyzer        analyzing.Analyzer
	running         bool
	runMutex        sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastRecords     int
	lastSynthetic   bool
}

// NewAnalyticsSyncService cria uma nova instância do agendador de sincronização de métricas
func NewAnalyticsSyncService(
	analyzer analyzing.Analyzer,
	appConfig *config.Config,
) *AnalyticsSyncService {
	syncConfig := AnalyticsSyncConfig{
		CronSchedule: appConfig.AnalyticsSync.CronSchedule,
		BrandName:    appConfig.StartPost.BrandName,
		Enabled:      appConfig.AnalyticsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"brand_name":    syncConfig.BrandName,
		"enabled":       syncConfig.Enabled,
	}).Info("Configuração do agendador de sincronização de métricas carregada")

	return &AnalyticsSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		analyzer:  analyzer,
		running:   false,
	}
}

// Start inicia o agendador
func (s *AnalyticsSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de métricas desabilitada por configuração")
		return nil
	}

	if s.config.BrandName == "" {
		return fmt.Errorf("a sincronização de métricas requer uma marca configurada")
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncYesterday(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a sincronização de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara uma sincronização imediata
func (s *AnalyticsSyncService) RunNow(ctx context.Context) ([]domain.AnalyticsData, error) {
	return s.syncYesterday(ctx)
}

func (s *AnalyticsSyncService) syncYesterday(ctx context.Context) ([]domain.AnalyticsData, error) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Sincronização de métricas já em andamento, ignorando")
		return nil, fmt.Errorf("sincronização de métricas já em andamento")
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

	records, err := s.analyzer.YesterdayAnalytics(ctx, s.config.BrandName)
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização agendada de métricas")
		return nil, err
	}

	synthetic := false
	for _, record := range records {
		if record.Source == domain.AnalyticsSourceSynthetic {
			synthetic = true
			break
		}
	}

	s.runMutex.Lock()
	s.lastRecords = len(records)
	s.lastSynthetic = synthetic
	s.runMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"records":   len(records),
		"synthetic": synthetic,
	}).Info("Sincronização agendada de métricas concluída")

	return records, nil
}

// Status retorna o estado corrente do agendador
func (s *AnalyticsSyncService) Status() map[string]interface{} {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]interface{}{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"brand_name":    s.config.BrandName,
		"running":       s.running,
	}

	if !s.lastStartedAt.IsZero() {
		status["last_started_at"] = s.lastStartedAt.Format(time.RFC3339)
	}
	if !s.lastCompletedAt.IsZero() {
		status["last_completed_at"] = s.lastCompletedAt.Format(time.RFC3339)
		status["last_records"] = s.lastRecords
		status["last_synthetic"] = s.lastSynthetic
	}

	return status
}
