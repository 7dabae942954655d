package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/internal/usecases/orchestrating/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDailyOrchestrationService_runDaily(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrchestrator := mocks.NewMockOrchestrator(ctrl)

	service := &DailyOrchestrationService{
		config: DailyOrchestrationConfig{
			CronSchedule: "0 9 * * *",
			DryRun:       true,
			Enabled:      true,
		},
		orchestrator: mockOrchestrator,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, results []domain.PostingResult, err error)
	}{
		{
			name: "Deve repassar o dry-run da configuração e registrar os resultados",
			setup: func() {
				mockOrchestrator.EXPECT().
					ExecuteDaily(gomock.Any(), domain.OrchestratorRequest{DryRun: true}).
					Return([]domain.PostingResult{
						{Success: true, Platform: "LinkedIn", PostID: "post_1"},
						{Success: true, Platform: "Twitter", PostID: "post_2"},
					}, nil)
			},
			validate: func(t *testing.T, results []domain.PostingResult, err error) {
				assert.NoError(t, err)
				assert.Len(t, results, 2)

				status := service.Status()
				assert.Equal(t, false, status["running"])
				assert.Equal(t, 2, status["last_results"])
				assert.NotContains(t, status, "last_error")
			},
		},
		{
			name: "Deve registrar o erro da execução no status",
			setup: func() {
				mockOrchestrator.EXPECT().
					ExecuteDaily(gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, results []domain.PostingResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, results)

				status := service.Status()
				assert.Contains(t, status, "last_error")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			results, err := service.RunNow(context.Background())

			if tt.validate != nil {
				tt.validate(t, results, err)
			}
		})
	}
}

func TestDailyOrchestrationService_skipWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrchestrator := mocks.NewMockOrchestrator(ctrl)

	service := &DailyOrchestrationService{
		config:       DailyOrchestrationConfig{DryRun: true, Enabled: true},
		orchestrator: mockOrchestrator,
	}

	started := make(chan struct{})
	release := make(chan struct{})

	mockOrchestrator.EXPECT().
		ExecuteDaily(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.OrchestratorRequest) ([]domain.PostingResult, error) {
			close(started)
			<-release
			return nil, nil
		})

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		service.RunNow(context.Background())
	}()
	<-started

	// Segunda execução enquanto a primeira ainda está no ar
	_, err := service.RunNow(context.Background())
	assert.Error(t, err)

	close(release)
	<-firstDone
}

func TestDailyOrchestrationService_status(t *testing.T) {
	service := &DailyOrchestrationService{
		config: DailyOrchestrationConfig{
			CronSchedule: "0 9 * * *",
			DryRun:       false,
			Enabled:      false,
		},
	}

	status := service.Status()

	assert.Equal(t, false, status["enabled"])
	assert.Equal(t, "0 9 * * *", status["cron_schedule"])
	assert.Equal(t, false, status["dry_run"])
	assert.Equal(t, false, status["running"])
	// Sem execução anterior, os carimbos de horário não aparecem
	assert.NotContains(t, status, "last_started_at")
	assert.NotContains(t, status, "last_completed_at")

	service.lastStartedAt = time.Now()
	service.lastCompletedAt = time.Now()
	service.lastResults = []domain.PostingResult{{Success: true}}

	status = service.Status()
	assert.Contains(t, status, "last_started_at")
	assert.Equal(t, 1, status["last_results"])
}
