package orchestrating

import (
	"context"
	"testing"
	"time"

	"github.com/startpost/agent/infrastructure/integrator/startpost/mocks"
	"github.com/startpost/agent/internal/config"
	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/pkg/apperrors"
	"github.com/startpost/agent/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newOrchestratingFixture(t *testing.T) (*Service, *mocks.MockClient) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.StartPost.BrandName = "Acme"

	service := NewService(cfg, client).WithRetry(2, time.Millisecond)
	service.now = func() time.Time {
		return time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	}

	return service, client
}

func TestExecuteDaily(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve preencher empresa e data a partir da configuração", func(t *testing.T) {
		service, client := newOrchestratingFixture(t)

		client.EXPECT().
			ExecuteDailyOrchestration(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req domain.OrchestratorRequest) ([]domain.PostingResult, error) {
				assert.Equal(t, "Acme", req.CompanyName)
				assert.Equal(t, "2025-01-02", req.ExecuteDate)
				assert.True(t, req.DryRun)
				return []domain.PostingResult{{Success: true, Platform: "LinkedIn"}}, nil
			})

		results, err := service.ExecuteDaily(ctx, domain.OrchestratorRequest{DryRun: true})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Success)
	})

	t.Run("Deve insistir em falha transitória durante a simulação", func(t *testing.T) {
		service, client := newOrchestratingFixture(t)

		serverErr := &apperrors.AppError{Type: apperrors.TypeServer, Message: "instável"}
		client.EXPECT().ExecuteDailyOrchestration(gomock.Any(), gomock.Any()).Return(nil, serverErr)
		client.EXPECT().ExecuteDailyOrchestration(gomock.Any(), gomock.Any()).
			Return([]domain.PostingResult{{Success: true, Platform: "Twitter"}}, nil)

		results, err := service.ExecuteDaily(ctx, domain.OrchestratorRequest{DryRun: true})
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("Deve propagar o erro da simulação após esgotar as tentativas", func(t *testing.T) {
		service, client := newOrchestratingFixture(t)

		serverErr := &apperrors.AppError{Type: apperrors.TypeServer, Message: "instável"}
		client.EXPECT().ExecuteDailyOrchestration(gomock.Any(), gomock.Any()).Return(nil, serverErr).Times(2)

		_, err := service.ExecuteDaily(ctx, domain.OrchestratorRequest{DryRun: true})
		assert.Error(t, err)
	})

	t.Run("Não deve repetir a publicação real depois de uma falha", func(t *testing.T) {
		service, client := newOrchestratingFixture(t)

		// Uma falha transitória depois do disparo real pode ter publicado
		// parcialmente: repetir arriscaria postar duas vezes
		serverErr := &apperrors.AppError{Type: apperrors.TypeServer, Message: "instável"}
		client.EXPECT().ExecuteDailyOrchestration(gomock.Any(), gomock.Any()).Return(nil, serverErr).Times(1)

		_, err := service.ExecuteDaily(ctx, domain.OrchestratorRequest{})
		assert.Error(t, err)
	})

	t.Run("Deve falhar sem nome de empresa configurado", func(t *testing.T) {
		service, client := newOrchestratingFixture(t)
		service.cfg = &config.Config{}
		_ = client

		_, err := service.ExecuteDaily(ctx, domain.OrchestratorRequest{})
		assert.Error(t, err)
	})
}

func TestStatusAndRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve repassar o status do orquestrador", func(t *testing.T) {
		service, client := newOrchestratingFixture(t)

		client.EXPECT().GetOrchestratorStatus(gomock.Any()).
			Return(&domain.OrchestratorStatus{Running: true, PendingPosts: 2}, nil)

		status, err := service.Status(ctx)
		require.NoError(t, err)
		assert.True(t, status.Running)
		assert.Equal(t, 2, status.PendingPosts)
	})

	t.Run("Deve reapresentar a publicação de uma plataforma", func(t *testing.T) {
		service, client := newOrchestratingFixture(t)

		client.EXPECT().RetryPost(gomock.Any(), "2025-01-02", "LinkedIn").
			Return(&domain.PostingResult{Success: true, Platform: "LinkedIn"}, nil)

		result, err := service.RetryPost(ctx, "2025-01-02", "LinkedIn")
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("Deve validar data e plataforma antes de reapresentar", func(t *testing.T) {
		service, _ := newOrchestratingFixture(t)

		_, err := service.RetryPost(ctx, "", "LinkedIn")
		assert.Error(t, err)
	})
}
