package planning

import (
	"context"
	"testing"
	"time"

	"github.com/startpost/agent/infrastructure/integrator/startpost/mocks"
	"github.com/startpost/agent/infrastructure/repository"
	"github.com/startpost/agent/internal/config"
	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/internal/store"
	"github.com/startpost/agent/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type planningFixture struct {
	service       *Service
	client        *mocks.MockClient
	strategyStore *store.StrategyStore
	projectStore  *store.ProjectStore
	contentStore  *store.ContentStore
}

func newPlanningFixture(t *testing.T) *planningFixture {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	repo, err := repository.NewFileStateRepository(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	strategyStore, err := store.NewStrategyStore(ctx, repo)
	require.NoError(t, err)

	projectStore, err := store.NewProjectStore(ctx, repo)
	require.NoError(t, err)

	contentStore, err := store.NewContentStore(ctx, repo)
	require.NoError(t, err)

	service := NewService(&config.Config{}, client, strategyStore, projectStore, contentStore).
		WithPolling(3, time.Millisecond)

	return &planningFixture{
		service:       service,
		client:        client,
		strategyStore: strategyStore,
		projectStore:  projectStore,
		contentStore:  contentStore,
	}
}

func acmePlan() *domain.MonthlyPlan {
	return &domain.MonthlyPlan{
		CampaignName: "Acme Q1",
		BrandName:    "Acme",
		Calendar: domain.Calendar{
			StartDate: "2025-01-01",
			EndDate:   "2025-01-03",
			Posts: []domain.DailyPost{
				{Date: "2025-01-01", Platform: domain.PlanPlatformLinkedIn, Topic: "lancement"},
				{Date: "2025-01-02", Platform: domain.PlanPlatformTwitter, Topic: "coulisses"},
				{Date: "2025-01-03", Platform: domain.PlanPlatformLinkedIn, Topic: "témoignage"},
			},
			TotalPosts: 3,
		},
		Version: "v1",
	}
}

func TestGenerateStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve gerar, buscar o plano e alimentar o cache", func(t *testing.T) {
		f := newPlanningFixture(t)

		req := domain.StrategyRequest{BrandName: "Acme", Positioning: "We sell shoes"}

		f.client.EXPECT().GenerateStrategy(gomock.Any(), req).Return(true, nil)
		f.client.EXPECT().GetActiveStrategy(gomock.Any(), "Acme").Return(acmePlan(), nil)

		plan, err := f.service.GenerateStrategy(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, plan)
		assert.Equal(t, "Acme", plan.BrandName)

		active := f.strategyStore.ActiveStrategy()
		require.NotNil(t, active)
		assert.Equal(t, "Acme", active.BrandName)

		posts := f.strategyStore.GetPostsForDate("2025-01-02")
		require.Len(t, posts, 1)
		assert.Equal(t, "coulisses", posts[0].Topic)
		assert.NotNil(t, f.strategyStore.LastSync())
	})

	t.Run("Deve insistir na busca enquanto o plano não aparece", func(t *testing.T) {
		f := newPlanningFixture(t)

		req := domain.StrategyRequest{BrandName: "Acme"}

		f.client.EXPECT().GenerateStrategy(gomock.Any(), req).Return(true, nil)
		f.client.EXPECT().GetActiveStrategy(gomock.Any(), "Acme").Return(nil, nil).Times(2)
		f.client.EXPECT().GetActiveStrategy(gomock.Any(), "Acme").Return(acmePlan(), nil)

		plan, err := f.service.GenerateStrategy(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Acme", plan.BrandName)
	})

	t.Run("Deve sinalizar falha branda quando o plano nunca aparece", func(t *testing.T) {
		f := newPlanningFixture(t)

		req := domain.StrategyRequest{BrandName: "Acme"}

		f.client.EXPECT().GenerateStrategy(gomock.Any(), req).Return(true, nil)
		f.client.EXPECT().GetActiveStrategy(gomock.Any(), "Acme").Return(nil, nil).Times(3)

		plan, err := f.service.GenerateStrategy(ctx, req)
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, ErrPlanNotReady)
		assert.Nil(t, f.strategyStore.ActiveStrategy())
	})

	t.Run("Deve rejeitar requisição sem nome de marca", func(t *testing.T) {
		f := newPlanningFixture(t)

		_, err := f.service.GenerateStrategy(ctx, domain.StrategyRequest{})
		assert.Error(t, err)
	})
}

func TestGenerateFromProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve montar a requisição a partir do perfil persistido", func(t *testing.T) {
		f := newPlanningFixture(t)

		require.NoError(t, f.projectStore.SetBrandIdentity(ctx, domain.BrandIdentity{
			Name:           "Acme",
			Mission:        "We sell shoes",
			TargetAudience: "Urban runners",
			USP:            "Handmade soles",
			Voice:          "confident",
			Website:        "https://acme.example",
			Features:       []string{"DO: parler résultats", "#running", "Livraison 48h"},
		}))
		require.NoError(t, f.projectStore.SetGoals(ctx, domain.ProjectGoals{
			EnabledNetworks: []domain.Provider{domain.ProviderLinkedIn, domain.ProviderInstagram},
		}))

		f.client.EXPECT().
			GenerateStrategy(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req domain.StrategyRequest) (bool, error) {
				assert.Equal(t, "Acme", req.BrandName)
				assert.Equal(t, "We sell shoes", req.Positioning)
				assert.Equal(t, "confident", req.Tone)
				assert.Equal(t, []string{"Handmade soles", "Livraison 48h"}, req.ValueProps)
				assert.Equal(t, []string{"https://acme.example"}, req.CTATargets)
				// Instagram não tem plataforma de publicação correspondente
				assert.Equal(t, []string{"LinkedIn"}, req.Platforms)
				assert.Equal(t, "2025-01-01", req.StartDate)
				assert.Equal(t, 30, req.DurationDays)
				return true, nil
			})
		f.client.EXPECT().GetActiveStrategy(gomock.Any(), "Acme").Return(acmePlan(), nil)

		_, err := f.service.GenerateFromProfile(ctx, "2025-01-01", 30)
		require.NoError(t, err)
	})

	t.Run("Deve falhar sem identidade de marca", func(t *testing.T) {
		f := newPlanningFixture(t)

		_, err := f.service.GenerateFromProfile(ctx, "2025-01-01", 30)
		assert.ErrorIs(t, err, ErrMissingBrandIdentity)
	})
}

func TestActiveStrategy(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve preferir o cache persistido a uma busca no backend", func(t *testing.T) {
		f := newPlanningFixture(t)

		require.NoError(t, f.strategyStore.SetActiveStrategy(ctx, *acmePlan()))

		// Nenhuma expectativa no cliente: o backend não deve ser consultado
		plan, err := f.service.ActiveStrategy(ctx, "Acme")
		require.NoError(t, err)
		assert.Equal(t, "Acme", plan.BrandName)
	})

	t.Run("Deve promover um plano em cache de outra marca", func(t *testing.T) {
		f := newPlanningFixture(t)

		require.NoError(t, f.strategyStore.SetActiveStrategy(ctx, *acmePlan()))

		globex := acmePlan()
		globex.BrandName = "Globex"
		require.NoError(t, f.strategyStore.SetActiveStrategy(ctx, *globex))

		plan, err := f.service.ActiveStrategy(ctx, "Acme")
		require.NoError(t, err)
		assert.Equal(t, "Acme", plan.BrandName)
		assert.Equal(t, "Acme", f.strategyStore.ActiveStrategy().BrandName)
	})

	t.Run("Deve buscar no backend quando o cache está vazio", func(t *testing.T) {
		f := newPlanningFixture(t)

		f.client.EXPECT().GetActiveStrategy(gomock.Any(), "Acme").Return(acmePlan(), nil)

		plan, err := f.service.ActiveStrategy(ctx, "Acme")
		require.NoError(t, err)
		assert.Equal(t, "Acme", plan.BrandName)
		assert.NotNil(t, f.strategyStore.ActiveStrategy())
	})

	t.Run("Deve sinalizar ausência quando nem o backend conhece a marca", func(t *testing.T) {
		f := newPlanningFixture(t)

		f.client.EXPECT().GetActiveStrategy(gomock.Any(), "Acme").Return(nil, nil)

		_, err := f.service.ActiveStrategy(ctx, "Acme")
		assert.ErrorIs(t, err, ErrNoActiveStrategy)
	})
}

func TestStrategiesCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve listar os planos na ordem de inserção", func(t *testing.T) {
		f := newPlanningFixture(t)

		require.NoError(t, f.strategyStore.SetActiveStrategy(ctx, *acmePlan()))
		globex := acmePlan()
		globex.BrandName = "Globex"
		require.NoError(t, f.strategyStore.SetActiveStrategy(ctx, *globex))

		plans := f.service.Strategies()
		require.Len(t, plans, 2)
		assert.Equal(t, "Acme", plans[0].BrandName)
		assert.Equal(t, "Globex", plans[1].BrandName)
	})

	t.Run("Deve remover o plano da marca do cache", func(t *testing.T) {
		f := newPlanningFixture(t)

		require.NoError(t, f.strategyStore.SetActiveStrategy(ctx, *acmePlan()))
		require.NoError(t, f.service.RemoveStrategy(ctx, "Acme"))

		assert.Empty(t, f.service.Strategies())
		assert.Nil(t, f.strategyStore.ActiveStrategy())
	})

	t.Run("Deve rejeitar remoção sem nome de marca", func(t *testing.T) {
		f := newPlanningFixture(t)

		assert.Error(t, f.service.RemoveStrategy(ctx, ""))
	})
}

func TestPlannedPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve repassar a consulta ao backend sem tocar no cache", func(t *testing.T) {
		f := newPlanningFixture(t)

		expected := []domain.DailyPost{
			{Date: "2025-01-02", Platform: domain.PlanPlatformTwitter, Topic: "coulisses"},
		}
		f.client.EXPECT().GetPostsForDate(gomock.Any(), "Acme", "2025-01-02").Return(expected, nil)

		posts, err := f.service.PlannedPosts(ctx, "Acme", "2025-01-02")
		require.NoError(t, err)
		assert.Equal(t, expected, posts)
		assert.Nil(t, f.strategyStore.ActiveStrategy())
	})
}

func TestProposedPostsForDate(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve derivar os posts da data com os overrides aplicados", func(t *testing.T) {
		f := newPlanningFixture(t)

		require.NoError(t, f.strategyStore.SetActiveStrategy(ctx, *acmePlan()))

		key := domain.PostKey("Acme", "2025-01-02", domain.PlanPlatformTwitter)
		require.NoError(t, f.service.UpdateProposedPost(ctx, domain.PostOverride{
			Key:    key,
			Status: domain.PostStatusApproved,
		}))

		proposed, err := f.service.ProposedPostsForDate(ctx, "2025-01-02")
		require.NoError(t, err)
		require.Len(t, proposed, 1)
		assert.Equal(t, domain.PostStatusApproved, proposed[0].Status)
	})

	t.Run("Deve falhar sem estratégia corrente", func(t *testing.T) {
		f := newPlanningFixture(t)

		_, err := f.service.ProposedPostsForDate(ctx, "2025-01-02")
		assert.ErrorIs(t, err, ErrNoActiveStrategy)
	})
}
