package onboarding

import (
	"context"
	"testing"

	"github.com/startpost/agent/infrastructure/integrator/startpost/mocks"
	"github.com/startpost/agent/infrastructure/repository"
	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/internal/store"
	"github.com/startpost/agent/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newOnboardingFixture(t *testing.T) (*Service, *mocks.MockClient, *store.ProjectStore) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	repo, err := repository.NewFileStateRepository(t.TempDir())
	require.NoError(t, err)

	projectStore, err := store.NewProjectStore(context.Background(), repo)
	require.NoError(t, err)

	return NewService(client, projectStore), client, projectStore
}

func TestPrefillBrandIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve montar o rascunho a partir do posicionamento extraído", func(t *testing.T) {
		service, client, projectStore := newOnboardingFixture(t)

		client.EXPECT().AnalyzeLandingPage(gomock.Any(), "https://acme.example").
			Return(&domain.BrandInfo{
				BrandName:      "Acme",
				Positioning:    "We sell shoes",
				TargetAudience: "Urban runners",
				ValueProps:     []string{"Handmade soles", "Livraison 48h"},
				Tone:           "confident",
			}, nil)

		brand, err := service.PrefillBrandIdentity(ctx, "https://acme.example")
		require.NoError(t, err)

		assert.Equal(t, "Acme", brand.Name)
		assert.Equal(t, "https://acme.example", brand.Website)
		assert.Equal(t, "We sell shoes", brand.Mission)
		assert.Equal(t, "Handmade soles", brand.USP)
		assert.Equal(t, "confident", brand.Voice)

		// Pré-preenchimento não grava nada no perfil
		assert.Nil(t, projectStore.BrandIdentity())
	})

	t.Run("Deve propagar o erro da análise sem degradar", func(t *testing.T) {
		service, client, _ := newOnboardingFixture(t)

		client.EXPECT().AnalyzeLandingPage(gomock.Any(), "https://acme.example").
			Return(nil, assert.AnError)

		_, err := service.PrefillBrandIdentity(ctx, "https://acme.example")
		assert.Error(t, err)
	})

	t.Run("Deve rejeitar URL inválida sem consultar o backend", func(t *testing.T) {
		service, _, _ := newOnboardingFixture(t)

		_, err := service.PrefillBrandIdentity(ctx, "pas-une-url")
		assert.Error(t, err)
	})
}

func TestCompleteSetup(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve gravar identidade e objetivos e concluir o setup", func(t *testing.T) {
		service, _, projectStore := newOnboardingFixture(t)

		brand := domain.BrandIdentity{Name: "Acme", Mission: "We sell shoes"}
		goals := domain.ProjectGoals{Cadence: domain.CadenceDaily, TargetKPI: domain.KPIEngagementRate}

		require.NoError(t, service.CompleteSetup(ctx, brand, goals))

		state := projectStore.State()
		assert.True(t, state.SetupComplete)
		require.NotNil(t, state.BrandIdentity)
		assert.Equal(t, "Acme", state.BrandIdentity.Name)
		require.NotNil(t, state.Goals)
		assert.Equal(t, domain.CadenceDaily, state.Goals.Cadence)
	})
}
