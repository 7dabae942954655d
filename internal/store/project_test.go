package store

import (
	"context"
	"testing"

	"github.com/startpost/agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectStore(t *testing.T) {
	ctx := context.Background()

	brand := domain.BrandIdentity{
		Name:           "Acme",
		Industry:       "Footwear",
		Mission:        "We sell shoes",
		TargetAudience: "Urban runners",
		USP:            "Handmade soles",
		Voice:          "confident",
		Features:       []string{"DO: parler résultats", "DONT: jargon", "#running"},
	}

	goals := domain.ProjectGoals{
		Cadence:         domain.CadenceWeekly,
		Objectives:      []string{"notoriété"},
		KPIs:            []domain.KPI{domain.KPIEngagementRate, domain.KPIGrowth},
		TargetKPI:       domain.KPIEngagementRate,
		EnabledNetworks: []domain.Provider{domain.ProviderLinkedIn},
	}

	t.Run("Deve substituir cada fatia por inteiro", func(t *testing.T) {
		s, err := NewProjectStore(ctx, newTestRepository(t))
		require.NoError(t, err)

		require.NoError(t, s.SetBrandIdentity(ctx, brand))
		require.NoError(t, s.SetGoals(ctx, goals))

		replacement := domain.BrandIdentity{Name: "Acme", Mission: "New mission"}
		require.NoError(t, s.SetBrandIdentity(ctx, replacement))

		got := s.BrandIdentity()
		require.NotNil(t, got)
		assert.Equal(t, replacement, *got)
		assert.Empty(t, got.Industry)
	})

	t.Run("Deve rejeitar identidade de marca sem nome", func(t *testing.T) {
		s, err := NewProjectStore(ctx, newTestRepository(t))
		require.NoError(t, err)

		assert.Error(t, s.SetBrandIdentity(ctx, domain.BrandIdentity{Mission: "sans nom"}))
	})

	t.Run("Deve concluir o setup e sobreviver à recarga", func(t *testing.T) {
		repo := newTestRepository(t)

		s, err := NewProjectStore(ctx, repo)
		require.NoError(t, err)

		require.NoError(t, s.SetBrandIdentity(ctx, brand))
		require.NoError(t, s.SetGoals(ctx, goals))
		require.NoError(t, s.SetCurrentStep(ctx, 3))
		require.NoError(t, s.CompleteSetup(ctx))

		reloaded, err := NewProjectStore(ctx, repo)
		require.NoError(t, err)

		state := reloaded.State()
		assert.True(t, state.SetupComplete)
		assert.Equal(t, 3, state.CurrentStep)
		require.NotNil(t, state.BrandIdentity)
		assert.Equal(t, brand, *state.BrandIdentity)
		require.NotNil(t, state.Goals)
		assert.Equal(t, goals, *state.Goals)
	})

	t.Run("Deve voltar ao estado inicial no reset", func(t *testing.T) {
		s, err := NewProjectStore(ctx, newTestRepository(t))
		require.NoError(t, err)

		require.NoError(t, s.SetBrandIdentity(ctx, brand))
		require.NoError(t, s.CompleteSetup(ctx))
		require.NoError(t, s.Reset(ctx))

		state := s.State()
		assert.Nil(t, state.BrandIdentity)
		assert.Nil(t, state.Goals)
		assert.False(t, state.SetupComplete)
		assert.Zero(t, state.CurrentStep)
	})
}
