package startpostclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/startpost/agent/internal/config"
	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) Client {
	return NewClient(&config.Config{
		StartPost: config.StartPost{
			BaseURL:        baseURL,
			RequestTimeout: 5 * time.Second,
		},
	})
}

func TestGenerateStrategy_RetornaConfirmacao(t *testing.T) {
	var received domain.StrategyRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/strategy/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	ok, err := testClient(server.URL).GenerateStrategy(context.Background(), domain.StrategyRequest{
		BrandName:   "Acme",
		Positioning: "We sell shoes",
		StartDate:   "2025-01-01",
		CTATargets:  []string{"signup"},
	})

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Acme", received.BrandName)
}

func TestGetActiveStrategy_PlanoPresente(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/strategy/active/Acme", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"plan":{"brand_name":"Acme","campaign_name":"Lancement","calendar":{"start_date":"2025-01-01","end_date":"2025-01-31","posts":[],"total_posts":0,"posts_per_platform":{}}}}`))
	}))
	defer server.Close()

	plan, err := testClient(server.URL).GetActiveStrategy(context.Background(), "Acme")

	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, "Acme", plan.BrandName)
	assert.Equal(t, "Lancement", plan.CampaignName)
}

func TestGetActiveStrategy_AusenciaNaoEhErro(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	plan, err := testClient(server.URL).GetActiveStrategy(context.Background(), "Acme")

	assert.NoError(t, err)
	assert.Nil(t, plan)
}

func TestGetActiveStrategy_404SinalizaAusencia(t *testing.T) {
	// O backend sinaliza a ausência de plano com 404, que não é um erro
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"No active strategy found"}`))
	}))
	defer server.Close()

	plan, err := testClient(server.URL).GetActiveStrategy(context.Background(), "Acme")

	assert.NoError(t, err)
	assert.Nil(t, plan)
}

func TestDo_StatusDeErroPreservaCorpoParaClassificacao(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"brand_name obrigatório"}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).GetActiveStrategy(context.Background(), "Acme")

	require.Error(t, err)

	appErr := apperrors.Handle(err)
	assert.Equal(t, apperrors.TypeValidation, appErr.Type)
	assert.Equal(t, 400, appErr.StatusCode)
	assert.Equal(t, "brand_name obrigatório", appErr.Message)
}

func TestDo_BackendInacessivelClassificaComoRede(t *testing.T) {
	// Porta sem ninguém escutando
	_, err := testClient("http://127.0.0.1:1").GetActiveStrategy(context.Background(), "Acme")

	require.Error(t, err)
	assert.Equal(t, apperrors.TypeNetwork, apperrors.Handle(err).Type)
}

func TestExecuteDailyOrchestration_NormalizaEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orchestrator/daily", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"success":true,"platform":"LinkedIn","post_id":"123","timestamp":"2025-01-02T09:00:00Z"}]}`))
	}))
	defer server.Close()

	results, err := testClient(server.URL).ExecuteDailyOrchestration(context.Background(), domain.OrchestratorRequest{
		CompanyName: "Acme",
		ExecuteDate: "2025-01-02",
		DryRun:      true,
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
	assert.Equal(t, "LinkedIn", results[0].Platform)
}

func TestGetYesterdayAnalytics_DesembrulhaPerformance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/analytics/yesterday/Acme", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"performance":[{"post_id":"p1","platform":"LinkedIn","impressions":1000,"engagements":50,"engagement_rate":5.0,"measured_at":"2025-01-01T12:00:00Z"}]}`))
	}))
	defer server.Close()

	data, err := testClient(server.URL).GetYesterdayAnalytics(context.Background(), "Acme")

	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, "LinkedIn", data[0].Platform)
}

func TestAnalyzeLandingPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/analyze/landing-page", r.URL.Path)

		var body analyzeLandingPageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://acme.example", body.URL)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"brand_name":"Acme","positioning":"We sell shoes","target_audience":"runners","value_props":["comfort"],"tone":"friendly"}`))
	}))
	defer server.Close()

	info, err := testClient(server.URL).AnalyzeLandingPage(context.Background(), "https://acme.example")

	require.NoError(t, err)
	assert.Equal(t, "Acme", info.BrandName)
	assert.Equal(t, []string{"comfort"}, info.ValueProps)
}
