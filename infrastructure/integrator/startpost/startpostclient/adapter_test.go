package startpostclient

import (
	"testing"

	"github.com/startpost/agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAnalyticsResponse_ListaCanonicaPassaInalterada(t *testing.T) {
	original := []domain.AnalyticsData{
		{
			PostID:         "post-1",
			Platform:       "LinkedIn",
			Impressions:    4200,
			Engagements:    180,
			Clicks:         95,
			Likes:          110,
			Comments:       45,
			Shares:         25,
			EngagementRate: 4.29,
			MeasuredAt:     "2025-01-02T12:00:00Z",
		},
		{
			PostID:         "post-2",
			Platform:       "Twitter",
			Impressions:    2800,
			Engagements:    84,
			EngagementRate: 3.0,
			MeasuredAt:     "2025-01-02T12:00:00Z",
		},
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	normalized, err := NormalizeAnalyticsResponse(raw)
	require.NoError(t, err)

	assert.Equal(t, original, normalized)
}

func TestNormalizeAnalyticsResponse_AgregadoPorPlataforma(t *testing.T) {
	raw := []byte(`{"metrics":{"by_platform":{"linkedin":{"impressions":100,"engagements":10}}}}`)

	normalized, err := NormalizeAnalyticsResponse(raw)
	require.NoError(t, err)

	require.Len(t, normalized, 1)
	assert.Equal(t, "linkedin", normalized[0].Platform)
	assert.Equal(t, 100, normalized[0].Impressions)
	assert.Equal(t, 10, normalized[0].Engagements)
	assert.Equal(t, 10.0, normalized[0].EngagementRate)
	assert.Equal(t, domain.AnalyticsSourceAPI, normalized[0].Source)
	assert.Contains(t, normalized[0].PostID, "aggregate_linkedin_")
}

func TestNormalizeAnalyticsResponse_AgregadoSemImpressoesZeraTaxa(t *testing.T) {
	raw := []byte(`{"metrics":{"by_platform":{"facebook":{"impressions":0,"engagements":7}}}}`)

	normalized, err := NormalizeAnalyticsResponse(raw)
	require.NoError(t, err)

	require.Len(t, normalized, 1)
	assert.Equal(t, 0.0, normalized[0].EngagementRate)
}

func TestNormalizeAnalyticsResponse_AgregadoComVariasPlataformasOrdenado(t *testing.T) {
	raw := []byte(`{"metrics":{"by_platform":{"twitter":{"impressions":50,"engagements":5},"facebook":{"impressions":200,"engagements":8},"linkedin":{"impressions":100,"engagements":10}}}}`)

	normalized, err := NormalizeAnalyticsResponse(raw)
	require.NoError(t, err)

	require.Len(t, normalized, 3)
	assert.Equal(t, "facebook", normalized[0].Platform)
	assert.Equal(t, "linkedin", normalized[1].Platform)
	assert.Equal(t, "twitter", normalized[2].Platform)
}

func TestNormalizeAnalyticsResponse_AgregadoApenasComTotais(t *testing.T) {
	raw := []byte(`{"metrics":{"total_impressions":5000,"total_engagements":150,"total_clicks":90,"average_engagement_rate":3.0}}`)

	normalized, err := NormalizeAnalyticsResponse(raw)
	require.NoError(t, err)

	require.Len(t, normalized, 1)
	assert.Equal(t, "All", normalized[0].Platform)
	assert.Equal(t, 5000, normalized[0].Impressions)
	assert.Equal(t, 3.0, normalized[0].EngagementRate)
}

func TestNormalizeAnalyticsResponse_FormatoDesconhecidoViraListaVazia(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "objeto sem métricas", raw: `{"status":"ok"}`},
		{name: "corpo não-JSON", raw: `<html></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := NormalizeAnalyticsResponse([]byte(tt.raw))

			assert.NoError(t, err)
			assert.Empty(t, normalized)
		})
	}
}

func TestNormalizeOrchestrationResponse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{
			name:     "array puro passa direto",
			raw:      `[{"success":true,"platform":"LinkedIn","timestamp":"2025-01-02T09:00:00Z"}]`,
			expected: 1,
		},
		{
			name:     "envelope com results é desembrulhado",
			raw:      `{"results":[{"success":true,"platform":"LinkedIn","timestamp":"t"},{"success":false,"platform":"Twitter","error":"rate limit","timestamp":"t"}]}`,
			expected: 2,
		},
		{
			name:     "formato desconhecido vira lista vazia",
			raw:      `{"ok":true}`,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := NormalizeOrchestrationResponse([]byte(tt.raw))

			assert.NoError(t, err)
			assert.Len(t, results, tt.expected)
		})
	}
}
