package startpostclient

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/startpost/agent/internal/domain"
)

type performanceRequest struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Platforms []string `json:"platforms,omitempty"`
}

// GetPerformanceMetrics busca os registros de desempenho de um intervalo de
// datas. O backend pode responder com a lista canônica ou com um agregado
// por plataforma; as duas formas saem daqui normalizadas.
func (c *StartPostClient) GetPerformanceMetrics(ctx context.Context, filters domain.AnalyticsFilters) ([]domain.AnalyticsData, error) {
	endpoint, err := c.endpoint("/analytics/performance")
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost, endpoint, performanceRequest{
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
		Platforms: filters.Platforms,
	})
	if err != nil {
		return nil, err
	}

	return NormalizeAnalyticsResponse(body)
}

// GetYesterdayAnalytics busca o desempenho de ontem de uma marca
func (c *StartPostClient) GetYesterdayAnalytics(ctx context.Context, brandName string) ([]domain.AnalyticsData, error) {
	endpoint, err := c.endpoint("/analytics/yesterday", brandName)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	// Algumas versões do backend embrulham a lista em {performance: [...]}
	var wrapped struct {
		Performance jsoniter.RawMessage `json:"performance"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && len(wrapped.Performance) > 0 {
		return NormalizeAnalyticsResponse(wrapped.Performance)
	}

	return NormalizeAnalyticsResponse(body)
}
