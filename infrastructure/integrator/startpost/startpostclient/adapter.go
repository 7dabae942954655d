package startpostclient

import (
	"fmt"
	"sort"
	"time"

	"github.com/startpost/agent/internal/domain"
)

// O backend responde analytics em dois formatos: a lista canônica de
// registros por post, ou um agregado por plataforma. O parse acontece uma
// única vez aqui, produzindo uma união etiquetada; cada etiqueta tem
// exatamente uma função de normalização.

type analyticsPayloadKind int

const (
	analyticsPayloadUnknown analyticsPayloadKind = iota
	analyticsPayloadList
	analyticsPayloadAggregate
)

type platformMetrics struct {
	Impressions int `json:"impressions"`
	Engagements int `json:"engagements"`
	Clicks      int `json:"clicks"`
	Shares      int `json:"shares"`
	Comments    int `json:"comments"`
	Likes       int `json:"likes"`
}

type aggregateMetrics struct {
	ByPlatform            map[string]platformMetrics `json:"by_platform"`
	TotalImpressions      *int                       `json:"total_impressions"`
	TotalEngagements      int                        `json:"total_engagements"`
	TotalClicks           int                        `json:"total_clicks"`
	AverageEngagementRate float64                    `json:"average_engagement_rate"`
}

type analyticsPayload struct {
	kind    analyticsPayloadKind
	items   []domain.AnalyticsData
	metrics *aggregateMetrics
}

func parseAnalyticsPayload(raw []byte) analyticsPayload {
	var items []domain.AnalyticsData
	if err := json.Unmarshal(raw, &items); err == nil {
		return analyticsPayload{kind: analyticsPayloadList, items: items}
	}

	var envelope struct {
		Metrics *aggregateMetrics `json:"metrics"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Metrics != nil {
		return analyticsPayload{kind: analyticsPayloadAggregate, metrics: envelope.Metrics}
	}

	return analyticsPayload{kind: analyticsPayloadUnknown}
}

// NormalizeAnalyticsResponse converte qualquer formato de resposta de
// analytics na lista canônica. Listas passam inalteradas; agregados viram
// um registro sintético por plataforma; formatos desconhecidos viram uma
// lista vazia, nunca um erro.
func NormalizeAnalyticsResponse(raw []byte) ([]domain.AnalyticsData, error) {
	payload := parseAnalyticsPayload(raw)

	switch payload.kind {
	case analyticsPayloadList:
		return payload.items, nil
	case analyticsPayloadAggregate:
		return normalizeAggregate(payload.metrics), nil
	default:
		return []domain.AnalyticsData{}, nil
	}
}

func normalizeAggregate(metrics *aggregateMetrics) []domain.AnalyticsData {
	now := time.Now()
	data := make([]domain.AnalyticsData, 0, len(metrics.ByPlatform))

	// Ordem estável por nome de plataforma
	platforms := make([]string, 0, len(metrics.ByPlatform))
	for platform := range metrics.ByPlatform {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)

	for _, platform := range platforms {
		m := metrics.ByPlatform[platform]

		engagementRate := 0.0
		if m.Impressions > 0 {
			engagementRate = float64(m.Engagements) / float64(m.Impressions) * 100
		}

		data = append(data, domain.AnalyticsData{
			PostID:         fmt.Sprintf("aggregate_%s_%d", platform, now.UnixMilli()),
			Platform:       platform,
			Impressions:    m.Impressions,
			Engagements:    m.Engagements,
			Clicks:         m.Clicks,
			Shares:         m.Shares,
			Comments:       m.Comments,
			Likes:          m.Likes,
			EngagementRate: engagementRate,
			MeasuredAt:     now.Format(time.RFC3339),
			Source:         domain.AnalyticsSourceAPI,
		})
	}

	// Sem detalhamento por plataforma, criar uma única entrada agregada
	if len(data) == 0 && metrics.TotalImpressions != nil {
		data = append(data, domain.AnalyticsData{
			PostID:         fmt.Sprintf("aggregate_all_%d", now.UnixMilli()),
			Platform:       "All",
			Impressions:    *metrics.TotalImpressions,
			Engagements:    metrics.TotalEngagements,
			Clicks:         metrics.TotalClicks,
			EngagementRate: metrics.AverageEngagementRate,
			MeasuredAt:     now.Format(time.RFC3339),
			Source:         domain.AnalyticsSourceAPI,
		})
	}

	return data
}

// NormalizeOrchestrationResponse converte o envelope de orquestração (array
// puro ou {results: [...]}) na sequência canônica de resultados.
func NormalizeOrchestrationResponse(raw []byte) ([]domain.PostingResult, error) {
	var envelope struct {
		Results []domain.PostingResult `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Results != nil {
		return envelope.Results, nil
	}

	var results []domain.PostingResult
	if err := json.Unmarshal(raw, &results); err == nil {
		return results, nil
	}

	return []domain.PostingResult{}, nil
}
