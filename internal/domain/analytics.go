package domain

// Origem de um registro de analytics. Registros sintéticos são gerados
// localmente quando o backend está indisponível e nunca devem ser tratados
// como dados reais.
const (
	AnalyticsSourceAPI       = "api"
	AnalyticsSourceSynthetic = "synthetic"
)

// AnalyticsData é um registro plano de desempenho por post. Não é
// persistido: buscado sob demanda por intervalo de datas e filtro opcional
// de plataforma.
type AnalyticsData struct {
	PostID         string  `json:"post_id"`
	Platform       string  `json:"platform"`
	Impressions    int     `json:"impressions"`
	Engagements    int     `json:"engagements"`
	Clicks         int     `json:"clicks"`
	Shares         int     `json:"shares"`
	Comments       int     `json:"comments"`
	Likes          int     `json:"likes"`
	EngagementRate float64 `json:"engagement_rate"`
	MeasuredAt     string  `json:"measured_at"`
	Source         string  `json:"source,omitempty"`
}

// AnalyticsFilters delimita uma consulta de desempenho
type AnalyticsFilters struct {
	StartDate string
	EndDate   string
	Platforms []string
}
