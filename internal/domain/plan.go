package domain

// PlanPlatform é o nome de plataforma usado dentro de um plano gerado.
// O backend usa nomes de exibição, não os identificadores de Provider.
type PlanPlatform string

const (
	PlanPlatformLinkedIn PlanPlatform = "LinkedIn"
	PlanPlatformFacebook PlanPlatform = "Facebook"
	PlanPlatformTwitter  PlanPlatform = "Twitter"
)

// PlanPlatformForProvider traduz um identificador de provedor para o nome
// de plataforma usado nos planos. Provedores sem plataforma de publicação
// correspondente retornam false.
func PlanPlatformForProvider(p Provider) (PlanPlatform, bool) {
	switch p {
	case ProviderLinkedIn:
		return PlanPlatformLinkedIn, true
	case ProviderFacebook:
		return PlanPlatformFacebook, true
	case ProviderTwitter:
		return PlanPlatformTwitter, true
	}
	return "", false
}

// EditorialGuidelines carrega o tom e as diretrizes editoriais do plano
type EditorialGuidelines struct {
	Tone                 string   `json:"tone"`
	DoList               []string `json:"do_list"`
	DontList             []string `json:"dont_list"`
	Language             string   `json:"language"`
	BrandVoiceAttributes []string `json:"brand_voice_attributes"`
}

// PostVariation descreve o ângulo criativo de um post do calendário
type PostVariation struct {
	Angle     string `json:"angle"`
	HookStyle string `json:"hook_style"`
	CTAType   string `json:"cta_type"`
	Format    string `json:"format"`
}

// DailyPost é um post planejado do calendário. Imutável após a geração:
// edições e aprovações locais vivem em ProposedPost, nunca aqui.
type DailyPost struct {
	Date          string        `json:"date"`
	Platform      PlanPlatform  `json:"platform"`
	Pillar        string        `json:"pillar"`
	Topic         string        `json:"topic"`
	KeyMessage    string        `json:"key_message"`
	Variation     PostVariation `json:"variation"`
	HashtagsCount int           `json:"hashtags_count"`
	ImageRequired bool          `json:"image_required"`
}

// Calendar é o calendário de publicação de um plano. As datas dos posts
// devem cair dentro de [StartDate, EndDate]; TotalPosts é informativo e não
// é revalidado pelo cliente.
type Calendar struct {
	StartDate        string         `json:"start_date"`
	EndDate          string         `json:"end_date"`
	Posts            []DailyPost    `json:"posts"`
	TotalPosts       int            `json:"total_posts"`
	PostsPerPlatform map[string]int `json:"posts_per_platform"`
}

// MonthlyPlan é uma estratégia gerada para uma marca. BrandName é a chave
// natural do plano: o cache de estratégias nunca guarda dois planos para a
// mesma marca.
type MonthlyPlan struct {
	CampaignName        string              `json:"campaign_name"`
	BrandName           string              `json:"brand_name"`
	Positioning         string              `json:"positioning"`
	TargetAudience      string              `json:"target_audience"`
	ValuePropositions   []string            `json:"value_propositions"`
	ContentPillars      []string            `json:"content_pillars"`
	EditorialGuidelines EditorialGuidelines `json:"editorial_guidelines"`
	Calendar            Calendar            `json:"calendar"`
	CreatedAt           string              `json:"created_at"`
	Version             string              `json:"version"`
}

// StrategyRequest é o corpo enviado ao backend para disparar uma geração
type StrategyRequest struct {
	BrandName      string   `json:"brand_name"`
	Positioning    string   `json:"positioning"`
	TargetAudience string   `json:"target_audience"`
	ValueProps     []string `json:"value_props"`
	StartDate      string   `json:"start_date"`
	DurationDays   int      `json:"duration_days,omitempty"`
	Language       string   `json:"language,omitempty"`
	Tone           string   `json:"tone,omitempty"`
	CTATargets     []string `json:"cta_targets"`
	StartupName    string   `json:"startup_name,omitempty"`
	StartupURL     string   `json:"startup_url,omitempty"`
	Platforms      []string `json:"platforms,omitempty"`
}
