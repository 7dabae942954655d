package domain

// BrandIdentity descreve a marca do usuário, usada para direcionar a geração
// de conteúdo. Criada ou sobrescrita integralmente pelo assistente de setup.
// O campo Features é polimórfico por convenção de prefixo: entradas "DO:" e
// "DONT:" codificam diretrizes editoriais e entradas "#" codificam hashtags.
type BrandIdentity struct {
	Name           string   `json:"name"`
	Industry       string   `json:"industry"`
	Website        string   `json:"website,omitempty"`
	StartupName    string   `json:"startupName,omitempty"`
	StartupURL     string   `json:"startupUrl,omitempty"`
	Mission        string   `json:"mission"`
	TargetAudience string   `json:"targetAudience"`
	USP            string   `json:"usp"`
	Voice          string   `json:"voice"`
	Features       []string `json:"features"`
}

type Cadence string

const (
	CadenceDaily    Cadence = "daily"
	CadenceWeekly   Cadence = "weekly"
	CadenceBiweekly Cadence = "biweekly"
)

type KPI string

const (
	KPIEngagementRate KPI = "ER"
	KPIClickThrough   KPI = "CTR"
	KPIGrowth         KPI = "growth"
)

// ProjectGoals define os objetivos de campanha do projeto. EnabledNetworks
// deveria ser subconjunto dos provedores conectados, mas isso não é imposto
// aqui; o handler HTTP apenas sinaliza divergências.
type ProjectGoals struct {
	Cadence         Cadence    `json:"cadence"`
	Objectives      []string   `json:"objectives"`
	KPIs            []KPI      `json:"kpis"`
	TargetKPI       KPI        `json:"targetKpi"`
	EnabledNetworks []Provider `json:"enabledNetworks"`
}

// BrandInfo representa o posicionamento extraído pela análise de landing page
type BrandInfo struct {
	BrandName      string   `json:"brand_name"`
	Positioning    string   `json:"positioning"`
	TargetAudience string   `json:"target_audience"`
	ValueProps     []string `json:"value_props"`
	Tone           string   `json:"tone"`
	Language       string   `json:"language,omitempty"`
}
