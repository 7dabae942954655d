package domain

// OrchestratorRequest dispara a execução (ou simulação) da publicação dos
// posts agendados para uma data.
type OrchestratorRequest struct {
	CompanyName    string   `json:"company_name,omitempty"`
	ExecuteDate    string   `json:"execute_date,omitempty"`
	ForceExecution bool     `json:"force_execution,omitempty"`
	DryRun         bool     `json:"dry_run,omitempty"`
	Platforms      []string `json:"platforms,omitempty"`
	StartupName    string   `json:"startup_name,omitempty"`
	StartupURL     string   `json:"startup_url,omitempty"`
}

// PostingResult é o resultado de publicação de uma plataforma
type PostingResult struct {
	Success   bool   `json:"success"`
	Platform  string `json:"platform"`
	PostID    string `json:"post_id,omitempty"`
	PostURL   string `json:"post_url,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

// OrchestratorStatus é o estado corrente reportado pelo orquestrador remoto
type OrchestratorStatus struct {
	Running       bool   `json:"running"`
	LastExecution string `json:"last_execution,omitempty"`
	NextExecution string `json:"next_execution,omitempty"`
	PendingPosts  int    `json:"pending_posts"`
}
