package startpostclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/startpost/agent/internal/domain"
)

// ExecuteDailyOrchestration dispara a publicação (ou simulação) dos posts de
// uma data. O envelope de resposta varia entre um array puro e um objeto
// {results: [...]}; a normalização fica no adaptador.
func (c *StartPostClient) ExecuteDailyOrchestration(ctx context.Context, req domain.OrchestratorRequest) ([]domain.PostingResult, error) {
	endpoint, err := c.endpoint("/orchestrator/daily")
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost, endpoint, req)
	if err != nil {
		return nil, err
	}

	return NormalizeOrchestrationResponse(body)
}

// GetOrchestratorStatus consulta o estado corrente do orquestrador remoto
func (c *StartPostClient) GetOrchestratorStatus(ctx context.Context) (*domain.OrchestratorStatus, error) {
	endpoint, err := c.endpoint("/orchestrator/status")
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var status domain.OrchestratorStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &status, nil
}

// RetryPost repete a publicação de uma plataforma em uma data específica
func (c *StartPostClient) RetryPost(ctx context.Context, date, platform string) (*domain.PostingResult, error) {
	endpoint, err := c.endpoint("/orchestrator/retry", date, platform)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var result domain.PostingResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &result, nil
}
