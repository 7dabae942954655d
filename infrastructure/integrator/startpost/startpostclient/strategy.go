package startpostclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/pkg/apperrors"
)

type generateStrategyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type activeStrategyResponse struct {
	Success bool                `json:"success"`
	Plan    *domain.MonthlyPlan `json:"plan,omitempty"`
}

type strategyPostsResponse struct {
	Success bool               `json:"success"`
	Posts   []domain.DailyPost `json:"posts"`
}

// GenerateStrategy dispara a geração de um plano no backend. A resposta é
// apenas uma confirmação: o plano gerado precisa ser buscado em seguida com
// GetActiveStrategy.
func (c *StartPostClient) GenerateStrategy(ctx context.Context, req domain.StrategyRequest) (bool, error) {
	endpoint, err := c.endpoint("/strategy/generate")
	if err != nil {
		return false, err
	}

	body, err := c.do(ctx, http.MethodPost, endpoint, req)
	if err != nil {
		return false, err
	}

	var response generateStrategyResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return false, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response.Success, nil
}

// GetActiveStrategy busca o plano ativo de uma marca. A ausência de plano
// não é um erro: o backend sinaliza com 404 e o cliente devolve nil.
func (c *StartPostClient) GetActiveStrategy(ctx context.Context, brandName string) (*domain.MonthlyPlan, error) {
	endpoint, err := c.endpoint("/strategy/active", brandName)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		var httpErr *apperrors.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	var response activeStrategyResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response.Plan, nil
}

// GetPostsForDate busca no backend os posts planejados de uma marca em uma
// data do calendário.
func (c *StartPostClient) GetPostsForDate(ctx context.Context, brandName, date string) ([]domain.DailyPost, error) {
	endpoint, err := c.endpoint("/strategy/posts", brandName, date)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var response strategyPostsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response.Posts, nil
}
