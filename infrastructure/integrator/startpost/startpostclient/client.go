// Package startpostclient implementa o cliente HTTP tipado do backend
// StartPost (geração de estratégia, orquestração, analytics e análise de
// landing page).
package startpostclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/startpost/agent/internal/config"
	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/pkg/apperrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GenerateStrategy(ctx context.Context, req domain.StrategyRequest) (bool, error)
	GetActiveStrategy(ctx context.Context, brandName string) (*domain.MonthlyPlan, error)
	GetPostsForDate(ctx context.Context, brandName, date string) ([]domain.DailyPost, error)
	ExecuteDailyOrchestration(ctx context.Context, req domain.OrchestratorRequest) ([]domain.PostingResult, error)
	GetOrchestratorStatus(ctx context.Context) (*domain.OrchestratorStatus, error)
	RetryPost(ctx context.Context, date, platform string) (*domain.PostingResult, error)
	GetPerformanceMetrics(ctx context.Context, filters domain.AnalyticsFilters) ([]domain.AnalyticsData, error)
	GetYesterdayAnalytics(ctx context.Context, brandName string) ([]domain.AnalyticsData, error)
	AnalyzeLandingPage(ctx context.Context, pageURL string) (*domain.BrandInfo, error)
	HealthCheck(ctx context.Context) error
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

type StartPostClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API StartPost
func NewClient(cfg *config.Config) Client {
	timeout := cfg.StartPost.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &StartPostClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

// endpoint monta a URL absoluta de um caminho da API
func (c *StartPostClient) endpoint(segments ...string) (string, error) {
	base, err := url.Parse(c.config.StartPost.BaseURL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	base.Path = path.Join(append([]string{base.Path}, segments...)...)

	return base.String(), nil
}

// do executa uma requisição JSON e devolve o corpo da resposta. Respostas
// com status de erro viram apperrors.HTTPError preservando o corpo para a
// extração de mensagem.
func (c *StartPostClient) do(ctx context.Context, method, endpoint string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apperrors.HTTPError{
			StatusCode: resp.StatusCode,
			Body:       data,
		}
	}

	return data, nil
}
