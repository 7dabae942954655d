package startpostclient

import (
	"context"
	"fmt"
	"net/http"
)

// HealthCheck verifica se o backend está acessível
func (c *StartPostClient) HealthCheck(ctx context.Context) error {
	endpoint, err := c.endpoint("/health")
	if err != nil {
		return err
	}

	if _, err := c.do(ctx, http.MethodGet, endpoint, nil); err != nil {
		return err
	}

	return nil
}

// GetMetrics busca as métricas operacionais expostas pelo backend
func (c *StartPostClient) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	endpoint, err := c.endpoint("/metrics")
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	metrics := make(map[string]interface{})
	if err := json.Unmarshal(body, &metrics); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return metrics, nil
}
