package startpostclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/startpost/agent/internal/domain"
)

type analyzeLandingPageRequest struct {
	URL string `json:"url"`
}

// AnalyzeLandingPage extrai posicionamento de marca de uma URL. Chamada
// única, sem retry: falhas sobem direto para o chamador.
func (c *StartPostClient) AnalyzeLandingPage(ctx context.Context, pageURL string) (*domain.BrandInfo, error) {
	endpoint, err := c.endpoint("/analyze/landing-page")
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost, endpoint, analyzeLandingPageRequest{URL: pageURL})
	if err != nil {
		return nil, err
	}

	var info domain.BrandInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &info, nil
}
