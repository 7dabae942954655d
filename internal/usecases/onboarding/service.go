// Package onboarding implementa o pré-preenchimento do perfil de marca a
// partir da análise de uma landing page.
package onboarding

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
	"github.com/startpost/agent/infrastructure/integrator/startpost/startpostclient"
	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/internal/store"
)

// Onboarder expõe as operações do assistente de setup
type Onboarder interface {
	// AnalyzeLandingPage extrai o posicionamento da página. Tiro único,
	// sem retry: o erro sobe direto para o chamador.
	AnalyzeLandingPage(ctx context.Context, pageURL string) (*domain.BrandInfo, error)

	// PrefillBrandIdentity analisa a página e monta um rascunho de
	// identidade de marca, sem gravar nada no perfil
	PrefillBrandIdentity(ctx context.Context, pageURL string) (*domain.BrandIdentity, error)

	// CompleteSetup grava a identidade e os objetivos de uma vez e marca o
	// setup como concluído
	CompleteSetup(ctx context.Context, brand domain.BrandIdentity, goals domain.ProjectGoals) error
}

type Service struct {
	client       startpostclient.Client
	projectStore *store.ProjectStore
}

// NewService cria uma nova instância do serviço de onboarding
func NewService(client startpostclient.Client, projectStore *store.ProjectStore) *Service {
	return &Service{
		client:       client,
		projectStore: projectStore,
	}
}

func (s *Service) AnalyzeLandingPage(ctx context.Context, pageURL string) (*domain.BrandInfo, error) {
	if err := validatePageURL(pageURL); err != nil {
		return nil, err
	}

	info, err := s.client.AnalyzeLandingPage(ctx, pageURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a landing page")
	}

	return info, nil
}

func (s *Service) PrefillBrandIdentity(ctx context.Context, pageURL string) (*domain.BrandIdentity, error) {
	info, err := s.AnalyzeLandingPage(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	brand := &domain.BrandIdentity{
		Name:           info.BrandName,
		Website:        pageURL,
		Mission:        info.Positioning,
		TargetAudience: info.TargetAudience,
		Voice:          info.Tone,
		Features:       info.ValueProps,
	}

	if len(info.ValueProps) > 0 {
		brand.USP = info.ValueProps[0]
	}

	return brand, nil
}

func (s *Service) CompleteSetup(ctx context.Context, brand domain.BrandIdentity, goals domain.ProjectGoals) error {
	if err := s.projectStore.SetBrandIdentity(ctx, brand); err != nil {
		return err
	}

	if err := s.projectStore.SetGoals(ctx, goals); err != nil {
		return err
	}

	return s.projectStore.CompleteSetup(ctx)
}

func validatePageURL(pageURL string) error {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.Errorf("URL de landing page inválida: %s", pageURL)
	}
	return nil
}
