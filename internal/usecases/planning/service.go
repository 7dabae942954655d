// Package planning implementa a geração e o cache de estratégias de
// conteúdo, além da curadoria local dos posts propostos.
package planning

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/startpost/agent/infrastructure/integrator/startpost/startpostclient"
	"github.com/startpost/agent/internal/config"
	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/internal/store"
	"github.com/startpost/agent/pkg/log"
)

const (
	defaultPollAttempts = 5
	defaultPollDelay    = time.Second
)

// Planner expõe as operações de estratégia consumidas pela camada HTTP e
// pelos agendadores
type Planner interface {
	// GenerateStrategy dispara a geração no backend e busca o plano
	// resultante. Geração aceita sem plano disponível vira ErrPlanNotReady.
	GenerateStrategy(ctx context.Context, req domain.StrategyRequest) (*domain.MonthlyPlan, error)

	// GenerateFromProfile monta a requisição de geração a partir do perfil
	// do projeto persistido
	GenerateFromProfile(ctx context.Context, startDate string, durationDays int) (*domain.MonthlyPlan, error)

	// ActiveStrategy resolve a estratégia corrente da marca. O cache
	// persistido tem precedência sobre uma busca ao backend.
	ActiveStrategy(ctx context.Context, brandName string) (*domain.MonthlyPlan, error)

	// Strategies lista os planos em cache, na ordem de inserção
	Strategies() []domain.MonthlyPlan

	// RemoveStrategy descarta o plano da marca do cache
	RemoveStrategy(ctx context.Context, brandName string) error

	// PlannedPosts consulta no backend os posts planejados da marca na data
	PlannedPosts(ctx context.Context, brandName, date string) ([]domain.DailyPost, error)

	// ProposedPostsForDate deriva os posts propostos da data, com os
	// overrides locais aplicados
	ProposedPostsForDate(ctx context.Context, date string) ([]domain.ProposedPost, error)

	// UpdateProposedPost registra uma aprovação ou edição local do post
	UpdateProposedPost(ctx context.Context, override domain.PostOverride) error
}

type Service struct {
	cfg           *config.Config
	client        startpostclient.Client
	strategyStore *store.StrategyStore
	projectStore  *store.ProjectStore
	contentStore  *store.ContentStore
	pollAttempts  int
	pollDelay     time.Duration
}

// NewService cria uma nova instância do serviço de planejamento
func NewService(
	cfg *config.Config,
	client startpostclient.Client,
	strategyStore *store.StrategyStore,
	projectStore *store.ProjectStore,
	contentStore *store.ContentStore,
) *Service {
	return &Service{
		cfg:           cfg,
		client:        client,
		strategyStore: strategyStore,
		projectStore:  projectStore,
		contentStore:  contentStore,
		pollAttempts:  defaultPollAttempts,
		pollDelay:     defaultPollDelay,
	}
}

// WithPolling ajusta a espera pela disponibilidade do plano após a geração
func (s *Service) WithPolling(attempts int, delay time.Duration) *Service {
	if attempts > 0 {
		s.pollAttempts = attempts
	}
	if delay > 0 {
		s.pollDelay = delay
	}
	return s
}

func (s *Service) GenerateStrategy(ctx context.Context, req domain.StrategyRequest) (*domain.MonthlyPlan, error) {
	if req.BrandName == "" {
		return nil, errors.New("o nome da marca é obrigatório para gerar a estratégia")
	}

	accepted, err := s.client.GenerateStrategy(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao disparar a geração da estratégia")
	}

	if !accepted {
		return nil, errors.New("o backend recusou a geração da estratégia")
	}

	plan, err := s.pollActiveStrategy(ctx, req.BrandName)
	if err != nil {
		return nil, err
	}

	if plan == nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"brandName": req.BrandName,
			"attempts":  s.pollAttempts,
		}).Warn("Geração aceita mas o plano ainda não está disponível")
		return nil, ErrPlanNotReady
	}

	if err := s.adoptPlan(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

func (s *Service) GenerateFromProfile(ctx context.Context, startDate string, durationDays int) (*domain.MonthlyPlan, error) {
	brand := s.projectStore.BrandIdentity()
	if brand == nil {
		return nil, ErrMissingBrandIdentity
	}

	req := buildStrategyRequest(*brand, s.projectStore.Goals(), startDate, durationDays)

	return s.GenerateStrategy(ctx, req)
}

func (s *Service) ActiveStrategy(ctx context.Context, brandName string) (*domain.MonthlyPlan, error) {
	// O cache persistido tem precedência: uma busca só substitui a visão
	// corrente quando não há nada em cache para a marca
	if active := s.strategyStore.ActiveStrategy(); active != nil && active.BrandName == brandName {
		return active, nil
	}

	if cached := s.strategyStore.GetStrategy(brandName); cached != nil {
		if err := s.strategyStore.SetActiveStrategy(ctx, *cached); err != nil {
			return nil, err
		}
		return cached, nil
	}

	plan, err := s.client.GetActiveStrategy(ctx, brandName)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a estratégia ativa no backend")
	}

	if plan == nil {
		return nil, ErrNoActiveStrategy
	}

	if err := s.adoptPlan(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

func (s *Service) Strategies() []domain.MonthlyPlan {
	return s.strategyStore.Strategies()
}

func (s *Service) RemoveStrategy(ctx context.Context, brandName string) error {
	if brandName == "" {
		return errors.New("o nome da marca é obrigatório")
	}

	return s.strategyStore.RemoveStrategy(ctx, brandName)
}

// PlannedPosts é a variante do lado do servidor da consulta local por data:
// pergunta ao backend o que está planejado, sem tocar no cache
func (s *Service) PlannedPosts(ctx context.Context, brandName, date string) ([]domain.DailyPost, error) {
	posts, err := s.client.GetPostsForDate(ctx, brandName, date)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar os posts planejados no backend")
	}

	return posts, nil
}

func (s *Service) ProposedPostsForDate(ctx context.Context, date string) ([]domain.ProposedPost, error) {
	active := s.strategyStore.ActiveStrategy()
	if active == nil {
		return nil, ErrNoActiveStrategy
	}

	posts := s.strategyStore.GetPostsForDate(date)

	return s.contentStore.ProposedPosts(active.BrandName, posts)
}

func (s *Service) UpdateProposedPost(ctx context.Context, override domain.PostOverride) error {
	return s.contentStore.ApplyOverride(ctx, override)
}

// pollActiveStrategy busca o plano gerado com espera dobrada entre as
// tentativas, já que a geração é assíncrona do lado do backend
func (s *Service) pollActiveStrategy(ctx context.Context, brandName string) (*domain.MonthlyPlan, error) {
	delay := s.pollDelay

	for attempt := 0; attempt < s.pollAttempts; attempt++ {
		plan, err := s.client.GetActiveStrategy(ctx, brandName)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar o plano gerado")
		}

		if plan != nil {
			return plan, nil
		}

		if attempt == s.pollAttempts-1 {
			break
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		delay *= 2
	}

	return nil, nil
}

func (s *Service) adoptPlan(ctx context.Context, plan *domain.MonthlyPlan) error {
	if err := s.strategyStore.SetActiveStrategy(ctx, *plan); err != nil {
		return errors.Wrap(err, "erro ao guardar a estratégia no cache")
	}

	if err := s.strategyStore.MarkSynced(ctx); err != nil {
		return errors.Wrap(err, "erro ao carimbar a sincronização")
	}

	return nil
}

// buildStrategyRequest deriva a requisição de geração do perfil persistido.
// As entradas polimórficas de features viram diretrizes e hashtags; o resto
// vira proposta de valor.
func buildStrategyRequest(brand domain.BrandIdentity, goals *domain.ProjectGoals, startDate string, durationDays int) domain.StrategyRequest {
	req := domain.StrategyRequest{
		BrandName:      brand.Name,
		Positioning:    brand.Mission,
		TargetAudience: brand.TargetAudience,
		StartDate:      startDate,
		DurationDays:   durationDays,
		Tone:           brand.Voice,
		StartupName:    brand.StartupName,
		StartupURL:     brand.StartupURL,
	}

	if brand.USP != "" {
		req.ValueProps = append(req.ValueProps, brand.USP)
	}

	for _, feature := range brand.Features {
		if strings.HasPrefix(feature, "DO:") || strings.HasPrefix(feature, "DONT:") || strings.HasPrefix(feature, "#") {
			continue
		}
		req.ValueProps = append(req.ValueProps, feature)
	}

	if brand.Website != "" {
		req.CTATargets = append(req.CTATargets, brand.Website)
	}

	if goals != nil {
		for _, provider := range goals.EnabledNetworks {
			if platform, ok := domain.PlanPlatformForProvider(provider); ok {
				req.Platforms = append(req.Platforms, string(platform))
			}
		}
	}

	return req
}
