// Package analyzing implementa a consulta de métricas de desempenho com
// retry e degradação para dados sintéticos quando o backend está fora.
package analyzing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/startpost/agent/infrastructure/integrator/startpost/startpostclient"
	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/pkg/apperrors"
	"github.com/startpost/agent/pkg/log"
	"github.com/startpost/agent/pkg/utils"
)

// Analyzer expõe as consultas de desempenho consumidas pela camada HTTP e
// pelo agendador de sincronização
type Analyzer interface {
	// PerformanceMetrics busca as métricas do intervalo. Com o backend
	// indisponível, resolve para uma sequência sintética delimitada pelo
	// mesmo intervalo e filtro, com a origem carimbada.
	PerformanceMetrics(ctx context.Context, filters domain.AnalyticsFilters) ([]domain.AnalyticsData, error)

	// YesterdayAnalytics busca o desempenho do dia anterior da marca
	YesterdayAnalytics(ctx context.Context, brandName string) ([]domain.AnalyticsData, error)
}

type Service struct {
	client       startpostclient.Client
	maxRetries   int
	initialDelay time.Duration
	now          func() time.Time
}

// NewService cria uma nova instância do serviço de análise
func NewService(client startpostclient.Client) *Service {
	return &Service{
		client:       client,
		maxRetries:   apperrors.DefaultMaxRetries,
		initialDelay: apperrors.DefaultInitialDelay,
		now:          time.Now,
	}
}

// WithRetry ajusta a política de retry das consultas ao backend
func (s *Service) WithRetry(maxRetries int, initialDelay time.Duration) *Service {
	if maxRetries > 0 {
		s.maxRetries = maxRetries
	}
	if initialDelay > 0 {
		s.initialDelay = initialDelay
	}
	return s
}

func (s *Service) PerformanceMetrics(ctx context.Context, filters domain.AnalyticsFilters) ([]domain.AnalyticsData, error) {
	if filters.StartDate == "" || filters.EndDate == "" {
		return nil, errors.New("é necessário informar as datas de início e fim")
	}

	start, err := utils.ParseDate(filters.StartDate)
	if err != nil {
		return nil, errors.Wrap(err, "data de início inválida")
	}

	end, err := utils.ParseDate(filters.EndDate)
	if err != nil {
		return nil, errors.Wrap(err, "data de fim inválida")
	}

	if start.After(*end) {
		return nil, errors.New("a data de início não pode ser posterior à data de fim")
	}

	var records []domain.AnalyticsData

	err = apperrors.RetryWithBackoff(ctx, func() error {
		var callErr error
		records, callErr = s.client.GetPerformanceMetrics(ctx, filters)
		return callErr
	}, s.maxRetries, s.initialDelay)

	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"startDate": filters.StartDate,
			"endDate":   filters.EndDate,
		}).Warn("Backend indisponível, degradando para métricas sintéticas")

		return GenerateSyntheticAnalytics(*start, *end, filters.Platforms), nil
	}

	return records, nil
}

func (s *Service) YesterdayAnalytics(ctx context.Context, brandName string) ([]domain.AnalyticsData, error) {
	var records []domain.AnalyticsData

	err := apperrors.RetryWithBackoff(ctx, func() error {
		var callErr error
		records, callErr = s.client.GetYesterdayAnalytics(ctx, brandName)
		return callErr
	}, s.maxRetries, s.initialDelay)

	if err != nil {
		yesterday := s.now().AddDate(0, 0, -1).Truncate(24 * time.Hour)

		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"brandName": brandName,
		}).Warn("Backend indisponível, degradando para métricas sintéticas de ontem")

		return GenerateSyntheticAnalytics(yesterday, yesterday, nil), nil
	}

	return records, nil
}
