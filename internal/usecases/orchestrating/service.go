// Package orchestrating implementa o disparo e o acompanhamento da
// publicação diária de posts pelo orquestrador remoto.
package orchestrating

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/startpost/agent/infrastructure/integrator/startpost/startpostclient"
	"github.com/startpost/agent/internal/config"
	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/pkg/apperrors"
	"github.com/startpost/agent/pkg/log"
	"github.com/startpost/agent/pkg/utils"
)

// Orchestrator expõe as operações de publicação consumidas pela camada
// HTTP e pelo agendador diário
type Orchestrator interface {
	// ExecuteDaily dispara a publicação (ou simulação) dos posts da data.
	// Campos vazios da requisição são preenchidos com a configuração.
	ExecuteDaily(ctx context.Context, req domain.OrchestratorRequest) ([]domain.PostingResult, error)

	// Status consulta o estado corrente do orquestrador remoto
	Status(ctx context.Context) (*domain.OrchestratorStatus, error)

	// RetryPost reapresenta a publicação de uma plataforma que falhou
	RetryPost(ctx context.Context, date, platform string) (*domain.PostingResult, error)
}

type Service struct {
	cfg          *config.Config
	client       startpostclient.Client
	maxRetries   int
	initialDelay time.Duration
	now          func() time.Time
}

// NewService cria uma nova instância do serviço de orquestração
func NewService(cfg *config.Config, client startpostclient.Client) *Service {
	return &Service{
		cfg:          cfg,
		client:       client,
		maxRetries:   apperrors.DefaultMaxRetries,
		initialDelay: apperrors.DefaultInitialDelay,
		now:          time.Now,
	}
}

// WithRetry ajusta a política de retry da simulação diária
func (s *Service) WithRetry(maxRetries int, initialDelay time.Duration) *Service {
	if maxRetries > 0 {
		s.maxRetries = maxRetries
	}
	if initialDelay > 0 {
		s.initialDelay = initialDelay
	}
	return s
}

func (s *Service) ExecuteDaily(ctx context.Context, req domain.OrchestratorRequest) ([]domain.PostingResult, error) {
	if req.CompanyName == "" {
		req.CompanyName = s.cfg.StartPost.BrandName
	}

	if req.CompanyName == "" {
		return nil, errors.New("o nome da empresa é obrigatório para orquestrar")
	}

	if req.ExecuteDate == "" {
		req.ExecuteDate = utils.FormatDate(s.now())
	}

	var results []domain.PostingResult
	var err error

	// O disparo real não é idempotente: repetir depois de uma falha parcial
	// pode publicar duas vezes. Só a simulação é retentada.
	if req.DryRun {
		err = apperrors.RetryWithBackoff(ctx, func() error {
			var callErr error
			results, callErr = s.client.ExecuteDailyOrchestration(ctx, req)
			return callErr
		}, s.maxRetries, s.initialDelay)
	} else {
		results, err = s.client.ExecuteDailyOrchestration(ctx, req)
	}

	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a orquestração diária")
	}

	failures := 0
	for _, result := range results {
		if !result.Success {
			failures++
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"companyName": req.CompanyName,
		"executeDate": req.ExecuteDate,
		"dryRun":      req.DryRun,
		"results":     len(results),
		"failures":    failures,
	}).Info("Orquestração diária concluída")

	return results, nil
}

func (s *Service) Status(ctx context.Context) (*domain.OrchestratorStatus, error) {
	status, err := s.client.GetOrchestratorStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar o status do orquestrador")
	}

	return status, nil
}

func (s *Service) RetryPost(ctx context.Context, date, platform string) (*domain.PostingResult, error) {
	if date == "" || platform == "" {
		return nil, errors.New("data e plataforma são obrigatórias para reapresentar")
	}

	result, err := s.client.RetryPost(ctx, date, platform)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao reapresentar a publicação")
	}

	return result, nil
}
