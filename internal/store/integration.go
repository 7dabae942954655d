package store

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/startpost/agent/infrastructure/repository"
	"github.com/startpost/agent/internal/domain"
)

// Horizonte fixo de expiração aplicado ao conectar um provedor
const integrationExpiry = 30 * 24 * time.Hour

// IntegrationStore é o registro de conexões por provedor. É uma simulação
// local do estado OAuth: conectar nunca chama um provedor real. O registro
// mantém exatamente um registro por provedor suportado.
type IntegrationStore struct {
	mu           sync.Mutex
	integrations []domain.Integration
	repo         repository.StateRepository
	now          func() time.Time
}

// NewIntegrationStore reidrata o registro persistido. Provedores ausentes do
// documento são re-semeados desconectados, preservando o invariante de um
// registro por provedor mesmo após mudanças no conjunto suportado.
func NewIntegrationStore(ctx context.Context, repo repository.StateRepository) (*IntegrationStore, error) {
	s := &IntegrationStore{
		repo: repo,
		now:  time.Now,
	}

	var persisted []domain.Integration

	payload, err := repo.Load(ctx, repository.IntegrationsKey)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao reidratar as integrações")
	}

	if payload != nil {
		if err := json.Unmarshal(payload, &persisted); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar as integrações persistidas")
		}
	}

	byProvider := make(map[domain.Provider]domain.Integration, len(persisted))
	for _, it := range persisted {
		byProvider[it.Provider] = it
	}

	for _, provider := range domain.AllProviders() {
		it, ok := byProvider[provider]
		if !ok {
			it = domain.Integration{Provider: provider, Connected: false}
		}
		s.integrations = append(s.integrations, it)
	}

	return s, nil
}

// List retorna os registros na ordem de exibição
func (s *IntegrationStore) List() []domain.Integration {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Integration, len(s.integrations))
	copy(out, s.integrations)
	return out
}

// GetIntegration retorna o registro do provedor. Dado o pré-semeio, só
// retorna false para provedores fora do conjunto suportado.
func (s *IntegrationStore) GetIntegration(provider domain.Provider) (domain.Integration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.integrations {
		if it.Provider == provider {
			return it, true
		}
	}
	return domain.Integration{}, false
}

func (s *IntegrationStore) IsConnected(provider domain.Provider) bool {
	it, ok := s.GetIntegration(provider)
	return ok && it.Connected
}

// Connect marca o provedor como conectado, mescla os metadados opcionais da
// conta e carimba connectedAt e expiresAt. Reconectar um provedor já
// conectado apenas re-carimba os horários.
func (s *IntegrationStore) Connect(ctx context.Context, provider domain.Provider, account *domain.IntegrationAccount) error {
	if !domain.ValidProvider(provider) {
		return errors.Errorf("provedor não suportado: %s", provider)
	}

	return s.mutate(ctx, provider, func(it *domain.Integration) {
		connectedAt := s.now()
		expiresAt := connectedAt.Add(integrationExpiry)

		it.Connected = true
		it.ConnectedAt = &connectedAt
		it.ExpiresAt = &expiresAt

		if account != nil {
			if account.AccountName != "" {
				it.AccountName = account.AccountName
			}
			if account.AccountID != "" {
				it.AccountID = account.AccountID
			}
			if len(account.Scopes) > 0 {
				it.Scopes = account.Scopes
			}
		}
	})
}

// Disconnect redefine o registro para a forma desconectada, descartando os
// metadados da conta
func (s *IntegrationStore) Disconnect(ctx context.Context, provider domain.Provider) error {
	if !domain.ValidProvider(provider) {
		return errors.Errorf("provedor não suportado: %s", provider)
	}

	return s.mutate(ctx, provider, func(it *domain.Integration) {
		*it = domain.Integration{Provider: provider, Connected: false}
	})
}

func (s *IntegrationStore) mutate(ctx context.Context, provider domain.Provider, fn func(*domain.Integration)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.integrations {
		if s.integrations[i].Provider != provider {
			continue
		}

		previous := s.integrations[i]
		fn(&s.integrations[i])

		payload, err := json.Marshal(s.integrations)
		if err != nil {
			s.integrations[i] = previous
			return errors.Wrap(err, "erro ao serializar as integrações")
		}

		if err := s.repo.Save(ctx, repository.IntegrationsKey, payload); err != nil {
			s.integrations[i] = previous
			return errors.Wrap(err, "erro ao persistir as integrações")
		}

		return nil
	}

	return errors.Errorf("provedor não registrado: %s", provider)
}
