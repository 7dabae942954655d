package store

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/startpost/agent/infrastructure/repository"
	"github.com/startpost/agent/internal/domain"
)

// StrategyState é o documento persistido do cache de estratégias
type StrategyState struct {
	ActiveStrategy *domain.MonthlyPlan  `json:"activeStrategy"`
	Strategies     []domain.MonthlyPlan `json:"strategies"`
	LastSync       *time.Time           `json:"lastSync"`
}

// StrategyStore é o cache de estratégias geradas. A lista é chaveada pelo
// nome da marca, sem duplicatas; SetActiveStrategy é o único caminho de
// escrita que atualiza a estratégia corrente e a lista ao mesmo tempo.
type StrategyStore struct {
	mu    sync.Mutex
	state StrategyState
	repo  repository.StateRepository
	now   func() time.Time
}

func NewStrategyStore(ctx context.Context, repo repository.StateRepository) (*StrategyStore, error) {
	s := &StrategyStore{
		repo: repo,
		now:  time.Now,
	}

	payload, err := repo.Load(ctx, repository.StrategyKey)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao reidratar o cache de estratégias")
	}

	if payload != nil {
		if err := json.Unmarshal(payload, &s.state); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar o cache de estratégias persistido")
		}
	}

	return s, nil
}

// ActiveStrategy retorna a estratégia corrente ou nil
func (s *StrategyStore) ActiveStrategy() *domain.MonthlyPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ActiveStrategy == nil {
		return nil
	}
	plan := *s.state.ActiveStrategy
	return &plan
}

// Strategies retorna a lista de estratégias conhecidas, na ordem de inserção
func (s *StrategyStore) Strategies() []domain.MonthlyPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.MonthlyPlan, len(s.state.Strategies))
	copy(out, s.state.Strategies)
	return out
}

func (s *StrategyStore) LastSync() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.LastSync == nil {
		return nil
	}
	t := *s.state.LastSync
	return &t
}

// SetActiveStrategy define a estratégia corrente e faz o upsert na lista:
// um plano existente da mesma marca é substituído na posição original,
// um plano novo é anexado ao final.
func (s *StrategyStore) SetActiveStrategy(ctx context.Context, plan domain.MonthlyPlan) error {
	if plan.BrandName == "" {
		return errors.New("o plano precisa de um nome de marca")
	}

	return s.mutate(ctx, func(st *StrategyState) {
		st.ActiveStrategy = &plan

		for i := range st.Strategies {
			if st.Strategies[i].BrandName == plan.BrandName {
				st.Strategies[i] = plan
				return
			}
		}
		st.Strategies = append(st.Strategies, plan)
	})
}

// GetStrategy retorna o plano em cache da marca, ou nil se desconhecido
func (s *StrategyStore) GetStrategy(brandName string) *domain.MonthlyPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Strategies {
		if s.state.Strategies[i].BrandName == brandName {
			plan := s.state.Strategies[i]
			return &plan
		}
	}
	return nil
}

// GetPostsForDate filtra os posts do calendário da estratégia corrente por
// igualdade exata da data. Sem estratégia corrente, retorna vazio.
func (s *StrategyStore) GetPostsForDate(date string) []domain.DailyPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ActiveStrategy == nil {
		return nil
	}

	var posts []domain.DailyPost
	for _, post := range s.state.ActiveStrategy.Calendar.Posts {
		if post.Date == date {
			posts = append(posts, post)
		}
	}
	return posts
}

// MarkSynced carimba o horário da última sincronização com o backend
func (s *StrategyStore) MarkSynced(ctx context.Context) error {
	return s.mutate(ctx, func(st *StrategyState) {
		now := s.now()
		st.LastSync = &now
	})
}

// RemoveStrategy descarta o plano da marca. Se for a estratégia corrente,
// ela também é limpa.
func (s *StrategyStore) RemoveStrategy(ctx context.Context, brandName string) error {
	return s.mutate(ctx, func(st *StrategyState) {
		for i := range st.Strategies {
			if st.Strategies[i].BrandName == brandName {
				st.Strategies = append(st.Strategies[:i], st.Strategies[i+1:]...)
				break
			}
		}

		if st.ActiveStrategy != nil && st.ActiveStrategy.BrandName == brandName {
			st.ActiveStrategy = nil
		}
	})
}

// ClearStrategies descarta todo o cache, inclusive a estratégia corrente
func (s *StrategyStore) ClearStrategies(ctx context.Context) error {
	return s.mutate(ctx, func(st *StrategyState) {
		*st = StrategyState{}
	})
}

func (s *StrategyStore) mutate(ctx context.Context, fn func(*StrategyState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.state
	previousList := make([]domain.MonthlyPlan, len(s.state.Strategies))
	copy(previousList, s.state.Strategies)
	previous.Strategies = previousList

	fn(&s.state)

	payload, err := json.Marshal(s.state)
	if err != nil {
		s.state = previous
		return errors.Wrap(err, "erro ao serializar o cache de estratégias")
	}

	if err := s.repo.Save(ctx, repository.StrategyKey, payload); err != nil {
		s.state = previous
		return errors.Wrap(err, "erro ao persistir o cache de estratégias")
	}

	return nil
}
