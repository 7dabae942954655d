package store

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/startpost/agent/infrastructure/repository"
	"github.com/startpost/agent/internal/domain"
)

// ProjectState é o documento persistido do perfil do projeto
type ProjectState struct {
	BrandIdentity *domain.BrandIdentity `json:"brandIdentity"`
	Goals         *domain.ProjectGoals  `json:"goals"`
	SetupComplete bool                  `json:"setupComplete"`
	CurrentStep   int                   `json:"currentStep"`
}

// ProjectStore guarda a identidade de marca e os objetivos de campanha do
// projeto, além do cursor do assistente de setup. Cada setter substitui a
// fatia correspondente por inteiro; não há mesclagem parcial.
type ProjectStore struct {
	mu    sync.Mutex
	state ProjectState
	repo  repository.StateRepository
}

func NewProjectStore(ctx context.Context, repo repository.StateRepository) (*ProjectStore, error) {
	s := &ProjectStore{repo: repo}

	payload, err := repo.Load(ctx, repository.ProjectKey)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao reidratar o perfil do projeto")
	}

	if payload != nil {
		if err := json.Unmarshal(payload, &s.state); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar o perfil do projeto persistido")
		}
	}

	return s, nil
}

// State retorna um snapshot do documento atual
func (s *ProjectStore) State() ProjectState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *ProjectStore) BrandIdentity() *domain.BrandIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.BrandIdentity == nil {
		return nil
	}
	brand := *s.state.BrandIdentity
	return &brand
}

func (s *ProjectStore) Goals() *domain.ProjectGoals {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Goals == nil {
		return nil
	}
	goals := *s.state.Goals
	return &goals
}

func (s *ProjectStore) SetupComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SetupComplete
}

func (s *ProjectStore) SetBrandIdentity(ctx context.Context, brand domain.BrandIdentity) error {
	if brand.Name == "" {
		return errors.New("o nome da marca é obrigatório")
	}

	return s.mutate(ctx, func(st *ProjectState) {
		st.BrandIdentity = &brand
	})
}

func (s *ProjectStore) SetGoals(ctx context.Context, goals domain.ProjectGoals) error {
	return s.mutate(ctx, func(st *ProjectState) {
		st.Goals = &goals
	})
}

func (s *ProjectStore) SetCurrentStep(ctx context.Context, step int) error {
	return s.mutate(ctx, func(st *ProjectState) {
		st.CurrentStep = step
	})
}

// CompleteSetup marca o setup como concluído; o roteamento usa essa flag
// para decidir entre o assistente e o aplicativo principal
func (s *ProjectStore) CompleteSetup(ctx context.Context) error {
	return s.mutate(ctx, func(st *ProjectState) {
		st.SetupComplete = true
	})
}

// Reset devolve o documento ao estado inicial. Usado apenas para testes e
// reinício de demonstração.
func (s *ProjectStore) Reset(ctx context.Context) error {
	return s.mutate(ctx, func(st *ProjectState) {
		*st = ProjectState{}
	})
}

func (s *ProjectStore) mutate(ctx context.Context, fn func(*ProjectState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.state
	fn(&s.state)

	payload, err := json.Marshal(s.state)
	if err != nil {
		s.state = previous
		return errors.Wrap(err, "erro ao serializar o perfil do projeto")
	}

	if err := s.repo.Save(ctx, repository.ProjectKey, payload); err != nil {
		s.state = previous
		return errors.Wrap(err, "erro ao persistir o perfil do projeto")
	}

	return nil
}
