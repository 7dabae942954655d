package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/startpost/agent/infrastructure/repository"
	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/pkg/utils"
)

// ContentStore persiste as aprovações e edições locais de posts propostos,
// chaveadas pela identidade estável do post (marca, data e plataforma). Os
// posts propostos em si são recalculados do plano a cada consulta; só a
// camada de overrides sobrevive à recomputação.
type ContentStore struct {
	mu        sync.Mutex
	overrides map[string]domain.PostOverride
	repo      repository.StateRepository
}

func NewContentStore(ctx context.Context, repo repository.StateRepository) (*ContentStore, error) {
	s := &ContentStore{
		overrides: make(map[string]domain.PostOverride),
		repo:      repo,
	}

	payload, err := repo.Load(ctx, repository.ContentKey)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao reidratar os overrides de conteúdo")
	}

	if payload != nil {
		if err := json.Unmarshal(payload, &s.overrides); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar os overrides persistidos")
		}
	}

	return s, nil
}

// ApplyOverride registra ou atualiza o override do post identificado pela
// chave, persistindo o documento inteiro
func (s *ContentStore) ApplyOverride(ctx context.Context, override domain.PostOverride) error {
	if override.Key == "" {
		return errors.New("o override precisa da chave do post")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.overrides[override.Key]
	s.overrides[override.Key] = override

	if err := s.persistLocked(ctx); err != nil {
		if existed {
			s.overrides[override.Key] = previous
		} else {
			delete(s.overrides, override.Key)
		}
		return err
	}

	return nil
}

// RemoveOverride descarta o override do post, se existir
func (s *ContentStore) RemoveOverride(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.overrides[key]
	if !existed {
		return nil
	}

	delete(s.overrides, key)

	if err := s.persistLocked(ctx); err != nil {
		s.overrides[key] = previous
		return err
	}

	return nil
}

// Override retorna o override registrado para a chave, se houver
func (s *ContentStore) Override(key string) (domain.PostOverride, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	override, ok := s.overrides[key]
	return override, ok
}

// ProposedPosts deriva a visão editável dos posts do calendário, aplicando
// os overrides persistidos por cima do conteúdo recalculado. Posts sem
// override saem como rascunho.
func (s *ContentStore) ProposedPosts(brandName string, posts []domain.DailyPost) ([]domain.ProposedPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposed := make([]domain.ProposedPost, 0, len(posts))

	for _, post := range posts {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar o identificador do post proposto")
		}

		key := domain.PostKey(brandName, post.Date, post.Platform)

		p := domain.ProposedPost{
			ID:       id,
			Key:      key,
			Date:     post.Date,
			Platform: string(post.Platform),
			Pillar:   post.Pillar,
			Topic:    post.Topic,
			Content:  renderPostContent(post),
			Status:   domain.PostStatusDraft,
		}

		if override, ok := s.overrides[key]; ok {
			p.Status = override.Status
			p.ScheduledTime = override.ScheduledTime
			if override.Content != "" {
				p.Content = override.Content
				p.Edited = true
			}
		}

		proposed = append(proposed, p)
	}

	return proposed, nil
}

func (s *ContentStore) persistLocked(ctx context.Context) error {
	payload, err := json.Marshal(s.overrides)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar os overrides de conteúdo")
	}

	if err := s.repo.Save(ctx, repository.ContentKey, payload); err != nil {
		return errors.Wrap(err, "erro ao persistir os overrides de conteúdo")
	}

	return nil
}

// renderPostContent monta o texto base do post a partir do planejamento
func renderPostContent(post domain.DailyPost) string {
	content := post.Topic
	if post.KeyMessage != "" {
		content = fmt.Sprintf("%s\n\n%s", post.Topic, post.KeyMessage)
	}
	return content
}
