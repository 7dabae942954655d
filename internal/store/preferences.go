// Package store contém os contêineres de estado durável do agente. Cada
// store carrega seu documento na construção, mantém um snapshot em memória
// protegido por mutex e grava o documento inteiro a cada mutação.
package store

import (
	"context"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/startpost/agent/infrastructure/repository"
	"github.com/startpost/agent/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ThemeApplier recebe o estado do modo escuro a cada mudança relevante.
// É invocado de forma síncrona dentro da mutação e uma vez na reidratação,
// para que o tema visível nunca fique defasado do estado persistido.
type ThemeApplier func(darkMode bool)

// PreferenceStore guarda as preferências de interface do usuário
type PreferenceStore struct {
	mu    sync.Mutex
	prefs domain.Preferences
	repo  repository.StateRepository
	theme ThemeApplier
}

// NewPreferenceStore reidrata as preferências persistidas e aplica o tema
// imediatamente. Sem documento persistido, usa os valores padrão.
func NewPreferenceStore(ctx context.Context, repo repository.StateRepository, theme ThemeApplier) (*PreferenceStore, error) {
	s := &PreferenceStore{
		prefs: domain.DefaultPreferences(),
		repo:  repo,
		theme: theme,
	}

	payload, err := repo.Load(ctx, repository.PreferencesKey)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao reidratar as preferências")
	}

	if payload != nil {
		if err := json.Unmarshal(payload, &s.prefs); err != nil {
			return nil, errors.Wrap(err, "erro ao decodificar as preferências persistidas")
		}
	}

	if s.theme != nil {
		s.theme(s.prefs.DarkMode)
	}

	return s, nil
}

// Preferences retorna um snapshot do estado atual
func (s *PreferenceStore) Preferences() domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

func (s *PreferenceStore) SetDarkMode(ctx context.Context, darkMode bool) error {
	return s.mutate(ctx, func(p *domain.Preferences) {
		p.DarkMode = darkMode
	})
}

func (s *PreferenceStore) ToggleDarkMode(ctx context.Context) error {
	return s.mutate(ctx, func(p *domain.Preferences) {
		p.DarkMode = !p.DarkMode
	})
}

func (s *PreferenceStore) SetSidebarOpen(ctx context.Context, open bool) error {
	return s.mutate(ctx, func(p *domain.Preferences) {
		p.SidebarOpen = open
	})
}

func (s *PreferenceStore) ToggleSidebar(ctx context.Context) error {
	return s.mutate(ctx, func(p *domain.Preferences) {
		p.SidebarOpen = !p.SidebarOpen
	})
}

func (s *PreferenceStore) SetLanguage(ctx context.Context, lang domain.Language) error {
	if lang != domain.LanguageFrench && lang != domain.LanguageEnglish {
		return errors.Errorf("idioma não suportado: %s", lang)
	}

	return s.mutate(ctx, func(p *domain.Preferences) {
		p.Language = lang
	})
}

func (s *PreferenceStore) ToggleLanguage(ctx context.Context) error {
	return s.mutate(ctx, func(p *domain.Preferences) {
		if p.Language == domain.LanguageFrench {
			p.Language = domain.LanguageEnglish
		} else {
			p.Language = domain.LanguageFrench
		}
	})
}

// mutate aplica a mudança, persiste o documento inteiro e notifica o
// aplicador de tema antes de liberar o chamador
func (s *PreferenceStore) mutate(ctx context.Context, fn func(*domain.Preferences)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.prefs
	fn(&s.prefs)

	payload, err := json.Marshal(s.prefs)
	if err != nil {
		s.prefs = previous
		return errors.Wrap(err, "erro ao serializar as preferências")
	}

	if err := s.repo.Save(ctx, repository.PreferencesKey, payload); err != nil {
		s.prefs = previous
		return errors.Wrap(err, "erro ao persistir as preferências")
	}

	if s.theme != nil && previous.DarkMode != s.prefs.DarkMode {
		s.theme(s.prefs.DarkMode)
	}

	return nil
}
