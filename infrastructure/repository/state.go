// Package repository contém as implementações de persistência do estado
// durável do agente. Cada documento de estado é um blob JSON identificado
// por uma chave fixa; não há garantia transacional entre chaves.
package repository

import "context"

// Chaves dos documentos de estado persistidos pelo agente
const (
	PreferencesKey  = "preferences-storage"
	IntegrationsKey = "integrations-storage"
	ProjectKey      = "project-storage"
	StrategyKey     = "strategy-storage"
	ContentKey      = "content-storage"
)

// StateRepository persiste documentos de estado nomeados. Load devolve
// (nil, nil) quando a chave nunca foi gravada.
type StateRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}
