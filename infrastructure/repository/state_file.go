package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type fileStateRepository struct {
	dir string
	mu  sync.Mutex
}

// NewFileStateRepository persiste cada documento de estado como um arquivo
// JSON <chave>.json dentro do diretório informado. É o driver padrão: o
// agente funciona sem banco de dados em modo demonstração.
func NewFileStateRepository(dir string) (StateRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório de estado %q: %w", dir, err)
	}

	return &fileStateRepository{dir: dir}, nil
}

func (r *fileStateRepository) path(key string) string {
	// Chaves são nomes fixos, mas nunca confiar em separadores
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(r.dir, safe+".json")
}

func (r *fileStateRepository) Load(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payload, err := os.ReadFile(r.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao carregar estado %q: %w", key, err)
	}

	return payload, nil
}

func (r *fileStateRepository) Save(_ context.Context, key string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Gravação via arquivo temporário + rename para nunca deixar um
	// documento truncado após uma queda no meio da escrita
	path := r.path(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("erro ao salvar estado %q: %w", key, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("erro ao salvar estado %q: %w", key, err)
	}

	return nil
}

func (r *fileStateRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("erro ao remover estado %q: %w", key, err)
	}

	return nil
}
