package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStateRepository_CicloCompleto(t *testing.T) {
	repo, err := NewFileStateRepository(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	// Chave nunca gravada devolve nil sem erro
	payload, err := repo.Load(ctx, PreferencesKey)
	assert.NoError(t, err)
	assert.Nil(t, payload)

	// Gravação e releitura
	err = repo.Save(ctx, PreferencesKey, []byte(`{"darkMode":true}`))
	require.NoError(t, err)

	payload, err = repo.Load(ctx, PreferencesKey)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"darkMode":true}`, string(payload))

	// Sobrescrita mantém apenas a versão mais recente
	err = repo.Save(ctx, PreferencesKey, []byte(`{"darkMode":false}`))
	require.NoError(t, err)

	payload, err = repo.Load(ctx, PreferencesKey)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"darkMode":false}`, string(payload))

	// Remoção volta ao estado nunca-gravado; remover de novo não é erro
	assert.NoError(t, repo.Delete(ctx, PreferencesKey))
	assert.NoError(t, repo.Delete(ctx, PreferencesKey))

	payload, err = repo.Load(ctx, PreferencesKey)
	assert.NoError(t, err)
	assert.Nil(t, payload)
}

func TestFileStateRepository_ChavesIndependentes(t *testing.T) {
	repo, err := NewFileStateRepository(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, ProjectKey, []byte(`{"setupCompleted":true}`)))
	require.NoError(t, repo.Save(ctx, StrategyKey, []byte(`{"strategies":[]}`)))

	require.NoError(t, repo.Delete(ctx, ProjectKey))

	payload, err := repo.Load(ctx, StrategyKey)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"strategies":[]}`, string(payload))
}
