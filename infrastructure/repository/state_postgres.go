package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/startpost/agent/infrastructure/database/postgres"
)

const clientStateTable = "client_state"

type postgresStateRepository struct {
	conn postgres.Conn
}

// NewPostgresStateRepository cria o repositório de estado sobre a tabela
// client_state (key text primary key, payload jsonb, updated_at timestamptz)
func NewPostgresStateRepository(conn postgres.Conn) StateRepository {
	return &postgresStateRepository{
		conn: conn,
	}
}

func (r *postgresStateRepository) Load(_ context.Context, key string) ([]byte, error) {
	query, args, err := squirrel.
		Select("cs.payload").
		From(clientStateTable + " cs").
		Where(squirrel.Eq{"cs.key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	err = r.conn.QueryRow(query, args...).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao carregar estado %q: %w", key, err)
	}

	return payload, nil
}

func (r *postgresStateRepository) Save(_ context.Context, key string, payload []byte) error {
	query, args, err := squirrel.
		Insert(clientStateTable).
		Columns("key", "payload", "updated_at").
		Values(key, payload, time.Now()).
		Suffix("ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar estado %q: %w", key, err)
	}

	return nil
}

func (r *postgresStateRepository) Delete(_ context.Context, key string) error {
	query, args, err := squirrel.
		Delete(clientStateTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover estado %q: %w", key, err)
	}

	return nil
}
