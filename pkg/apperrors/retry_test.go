package apperrors

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryWithBackoff_NaoRepeteErrosNaoTransitorios(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{name: "validação falha imediatamente", statusCode: 400},
		{name: "autenticação falha imediatamente", statusCode: 401},
		{name: "autorização falha imediatamente", statusCode: 403},
		{name: "não-encontrado falha imediatamente", statusCode: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := RetryWithBackoff(context.Background(), func() error {
				calls++
				return &HTTPError{StatusCode: tt.statusCode}
			}, 3, time.Millisecond)

			assert.Error(t, err)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestRetryWithBackoff_EsgotaTentativasEmErroDeServidor(t *testing.T) {
	calls := 0
	start := time.Now()

	err := RetryWithBackoff(context.Background(), func() error {
		calls++
		return &HTTPError{StatusCode: 500}
	}, 3, 10*time.Millisecond)

	elapsed := time.Since(start)

	assert.Error(t, err)
	assert.Equal(t, 3, calls)
	// Intervalos de 10ms e 20ms entre as três tentativas
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)

	appErr := Handle(err)
	assert.Equal(t, TypeServer, appErr.Type)
}

func TestRetryWithBackoff_ParaNoPrimeiroSucesso(t *testing.T) {
	calls := 0

	err := RetryWithBackoff(context.Background(), func() error {
		calls++
		if calls < 2 {
			return &HTTPError{StatusCode: 503}
		}
		return nil
	}, 3, time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetryWithBackoff_ContextoCancelaEspera(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return &HTTPError{StatusCode: 500}
	}, 3, 500*time.Millisecond)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, calls)
}
