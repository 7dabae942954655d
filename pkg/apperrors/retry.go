package apperrors

import (
	"context"
	"time"
)

const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = time.Second
)

// RetryWithBackoff executa fn até maxRetries vezes com backoff exponencial
// (o intervalo dobra a cada tentativa a partir de initialDelay). Erros
// não-transitórios interrompem imediatamente; esgotadas as tentativas, o
// último erro é devolvido. O contexto cancela a espera entre tentativas.
func RetryWithBackoff(ctx context.Context, fn func() error, maxRetries int, initialDelay time.Duration) error {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if initialDelay <= 0 {
		initialDelay = DefaultInitialDelay
	}

	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		if !Handle(err).Retryable() {
			return err
		}

		if attempt < maxRetries-1 {
			delay := initialDelay * (1 << attempt)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return lastErr
}
