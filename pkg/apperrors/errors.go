// Package apperrors normaliza qualquer erro das chamadas remotas em um
// formato único com mensagem apresentável ao usuário.
package apperrors

import (
	"fmt"
	"net"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorType classifica um erro normalizado
type ErrorType string

const (
	TypeNetwork        ErrorType = "NETWORK"
	TypeValidation     ErrorType = "VALIDATION"
	TypeAuthentication ErrorType = "AUTHENTICATION"
	TypeAuthorization  ErrorType = "AUTHORIZATION"
	TypeNotFound       ErrorType = "NOT_FOUND"
	TypeServer         ErrorType = "SERVER"
	TypeUnknown        ErrorType = "UNKNOWN"
)

// Mensagens fixas apresentáveis ao usuário, no idioma padrão do produto.
// Uma mensagem vinda do backend (campo detail ou message) tem precedência.
var userMessages = map[ErrorType]string{
	TypeNetwork:        "Impossible de se connecter au serveur. Vérifiez votre connexion internet.",
	TypeValidation:     "Les données fournies sont invalides. Veuillez vérifier et réessayer.",
	TypeAuthentication: "Vous devez vous connecter pour accéder à cette ressource.",
	TypeAuthorization:  "Vous n'avez pas les permissions nécessaires pour cette action.",
	TypeNotFound:       "La ressource demandée n'existe pas.",
	TypeServer:         "Une erreur serveur est survenue. Veuillez réessayer plus tard.",
	TypeUnknown:        "Une erreur inattendue est survenue.",
}

// AppError é o formato normalizado de erro exposto às camadas superiores
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"statusCode,omitempty"`
	Timestamp  time.Time `json:"timestamp"`

	cause error
}

func (e *AppError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Retryable indica se o erro é transitório. Erros de validação, autenticação,
// autorização e não-encontrado nunca são repetidos.
func (e *AppError) Retryable() bool {
	switch e.Type {
	case TypeValidation, TypeAuthentication, TypeAuthorization, TypeNotFound:
		return false
	}
	return true
}

// HTTPError é produzido pelo cliente HTTP quando o backend responde com um
// status de erro. Carrega o corpo bruto para extração de mensagem.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("requisição falhou com status %d", e.StatusCode)
}

// corpo de erro típico do backend
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func typeForStatus(statusCode int) ErrorType {
	switch {
	case statusCode == 400:
		return TypeValidation
	case statusCode == 401:
		return TypeAuthentication
	case statusCode == 403:
		return TypeAuthorization
	case statusCode == 404:
		return TypeNotFound
	case statusCode >= 500 && statusCode <= 599:
		return TypeServer
	default:
		return TypeUnknown
	}
}

// Handle normaliza qualquer erro em um AppError. Erros já normalizados
// passam inalterados; respostas HTTP são classificadas pelo status; falhas
// de transporte (nenhuma resposta chegou) viram NETWORK; o resto é UNKNOWN.
func Handle(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	now := time.Now()

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		errType := typeForStatus(httpErr.StatusCode)

		message := userMessages[errType]
		var body errorBody
		if jsonErr := json.Unmarshal(httpErr.Body, &body); jsonErr == nil {
			if body.Detail != "" {
				message = body.Detail
			} else if body.Message != "" {
				message = body.Message
			}
		}

		return &AppError{
			Type:       errType,
			Message:    message,
			Details:    string(httpErr.Body),
			StatusCode: httpErr.StatusCode,
			Timestamp:  now,
			cause:      err,
		}
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return &AppError{
			Type:      TypeNetwork,
			Message:   userMessages[TypeNetwork],
			Details:   err.Error(),
			Timestamp: now,
			cause:     err,
		}
	}

	return &AppError{
		Type:      TypeUnknown,
		Message:   err.Error(),
		Details:   err.Error(),
		Timestamp: now,
		cause:     err,
	}
}
