// Package handler expõe a superfície HTTP do agente para o dashboard.
package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/startpost/agent/pkg/apperrors"
	"github.com/startpost/agent/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Erro ao codificar a resposta")
	}
}

// writeError normaliza o erro e responde com o status correspondente ao
// tipo classificado
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.Handle(err)

	log.ForContext(r.Context()).WithFields(log.Fields{
		"type":   appErr.Type,
		"path":   r.URL.Path,
		"detail": err.Error(),
	}).Warn("Requisição finalizada com erro normalizado")

	writeJSON(w, statusForType(appErr), appErr)
}

func statusForType(appErr *apperrors.AppError) int {
	if appErr.StatusCode > 0 {
		return appErr.StatusCode
	}

	switch appErr.Type {
	case apperrors.TypeValidation:
		return http.StatusBadRequest
	case apperrors.TypeAuthentication:
		return http.StatusUnauthorized
	case apperrors.TypeAuthorization:
		return http.StatusForbidden
	case apperrors.TypeNotFound:
		return http.StatusNotFound
	case apperrors.TypeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodifica o corpo JSON da requisição no destino
func decodeBody(r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return errors.New("corpo da requisição vazio")
	}
	return json.NewDecoder(r.Body).Decode(dest)
}
