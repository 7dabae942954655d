package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/internal/store"
	"github.com/startpost/agent/pkg/log"
)

func ListIntegrations(integrationStore *store.IntegrationStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, integrationStore.List())
	})
}

func GetIntegration(integrationStore *store.IntegrationStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provider := domain.Provider(httprouter.ParamsFromContext(r.Context()).ByName("provider"))

		integration, ok := integrationStore.GetIntegration(provider)
		if !ok {
			http.Error(w, "provedor não suportado", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, integration)
	})
}

// ConnectIntegration marca o provedor como conectado. O corpo opcional
// carrega os metadados da conta.
func ConnectIntegration(integrationStore *store.IntegrationStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		provider := domain.Provider(httprouter.ParamsFromContext(r.Context()).ByName("provider"))

		var account *domain.IntegrationAccount
		if r.ContentLength > 0 {
			account = &domain.IntegrationAccount{}
			if err := decodeBody(r, account); err != nil {
				logger.WithError(err).Warn("integrations: corpo inválido")
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		if err := integrationStore.Connect(r.Context(), provider, account); err != nil {
			logger.WithField("provider", provider).WithError(err).Warn("integrations: falha ao conectar")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		integration, _ := integrationStore.GetIntegration(provider)
		writeJSON(w, http.StatusOK, integration)
	})
}

func DisconnectIntegration(integrationStore *store.IntegrationStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provider := domain.Provider(httprouter.ParamsFromContext(r.Context()).ByName("provider"))

		if err := integrationStore.Disconnect(r.Context(), provider); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		integration, _ := integrationStore.GetIntegration(provider)
		writeJSON(w, http.StatusOK, integration)
	})
}
