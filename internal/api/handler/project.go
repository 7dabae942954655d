package handler

import (
	"net/http"

	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/internal/store"
	"github.com/startpost/agent/pkg/log"
)

func GetProject(projectStore *store.ProjectStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, projectStore.State())
	})
}

func SetBrandIdentity(projectStore *store.ProjectStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var brand domain.BrandIdentity
		if err := decodeBody(r, &brand); err != nil {
			logger.WithError(err).Warn("project: corpo inválido")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := projectStore.SetBrandIdentity(r.Context(), brand); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, projectStore.State())
	})
}

type setGoalsResponse struct {
	store.ProjectState
	Warnings []string `json:"warnings,omitempty"`
}

// SetGoals substitui os objetivos do projeto. Redes habilitadas que não
// estão conectadas no registro são aceitas, mas sinalizadas no campo
// warnings da resposta.
func SetGoals(projectStore *store.ProjectStore, integrationStore *store.IntegrationStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var goals domain.ProjectGoals
		if err := decodeBody(r, &goals); err != nil {
			logger.WithError(err).Warn("project: corpo inválido")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var warnings []string
		for _, provider := range goals.EnabledNetworks {
			if !domain.ValidProvider(provider) {
				http.Error(w, "provedor não suportado: "+string(provider), http.StatusBadRequest)
				return
			}

			if !integrationStore.IsConnected(provider) {
				logger.WithField("provider", provider).Warn("project: rede habilitada sem integração conectada")
				warnings = append(warnings, "rede habilitada sem integração conectada: "+string(provider))
			}
		}

		if err := projectStore.SetGoals(r.Context(), goals); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, setGoalsResponse{
			ProjectState: projectStore.State(),
			Warnings:     warnings,
		})
	})
}

type setStepRequest struct {
	Step int `json:"step"`
}

func SetCurrentStep(projectStore *store.ProjectStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req setStepRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if req.Step < 0 {
			http.Error(w, "o passo do assistente não pode ser negativo", http.StatusBadRequest)
			return
		}

		if err := projectStore.SetCurrentStep(r.Context(), req.Step); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, projectStore.State())
	})
}

func CompleteSetup(projectStore *store.ProjectStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := projectStore.CompleteSetup(r.Context()); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, projectStore.State())
	})
}

func ResetProject(projectStore *store.ProjectStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Warn("project: reset do perfil solicitado")

		if err := projectStore.Reset(r.Context()); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, projectStore.State())
	})
}
