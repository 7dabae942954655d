package handler

import (
	"net/http"

	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/internal/usecases/onboarding"
	"github.com/startpost/agent/pkg/log"
)

type analyzeLandingPageRequest struct {
	URL string `json:"url"`
}

// AnalyzeLandingPage extrai o posicionamento da página informada. Tiro
// único: falha do backend sobe direto, sem degradação.
func AnalyzeLandingPage(service onboarding.Onboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req analyzeLandingPageRequest
		if err := decodeBody(r, &req); err != nil {
			logger.WithError(err).Warn("onboarding: corpo inválido")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		logger.WithField("url", req.URL).Info("onboarding: análise de landing page solicitada")

		info, err := service.AnalyzeLandingPage(r.Context(), req.URL)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, info)
	})
}

// PrefillBrandIdentity devolve um rascunho de identidade de marca montado
// a partir da análise, sem gravar nada no perfil
func PrefillBrandIdentity(service onboarding.Onboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req analyzeLandingPageRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		brand, err := service.PrefillBrandIdentity(r.Context(), req.URL)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, brand)
	})
}

type completeSetupRequest struct {
	Brand domain.BrandIdentity `json:"brand"`
	Goals domain.ProjectGoals  `json:"goals"`
}

func CompleteOnboarding(service onboarding.Onboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req completeSetupRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := service.CompleteSetup(r.Context(), req.Brand, req.Goals); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
		})
	})
}
