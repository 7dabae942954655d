package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/internal/usecases/planning"
	"github.com/startpost/agent/pkg/log"
	"github.com/startpost/agent/pkg/utils"
)

func GenerateStrategy(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.StrategyRequest
		if err := decodeBody(r, &req); err != nil {
			logger.WithError(err).Warn("strategy: corpo inválido")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		logger.WithField("brand_name", req.BrandName).Info("strategy: geração solicitada")

		plan, err := service.GenerateStrategy(r.Context(), req)
		if err != nil {
			if errors.Is(err, planning.ErrPlanNotReady) {
				writeJSON(w, http.StatusAccepted, map[string]interface{}{
					"success": false,
					"message": "La stratégie est en cours de génération. Réessayez dans quelques instants.",
				})
				return
			}

			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, plan)
	})
}

type generateFromProfileRequest struct {
	StartDate    string `json:"start_date"`
	DurationDays int    `json:"duration_days"`
}

// GenerateStrategyFromProfile monta a requisição de geração a partir do
// perfil de marca persistido, em vez de receber os parâmetros no corpo
func GenerateStrategyFromProfile(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req generateFromProfileRequest
		if err := decodeBody(r, &req); err != nil {
			logger.WithError(err).Warn("strategy: corpo inválido")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if req.StartDate == "" {
			http.Error(w, "start_date é obrigatória", http.StatusBadRequest)
			return
		}
		if _, err := utils.ParseDate(req.StartDate); err != nil {
			http.Error(w, "start_date inválida", http.StatusBadRequest)
			return
		}

		plan, err := service.GenerateFromProfile(r.Context(), req.StartDate, req.DurationDays)
		if err != nil {
			if errors.Is(err, planning.ErrMissingBrandIdentity) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if errors.Is(err, planning.ErrPlanNotReady) {
				writeJSON(w, http.StatusAccepted, map[string]interface{}{
					"success": false,
					"message": "La stratégie est en cours de génération. Réessayez dans quelques instants.",
				})
				return
			}

			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, plan)
	})
}

func GetActiveStrategy(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		brandName := httprouter.ParamsFromContext(r.Context()).ByName("brandName")

		plan, err := service.ActiveStrategy(r.Context(), brandName)
		if err != nil {
			if errors.Is(err, planning.ErrNoActiveStrategy) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}

			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, plan)
	})
}

func ListStrategies(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Strategies())
	})
}

func DeleteStrategy(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		brandName := httprouter.ParamsFromContext(r.Context()).ByName("brandName")

		if err := service.RemoveStrategy(r.Context(), brandName); err != nil {
			writeError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("brand_name", brandName).Info("strategy: plano removido do cache")

		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
	})
}

// GetPlannedPosts consulta o backend pelos posts planejados da marca na
// data, sem passar pelo cache local
func GetPlannedPosts(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		brandName := params.ByName("brandName")
		date := params.ByName("date")

		if _, err := utils.ParseDate(date); err != nil {
			http.Error(w, "data inválida", http.StatusBadRequest)
			return
		}

		posts, err := service.PlannedPosts(r.Context(), brandName, date)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, posts)
	})
}

func GetProposedPosts(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		date := httprouter.ParamsFromContext(r.Context()).ByName("date")

		if _, err := utils.ParseDate(date); err != nil {
			http.Error(w, "data inválida", http.StatusBadRequest)
			return
		}

		posts, err := service.ProposedPostsForDate(r.Context(), date)
		if err != nil {
			if errors.Is(err, planning.ErrNoActiveStrategy) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}

			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, posts)
	})
}

// UpdateProposedPost registra uma aprovação, edição ou agendamento local
// do post, que sobrevive à recomputação do calendário
func UpdateProposedPost(service planning.Planner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var override domain.PostOverride
		if err := decodeBody(r, &override); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if override.Key == "" {
			http.Error(w, "a chave do post é obrigatória", http.StatusBadRequest)
			return
		}

		if err := service.UpdateProposedPost(r.Context(), override); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, override)
	})
}
