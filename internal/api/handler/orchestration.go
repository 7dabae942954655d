package handler

import (
	"net/http"

	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/internal/usecases/orchestrating"
	"github.com/startpost/agent/pkg/log"
)

func ExecuteDailyOrchestration(service orchestrating.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.OrchestratorRequest
		if r.ContentLength > 0 {
			if err := decodeBody(r, &req); err != nil {
				logger.WithError(err).Warn("orchestrator: corpo inválido")
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		logger.WithFields(log.Fields{
			"execute_date": req.ExecuteDate,
			"dry_run":      req.DryRun,
		}).Info("orchestrator: execução manual solicitada")

		results, err := service.ExecuteDaily(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, results)
	})
}

func GetOrchestratorStatus(service orchestrating.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, err := service.Status(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, status)
	})
}

type retryPostRequest struct {
	Date     string `json:"date"`
	Platform string `json:"platform"`
}

func RetryPost(service orchestrating.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req retryPostRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if req.Date == "" || req.Platform == "" {
			http.Error(w, "data e plataforma são obrigatórias", http.StatusBadRequest)
			return
		}

		result, err := service.RetryPost(r.Context(), req.Date, req.Platform)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}
