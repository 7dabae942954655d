package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/startpost/agent/internal/scheduler"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeOrchestration = "orchestration"
	CronJobTypeAnalytics     = "analytics"
)

// CronJobServices contém os agendadores disponíveis para execução manual
type CronJobServices struct {
	DailyOrchestrationService *scheduler.DailyOrchestrationService
	AnalyticsSyncService      *scheduler.AnalyticsSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			http.Error(w, "tipo de cron job não especificado", http.StatusBadRequest)
			return
		}

		logrus.WithField("type", cronType).Info("Execução manual de cron job solicitada")

		switch cronType {
		case CronJobTypeOrchestration:
			if services.DailyOrchestrationService == nil {
				http.Error(w, "agendador de orquestração não disponível", http.StatusInternalServerError)
				return
			}

			results, err := services.DailyOrchestrationService.RunNow(r.Context())
			if err != nil {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}

			writeJSON(w, http.StatusOK, results)

		case CronJobTypeAnalytics:
			if services.AnalyticsSyncService == nil {
				http.Error(w, "agendador de métricas não disponível", http.StatusInternalServerError)
				return
			}

			records, err := services.AnalyticsSyncService.RunNow(r.Context())
			if err != nil {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}

			writeJSON(w, http.StatusOK, records)

		default:
			http.Error(w, "tipo de cron job desconhecido: "+cronType, http.StatusBadRequest)
		}
	}
}

// CronStatus retorna o estado dos agendadores
func CronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]interface{}{}

		if services.DailyOrchestrationService != nil {
			status["orchestration"] = services.DailyOrchestrationService.Status()
		}
		if services.AnalyticsSyncService != nil {
			status["analytics"] = services.AnalyticsSyncService.Status()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
