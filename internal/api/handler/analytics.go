package handler

import (
	"net/http"
	"strings"

	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/internal/usecases/analyzing"
	"github.com/startpost/agent/pkg/log"
)

// GetPerformanceMetrics consulta o desempenho do intervalo. O filtro de
// plataformas vem como lista separada por vírgula.
func GetPerformanceMetrics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := domain.AnalyticsFilters{
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
		}

		if platforms := r.URL.Query().Get("platforms"); platforms != "" {
			filters.Platforms = strings.Split(platforms, ",")
		}

		if filters.StartDate == "" || filters.EndDate == "" {
			http.Error(w, "start_date e end_date são obrigatórios", http.StatusBadRequest)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": filters.StartDate,
			"end_date":   filters.EndDate,
			"platforms":  filters.Platforms,
		}).Info("analytics: consulta de desempenho")

		records, err := service.PerformanceMetrics(r.Context(), filters)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, records)
	})
}

func GetYesterdayAnalytics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		brandName := r.URL.Query().Get("brand_name")
		if brandName == "" {
			http.Error(w, "brand_name é obrigatório", http.StatusBadRequest)
			return
		}

		records, err := service.YesterdayAnalytics(r.Context(), brandName)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, records)
	})
}
