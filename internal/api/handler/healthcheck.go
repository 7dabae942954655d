package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/startpost/agent/infrastructure/integrator/startpost/startpostclient"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// BackendHealthHandler repassa o estado do backend StartPost, para que o
// dashboard saiba se vai receber dados reais ou sintéticos
func BackendHealthHandler(client startpostclient.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := client.HealthCheck(r.Context()); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": "ok",
		})
	})
}

// BackendMetricsHandler repassa as métricas operacionais do backend
func BackendMetricsHandler(client startpostclient.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics, err := client.GetMetrics(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	})
}
