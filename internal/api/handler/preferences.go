package handler

import (
	"net/http"

	"github.com/startpost/agent/internal/domain"
	"github.com/startpost/agent/internal/store"
	"github.com/startpost/agent/pkg/log"
)

type updatePreferencesRequest struct {
	DarkMode    *bool   `json:"darkMode,omitempty"`
	SidebarOpen *bool   `json:"sidebarOpen,omitempty"`
	Language    *string `json:"language,omitempty"`
}

func GetPreferences(preferenceStore *store.PreferenceStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, preferenceStore.Preferences())
	})
}

// UpdatePreferences aplica os campos presentes no corpo, um mutador por
// campo. Campos ausentes ficam como estão.
func UpdatePreferences(preferenceStore *store.PreferenceStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req updatePreferencesRequest
		if err := decodeBody(r, &req); err != nil {
			logger.WithError(err).Warn("preferences: corpo inválido")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx := r.Context()

		if req.DarkMode != nil {
			if err := preferenceStore.SetDarkMode(ctx, *req.DarkMode); err != nil {
				writeError(w, r, err)
				return
			}
		}

		if req.SidebarOpen != nil {
			if err := preferenceStore.SetSidebarOpen(ctx, *req.SidebarOpen); err != nil {
				writeError(w, r, err)
				return
			}
		}

		if req.Language != nil {
			if err := preferenceStore.SetLanguage(ctx, domain.Language(*req.Language)); err != nil {
				logger.WithField("language", *req.Language).Warn("preferences: idioma inválido")
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		writeJSON(w, http.StatusOK, preferenceStore.Preferences())
	})
}

func ToggleDarkMode(preferenceStore *store.PreferenceStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := preferenceStore.ToggleDarkMode(r.Context()); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, preferenceStore.Preferences())
	})
}

func ToggleLanguage(preferenceStore *store.PreferenceStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := preferenceStore.ToggleLanguage(r.Context()); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, preferenceStore.Preferences())
	})
}

func ToggleSidebar(preferenceStore *store.PreferenceStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := preferenceStore.ToggleSidebar(r.Context()); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, preferenceStore.Preferences())
	})
}
