package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/projectscope/projectscope-backend/api/responses"
	"github.com/projectscope/projectscope-backend/api/validators"
	"github.com/projectscope/projectscope-backend/internal/preferences"
	pkgerrors "github.com/projectscope/projectscope-backend/pkg/errors"
	"github.com/projectscope/projectscope-backend/pkg/logger"
)

// PreferencesUpsert creates or patches a browser session's preference bag.
func PreferencesUpsert(svc *preferences.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body preferences.UpsertRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		prefs, err := svc.Upsert(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]*preferences.Preferences{"preferences": prefs})
	}
}

// PreferencesGet returns a session's preference bag.
func PreferencesGet(svc *preferences.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionId")
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "sessionId is required"))
			return
		}

		prefs, err := svc.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]*preferences.Preferences{"preferences": prefs})
	}
}
