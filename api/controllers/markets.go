package controllers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/projectscope/projectscope-backend/api/responses"
	"github.com/projectscope/projectscope-backend/internal/markets"
	"github.com/projectscope/projectscope-backend/internal/projects"
	pkgerrors "github.com/projectscope/projectscope-backend/pkg/errors"
	"github.com/projectscope/projectscope-backend/pkg/logger"
)

// MarketIndicators serves the active indicator cards.
func MarketIndicators(svc *markets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"indicators": svc.ActiveIndicators(),
		})
	}
}

// TrendingSectors serves the catalog-derived sector aggregation.
func TrendingSectors(svc *markets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"sectors": svc.TrendingSectors(),
		})
	}
}

// FilterOptions serves the dropdown value lists derived from the catalog.
func FilterOptions(store *projects.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, store.Options())
	}
}

// Cities lists the distinct cities of the projects in a country.
func Cities(store *projects.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		country, err := pathParam(r, "country")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"cities": store.Cities(country),
		})
	}
}

// Districts lists the distinct districts for a country/city pair.
func Districts(store *projects.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		country, err := pathParam(r, "country")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		city, err := pathParam(r, "city")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"districts": store.Districts(country, city),
		})
	}
}

// pathParam returns a decoded path segment; names with spaces arrive escaped.
func pathParam(r *http.Request, key string) (string, error) {
	raw := chi.URLParam(r, key)
	if raw == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "missing path parameter").
			WithDetails(map[string]any{"field": key})
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "malformed path parameter").
			WithDetails(map[string]any{"field": key})
	}
	return decoded, nil
}
