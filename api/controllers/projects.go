package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/projectscope/projectscope-backend/api/responses"
	"github.com/projectscope/projectscope-backend/api/validators"
	"github.com/projectscope/projectscope-backend/internal/projects"
	pkgerrors "github.com/projectscope/projectscope-backend/pkg/errors"
	"github.com/projectscope/projectscope-backend/pkg/logger"
)

// criteriaFromRequest maps query parameters onto filter criteria. String
// parameters pass through untouched; sentinel handling belongs to the filter
// engine so every caller gets the same semantics.
func criteriaFromRequest(r *http.Request) (projects.Criteria, error) {
	q := r.URL.Query()
	c := projects.Criteria{
		Country:     q.Get("country"),
		Sector:      q.Get("sector"),
		ProjectType: q.Get("projectType"),
		City:        q.Get("city"),
		District:    q.Get("district"),
		Status:      q.Get("status"),
	}

	var err error
	if c.MinInvestment, err = validators.ParseQueryFloat(r, "minInvestment"); err != nil {
		return projects.Criteria{}, err
	}
	if c.MaxInvestment, err = validators.ParseQueryFloat(r, "maxInvestment"); err != nil {
		return projects.Criteria{}, err
	}
	if c.IsLuxury, err = validators.ParseQueryBool(r, "isLuxury"); err != nil {
		return projects.Criteria{}, err
	}
	if c.IsWaterfront, err = validators.ParseQueryBool(r, "isWaterfront"); err != nil {
		return projects.Criteria{}, err
	}
	if c.IsSustainable, err = validators.ParseQueryBool(r, "isSustainable"); err != nil {
		return projects.Criteria{}, err
	}
	return c, nil
}

// ProjectsList serves the filtered catalog.
func ProjectsList(store *projects.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := criteriaFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		matched := store.List(criteria)
		responses.WriteSuccess(w, map[string]any{
			"projects": matched,
			"total":    len(matched),
		})
	}
}

// ProjectsGet serves a single project by numeric id.
func ProjectsGet(store *projects.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")
		id, err := strconv.Atoi(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "project id must be numeric").
				WithDetails(map[string]any{"field": "id"}))
			return
		}

		project, ok := store.Get(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "project not found"))
			return
		}
		responses.WriteSuccess(w, project)
	}
}
