package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dwellfront/dashboard-service/internal/listview"
	"github.com/dwellfront/dashboard-service/internal/middleware"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

var validate = validator.New()

// decodeAndValidate unmarshals the request body into dst and runs
// struct validation. On failure it writes the error response and
// returns false; handlers just return.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err), err,
		)
		return false
	}
	return true
}

// validationDetails flattens validator errors into field -> rule.
func validationDetails(err error) map[string]string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil
	}
	details := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		details[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return details
}

// pathID parses the {id} route variable.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id", nil, err,
		)
		return uuid.Nil, false
	}
	return id, true
}

// listConfigFromQuery builds the filter state for a list screen from
// query parameters. Absent parameters are unconstrained.
func listConfigFromQuery(r *http.Request, facetNames ...string) listview.Config {
	q := r.URL.Query()
	cfg := listview.Config{
		Facets:  make(map[string]string, len(facetNames)),
		Search:  q.Get("search"),
		FromISO: q.Get("from"),
		ToISO:   q.Get("to"),
	}
	for _, name := range facetNames {
		if v := q.Get(name); v != "" {
			cfg.Facets[name] = v
		}
	}
	return cfg
}

// exportFiltered reports whether the client asked to export the current
// filtered view rather than the full collection.
func exportFiltered(r *http.Request) bool {
	return r.URL.Query().Get("scope") == "filtered"
}

// handleServiceError maps a service failure to an HTTP response,
// distinguishing client-initiated cancellation from real faults.
func handleServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		utils.RespondErrorWithCode(
			w, http.StatusRequestTimeout, utils.ErrCodeOperationCanceled, "Operation canceled", nil, err,
		)
		return
	}
	utils.HandleAppError(w, err)
}

// actor pulls the authenticated user id and role from the request
// context. AuthMiddleware guarantees both are present on secured routes.
func actor(w http.ResponseWriter, r *http.Request) (uuid.UUID, string, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing userID in context", nil,
		)
		return uuid.Nil, "", false
	}
	return userID, middleware.Role(r.Context()), true
}
