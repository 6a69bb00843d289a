// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/ynab-compass/internal/api/response"
	"github.com/ndewijer/ynab-compass/internal/validation"
)

// ValidateBudgetIDMiddleware validates that the budgetID URL parameter is
// present and is a valid UUID before the remote service is asked about it.
// Returns 400 Bad Request if the budget ID is missing or malformed.
//
// Example usage in router:
//
//	r.Route("/{budgetID}", func(r chi.Router) {
//	    r.Use(middleware.ValidateBudgetIDMiddleware)
//	    r.Get("/", handler.BudgetDetail)
//	})
func ValidateBudgetIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		budgetID := chi.URLParam(r, "budgetID")

		if budgetID == "" {
			response.RespondError(w, http.StatusBadRequest, "valid budget ID is required", "")
			return
		}

		if err := validation.ValidateUUID(budgetID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid budget ID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
