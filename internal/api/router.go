package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/ynab-compass/internal/api/handlers"
	custommiddleware "github.com/ndewijer/ynab-compass/internal/api/middleware"
	"github.com/ndewijer/ynab-compass/internal/config"
	"github.com/ndewijer/ynab-compass/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(budgetService *service.BudgetService, transactionService *service.TransactionService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler()
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/budget", func(r chi.Router) {
			budgetHandler := handlers.NewBudgetHandler(budgetService)
			transactionHandler := handlers.NewTransactionHandler(transactionService)

			r.Get("/", budgetHandler.ListBudgets)

			r.Route("/{budgetID}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateBudgetIDMiddleware)

				r.Get("/", budgetHandler.BudgetDetail)
				r.Get("/accounts", budgetHandler.Accounts)
				r.Get("/categories", budgetHandler.Categories)
				r.Get("/payees", budgetHandler.Payees)

				r.Route("/transactions", func(r chi.Router) {
					r.Get("/", transactionHandler.View)
					r.Post("/", transactionHandler.CreateTransaction)
					r.Put("/{transactionID}", transactionHandler.UpdateTransaction)

					// View dispatch endpoints: one action per call.
					r.Route("/view", func(r chi.Router) {
						r.Post("/group", transactionHandler.Group)
						r.Post("/sort", transactionHandler.Sort)
						r.Post("/filter", transactionHandler.Filter)
						r.Post("/search", transactionHandler.Search)
						r.Post("/timeline", transactionHandler.Timeline)
						r.Post("/reset", transactionHandler.Reset)
					})
				})
			})
		})
	})

	return r
}
