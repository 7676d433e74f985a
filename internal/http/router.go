package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jmcardoso/penny/internal/auth"
	authHandler "github.com/jmcardoso/penny/internal/http/authapi"
	budgetHandler "github.com/jmcardoso/penny/internal/http/budget"
	categoryHandler "github.com/jmcardoso/penny/internal/http/category"
	recurringHandler "github.com/jmcardoso/penny/internal/http/recurring"
	transactionHandler "github.com/jmcardoso/penny/internal/http/transaction"
	userHandler "github.com/jmcardoso/penny/internal/http/user"
)

func New(
	tokens *auth.TokenManager,
	authV1 *authHandler.Handler,
	usersV1 *userHandler.Handler,
	categoriesV1 *categoryHandler.Handler,
	transactionsV1 *transactionHandler.Handler,
	budgetsV1 *budgetHandler.Handler,
	recurringV1 *recurringHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticator(tokens))

			r.Route("/users", usersV1.Routes)

			r.Route("/categories", func(r chi.Router) {
				categoriesV1.Routes(r)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				transactionsV1.Routes(r)
			})

			r.Route("/budgets", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				budgetsV1.Routes(r)
			})

			r.Route("/recurring", func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				recurringV1.Routes(r)
			})
		})
	})

	return router
}
