package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/caixa/internal/http/cashbook"
	"github.com/MrJamesThe3rd/caixa/internal/http/catalog"
	"github.com/MrJamesThe3rd/caixa/internal/http/export"
	"github.com/MrJamesThe3rd/caixa/internal/http/importcsv"
	"github.com/MrJamesThe3rd/caixa/internal/http/transaction"
)

func New(
	authMiddleware func(http.Handler) http.Handler,
	cashbooksV1 *cashbook.Handler,
	transactionsV1 *transaction.Handler,
	catalogV1 *catalog.Handler,
	exportV1 *export.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	router.Use(authMiddleware)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/cashbooks", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			cashbooksV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/categories", catalogV1.CategoryRoutes)
		r.Route("/modes", catalogV1.ModeRoutes)

		r.Route("/export", exportV1.Routes)
		r.Route("/import", importV1.Routes)
	})

	return router
}
