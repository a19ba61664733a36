package web

import (
	"time"

	"github.com/chasen-bettinger/fantasy-analysis/db"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(database db.DB, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(render))
	r.Get("/summary", summaryHandler(database, render))

	r.Route("/draft", func(r chi.Router) {
		r.Get("/picks", draftPicksHandler(database, render))
		r.Get("/positions", picksByPositionHandler(database, render))
		r.Get("/teams", teamDraftSummaryHandler(database, render))
		r.Get("/trends", positionTrendsHandler(database, render))
		r.Get("/scarcity", positionScarcityHandler(database, render))
	})

	r.Get("/games", gamesByWeekHandler(database, render))

	return r
}
