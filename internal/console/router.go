package console

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/zineb0v0/viaCargo/internal/console/handlers"
	"github.com/zineb0v0/viaCargo/internal/ports"
	"github.com/zineb0v0/viaCargo/internal/services"
)

// Deps are the boundaries the console composes over. Handlers stay
// unaware of concrete adapters.
type Deps struct {
	Parcels ports.ParcelSource
	Trucks  ports.TruckSource
	History ports.HistorySource
	Auth    ports.Authenticator
	Store   ports.SessionStore
	Orc     *services.Orchestrator
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the console's composition root.
func NewRouter(logger zerolog.Logger, deps Deps) http.Handler {
	sessionHandler := &handlers.SessionHandler{Auth: deps.Auth, Store: deps.Store}
	parcelHandler := &handlers.ParcelHandler{Source: deps.Parcels}
	truckHandler := &handlers.TruckHandler{Source: deps.Trucks, History: deps.History}
	dashHandler := &handlers.DashboardHandler{Parcels: deps.Parcels, History: deps.History, Store: deps.Store}
	navHandler := &handlers.NavHandler{Store: deps.Store}
	optHandler := &handlers.OptimizeHandler{Orc: deps.Orc}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware(logger))
	r.Use(loggingMiddleware)
	r.Use(recoverMiddleware)

	r.Get("/health", handlers.Health)

	r.Route("/console", func(r chi.Router) {
		r.Post("/session", sessionHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(loadSession(deps.Store))
			r.Get("/session", sessionHandler.Check)
			r.Delete("/session", sessionHandler.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireSession(deps.Store))

			r.Get("/nav", navHandler.Get)
			r.Put("/nav", navHandler.Set)

			r.Get("/dashboard", dashHandler.Get)
			r.Post("/dashboard/runs/toggle", dashHandler.ToggleRun)

			r.Get("/parcels", parcelHandler.List)
			r.Post("/parcels", parcelHandler.Create)
			r.Put("/parcels/{id}", parcelHandler.Update)
			r.Delete("/parcels/{id}", parcelHandler.Delete)

			r.Get("/trucks", truckHandler.List)
			r.Post("/trucks", truckHandler.Create)
			r.Put("/trucks/{id}", truckHandler.Update)
			r.Delete("/trucks/{id}", truckHandler.Delete)
			r.Get("/fleet", truckHandler.FleetView)

			r.Post("/optimize/loading", optHandler.StartLoading)
			r.Get("/optimize/loading", optHandler.LoadingStatus)

			r.Get("/routes", optHandler.RoutesPage)
			r.Post("/optimize/routing", optHandler.StartRouting)
			r.Get("/optimize/routing", optHandler.RoutingStatus)
		})
	})

	return r
}
