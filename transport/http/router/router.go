package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"latina/config"
	"latina/internal/handlers/page"
	"latina/internal/handlers/reservation"
	"latina/shared/locale"
	"latina/transport/http/middleware"
	"latina/transport/http/response"
)

type DomainHandlers struct {
	Reservation reservation.Handler
	Page        page.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Config         *config.Config
}

// SetupRoutes mounts the API under /api and the localized pages under
// /{locale}. The locale middleware runs ahead of routing so unprefixed paths
// are redirected before chi looks for a match.
func (r *Router) SetupRoutes(router chi.Router) {
	fallback, ok := locale.Parse(r.Config.App.Locale.Default)
	if !ok {
		fallback = locale.Default
	}

	notFound := http.HandlerFunc(r.DomainHandlers.Page.NotFound)

	router.Use(
		r.Middleware.Recover,
		r.Middleware.Tracing,
		middleware.Locale(locale.NewResolver(fallback), r.Config.App.Locale.Detection, notFound),
	)

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.CORS(), r.Middleware.RateLimit())

		r.DomainHandlers.Reservation.Router(routerGroup)

		routerGroup.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			response.WithNotFound(w)
		})
	})

	r.DomainHandlers.Page.Router(router)

	router.NotFound(r.DomainHandlers.Page.NotFound)
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
		Config:         cfg,
	}
}
