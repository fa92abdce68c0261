package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maisonluxe/storefront/api/controllers"
	"github.com/maisonluxe/storefront/api/middleware"
	"github.com/maisonluxe/storefront/internal/shop"
	"github.com/maisonluxe/storefront/pkg/config"
	"github.com/maisonluxe/storefront/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	svc *shop.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogFetch(svc, logg))
			r.Post("/refresh", controllers.CatalogRefresh(svc, logg))
			r.Put("/category", controllers.CatalogSetCategory(svc, logg))
			r.Put("/search", controllers.CatalogSetSearch(svc, logg))
			r.Get("/products/{id}", controllers.CatalogProductDetail(svc, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(svc, logg))
			r.Post("/items", controllers.CartAddItem(svc, logg))
			r.Put("/items/{id}", controllers.CartSetQuantity(svc, logg))
			r.Delete("/items/{id}", controllers.CartRemoveItem(svc, logg))
			r.Post("/open", controllers.CartOpen(svc, logg))
			r.Post("/close", controllers.CartClose(svc, logg))
			r.Post("/toggle", controllers.CartToggle(svc, logg))
		})

		r.Post("/checkout", controllers.Checkout(svc, logg))
	})

	return r
}
