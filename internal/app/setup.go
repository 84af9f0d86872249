// Package app wires the stores, services and HTTP handlers of the shop service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/filecommerce/internal/config"
	"github.com/abgdnv/filecommerce/internal/service"
	"github.com/abgdnv/filecommerce/internal/store"
	"github.com/abgdnv/filecommerce/internal/transport/rest"
	pkgconfig "github.com/abgdnv/filecommerce/pkg/config"
	"github.com/abgdnv/filecommerce/pkg/messaging"
	"github.com/abgdnv/filecommerce/pkg/server"
	"github.com/go-chi/chi/v5"
)

const ServiceName = "shop"

type Dependencies struct {
	ProductService service.ProductService
	CartService    service.CartService
	Logger         *slog.Logger
}

// SetupDependencies builds the file stores and services. The carts service reads products through the same store instance,
// so both share its lock.
func SetupDependencies(cfg pkgconfig.StorageConfig, publisher messaging.Publisher, logger *slog.Logger) *Dependencies {
	products := store.NewFileProductStore(cfg.ProductsFile, cfg.TolerateCorrupt, logger)
	carts := store.NewFileCartStore(cfg.CartsFile, cfg.TolerateCorrupt, logger)

	return &Dependencies{
		ProductService: service.NewProductService(products, publisher, logger),
		CartService:    service.NewCartService(carts, products, publisher, logger),
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the router and routes for the shop service.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return server.Instrument(ServiceName, mux)
}

// wireRoutes sets up the HTTP routes for the shop service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	rest.NewProductHandler(deps.ProductService, deps.Logger).RegisterRoutes(mux)
	rest.NewCartHandler(deps.CartService, deps.Logger).RegisterRoutes(mux)
	mux.Get("/healthz", rest.HealthCheck)
}

// SetupHttpServer creates and configures an HTTP server for the shop service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {

	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
