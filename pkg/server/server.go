package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/de-tools/commerce-atlas/pkg/handlers/home"
	"github.com/de-tools/commerce-atlas/pkg/handlers/inventory"
	"github.com/de-tools/commerce-atlas/pkg/handlers/products"
	"github.com/de-tools/commerce-atlas/pkg/handlers/revenue"
	"github.com/de-tools/commerce-atlas/pkg/handlers/sales"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	atlasmiddleware "github.com/de-tools/commerce-atlas/pkg/server/middleware"
	catalogsvc "github.com/de-tools/commerce-atlas/pkg/services/catalog"
	inventorysvc "github.com/de-tools/commerce-atlas/pkg/services/inventory"
	revenuesvc "github.com/de-tools/commerce-atlas/pkg/services/revenue"
	salessvc "github.com/de-tools/commerce-atlas/pkg/services/sales"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	// DB backs the per-request connection. Nil disables the session middleware.
	DB        *sql.DB
	Catalog   catalogsvc.Service
	Inventory inventorysvc.Service
	Sales     salessvc.Service
	Revenue   revenuesvc.Reporter
	Logger    zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	ReleaseVersion  string
	Environment     domain.Environment
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	homeHandler := home.NewHandler(config.ReleaseVersion, config.Environment)
	productsHandler := products.NewHandler(deps.Catalog)
	inventoryHandler := inventory.NewHandler(deps.Inventory)
	salesHandler := sales.NewHandler(deps.Sales)
	revenueHandler := revenue.NewHandler(deps.Revenue)

	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(atlasmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	routes := func(r chi.Router) {
		r.Get("/", homeHandler.Status)

		r.Group(func(r chi.Router) {
			if deps.DB != nil {
				r.Use(atlasmiddleware.Session(deps.DB))
			}

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", productsHandler.ListCategories)
				r.Post("/register", productsHandler.RegisterCategory)
			})
			r.Route("/products", func(r chi.Router) {
				r.Get("/", productsHandler.ListProducts)
				r.Post("/register", productsHandler.RegisterProduct)
			})
			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", inventoryHandler.GetStatus)
				r.Post("/update", inventoryHandler.Update)
			})
			r.Route("/sales", func(r chi.Router) {
				r.Get("/", salesHandler.ListSales)
				r.Post("/register", salesHandler.RegisterSale)
				r.Get("/date", salesHandler.SalesByDate)
				r.Get("/product", salesHandler.SalesByProduct)
				r.Get("/category", salesHandler.SalesByCategory)
				r.Get("/analyze", salesHandler.Analyze)
			})
			r.Route("/revenue", func(r chi.Router) {
				r.Get("/timeperiod", revenueHandler.TimePeriod)
				r.Get("/daily", revenueHandler.Daily)
				r.Get("/weekly", revenueHandler.Weekly)
				r.Get("/monthly", revenueHandler.Monthly)
				r.Get("/annual", revenueHandler.Annual)
				r.Get("/products", revenueHandler.Products)
				r.Get("/categories", revenueHandler.Categories)
			})
		})
	}

	routes(router)
	router.Route("/api/v1", routes)

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	config.Dependencies.Logger = logger
	router := ConfigureRouter(config)

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server stopped: %w", err)
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
