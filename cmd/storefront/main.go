package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/aaravmahajanofficial/storefront/docs"
	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cart"
	"github.com/aaravmahajanofficial/storefront/internal/catalog"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/filter"
	"github.com/aaravmahajanofficial/storefront/internal/health"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/telemetry"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// @title        Storefront API
// @version      1.0
// @description  Catalog browsing, filtering and a single-session shopping cart.
// @host         localhost:8080
// @BasePath     /api/v1
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg.Otel, health.Version)
	if err != nil {
		slog.Error("❌ Error initialising tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	// Catalog setup
	products, err := catalog.Load(cfg.Storefront.CatalogPath)
	if err != nil {
		slog.Error("❌ Error loading the catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	locale, err := cfg.Storefront.LocaleTag()
	if err != nil {
		slog.Error("❌ Invalid locale", slog.String("locale", cfg.Storefront.Locale), slog.String("error", err.Error()))
		os.Exit(1)
	}

	defaults := filter.DefaultCriteria(cfg.Storefront.DefaultMaxPrice)
	if key := models.SortKey(cfg.Storefront.DefaultSort); filter.ValidSortKey(key) {
		defaults.Sort = key
	} else {
		slog.Warn("Unknown default sort key, falling back to name", slog.String("sort", cfg.Storefront.DefaultSort))
	}

	productService := service.NewProductService(products, filter.New(locale), defaults)
	productHandler := handlers.NewProductHandler(productService)
	cartService := service.NewCartService(cart.NewStore(), products)
	cartHandler := handlers.NewCartHandler(cartService)
	userService := service.NewUserService(models.DefaultUser)
	userHandler := handlers.NewUserHandler(userService)

	healthHandler, err := health.NewHealthHandler(cfg.Otel.ServiceName, &health.Endpoints{Catalog: products})
	if err != nil {
		slog.Error("❌ Error creating the health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("catalog loaded", slog.String("env", cfg.Env), slog.Int("products", products.Len()), slog.String("locale", locale.String()), slog.String("version", health.Version))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/products/filters", productHandler.GetCriteria())
	routerMux.HandleFunc("PATCH /api/v1/products/filters", productHandler.UpdateCriteria())
	routerMux.HandleFunc("POST /api/v1/products/filters/reset", productHandler.ResetCriteria())
	routerMux.HandleFunc("POST /api/v1/products/filters/preset", productHandler.ApplyPricePreset())
	routerMux.HandleFunc("GET /api/v1/categories", productHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/sort-options", productHandler.ListSortOptions())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items/{id}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/cart/checkout", cartHandler.Checkout())
	routerMux.HandleFunc("GET /api/v1/users/me", userHandler.Profile())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Middleware chaining, metrics sits next to the mux so the route pattern is set
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {

		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
