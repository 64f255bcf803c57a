package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cornerstore/internal/database"

	"cornerstore/internal/entities/cashier"
	"cornerstore/internal/entities/category"
	"cornerstore/internal/entities/order"
	"cornerstore/internal/entities/product"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := database.LoadConfig()
	if err != nil {
		slog.Error("could not load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		slog.Error("could not initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database connected")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, db, getEnv("MIGRATIONS_DIR", "internal/database/migrations")); err != nil {
		slog.Error("could not run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	categoryRepo := category.NewCategoryRepository(db)
	productRepo := product.NewProductRepository(db)
	cashierRepo := cashier.NewCashierRepository(db)
	orderRepo := order.NewOrderRepository(db)

	// Services
	categorySvc := category.NewCategoryService(categoryRepo)
	productSvc := product.NewProductService(productRepo)
	orderSvc := order.NewOrderService(orderRepo)
	cashierSvc := cashier.NewCashierService(cashierRepo, orderRepo)

	// Handlers
	categoryH := category.NewCategoryHandler(categorySvc)
	productH := product.NewProductHandler(productSvc)
	orderH := order.NewOrderHandler(orderSvc)
	cashierH := cashier.NewCashierHandler(cashierSvc)

	// Router (Go 1.22+ method+path patterns)
	mux := http.NewServeMux()
	categoryH.RegisterRoutes(mux)
	productH.RegisterRoutes(mux)
	orderH.RegisterRoutes(mux)
	cashierH.RegisterRoutes(mux)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	srv := &http.Server{
		Addr:         getEnv("PORT", ":8080"),
		Handler:      loggerMiddleware(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}
}

func loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start).String())
	})
}

func getEnv(key, fallback string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return fallback
}
