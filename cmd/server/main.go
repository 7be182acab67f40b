// Command server runs the storefront admin HTTP API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/leefeettrends/admin-api/app/api"
	"github.com/leefeettrends/admin-api/app/auth"
	"github.com/leefeettrends/admin-api/app/categories"
	"github.com/leefeettrends/admin-api/app/contact"
	"github.com/leefeettrends/admin-api/app/customers"
	"github.com/leefeettrends/admin-api/app/dashboard"
	"github.com/leefeettrends/admin-api/app/orders"
	"github.com/leefeettrends/admin-api/app/products"
	"github.com/leefeettrends/admin-api/app/reviews"
	"github.com/leefeettrends/admin-api/config"
	"github.com/leefeettrends/admin-api/database"
	"github.com/leefeettrends/admin-api/models"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Open(cfg.Postgres)
	if err != nil {
		log.Fatal("database_connect_failed", zap.Error(err))
	}
	log.Info("database_connected",
		zap.String("host", cfg.Postgres.Host),
		zap.String("dbname", cfg.Postgres.DBName),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		api.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	tokens := auth.NewTokenManager(cfg.Auth)
	auth.NewAuthHandler(models.NewUsersRepository(db), tokens).Register(mux)
	customers.NewCustomersHandler(models.NewCustomersRepository(db)).Register(mux)
	products.NewProductsHandler(models.NewProductsRepository(db)).Register(mux)
	categories.NewCategoryHandler(models.NewCategoriesRepository(db)).Register(mux)
	orders.NewOrdersHandler(models.NewOrdersRepository(db)).Register(mux)
	contact.NewContactHandler(models.NewContactRepository(db)).Register(mux)
	reviews.NewReviewsHandler(models.NewReviewsRepository(db)).Register(mux)
	dashboard.NewDashboardHandler(models.NewDashboardRepository(db)).Register(mux)

	handler := api.WithRequestID(api.WithCORS(api.WithLogging(log, mux)))

	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("http_listen", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http_server_error", zap.Error(err))
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	log.Info("shutdown_signal", zap.String("signal", s.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("http_shutdown_error", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("service_stopped")
}
