package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/aryanrathore-thriftyx/Alluraiah-testing/docs"
	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/config"
	httpapi "github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/http"
	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/repository"
	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/seed"
	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/service"
)

// @title Alluraiah Sweets API
// @version 1.0
// @description Storefront backend for the Alluraiah sweets shop: catalog, cart, reviews and a simulated OTP login.
// @BasePath /api
func main() {
	cfg := config.Load()

	store := repository.NewMemoryStore()
	usersRepo := repository.NewMemoryUsers(store)
	cartRepo := repository.NewMemoryCart(store)
	reviewsRepo := repository.NewMemoryReviews(store)
	tx := repository.NewMemoryTx(store)

	catalogSvc := service.NewCatalogService(store)
	cartSvc := service.NewCartService(store, cartRepo, tx)
	reviewsSvc := service.NewReviewService(store, reviewsRepo, tx)
	authSvc := service.NewAuthService(usersRepo)

	if cfg.SeedCatalog {
		if err := seed.Load(context.Background(), catalogSvc, reviewsSvc, authSvc); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	srv := httpapi.NewServer(catalogSvc, cartSvc, reviewsSvc, authSvc)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
