// File: quicklink/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quicklink/config"
	"quicklink/handlers"
	"quicklink/middleware"
	"quicklink/routes"
	"quicklink/services/employee"
	"quicklink/services/marketplace"
	"quicklink/services/notification"
	"quicklink/services/request"
	"quicklink/store"
	"quicklink/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// All state lives in this store for the lifetime of the process.
	appStore := store.New(store.DefaultSeed())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	notifier := notification.NewDefaultService(logger)
	requestService := &request.DefaultService{
		Store:    appStore,
		Notifier: notifier,
	}
	marketplaceService := &marketplace.DefaultService{
		Store:    appStore,
		Requests: requestService,
	}
	employeeService := &employee.DefaultService{
		Store: appStore,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.Bundle{
		Requests:    handlers.NewRequestHandler(requestService, logger),
		Marketplace: handlers.NewMarketplaceHandler(marketplaceService, logger),
		Employees:   handlers.NewEmployeeHandler(employeeService, logger),
		Admin:       handlers.NewAdminHandler(requestService, notifier, appStore),
		Contact:     handlers.NewContactHandler(),
		Health:      handlers.NewHealthHandler(appStore),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, appStore, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
