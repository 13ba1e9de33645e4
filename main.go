package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unifix/config"
	"unifix/cron"
	"unifix/database"
	"unifix/handlers"
	"unifix/push"
	"unifix/routes"
	"unifix/services/notification"
	"unifix/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()
	fsClient, msgClient, err := utils.FirebaseClients(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize firebase clients: %v", err)
	}
	defer fsClient.Close()

	// Collaborators.
	store := database.NewFirestoreStore(fsClient)
	sender := push.NewFCMSender(msgClient)

	// Engine.
	dispatcher, err := notification.NewDefaultDispatcher(store, sender, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build dispatcher: %v", err)
	}
	engine, err := notification.NewEngine(store, dispatcher, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build engine: %v", err)
	}
	router := notification.NewDefaultRouter(engine, logger)
	triggerHandler := handlers.NewTriggerHandler(router, logger)

	// Background sweep of orphaned debug push documents.
	sweeper := cron.StartDebugQueueSweeper(fsClient, logger)
	defer sweeper.Stop()

	// Create the Gin router.
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(utils.ErrorHandler())
	ginRouter.Use(gin.Logger())

	routes.RegisterRoutes(ginRouter, triggerHandler, config.AppConfig.TriggerToken)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: ginRouter,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
