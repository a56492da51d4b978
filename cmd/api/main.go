package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hukuitappei/voicetask/internal/app"
	"github.com/hukuitappei/voicetask/internal/config"
	"github.com/hukuitappei/voicetask/internal/database"
	"github.com/hukuitappei/voicetask/internal/db"
	"github.com/hukuitappei/voicetask/internal/handlers"
	"github.com/hukuitappei/voicetask/internal/server"
	"github.com/hukuitappei/voicetask/pkg/Logger"
	"gorm.io/gorm"
)

// This is the main entry point for the API server.
// Loads in all system components
// Exposes functionalities
//
// @title VoiceTask API
// @version 1.0
// @description Voice capture, transcription and task/event extraction service
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token issued when a session is opened, sent as "Bearer {token}"
func main() {
	// fetch cfg
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	// load global logger
	logger := Logger.New(cfg.Debug)
	logger.Info("Logger initialized")

	// only the mysql driver needs a database connection
	var gormDB *gorm.DB
	if cfg.Storage.Driver == "mysql" {
		gormDB, err = db.InitDB(cfg.DB.DSN(), *cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		// handle migrations
		database.MigrateDB(gormDB)
	}

	// sessions and the sync queue live in redis
	rc, err := database.NewRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}

	application, err := app.NewApp(cfg, logger, gormDB, rc)
	if err != nil {
		log.Fatalf("Failed to wire application: %v", err)
	}

	// compose router
	router := gin.New()
	router.Use(handlers.RequestLoggerMiddleware(logger))
	router.Use(handlers.ErrorHandlerMiddleware(logger))
	router.Use(handlers.CORSMiddleware())
	server.InitializeRoutes(cfg, router, application.GetServerDependencies())

	if application.SyncWorker != nil {
		if err := application.SyncWorker.Start(context.Background()); err != nil {
			logger.Errorf("calendar sync worker failed to start: %v", err)
		}
	}

	// listen with graceful exit
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router.Handler(),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server exiting %v", err)
		}
	}()
	logger.Infof("Server listening on :%d", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// 5 secs then cancel
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if application.SyncWorker != nil {
		if err := application.SyncWorker.Stop(ctx); err != nil {
			logger.Errorf("Worker shutdown err %v", err)
		}
	}
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown err %v", err)
	}
	logger.Info("Shutdown system")
}
