package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hukuitappei/voicetask/docs"
	"github.com/hukuitappei/voicetask/internal/config"
	"github.com/hukuitappei/voicetask/internal/domains/calendarsync"
	"github.com/hukuitappei/voicetask/internal/domains/command"
	"github.com/hukuitappei/voicetask/internal/domains/dictionary"
	"github.com/hukuitappei/voicetask/internal/domains/event"
	"github.com/hukuitappei/voicetask/internal/domains/extraction"
	"github.com/hukuitappei/voicetask/internal/domains/session"
	"github.com/hukuitappei/voicetask/internal/domains/settings"
	"github.com/hukuitappei/voicetask/internal/domains/task"
	"github.com/hukuitappei/voicetask/internal/domains/transcript"
	"github.com/hukuitappei/voicetask/internal/handlers"
	wscapture "github.com/hukuitappei/voicetask/internal/handlers/websocket"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

// Dependencies carries every service the HTTP surface needs.
type Dependencies struct {
	SessionService       session.SessionService
	TranscriptionService transcript.TranscriptionService
	ExtractionService    extraction.ExtractionService
	TaskService          task.TaskService
	EventService         event.EventService
	SyncService          calendarsync.SyncService
	DictionaryService    dictionary.DictionaryService
	CommandService       command.CommandService
	SettingsService      settings.SettingsService
	Logger               *Logger.Logger
	Configs              *config.Settings
}

func NewServerDependencies(
	sessionService session.SessionService,
	transcriptionService transcript.TranscriptionService,
	extractionService extraction.ExtractionService,
	taskService task.TaskService,
	eventService event.EventService,
	syncService calendarsync.SyncService,
	dictionaryService dictionary.DictionaryService,
	commandService command.CommandService,
	settingsService settings.SettingsService,
	logger *Logger.Logger,
	config *config.Settings,
) Dependencies {
	return Dependencies{
		SessionService:       sessionService,
		TranscriptionService: transcriptionService,
		ExtractionService:    extractionService,
		TaskService:          taskService,
		EventService:         eventService,
		SyncService:          syncService,
		DictionaryService:    dictionaryService,
		CommandService:       commandService,
		SettingsService:      settingsService,
		Logger:               logger,
		Configs:              config,
	}
}

func InitializeRoutes(cfg *config.Settings, r *gin.Engine, dep Dependencies) {
	r.GET("/", func(ctx *gin.Context) { ctx.JSON(200, gin.H{"message": "Server healthy"}) })
	r.GET("/health", func(ctx *gin.Context) { ctx.JSON(200, gin.H{"status": "ok"}) })

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	sessionHandler := handlers.NewSessionHandler(dep.SessionService, dep.Logger)
	sessionHandler.RegisterSessionRoutes(api)

	transcriptionHandler := handlers.NewTranscriptionHandler(dep.TranscriptionService, dep.Logger)
	transcriptionHandler.RegisterTranscriptionRoutes(api, dep.SessionService)

	extractionHandler := handlers.NewExtractionHandler(dep.ExtractionService, dep.Logger)
	extractionHandler.RegisterExtractionRoutes(api, dep.SessionService)

	taskHandler := handlers.NewTaskHandler(dep.TaskService, dep.SyncService, dep.Logger)
	taskHandler.RegisterTaskRoutes(api, dep.SessionService)

	eventHandler := handlers.NewEventHandler(dep.EventService, dep.SyncService, dep.Logger)
	eventHandler.RegisterEventRoutes(api, dep.SessionService)

	calendarHandler := handlers.NewCalendarHandler(dep.SyncService, dep.Logger)
	calendarHandler.RegisterCalendarRoutes(api, dep.SessionService)

	dictionaryHandler := handlers.NewDictionaryHandler(dep.DictionaryService, dep.Logger)
	dictionaryHandler.RegisterDictionaryRoutes(api, dep.SessionService)

	commandHandler := handlers.NewCommandHandler(dep.CommandService, dep.Logger)
	commandHandler.RegisterCommandRoutes(api, dep.SessionService)

	settingsHandler := handlers.NewSettingsHandler(dep.SettingsService, dep.Logger)
	settingsHandler.RegisterSettingsRoutes(api, dep.SessionService)

	// Live capture speaks WebSocket, so it mounts at the engine root
	// instead of the versioned API group.
	captureHandler := wscapture.NewCaptureHandler(dep.Logger, dep.SessionService, dep.TranscriptionService)
	captureHandler.RegisterRoutes(r)
}
