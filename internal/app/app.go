package app

import (
	"context"
	"path/filepath"
	"time"

	"github.com/go-redis/redis"
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
	commandRepo "github.com/hukuitappei/voicetask/internal/repository/command"
	dictionaryRepo "github.com/hukuitappei/voicetask/internal/repository/dictionary"
	eventRepo "github.com/hukuitappei/voicetask/internal/repository/event"
	"github.com/hukuitappei/voicetask/internal/repository/media"
	sessionRepo "github.com/hukuitappei/voicetask/internal/repository/session"
	settingsRepo "github.com/hukuitappei/voicetask/internal/repository/settings"
	taskRepo "github.com/hukuitappei/voicetask/internal/repository/task"
	transcriptRepo "github.com/hukuitappei/voicetask/internal/repository/transcript"
	"github.com/hukuitappei/voicetask/internal/server"
	"github.com/hukuitappei/voicetask/pkg/Logger"
	"github.com/hukuitappei/voicetask/pkg/gcal"
	"github.com/hukuitappei/voicetask/pkg/llm"
	"github.com/hukuitappei/voicetask/pkg/stt"
	"github.com/hukuitappei/voicetask/pkg/stt/whisperserver"
	"gorm.io/gorm"
)

// App represents the application with all its dependencies
type App struct {
	Config   *config.Settings
	Logger   *Logger.Logger
	DB       *gorm.DB
	RC       *redis.Client
	Registry *llm.Registry
	// repos
	TaskRepo       task.TaskRepository
	EventRepo      event.EventRepository
	TranscriptRepo transcript.TranscriptRepository
	// background calendar worker, nil unless the integration is enabled
	SyncWorker *calendarsync.AsynqSyncWorker
	ServerDeps server.Dependencies
}

// NewApp creates a new application instance with all dependencies properly
// wired. db may be nil when the file storage driver is configured.
func NewApp(cfg *config.Settings, logger *Logger.Logger, db *gorm.DB, rc *redis.Client) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
		DB:     db,
		RC:     rc,
	}

	if err := app.setupDependencies(); err != nil {
		return nil, err
	}

	return app, nil
}

// setupDependencies initializes all application dependencies
func (a *App) setupDependencies() error {
	// 1. Text generators from configured credentials
	factory := NewLLMRegistryFactory(a.Config.LLMKeys, a.Logger)
	a.Registry = factory.CreateRegistry()

	// 2. Set up repositories per storage driver. The JSON document
	// stores stay file-backed in both modes; only tasks and events
	// move into MySQL.
	storage := a.Config.Storage
	switch storage.Driver {
	case "mysql":
		a.TaskRepo = taskRepo.NewGormTaskRepo(a.DB)
		a.EventRepo = eventRepo.NewGormEventRepo(a.DB)
	default:
		a.TaskRepo = taskRepo.NewFileTaskRepo(filepath.Join(storage.SettingsDir, "tasks.json"))
		a.EventRepo = eventRepo.NewFileEventRepo(filepath.Join(storage.SettingsDir, "calendar.json"))
	}
	a.TranscriptRepo = transcriptRepo.NewFileTranscriptRepo(filepath.Join(storage.SettingsDir, "transcriptions.json"))
	dictRepo := dictionaryRepo.NewFileDictionaryRepo(filepath.Join(storage.SettingsDir, "user_dictionary.json"))
	cmdRepo := commandRepo.NewFileCommandRepo(filepath.Join(storage.SettingsDir, "commands.json"))
	setRepo := settingsRepo.NewFileSettingsRepo(filepath.Join(storage.SettingsDir, "app_settings.json"))
	mediaStore := media.NewStore(storage.TranscriptionsDir, storage.RecordingsDir, storage.OutputsDir)

	// 3. Calendar client, real only when credentials are configured
	var calendarClient calendarsync.CalendarClient
	var taskMirror task.EventMirror = task.NoopMirror{}
	var eventMirror event.EventMirror = event.NoopMirror{}
	if a.Config.GCal.Enabled {
		client, err := gcal.NewClient(context.Background(), gcal.Config{
			ClientID:     a.Config.GCal.ClientID,
			ClientSecret: a.Config.GCal.ClientSecret,
			RefreshToken: a.Config.GCal.RefreshToken,
		})
		if err != nil {
			a.Logger.Warnf("google calendar integration disabled: %v", err)
		} else {
			calendarClient = calendarsync.NewGoogleCalendarClient(client)
			taskMirror = client
			eventMirror = client
		}
	}

	// 4. Services
	settingsService := settings.NewSettingsService(setRepo, a.Logger)
	dictionaryService := dictionary.NewDictionaryService(dictRepo, a.Logger)
	extractionService := extraction.NewExtractionService(a.Registry, settingsService, a.Logger)
	taskService := task.NewTaskService(a.TaskRepo, taskMirror, a.Logger)
	eventService := event.NewEventService(a.EventRepo, eventMirror, a.Logger)
	syncService := calendarsync.NewSyncService(a.TaskRepo, a.EventRepo, calendarClient, a.Logger)
	commandService := command.NewCommandService(cmdRepo, mediaStore, a.Registry, settingsService, a.Logger)

	// JWT settings from config
	jwtSecret := a.Config.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "default-secret-key-change-in-production"
		a.Logger.Warn("JWT secret not configured, using default (not secure for production)")
	}
	sessionService := session.NewSessionService(
		sessionRepo.NewRedisSessionRepo(a.RC),
		a.Logger,
		jwtSecret,
		a.Config.Auth.AccessPasswordHash,
		a.Config.Auth.TokenTTL(),
	)

	transcriptionService := transcript.NewTranscriptionService(
		a.buildTranscriber(),
		a.TranscriptRepo,
		mediaStore,
		dictionaryService,
		extractionService,
		taskService,
		eventService,
		settingsService,
		a.Logger,
	)

	// 5. Background calendar sync rides the asynq queue
	if a.Config.GCal.Enabled {
		a.SyncWorker = calendarsync.NewAsynqSyncWorker(calendarsync.WorkerConfig{
			RedisAddr:     a.Config.Redis.Addr,
			RedisPassword: a.Config.Redis.Password,
			Interval:      time.Duration(a.Config.GCal.SyncInterval) * time.Minute,
		}, syncService, a.Logger)
	}

	a.ServerDeps = server.NewServerDependencies(
		sessionService,
		transcriptionService,
		extractionService,
		taskService,
		eventService,
		syncService,
		dictionaryService,
		commandService,
		settingsService,
		a.Logger,
		a.Config,
	)

	return nil
}

// buildTranscriber picks the speech-to-text backend from configuration.
func (a *App) buildTranscriber() stt.Transcriber {
	if a.Config.STT.Provider == "server" && a.Config.STT.ServerURL != "" {
		return whisperserver.New(a.Config.STT.ServerURL, a.Logger)
	}

	transcriber, err := stt.NewOpenAI(a.Config.LLMKeys.OpenAIAPIKey)
	if err != nil {
		a.Logger.Warnf("speech-to-text unavailable: %v", err)
		return stt.NewNullTranscriber()
	}
	return transcriber
}

// GetServerDependencies returns the server dependencies
func (a *App) GetServerDependencies() server.Dependencies {
	return a.ServerDeps
}
