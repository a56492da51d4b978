package calendarsync

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

const (
	syncQueue           = "calendar"
	defaultSyncInterval = 30 * time.Minute
)

// WorkerConfig holds the queue settings for the background sync worker.
type WorkerConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Concurrency   int
	Interval      time.Duration
}

// AsynqSyncWorker runs periodic push and import passes over an asynq queue.
// Each handled job enqueues its successor, so the cadence survives process
// restarts as long as Redis does.
type AsynqSyncWorker struct {
	client   *asynq.Client
	server   *asynq.Server
	mux      *asynq.ServeMux
	service  SyncService
	interval time.Duration
	logger   *Logger.Logger
}

// NewAsynqSyncWorker creates the worker and registers its job handlers.
func NewAsynqSyncWorker(config WorkerConfig, service SyncService, logger *Logger.Logger) *AsynqSyncWorker {
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	}

	concurrency := config.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	interval := config.Interval
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{syncQueue: 1},
		Logger:      logger,
	})

	worker := &AsynqSyncWorker{
		client:   asynq.NewClient(redisOpt),
		server:   server,
		mux:      asynq.NewServeMux(),
		service:  service,
		interval: interval,
		logger:   logger,
	}
	worker.registerHandlers()
	return worker
}

func (w *AsynqSyncWorker) registerHandlers() {
	w.mux.HandleFunc(string(JobTypeCalendarPush), w.handlePush)
	w.mux.HandleFunc(string(JobTypeCalendarImport), w.handleImport)
}

// Start launches the queue server and seeds the first push and import jobs.
func (w *AsynqSyncWorker) Start(ctx context.Context) error {
	go func() {
		if err := w.server.Run(w.mux); err != nil {
			w.logger.Errorf("calendar sync server error: %v", err)
		}
	}()

	if err := w.enqueue(JobTypeCalendarPush, "startup", 0); err != nil {
		return err
	}
	if err := w.enqueue(JobTypeCalendarImport, "startup", 0); err != nil {
		return err
	}

	w.logger.Infof("calendar sync worker started, interval %s", w.interval)
	return nil
}

// Stop drains the queue server and closes the client.
func (w *AsynqSyncWorker) Stop(ctx context.Context) error {
	w.server.Shutdown()
	if err := w.client.Close(); err != nil {
		return fmt.Errorf("failed to close queue client: %w", err)
	}
	w.logger.Info("calendar sync worker stopped")
	return nil
}

// Health reports whether the queue broker is reachable.
func (w *AsynqSyncWorker) Health(ctx context.Context) error {
	return w.client.Ping()
}

func (w *AsynqSyncWorker) handlePush(ctx context.Context, t *asynq.Task) error {
	var payload JobPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal push payload: %w", err)
	}

	// On failure asynq retries this job; the next interval is only chained
	// after a pass completes.
	if _, err := w.service.PushAll(ctx); err != nil {
		return err
	}

	return w.enqueue(JobTypeCalendarPush, "interval", w.interval)
}

func (w *AsynqSyncWorker) handleImport(ctx context.Context, t *asynq.Task) error {
	var payload JobPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal import payload: %w", err)
	}

	if _, err := w.service.Import(ctx); err != nil {
		return err
	}

	return w.enqueue(JobTypeCalendarImport, "interval", w.interval)
}

func (w *AsynqSyncWorker) enqueue(jobType JobType, trigger string, delay time.Duration) error {
	payload := JobPayload{
		JobType:    jobType,
		Trigger:    trigger,
		EnqueuedAt: time.Now(),
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal job payload: %w", err)
	}

	job := asynq.NewTask(string(jobType), payloadBytes)
	opts := []asynq.Option{asynq.Queue(syncQueue), asynq.MaxRetry(3)}
	if delay > 0 {
		opts = append(opts, asynq.ProcessIn(delay))
	}

	info, err := w.client.Enqueue(job, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s job: %w", jobType, err)
	}

	w.logger.Infof("calendar job enqueued: %s (%s, job id %s)", jobType, trigger, info.ID)
	return nil
}
