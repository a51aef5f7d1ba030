// Package job runs background work on asynq (Redis-backed).
//
// Two task types exist: removing stored files after a record is deleted
// and emailing admins about record changes. Both are retried by asynq, so a
// flaky object store or mail provider never fails the admin's request.
package job

import (
	"context"
	"fmt"

	"github.com/deppfellow/procurement-cms/internal/config"
	"github.com/deppfellow/procurement-cms/internal/lib/email"
	"github.com/deppfellow/procurement-cms/internal/storage"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Queue names, by priority.
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// notifier is satisfied by *email.Client.
type notifier interface {
	SendRecordChanged(ctx context.Context, to []string, change email.RecordChange) error
}

// JobService enqueues tasks and runs the workers that process them.
type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	logger *zerolog.Logger
	store  storage.Store
	mailer notifier
	admins []string
}

// NewJobService shares rdb for enqueueing and opens its own worker
// connection to the same Redis.
func NewJobService(logger *zerolog.Logger, cfg *config.Config, rdb redis.UniversalClient, store storage.Store) *JobService {
	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.Redis.Address},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				QueueCritical: 6,
				QueueDefault:  3,
				QueueLow:      1,
			},
			Logger:   asynqLogger{logger},
			LogLevel: asynq.WarnLevel,
		},
	)

	j := &JobService{
		Client: asynq.NewClientFromRedisClient(rdb),
		server: server,
		logger: logger,
		store:  store,
	}
	if cfg.Integration.NotificationsEnabled() {
		j.mailer = email.NewClient(cfg, logger)
		j.admins = cfg.Integration.AdminEmails
	}
	return j
}

// EnqueueFileCleanup queues removal of files a deleted record pointed at.
func (j *JobService) EnqueueFileCleanup(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	task, err := NewStorageDeleteTask(urls)
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TaskStorageDelete, err)
	}

	j.logger.Debug().Str("task_id", info.ID).Int("files", len(urls)).Msg("Queued file cleanup")
	return nil
}

// EnqueueRecordChanged queues an admin notification. It does nothing when
// notifications are not configured.
func (j *JobService) EnqueueRecordChanged(ctx context.Context, change email.RecordChange) error {
	if j.mailer == nil || len(j.admins) == 0 {
		return nil
	}

	task, err := NewRecordChangedTask(RecordChangedPayload{
		To:         j.admins,
		Entity:     change.Entity,
		Action:     change.Action,
		RecordID:   change.RecordID,
		RecordName: change.RecordName,
		OccurredAt: change.OccurredAt,
	})
	if err != nil {
		return err
	}

	if _, err := j.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueue %s: %w", TaskRecordChanged, err)
	}
	return nil
}

// Mux routes task types to their handlers.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskStorageDelete, j.handleStorageDeleteTask)
	mux.HandleFunc(TaskRecordChanged, j.handleRecordChangedTask)
	return mux
}

// Start launches the workers in the background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")
	return j.server.Start(j.Mux())
}

// Stop waits for running tasks and releases the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Warn().Err(err).Msg("closing job client")
	}
}

// asynqLogger sends asynq's own logs through zerolog.
type asynqLogger struct {
	l *zerolog.Logger
}

func (a asynqLogger) Debug(args ...any) { a.l.Debug().Msg(fmt.Sprint(args...)) }
func (a asynqLogger) Info(args ...any)  { a.l.Info().Msg(fmt.Sprint(args...)) }
func (a asynqLogger) Warn(args ...any)  { a.l.Warn().Msg(fmt.Sprint(args...)) }
func (a asynqLogger) Error(args ...any) { a.l.Error().Msg(fmt.Sprint(args...)) }
func (a asynqLogger) Fatal(args ...any) { a.l.Fatal().Msg(fmt.Sprint(args...)) }
