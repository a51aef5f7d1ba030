package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deppfellow/procurement-cms/internal/lib/email"
	"github.com/hibiken/asynq"
)

// handleStorageDeleteTask removes every file in the payload. URLs outside
// the store's public base are skipped; failed deletes are returned together
// so asynq retries the task. Deleting a missing object is a no-op, so a
// retry after partial success is harmless.
func (j *JobService) handleStorageDeleteTask(ctx context.Context, t *asynq.Task) error {
	var p StorageDeletePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal storage delete payload: %w: %w", err, asynq.SkipRetry)
	}

	var errs []error
	for _, u := range p.URLs {
		key, ok := j.store.KeyFromURL(u)
		if !ok {
			j.logger.Warn().Str("url", u).Msg("Skipping file outside the object store")
			continue
		}

		if err := j.store.Delete(ctx, key); err != nil {
			j.logger.Error().Str("key", key).Err(err).Msg("Failed to delete stored file")
			errs = append(errs, err)
			continue
		}

		j.logger.Info().Str("key", key).Msg("Deleted stored file")
	}

	return errors.Join(errs...)
}

// handleRecordChangedTask emails the admins about one change.
func (j *JobService) handleRecordChangedTask(ctx context.Context, t *asynq.Task) error {
	var p RecordChangedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal record changed payload: %w: %w", err, asynq.SkipRetry)
	}

	if j.mailer == nil {
		j.logger.Warn().Str("entity", p.Entity).Msg("Dropping notification, email is not configured")
		return nil
	}

	logger := j.logger.With().
		Str("type", "record_changed").
		Str("entity", p.Entity).
		Str("action", p.Action).
		Int64("record_id", p.RecordID).
		Logger()

	err := j.mailer.SendRecordChanged(ctx, p.To, email.RecordChange{
		Entity:     p.Entity,
		Action:     p.Action,
		RecordID:   p.RecordID,
		RecordName: p.RecordName,
		OccurredAt: p.OccurredAt,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to send record changed email")
		return err
	}

	logger.Info().Msg("Sent record changed email")
	return nil
}
